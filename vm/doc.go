// This file is part of intcode - https://github.com/db47h/intcode
//
// Copyright 2019 Denis Bernard <db047h@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package vm implements the Intcode virtual machine.
//
// An Intcode program is a flat sequence of integers loaded at address 0 of
// the VM memory. Instructions are decoded from a single memory cell: the two
// low decimal digits select the opcode and the digits above give, from least
// to most significant, the addressing mode of each parameter.
//
// The VM supports three addressing modes: position (the parameter is an
// address), immediate (the parameter is the value) and relative (the
// parameter is an offset from the relative base register).
//
// Memory is growable by default: reading a cell that was never written yields
// 0, and writing at any non-negative address succeeds. The Fixed option
// selects the earliest variant of the machine where the memory never grows
// and any access past the end of the loaded program is an error.
//
// Execution is resumable. Execute runs the program until it halts or until it
// reaches an input instruction while its input queue is empty. In the latter
// case, the instance is left Blocked on that instruction and the next call to
// Execute, with more input, resumes exactly where it stopped. This is what
// enables a driver to run several instances in turns and relay values between
// them (see package github.com/db47h/intcode/network).
//
// The VM never performs any I/O on its own. The Reader interface and the Drive
// function are helpers for drivers that read input from a predetermined list
// of values or from a line based source like a terminal.
package vm
