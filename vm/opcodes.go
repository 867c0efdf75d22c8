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

package vm

import (
	"strconv"

	"github.com/pkg/errors"
)

// Opcode is an Intcode instruction opcode.
type Opcode Cell

// Intcode Virtual Machine Opcodes.
const (
	OpAdd        Opcode = 1 + iota // p3 = p1 + p2
	OpMul                          // p3 = p1 * p2
	OpIn                           // p1 = next input
	OpOut                          // output p1
	OpJumpTrue                     // if p1 != 0 jump to p2
	OpJumpFalse                    // if p1 == 0 jump to p2
	OpLess                         // p3 = p1 < p2
	OpEqual                        // p3 = p1 == p2
	OpAdjustBase                   // rb += p1
	OpHalt       Opcode = 99
)

var opcodes = [...]struct {
	name  string
	arity int
}{
	OpAdd:        {"add", 3},
	OpMul:        {"mul", 3},
	OpIn:         {"in", 1},
	OpOut:        {"out", 1},
	OpJumpTrue:   {"jt", 2},
	OpJumpFalse:  {"jf", 2},
	OpLess:       {"lt", 3},
	OpEqual:      {"eq", 3},
	OpAdjustBase: {"arb", 1},
}

// Valid returns true if op is a known opcode.
func (op Opcode) Valid() bool {
	return op == OpHalt || op > 0 && int(op) < len(opcodes)
}

// String returns the assembler mnemonic of the opcode.
func (op Opcode) String() string {
	switch {
	case op == OpHalt:
		return "hlt"
	case op.Valid():
		return opcodes[op].name
	}
	return "op(" + strconv.Itoa(int(op)) + ")"
}

// Arity returns the number of parameters of the opcode.
func (op Opcode) Arity() int {
	if op == OpHalt || !op.Valid() {
		return 0
	}
	return opcodes[op].arity
}

// Writes returns the index (starting at 0) of the parameter the instruction
// writes to, or -1 if it does not write to memory.
func (op Opcode) Writes() int {
	switch op {
	case OpAdd, OpMul, OpLess, OpEqual:
		return 2
	case OpIn:
		return 0
	}
	return -1
}

// Mode is a parameter addressing mode.
type Mode int

// Parameter addressing modes.
const (
	ModePosition  Mode = iota // parameter is an address
	ModeImmediate             // parameter is the value
	ModeRelative              // parameter is an address relative to the relative base
)

func (m Mode) String() string {
	switch m {
	case ModePosition:
		return "position"
	case ModeImmediate:
		return "immediate"
	case ModeRelative:
		return "relative"
	}
	return "mode(" + strconv.Itoa(int(m)) + ")"
}

// MaxParams is the maximum number of parameters of an instruction.
const MaxParams = 3

// Decode splits an instruction word into its opcode and parameter addressing
// modes. Mode digits beyond the opcode arity are ignored.
func Decode(w Cell) (op Opcode, modes [MaxParams]Mode, err error) {
	if w < 0 {
		return 0, modes, errors.Wrapf(ErrMalformedProgram, "negative instruction %d", w)
	}
	op = Opcode(w % 100)
	if !op.Valid() {
		return op, modes, errors.Wrapf(ErrMalformedProgram, "unknown opcode %d in instruction %d", op, w)
	}
	m := w / 100
	for n := 0; n < op.Arity(); n++ {
		modes[n] = Mode(m % 10)
		if modes[n] > ModeRelative {
			return op, modes, errors.Wrapf(ErrMalformedProgram, "unknown addressing mode %d for parameter %d in instruction %d", modes[n], n+1, w)
		}
		m /= 10
	}
	return op, modes, nil
}

// Encode builds an instruction word from an opcode and its parameter modes.
func Encode(op Opcode, modes ...Mode) Cell {
	w := Cell(op)
	f := Cell(100)
	for _, m := range modes {
		w += Cell(m) * f
		f *= 10
	}
	return w
}
