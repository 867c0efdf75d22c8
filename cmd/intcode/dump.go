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

package main

import (
	"io"

	"github.com/db47h/intcode/internal/iox"
	"github.com/db47h/intcode/vm"
)

// dumpVM dumps the memory of the given instance to the specified io.Writer,
// in the program file format so that it can be loaded back. Registers are
// logged.
func dumpVM(i *vm.Instance, w io.Writer) error {
	mainLog.Infof("status: %v, pc: %d, rb: %d, pending input: %d", i.Status(), i.PC(), i.RelativeBase(), i.Pending())
	ew := iox.NewErrWriter(w)
	i.Dump(ew)
	ew.Write([]byte{'\n'})
	return ew.Err
}
