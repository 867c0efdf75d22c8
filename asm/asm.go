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

package asm

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"text/scanner"

	"github.com/db47h/intcode/internal/iox"
	"github.com/db47h/intcode/vm"
)

var mnemonics = map[string]vm.Opcode{
	"jnz":  vm.OpJumpTrue,
	"jz":   vm.OpJumpFalse,
	"rb":   vm.OpAdjustBase,
	"halt": vm.OpHalt,
}

func init() {
	for op := vm.OpAdd; op <= vm.OpAdjustBase; op++ {
		mnemonics[op.String()] = op
	}
	mnemonics[vm.OpHalt.String()] = vm.OpHalt
}

// Error is an assembler error at a given position in the source code.
type Error struct {
	Pos scanner.Position
	Msg string
}

func (e *Error) Error() string {
	return e.Pos.String() + ": " + e.Msg
}

// ErrAsm is the error type returned by Assemble. It holds the list of errors
// found in the source code, in order of appearance.
type ErrAsm []Error

func (e ErrAsm) Error() string {
	var b bytes.Buffer
	for n := range e {
		if n > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(e[n].Error())
	}
	return b.String()
}

// Assemble compiles assembly read from the supplied io.Reader and returns the
// resulting program and error if any.
//
// Then name parameter is used only in error messages to name the source of the
// error. If the io.Reader is a file, name should be the file name.
//
// The returned error, if not nil, can safely be cast to an ErrAsm value that
// will contain up to 10 entries.
func Assemble(name string, r io.Reader) (prog []vm.Cell, err error) {
	p := newParser()
	prog, err = p.Parse(name, r)
	if err != nil {
		return nil, err
	}
	return prog, nil
}

// encodable returns true if the instruction at mem[pc] can be assembled back
// to the exact same cells.
func encodable(mem []vm.Cell, pc int) (vm.Opcode, [vm.MaxParams]vm.Mode, bool) {
	op, modes, err := vm.Decode(mem[pc])
	if err != nil {
		return op, modes, false
	}
	n := op.Arity()
	if pc+n >= len(mem) || vm.Encode(op, modes[:n]...) != mem[pc] {
		return op, modes, false
	}
	if w := op.Writes(); w >= 0 && modes[w] == vm.ModeImmediate {
		return op, modes, false
	}
	return op, modes, true
}

// Disassemble writes a disassembly of the cells in the given slice at position
// pc to the specified io.Writer and returns the position of the next
// instruction and any write error. Cells that do not hold a valid instruction
// are written as a .dat directive.
func Disassemble(mem []vm.Cell, pc int, w io.Writer) (next int, err error) {
	ew := iox.NewErrWriter(w)
	op, modes, ok := encodable(mem, pc)
	if !ok {
		io.WriteString(ew, ".dat ")
		io.WriteString(ew, strconv.FormatInt(int64(mem[pc]), 10))
		return pc + 1, ew.Err
	}
	io.WriteString(ew, op.String())
	for n := 0; n < op.Arity(); n++ {
		ew.Write([]byte{' '})
		switch modes[n] {
		case vm.ModeImmediate:
			ew.Write([]byte{'#'})
		case vm.ModeRelative:
			ew.Write([]byte{'@'})
		}
		io.WriteString(ew, strconv.FormatInt(int64(mem[pc+1+n]), 10))
	}
	return pc + 1 + op.Arity(), ew.Err
}

// DisassembleAll writes a disassembly of all cells in the given slice to
// the specified io.Writer. The base argument specifies the real address of the
// first cell (mem[0]). Addresses are written as comments, so that the output
// can be fed back to Assemble. It will return any write error.
func DisassembleAll(mem []vm.Cell, base int, w io.Writer) error {
	ew := iox.NewErrWriter(w)
	for pc := 0; pc < len(mem); {
		fmt.Fprintf(ew, "( % 6d )\t", base+pc)
		pc, _ = Disassemble(mem, pc, ew)
		ew.Write([]byte{'\n'})
		if ew.Err != nil {
			return ew.Err
		}
	}
	return nil
}
