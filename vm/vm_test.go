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

package vm_test

import (
	"testing"

	"github.com/btcsuite/btclog"
	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
)

func TestVM_errors(t *testing.T) {
	data := [...]struct {
		name string
		code C
		opts []vm.Option
		pc   int
	}{
		{"unknown-opcode", C{1101, 1, 1, 5, 42, 0}, nil, 4},
		{"zero-opcode", C{0}, nil, 0},
		{"negative-instruction", C{-1}, nil, 0},
		{"immediate-write", C{11101, 1, 1, 3, 99}, nil, 0},
		{"immediate-input", C{103, 0, 99}, []vm.Option{vm.Input(1)}, 0},
		{"unknown-mode", C{301, 0, 0, 0, 99}, nil, 0},
		{"negative-read", C{1, -1, 0, 0, 99}, nil, 0},
		{"negative-write", C{1101, 1, 1, -4, 99}, nil, 0},
		{"negative-relative", C{109, -5, 204, 0, 99}, nil, 2},
		{"negative-jump", C{1105, 1, -3}, nil, 0},
		{"negative-jump-false", C{104, 7, 1106, 0, -7}, nil, 2},
		{"fixed-write", C{1101, 1, 1, 5, 99}, []vm.Option{vm.Fixed()}, 0},
		{"fixed-read", C{4, 3, 99}, []vm.Option{vm.Fixed()}, 0},
		{"fall-off-growable", C{1101, 1, 1, 0}, nil, 4},
	}
	for _, d := range data {
		i := setup(t, d.code, d.opts...)
		_, err := i.Execute()
		if errors.Cause(err) != vm.ErrMalformedProgram {
			t.Errorf("%s: expected malformed program error, got %v", d.name, err)
			continue
		}
		if i.Status() != vm.Halted {
			t.Errorf("%s: expected halted status, got %v", d.name, i.Status())
		}
		assertEqualI(t, d.name+" pc", d.pc, int(i.PC()))
		// errors are sticky
		if _, err2 := i.Execute(1); err2 != err {
			t.Errorf("%s: expected same error on next Execute, got %v", d.name, err2)
		}
		if i.Err() != err {
			t.Errorf("%s: Err() returned %v", d.name, i.Err())
		}
	}
}

func TestVM_errorOutput(t *testing.T) {
	// outputs produced before the faulting instruction are returned
	i := setup(t, C{104, 1, 104, 2, 42})
	out, err := i.Execute()
	if errors.Cause(err) != vm.ErrMalformedProgram {
		t.Fatalf("unexpected error %v", err)
	}
	assertCells(t, "partial output", i, C{1, 2}, out)
	assertEqualI(t, "instruction count", 2, int(i.InstructionCount()))
}

func TestVM_errorMessage(t *testing.T) {
	i := setup(t, C{1101, 1, 1, 5, 42, 0})
	_, err := i.Execute()
	expected := "@pc=4: unknown opcode 42 in instruction 42: malformed program"
	if err == nil || err.Error() != expected {
		t.Errorf("Expected: %s\nGot: %v", expected, err)
	}
}

func TestVM_jumpErrorMessage(t *testing.T) {
	i := setup(t, C{1105, 1, -5})
	_, err := i.Execute()
	expected := "@pc=0: jump to negative address -5: malformed program"
	if err == nil || err.Error() != expected {
		t.Errorf("Expected: %s\nGot: %v", expected, err)
	}
	assertEqualI(t, "pc", 0, int(i.PC()))
}

func TestVM_fixed(t *testing.T) {
	// without a halt instruction, a fixed size program stops when the pc leaves
	// the program bounds
	i := setup(t, C{1, 0, 0, 0}, vm.Fixed())
	if _, err := i.Execute(); err != nil {
		t.Fatalf("%+v", err)
	}
	if i.Status() != vm.Halted {
		t.Fatalf("expected halted status, got %v", i.Status())
	}
	assertEqualI(t, "result", 2, int(i.Result()))

	// jumping out of bounds halts as well
	i = setup(t, C{1105, 1, -1}, vm.Fixed())
	if _, err := i.Execute(); err != nil {
		t.Fatalf("%+v", err)
	}
	if i.Status() != vm.Halted || i.PC() != -1 {
		t.Fatalf("expected halted status with pc -1, got %v, pc %d", i.Status(), i.PC())
	}

	// relative mode is still supported within bounds
	i = setup(t, C{109, 6, 204, -1, 99, 42}, vm.Fixed())
	out, err := i.Execute()
	if err != nil {
		t.Fatalf("%+v", err)
	}
	assertCells(t, "fixed relative", i, C{42}, out)

	if _, err = i.Peek(6); errors.Cause(err) != vm.ErrMalformedProgram {
		t.Errorf("Peek out of bounds: unexpected error %v", err)
	}
	if err = setup(t, C{99}, vm.Fixed()).Patch(1, 0); errors.Cause(err) != vm.ErrMalformedProgram {
		t.Errorf("Patch out of bounds: unexpected error %v", err)
	}
}

func TestVM_patch(t *testing.T) {
	prog := C{1, 0, 0, 0, 99, 5, 7}
	i := setup(t, prog, vm.Patch(1, 5), vm.Patch(2, 6))
	if _, err := i.Execute(); err != nil {
		t.Fatalf("%+v", err)
	}
	assertEqualI(t, "result", 12, int(i.Result()))
	// the source program must not be modified
	assertEqualI(t, "source", 1, int(prog[0]))

	if _, err := vm.New(prog, vm.Patch(-1, 0)); errors.Cause(err) != vm.ErrMalformedProgram {
		t.Errorf("unexpected error %v", err)
	}

	// patching beyond the program grows memory
	i = setup(t, C{4, 10, 99})
	if err := i.Patch(10, 1234); err != nil {
		t.Fatalf("%+v", err)
	}
	out, _ := i.Execute()
	assertCells(t, "patch", i, C{1234}, out)
	assertEqualI(t, "memory size", 11, len(i.Memory()))
}

func TestVM_peek(t *testing.T) {
	i := setup(t, C{99, 1, 2})
	for addr, expected := range (C{99, 1, 2, 0, 0}) {
		v, err := i.Peek(vm.Cell(addr))
		if err != nil {
			t.Fatalf("%+v", err)
		}
		assertEqualI(t, "peek", int(expected), int(v))
	}
	if _, err := i.Peek(-1); errors.Cause(err) != vm.ErrMalformedProgram {
		t.Errorf("unexpected error %v", err)
	}
	assertEqualI(t, "memory size", 3, len(i.Memory()))
}

func TestVM_relativeBase(t *testing.T) {
	i := setup(t, C{109, 19, 99})
	i.SetOptions()
	if _, err := i.Execute(); err != nil {
		t.Fatalf("%+v", err)
	}
	assertEqualI(t, "relative base", 19, int(i.RelativeBase()))

	i = setup(t, C{109, 2000, 109, 19, 204, -34, 99})
	i.Patch(1985, 1234)
	out, err := i.Execute()
	if err != nil {
		t.Fatalf("%+v", err)
	}
	assertEqualI(t, "relative base", 2019, int(i.RelativeBase()))
	assertCells(t, "relative output", i, C{1234}, out)
}

func TestVM_logger(t *testing.T) {
	var b logBuffer
	l := btclog.NewBackend(&b).Logger("TEST")
	l.SetLevel(btclog.LevelTrace)
	i := setup(t, C{3, 0, 99}, vm.Logger(l))
	i.Execute()
	i.Execute(1)
	if b.lines < 4 {
		t.Errorf("expected at least 4 log lines, got %d", b.lines)
	}
	if err := i.SetOptions(vm.Logger(nil)); err != nil {
		t.Fatal(err)
	}
}

type logBuffer struct {
	lines int
}

func (b *logBuffer) Write(p []byte) (int, error) {
	for _, c := range p {
		if c == '\n' {
			b.lines++
		}
	}
	return len(p), nil
}

func TestOpcode(t *testing.T) {
	data := [...]struct {
		w     vm.Cell
		op    vm.Opcode
		modes [vm.MaxParams]vm.Mode
		name  string
	}{
		{1, vm.OpAdd, [3]vm.Mode{}, "add"},
		{1002, vm.OpMul, [3]vm.Mode{0, 1, 0}, "mul"},
		{21107, vm.OpLess, [3]vm.Mode{1, 1, 2}, "lt"},
		{203, vm.OpIn, [3]vm.Mode{2}, "in"},
		{104, vm.OpOut, [3]vm.Mode{1}, "out"},
		{1105, vm.OpJumpTrue, [3]vm.Mode{1, 1}, "jt"},
		{6, vm.OpJumpFalse, [3]vm.Mode{}, "jf"},
		{22208, vm.OpEqual, [3]vm.Mode{2, 2, 2}, "eq"},
		{209, vm.OpAdjustBase, [3]vm.Mode{2}, "arb"},
		{99, vm.OpHalt, [3]vm.Mode{}, "hlt"},
		{11199, vm.OpHalt, [3]vm.Mode{}, "hlt"}, // extra mode digits are ignored
	}
	for _, d := range data {
		op, modes, err := vm.Decode(d.w)
		if err != nil {
			t.Errorf("%d: %v", d.w, err)
			continue
		}
		if op != d.op || modes != d.modes || op.String() != d.name {
			t.Errorf("%d: got %v %v, expected %v %v", d.w, op, modes, d.op, d.modes)
		}
		if d.w < 10000 || op != vm.OpHalt {
			assertEqualI(t, "encode", int(d.w), int(vm.Encode(op, d.modes[:op.Arity()]...)))
		}
	}
	for _, w := range (C{0, 10, 98, 100, -2, 301, 304}) {
		if _, _, err := vm.Decode(w); errors.Cause(err) != vm.ErrMalformedProgram {
			t.Errorf("%d: expected malformed program error, got %v", w, err)
		}
	}
	assertEqualI(t, "arity", 3, vm.OpEqual.Arity())
	assertEqualI(t, "arity", 0, vm.OpHalt.Arity())
	assertEqualI(t, "writes", 0, vm.OpIn.Writes())
	assertEqualI(t, "writes", -1, vm.OpOut.Writes())
	if vm.Opcode(42).String() != "op(42)" || vm.Mode(7).String() != "mode(7)" {
		t.Error("unexpected string for invalid opcode or mode")
	}
	if vm.Blocked.String() != "blocked" || vm.Status(9).String() != "unknown" {
		t.Error("unexpected status string")
	}
}
