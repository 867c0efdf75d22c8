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

import "github.com/pkg/errors"

// control is the signal returned by instruction handlers to the execution loop.
type control int

const (
	next  control = iota // continue at the returned address
	block                // wait for input, do not move
	halt                 // stop execution
)

// param returns the address of the n-th (1-based) parameter of the current
// instruction.
func (i *Instance) param(n int) Cell {
	return i.pc + Cell(n)
}

// load returns the value of the n-th parameter of the current instruction.
func (i *Instance) load(n int, mode Mode) (Cell, error) {
	v, err := i.mem.Load(i.param(n))
	if err != nil {
		return 0, err
	}
	switch mode {
	case ModePosition:
		return i.mem.Load(v)
	case ModeImmediate:
		return v, nil
	case ModeRelative:
		return i.mem.Load(i.rb + v)
	}
	return 0, errors.Wrapf(ErrMalformedProgram, "unknown addressing mode %d", mode)
}

// store writes v to the address designated by the n-th parameter of the
// current instruction.
func (i *Instance) store(v Cell, n int, mode Mode) error {
	addr, err := i.mem.Load(i.param(n))
	if err != nil {
		return err
	}
	switch mode {
	case ModePosition:
	case ModeRelative:
		addr += i.rb
	case ModeImmediate:
		return errors.Wrapf(ErrMalformedProgram, "write to immediate parameter %d", n)
	default:
		return errors.Wrapf(ErrMalformedProgram, "unknown addressing mode %d", mode)
	}
	return i.mem.Store(addr, v)
}

// load2 loads the first two parameters of the current instruction.
func (i *Instance) load2(modes *[MaxParams]Mode) (a, b Cell, err error) {
	if a, err = i.load(1, modes[0]); err != nil {
		return 0, 0, err
	}
	b, err = i.load(2, modes[1])
	return a, b, err
}

func bool2Cell(b bool) Cell {
	if b {
		return 1
	}
	return 0
}

func (i *Instance) opArith(op Opcode, modes *[MaxParams]Mode) (control, Cell, error) {
	a, b, err := i.load2(modes)
	if err != nil {
		return halt, 0, err
	}
	var v Cell
	switch op {
	case OpAdd:
		v = a + b
	case OpMul:
		v = a * b
	case OpLess:
		v = bool2Cell(a < b)
	case OpEqual:
		v = bool2Cell(a == b)
	}
	return next, i.pc + 4, i.store(v, 3, modes[2])
}

func (i *Instance) opIn(modes *[MaxParams]Mode) (control, Cell, error) {
	if len(i.in) == 0 {
		return block, i.pc, nil
	}
	if err := i.store(i.in[0], 1, modes[0]); err != nil {
		return halt, 0, err
	}
	i.in = i.in[1:]
	return next, i.pc + 2, nil
}

func (i *Instance) opOut(modes *[MaxParams]Mode, out *[]Cell) (control, Cell, error) {
	v, err := i.load(1, modes[0])
	if err != nil {
		return halt, 0, err
	}
	*out = append(*out, v)
	return next, i.pc + 2, nil
}

func (i *Instance) opJump(op Opcode, modes *[MaxParams]Mode) (control, Cell, error) {
	c, addr, err := i.load2(modes)
	if err != nil {
		return halt, 0, err
	}
	if (c != 0) == (op == OpJumpTrue) {
		// in fixed mode, leaving the program bounds is a normal halt
		if addr < 0 && !i.mem.fixed {
			return halt, 0, errors.Wrapf(ErrMalformedProgram, "jump to negative address %d", addr)
		}
		return next, addr, nil
	}
	return next, i.pc + 3, nil
}

func (i *Instance) opAdjustBase(modes *[MaxParams]Mode) (control, Cell, error) {
	v, err := i.load(1, modes[0])
	if err != nil {
		return halt, 0, err
	}
	i.rb += v
	return next, i.pc + 2, nil
}

// step decodes and executes the instruction at the current PC. It returns the
// control signal and the address of the next instruction.
func (i *Instance) step(out *[]Cell) (control, Cell, error) {
	w, err := i.mem.Load(i.pc)
	if err != nil {
		return halt, 0, err
	}
	op, modes, err := Decode(w)
	if err != nil {
		return halt, 0, err
	}
	if i.trace {
		i.log.Tracef("@%d %v %v rb=%d", i.pc, op, modes[:op.Arity()], i.rb)
	}
	switch op {
	case OpAdd, OpMul, OpLess, OpEqual:
		return i.opArith(op, &modes)
	case OpIn:
		return i.opIn(&modes)
	case OpOut:
		return i.opOut(&modes, out)
	case OpJumpTrue, OpJumpFalse:
		return i.opJump(op, &modes)
	case OpAdjustBase:
		return i.opAdjustBase(&modes)
	case OpHalt:
		return halt, haltedPC, nil
	}
	return halt, 0, errors.Wrapf(ErrMalformedProgram, "unknown opcode %d", op)
}

// inBounds reports whether the PC is within the instruction pointer bound. The
// bound is only enforced in fixed memory mode.
func (i *Instance) inBounds() bool {
	return !i.mem.fixed || i.pc >= 0 && i.pc < Cell(i.mem.bound)
}

// Execute appends the given values to the input queue and runs the program
// until it either halts or blocks on an input instruction with an empty input
// queue. It returns the values output during this call.
//
// When blocked, the PC still points to the input instruction, so that the
// next call to Execute with more input resumes execution right where it
// stopped. Calling Execute on a halted instance is a no-op that returns the
// error that caused it to halt, if any.
//
// If an error occurs, the instance is halted, the PC will point to the
// instruction that triggered the error, and the values output by the
// instructions that completed before it are returned along with the error.
func (i *Instance) Execute(input ...Cell) (out []Cell, err error) {
	i.in = append(i.in, input...)
	if i.status == Halted {
		return nil, i.err
	}
	i.status = Running
	defer func() {
		if e := recover(); e != nil {
			switch e := e.(type) {
			case error:
				err = errors.Wrapf(e, "recovered error @pc=%d", i.pc)
			default:
				panic(e)
			}
		}
		if err != nil {
			i.status, i.err = Halted, err
			i.log.Debugf("halted on error @pc=%d: %v", i.pc, err)
		}
	}()
	for i.status == Running {
		if !i.inBounds() {
			i.log.Debugf("pc %d left program bounds, halting", i.pc)
			i.status, i.pc = Halted, haltedPC
			break
		}
		ctl, pc, err := i.step(&out)
		if err != nil {
			return out, errors.Wrapf(err, "@pc=%d", i.pc)
		}
		switch ctl {
		case next:
			i.pc = pc
			i.insCount++
		case block:
			i.status = Blocked
			i.log.Debugf("blocked on input @pc=%d", i.pc)
		case halt:
			i.status, i.pc = Halted, pc
			i.insCount++
			i.log.Debugf("halted after %d instructions", i.insCount)
		}
	}
	return out, nil
}
