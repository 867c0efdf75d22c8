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
	"io"

	"github.com/btcsuite/btclog"
	"github.com/pkg/errors"
)

// Cell is the raw type stored in a memory location.
type Cell int64

// Status is the execution status of an Instance.
type Status int

// Instance status values.
const (
	Running Status = iota // ready to execute
	Blocked               // waiting for input on an input instruction
	Halted                // halted, either normally or after an error
)

var statusNames = [...]string{"running", "blocked", "halted"}

func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return "unknown"
	}
	return statusNames[s]
}

// haltedPC is the value of the program counter once an instance has halted.
const haltedPC = -1

// Instance represents an Intcode VM instance.
type Instance struct {
	mem      Memory
	pc       Cell
	rb       Cell
	in       []Cell
	status   Status
	err      error
	insCount int64
	log      btclog.Logger
	trace    bool
}

// Option interface
type Option func(*Instance) error

// Input appends the given values to the input queue.
func Input(v ...Cell) Option {
	return func(i *Instance) error {
		i.in = append(i.in, v...)
		return nil
	}
}

// Patch overwrites the memory cell at address addr with the value v before
// execution starts.
func Patch(addr, v Cell) Option {
	return func(i *Instance) error { return i.Patch(addr, v) }
}

// Fixed switches the memory to fixed size mode: memory will not grow past the
// loaded program size and any attempt to access memory outside of the program
// will fail with ErrMalformedProgram. In this mode, execution also stops as
// soon as the program counter leaves the program bounds.
func Fixed() Option {
	return func(i *Instance) error {
		i.mem.fixed = true
		return nil
	}
}

// Logger sets the logger used by the instance. Instructions are traced at the
// Trace level, suspension and halting at the Debug level. The default is
// btclog.Disabled.
func Logger(l btclog.Logger) Option {
	return func(i *Instance) error {
		if l == nil {
			l = btclog.Disabled
		}
		i.log = l
		i.trace = l.Level() <= btclog.LevelTrace
		return nil
	}
}

// SetOptions sets the provided options.
func (i *Instance) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return err
		}
	}
	return nil
}

// New creates a new Intcode Virtual Machine instance.
//
// The program is copied into the instance memory, so that several instances
// can be created from the same program. Options will be set by calling
// SetOptions.
func New(program []Cell, opts ...Option) (*Instance, error) {
	i := &Instance{
		mem: newMemory(program),
		log: btclog.Disabled,
	}
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	return i, nil
}

// Patch overwrites the memory cell at address addr with the value v. This is
// a plain memory write, usually done before the first call to Execute in
// order to set the initial parameters of a program.
func (i *Instance) Patch(addr, v Cell) error {
	return errors.Wrap(i.mem.Store(addr, v), "patch failed")
}

// Status returns the current execution status.
func (i *Instance) Status() Status {
	return i.status
}

// Err returns the error that caused the instance to halt, if any.
func (i *Instance) Err() error {
	return i.err
}

// PC returns the program counter. Its value is -1 once the instance has halted
// normally.
func (i *Instance) PC() Cell {
	return i.pc
}

// RelativeBase returns the current value of the relative base register.
func (i *Instance) RelativeBase() Cell {
	return i.rb
}

// Pending returns the number of values in the input queue.
func (i *Instance) Pending() int {
	return len(i.in)
}

// InstructionCount returns the number of instructions executed so far.
func (i *Instance) InstructionCount() int64 {
	return i.insCount
}

// Result returns the value of the memory cell at address 0.
func (i *Instance) Result() Cell {
	v, _ := i.mem.Load(0)
	return v
}

// Peek returns the value of the memory cell at address addr.
func (i *Instance) Peek(addr Cell) (Cell, error) {
	return i.mem.Load(addr)
}

// Memory returns a copy of the VM memory, from address 0 to the highest
// address written so far that is below the arena limit.
func (i *Instance) Memory() []Cell {
	return i.mem.Cells()
}

// Dump writes the VM memory to w in the comma separated program format.
func (i *Instance) Dump(w io.Writer) error {
	return Format(w, i.mem.Cells())
}
