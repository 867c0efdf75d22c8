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

	"github.com/pkg/errors"
)

// Reader is the interface that wraps the ReadCell method. A Reader supplies
// input values to Drive whenever the VM blocks on input.
//
// ReadCell returns io.EOF when no more values are available.
type Reader interface {
	ReadCell() (Cell, error)
}

// ReaderFunc is an adapter to allow the use of ordinary functions as Readers.
type ReaderFunc func() (Cell, error)

// ReadCell calls f().
func (f ReaderFunc) ReadCell() (Cell, error) { return f() }

// Drive runs the instance i until it halts. Each time i blocks on input, one
// value is read from in and fed to it. Every value output by the VM is passed
// to the out function, which may be nil.
//
// If in returns io.EOF (or is nil) while the instance is blocked, Drive returns
// an error with cause ErrInputExhausted. The instance is left in the Blocked
// state and can be resumed by the caller.
func Drive(i *Instance, in Reader, out func(Cell) error) error {
	var feed []Cell
	for {
		o, err := i.Execute(feed...)
		feed = feed[:0]
		if out != nil {
			for _, v := range o {
				if e := out(v); e != nil {
					return errors.Wrap(e, "output failed")
				}
			}
		}
		if err != nil {
			return err
		}
		if i.Status() == Halted {
			return nil
		}
		if in == nil {
			return errors.Wrapf(ErrInputExhausted, "no input source @pc=%d", i.PC())
		}
		v, err := in.ReadCell()
		if err != nil {
			if errors.Cause(err) == io.EOF {
				return errors.Wrapf(ErrInputExhausted, "@pc=%d", i.PC())
			}
			return errors.Wrap(err, "input failed")
		}
		feed = append(feed, v)
	}
}
