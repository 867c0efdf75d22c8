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

// Package network runs several Intcode VM instances cooperatively, relaying
// the output of each instance to the input of the next one.
//
// All instances run on the caller's goroutine: each one is given a turn with
// vm.Instance.Execute until it blocks on input or halts, then its output is
// handed over to the next stage. There is no concurrency involved.
package network

import (
	"github.com/btcsuite/btclog"
	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
)

// ErrDeadlock is returned by Run when no stage can make progress: every
// instance that has not halted is blocked on input and no value is in flight.
var ErrDeadlock = errors.New("deadlock")

// Network is a chain of VM instances. In a pipeline, values flow once from the
// first stage to the last. In a feedback loop, the output of the last stage is
// fed back into the first one until all stages have halted.
type Network struct {
	stages   []*vm.Instance
	feedback bool
	log      btclog.Logger
	turns    int
}

// New creates a network of len(phases) instances of the given program. Each
// instance receives its phase setting as first input. The options are applied
// to every instance.
func New(program []vm.Cell, phases []vm.Cell, feedback bool, opts ...vm.Option) (*Network, error) {
	if len(phases) == 0 {
		return nil, errors.New("empty phase sequence")
	}
	n := &Network{
		stages:   make([]*vm.Instance, len(phases)),
		feedback: feedback,
		log:      btclog.Disabled,
	}
	for k, p := range phases {
		i, err := vm.New(program, append(opts[:len(opts):len(opts)], vm.Input(p))...)
		if err != nil {
			return nil, errors.Wrapf(err, "stage %d", k)
		}
		n.stages[k] = i
	}
	return n, nil
}

// SetLogger sets the logger used to trace turns. Turns are logged at the Debug
// level.
func (n *Network) SetLogger(l btclog.Logger) {
	if l == nil {
		l = btclog.Disabled
	}
	n.log = l
}

// Stages returns the network instances.
func (n *Network) Stages() []*vm.Instance {
	return n.stages
}

// Turns returns the number of turns given to instances during the last call
// to Run.
func (n *Network) Turns() int {
	return n.turns
}

// Halted returns true if all stages have halted.
func (n *Network) Halted() bool {
	for _, i := range n.stages {
		if i.Status() != vm.Halted {
			return false
		}
	}
	return true
}

// Run feeds signal to the first stage and runs the network until all stages
// have halted (feedback loop) or until the signal has gone through the last
// stage (pipeline). It returns the last value output by the last stage.
func (n *Network) Run(signal vm.Cell) (vm.Cell, error) {
	var (
		last     vm.Cell
		seen     bool
		carry    = []vm.Cell{signal}
		progress bool
	)
	n.turns = 0
	for {
		progress = false
		for k, i := range n.stages {
			if i.Status() == vm.Halted {
				if len(carry) > 0 {
					n.log.Debugf("stage %d halted, dropping %d values", k, len(carry))
				}
				carry = nil
				continue
			}
			before := i.InstructionCount()
			out, err := i.Execute(carry...)
			n.turns++
			if err != nil {
				return last, errors.Wrapf(err, "stage %d", k)
			}
			if i.InstructionCount() != before || len(carry) > 0 {
				progress = true
			}
			n.log.Debugf("turn %d: stage %d in=%v out=%v status=%v", n.turns, k, carry, out, i.Status())
			carry = out
		}
		if len(carry) > 0 {
			last, seen = carry[len(carry)-1], true
		}
		if !n.feedback || n.Halted() {
			break
		}
		if !progress && len(carry) == 0 {
			return last, errors.Wrapf(ErrDeadlock, "after %d turns", n.turns)
		}
	}
	if !seen {
		return 0, errors.New("no output from last stage")
	}
	return last, nil
}

// MaxSignal tries all permutations of the given phase settings and returns the
// highest signal output by the network, along with the phase sequence that
// produced it. Each permutation runs on a fresh network, starting with a
// signal of 0.
func MaxSignal(program []vm.Cell, phases []vm.Cell, feedback bool, opts ...vm.Option) (best vm.Cell, bestPhases []vm.Cell, err error) {
	err = Permutations(phases, func(p []vm.Cell) error {
		n, err := New(program, p, feedback, opts...)
		if err != nil {
			return err
		}
		s, err := n.Run(0)
		if err != nil {
			return errors.Wrapf(err, "phases %v", p)
		}
		if bestPhases == nil || s > best {
			best, bestPhases = s, p
		}
		return nil
	})
	if err != nil {
		return 0, nil, err
	}
	return best, bestPhases, nil
}
