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
	"fmt"
	"io"
	"os"
	"time"

	"github.com/db47h/intcode/grid"
	"github.com/db47h/intcode/network"
	"github.com/db47h/intcode/vm"
)

func flush(w io.Writer) {
	if f, ok := w.(interface{ Flush() error }); ok {
		f.Flush()
	}
}

// runProgram runs a program to completion with input from the given values,
// or from stdin if input is nil. Outputs are written one per line to w.
func runProgram(w io.Writer, prog []vm.Cell, input []vm.Cell, opts []vm.Option) (*vm.Instance, error) {
	i, err := vm.New(prog, opts...)
	if err != nil {
		return nil, err
	}
	var in vm.Reader
	if input != nil {
		in = vm.Values(input...)
	} else {
		var prompt io.Writer
		if isTerminal(os.Stdin.Fd()) {
			prompt = w
		}
		in = vm.NewLineReader(os.Stdin, prompt, "> ")
	}
	err = vm.Drive(i, countingReader(in), func(v vm.Cell) error {
		outputs.Add()
		_, err := fmt.Fprintln(w, v)
		return err
	})
	account(i)
	mainLog.Debugf("%v after %d instructions, result: %d", i.Status(), i.InstructionCount(), i.Result())
	return i, err
}

// runAmp runs an amplifier chain and prints the output signal of the last
// stage. With search set, it prints the highest signal and the corresponding
// phase settings.
func runAmp(w io.Writer, prog, phases []vm.Cell, signal vm.Cell, feedback, search bool, opts []vm.Option) error {
	if search {
		best, bestPhases, err := network.MaxSignal(prog, phases, feedback, opts...)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%d\t", best)
		if err = vm.Format(w, bestPhases); err != nil {
			return err
		}
		_, err = fmt.Fprintln(w)
		return err
	}
	n, err := network.New(prog, phases, feedback, opts...)
	if err != nil {
		return err
	}
	n.SetLogger(netLog)
	out, err := n.Run(signal)
	for _, i := range n.Stages() {
		account(i)
	}
	netTurns.Set(int64(n.Turns()))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, out)
	return err
}

// runPaint runs a hull painting robot and renders the painted hull.
func runPaint(w io.Writer, prog []vm.Cell, color vm.Cell, opts []vm.Option, trace bool, delay time.Duration) (*vm.Instance, error) {
	i, err := vm.New(prog, opts...)
	if err != nil {
		return nil, err
	}
	r, err := grid.Paint(i, color, func(r *grid.Robot) {
		outputs.AddN(2)
		if !trace {
			return
		}
		fmt.Fprintln(w)
		r.Grid.Render(w, ".#", &r.Pos, r.Dir)
		flush(w)
		time.Sleep(delay)
	})
	account(i)
	if err != nil {
		return i, err
	}
	mainLog.Infof("%d panels painted", len(r.Grid))
	return i, r.Grid.Render(w, ".#", nil, grid.Up)
}

// runArcade runs an arcade cabinet and prints the number of blocks left on
// screen and the final score.
func runArcade(w io.Writer, prog []vm.Cell, opts []vm.Option, trace bool, delay time.Duration) (*vm.Instance, error) {
	i, err := vm.New(prog, opts...)
	if err != nil {
		return nil, err
	}
	screen, score, err := grid.Arcade(i, func(g grid.Grid, score vm.Cell) {
		suspends.Add()
		if !trace {
			return
		}
		fmt.Fprintf(w, "\nscore: %d\n", score)
		g.Render(w, grid.ArcadePalette, nil, grid.Up)
		flush(w)
		time.Sleep(delay)
	})
	account(i)
	if err != nil {
		return i, err
	}
	_, err = fmt.Fprintf(w, "blocks: %d\nscore: %d\n", screen.Count(grid.TileBlock), score)
	return i, err
}
