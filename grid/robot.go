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

package grid

import (
	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
)

// Robot is a hull painting robot controlled by an Intcode program.
type Robot struct {
	Grid Grid      // painted panels
	Pos  Point     // current position
	Dir  Direction // current heading
}

// Paint runs a hull painting robot program to completion. The robot starts at
// the origin facing up, on a panel painted with the start color.
//
// Each time the program blocks, it is fed the color of the panel under the
// robot. The program answers with pairs of values: the color to paint the
// current panel and the direction to turn, 0 for left and 1 for right, after
// which the robot moves forward by one panel.
//
// If step is not nil, it is called after each move.
func Paint(i *vm.Instance, start vm.Cell, step func(*Robot)) (*Robot, error) {
	r := &Robot{Grid: Grid{{}: start}}
	var pending []vm.Cell
	for i.Status() != vm.Halted {
		out, err := i.Execute(r.Grid[r.Pos])
		if err != nil {
			return r, err
		}
		pending = append(pending, out...)
		for ; len(pending) >= 2; pending = pending[2:] {
			r.Grid[r.Pos] = pending[0]
			switch pending[1] {
			case 0:
				r.Dir = r.Dir.TurnLeft()
			case 1:
				r.Dir = r.Dir.TurnRight()
			default:
				return r, errors.Errorf("invalid turn %d at %v", pending[1], r.Pos)
			}
			r.Pos = r.Pos.Move(r.Dir)
			if step != nil {
				step(r)
			}
		}
	}
	if len(pending) != 0 {
		return r, errors.Errorf("program halted with incomplete output %v", pending)
	}
	return r, nil
}
