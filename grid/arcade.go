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

// Arcade tile ids.
const (
	TileEmpty vm.Cell = iota
	TileWall
	TileBlock
	TilePaddle
	TileBall
)

// ArcadePalette renders arcade tiles.
const ArcadePalette = " #█▂●"

// Arcade runs an arcade cabinet program to completion and returns the final
// screen and score.
//
// The program draws tiles as (x, y, tile id) triples. The triple (-1, 0, n)
// sets the score to n. Each time the program blocks, the joystick is moved
// towards the ball: -1 for left, 1 for right, 0 to stay put.
//
// If frame is not nil, it is called after each turn of the program with the
// current screen and score.
func Arcade(i *vm.Instance, frame func(Grid, vm.Cell)) (screen Grid, score vm.Cell, err error) {
	screen = make(Grid)
	var (
		pending      []vm.Cell
		in           []vm.Cell
		ball, paddle vm.Cell
	)
	for i.Status() != vm.Halted {
		out, err := i.Execute(in...)
		if err != nil {
			return screen, score, err
		}
		pending = append(pending, out...)
		for ; len(pending) >= 3; pending = pending[3:] {
			x, y, v := pending[0], pending[1], pending[2]
			if x == -1 && y == 0 {
				score = v
				continue
			}
			screen[Point{Row: int(y), Col: int(x)}] = v
			switch v {
			case TileBall:
				ball = x
			case TilePaddle:
				paddle = x
			}
		}
		if frame != nil {
			frame(screen, score)
		}
		in = []vm.Cell{joystick(ball - paddle)}
	}
	if len(pending) != 0 {
		return screen, score, errors.Errorf("program halted with incomplete output %v", pending)
	}
	return screen, score, nil
}

func joystick(d vm.Cell) vm.Cell {
	switch {
	case d < 0:
		return -1
	case d > 0:
		return 1
	}
	return 0
}
