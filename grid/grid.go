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

// Package grid provides the 2D bookkeeping used by drivers of Intcode programs
// that move around a plane or draw on a screen.
//
// Positions are integer points and headings are one of four directions;
// turning is a simple rotation within the Direction enumeration.
package grid

import (
	"bytes"
	"io"

	"github.com/db47h/intcode/internal/iox"
	"github.com/db47h/intcode/vm"
)

// Point is a position on the grid. Rows grow downwards.
type Point struct {
	Row, Col int
}

// Move returns the point next to p in direction d.
func (p Point) Move(d Direction) Point {
	switch d {
	case Up:
		p.Row--
	case Right:
		p.Col++
	case Down:
		p.Row++
	case Left:
		p.Col--
	}
	return p
}

// Direction is a heading on the grid.
type Direction int

// Directions, clockwise.
const (
	Up Direction = iota
	Right
	Down
	Left
)

var dirRunes = [...]rune{'^', '>', 'v', '<'}

// TurnLeft returns the direction after a 90 degrees counter-clockwise turn.
func (d Direction) TurnLeft() Direction {
	return (d + 3) & 3
}

// TurnRight returns the direction after a 90 degrees clockwise turn.
func (d Direction) TurnRight() Direction {
	return (d + 1) & 3
}

// Rune returns the arrow used to render a cursor facing d.
func (d Direction) Rune() rune {
	return dirRunes[d&3]
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	}
	return "unknown"
}

// Grid is a sparse grid of cell values. Missing points read as 0.
type Grid map[Point]vm.Cell

// Bounds returns the top-left and bottom-right corners of the smallest
// rectangle holding all points of the grid. ok is false if the grid is empty.
func (g Grid) Bounds() (min, max Point, ok bool) {
	for p := range g {
		if !ok {
			min, max, ok = p, p, true
			continue
		}
		min, max = extend(min, max, p)
	}
	return min, max, ok
}

func extend(min, max, p Point) (Point, Point) {
	if p.Row < min.Row {
		min.Row = p.Row
	}
	if p.Col < min.Col {
		min.Col = p.Col
	}
	if p.Row > max.Row {
		max.Row = p.Row
	}
	if p.Col > max.Col {
		max.Col = p.Col
	}
	return min, max
}

// Count returns the number of points set to v.
func (g Grid) Count(v vm.Cell) int {
	n := 0
	for _, c := range g {
		if c == v {
			n++
		}
	}
	return n
}

// Render draws the grid to w, one line per row. Each cell value is rendered as
// the rune at the same index in palette, or '?' if the value is out of the
// palette's range. If cursor is not nil, an arrow pointing in direction dir is
// drawn at that position.
func (g Grid) Render(w io.Writer, palette string, cursor *Point, dir Direction) error {
	pal := []rune(palette)
	min, max, ok := g.Bounds()
	if cursor != nil {
		if ok {
			min, max = extend(min, max, *cursor)
		} else {
			min, max, ok = *cursor, *cursor, true
		}
	}
	if !ok {
		return nil
	}
	ew := iox.NewErrWriter(w)
	var line bytes.Buffer
	for r := min.Row; r <= max.Row; r++ {
		line.Reset()
		for c := min.Col; c <= max.Col; c++ {
			p := Point{r, c}
			if cursor != nil && p == *cursor {
				line.WriteRune(dir.Rune())
				continue
			}
			v := g[p]
			if v < 0 || v >= vm.Cell(len(pal)) {
				line.WriteByte('?')
				continue
			}
			line.WriteRune(pal[v])
		}
		line.WriteByte('\n')
		if _, err := ew.Write(line.Bytes()); err != nil {
			return err
		}
	}
	return nil
}
