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

// arenaSize is the size limit of the contiguous part of the memory. Cells at
// higher addresses are stored in a sparse map.
const arenaSize = 1 << 20

// Memory is the addressable storage of an Instance. Addresses below arenaSize
// are backed by a slice that grows on demand; higher addresses are stored
// sparsely. The zero value is an empty, growable memory.
type Memory struct {
	cells  []Cell
	sparse map[Cell]Cell
	bound  int // program size
	fixed  bool
}

func newMemory(program []Cell) Memory {
	cells := make([]Cell, len(program))
	copy(cells, program)
	return Memory{cells: cells, bound: len(program)}
}

// Len returns the size of the contiguous part of the memory.
func (m *Memory) Len() int {
	return len(m.cells)
}

func (m *Memory) check(addr Cell, what string) error {
	if addr < 0 {
		return errors.Wrapf(ErrMalformedProgram, "%s at negative address %d", what, addr)
	}
	if m.fixed && addr >= Cell(m.bound) {
		return errors.Wrapf(ErrMalformedProgram, "%s at address %d out of program bounds [0, %d)", what, addr, m.bound)
	}
	return nil
}

// Load returns the value stored at address addr. Unset cells read as 0.
func (m *Memory) Load(addr Cell) (Cell, error) {
	if err := m.check(addr, "read"); err != nil {
		return 0, err
	}
	if addr < Cell(len(m.cells)) {
		return m.cells[addr], nil
	}
	return m.sparse[addr], nil
}

// Store writes v at address addr.
func (m *Memory) Store(addr, v Cell) error {
	if err := m.check(addr, "write"); err != nil {
		return err
	}
	if addr < Cell(len(m.cells)) {
		m.cells[addr] = v
		return nil
	}
	if addr >= arenaSize {
		if m.sparse == nil {
			m.sparse = make(map[Cell]Cell)
		}
		m.sparse[addr] = v
		return nil
	}
	m.grow(int(addr) + 1)
	m.cells[addr] = v
	return nil
}

// grow extends the arena to n cells. New cells are zero.
func (m *Memory) grow(n int) {
	if n <= cap(m.cells) {
		m.cells = m.cells[:n]
		return
	}
	c := cap(m.cells) * 2
	if c < n {
		c = n
	}
	if c > arenaSize {
		c = arenaSize
	}
	t := make([]Cell, n, c)
	copy(t, m.cells)
	m.cells = t
}

// Cells returns a copy of the contiguous part of the memory.
func (m *Memory) Cells() []Cell {
	t := make([]Cell, len(m.cells))
	copy(t, m.cells)
	return t
}
