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

package network_test

import (
	"fmt"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/db47h/intcode/network"
	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

type C []vm.Cell

var tests = [...]struct {
	name     string
	code     C
	feedback bool
	phases   C
	signal   vm.Cell
}{
	{"pipeline-1", C{3, 15, 3, 16, 1002, 16, 10, 16, 1, 16, 15, 15, 4, 15, 99, 0, 0},
		false, C{4, 3, 2, 1, 0}, 43210},
	{"pipeline-2", C{3, 23, 3, 24, 1002, 24, 10, 24, 1002, 23, -1, 23, 101, 5, 23, 23,
		1, 24, 23, 23, 4, 23, 99, 0, 0},
		false, C{0, 1, 2, 3, 4}, 54321},
	{"pipeline-3", C{3, 31, 3, 32, 1002, 32, 10, 32, 1001, 31, -2, 31, 1007, 31, 0, 33,
		1002, 33, 7, 33, 1, 33, 31, 31, 1, 32, 31, 31, 4, 31, 99, 0, 0, 0},
		false, C{1, 0, 4, 3, 2}, 65210},
	{"feedback-1", C{3, 26, 1001, 26, -4, 26, 3, 27, 1002, 27, 2, 27, 1, 27, 26, 27, 4, 27,
		1001, 28, -1, 28, 1005, 28, 6, 99, 0, 0, 5},
		true, C{9, 8, 7, 6, 5}, 139629729},
	{"feedback-2", C{3, 52, 1001, 52, -5, 52, 3, 53, 1, 52, 56, 54, 1007, 54, 5, 55, 1005, 55, 26, 1001, 54,
		-5, 54, 1105, 1, 12, 1, 53, 54, 53, 1008, 54, 0, 55, 1001, 55, 1, 55, 2, 53, 55, 53, 4,
		53, 1001, 56, -1, 56, 1005, 56, 6, 99, 0, 0, 0, 0, 10},
		true, C{9, 7, 8, 5, 6}, 18216},
}

func TestNetwork_Run(t *testing.T) {
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			n, err := network.New(test.code, test.phases, test.feedback)
			if err != nil {
				t.Fatalf("%+v", err)
			}
			s, err := n.Run(0)
			if err != nil {
				t.Fatalf("%+v", err)
			}
			if s != test.signal {
				t.Errorf("Expected: %d\nGot: %d", test.signal, s)
			}
			if !n.Halted() {
				t.Errorf("network not halted:\n%s", spew.Sdump(n.Stages()))
			}
			if n.Turns() < len(test.phases) {
				t.Errorf("unexpected turn count %d", n.Turns())
			}
		})
	}
}

func TestMaxSignal(t *testing.T) {
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			set := C{0, 1, 2, 3, 4}
			if test.feedback {
				set = C{5, 6, 7, 8, 9}
			}
			s, phases, err := network.MaxSignal(test.code, set, test.feedback)
			if err != nil {
				t.Fatalf("%+v", err)
			}
			if s != test.signal || !slices.Equal(C(phases), test.phases) {
				t.Errorf("Expected: %d %v\nGot: %d %v", test.signal, test.phases, s, phases)
			}
			// runs are deterministic
			s2, phases2, err := network.MaxSignal(test.code, set, test.feedback)
			if err != nil || s2 != s || !slices.Equal(phases, phases2) {
				t.Errorf("second run differs: %d %v %v", s2, phases2, err)
			}
		})
	}
}

func TestNetwork_errors(t *testing.T) {
	if _, err := network.New(C{99}, nil, false); err == nil {
		t.Error("Unexpected nil error for empty phases")
	}

	// every stage needs two values before producing any output
	n, err := network.New(C{3, 100, 3, 101, 3, 102, 1, 101, 102, 103, 4, 103, 99}, C{0, 0}, true)
	if err != nil {
		t.Fatal(err)
	}
	if _, err = n.Run(0); errors.Cause(err) != network.ErrDeadlock {
		t.Errorf("unexpected error %v", err)
	}
	if n.Turns() != 4 {
		t.Errorf("unexpected turn count %d", n.Turns())
	}

	n, _ = network.New(C{3, 0, 99}, C{1}, false)
	if _, err = n.Run(0); err == nil {
		t.Error("Unexpected nil error for missing output")
	}

	n, _ = network.New(C{3, 0, 104, 1, 42}, C{1, 2}, false)
	_, err = n.Run(0)
	if errors.Cause(err) != vm.ErrMalformedProgram {
		t.Errorf("unexpected error %v", err)
	}
	if err != nil && err.Error()[:8] != "stage 0:" {
		t.Errorf("unexpected error message %v", err)
	}

	if _, err = network.New(C{99}, C{1}, false, vm.Patch(-1, 0)); errors.Cause(err) != vm.ErrMalformedProgram {
		t.Errorf("unexpected error %v", err)
	}
}

func TestPermutations(t *testing.T) {
	seen := make(map[string]bool)
	err := network.Permutations(C{1, 2, 3, 4}, func(p []vm.Cell) error {
		seen[fmt.Sprint(p)] = true
		p[0] = -1 // must not affect the iteration
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(seen) != 24 {
		t.Errorf("Expected 24 permutations, got %d", len(seen))
	}

	stop := errors.New("stop")
	count := 0
	err = network.Permutations(C{1, 2, 3}, func([]vm.Cell) error {
		count++
		if count == 2 {
			return stop
		}
		return nil
	})
	if err != stop || count != 2 {
		t.Errorf("unexpected result %d, %v", count, err)
	}
}

func ExampleMaxSignal() {
	prog := []vm.Cell{3, 15, 3, 16, 1002, 16, 10, 16, 1, 16, 15, 15, 4, 15, 99, 0, 0}
	s, phases, err := network.MaxSignal(prog, []vm.Cell{0, 1, 2, 3, 4}, false)
	if err != nil {
		panic(err)
	}
	fmt.Println(s, phases)

	// Output:
	// 43210 [4 3 2 1 0]
}
