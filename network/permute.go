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

package network

import (
	"github.com/db47h/intcode/vm"
	"golang.org/x/exp/slices"
)

// Permutations calls fn for every permutation of set, in the order given by
// Heap's algorithm. fn receives a fresh copy of the permutation which it may
// retain. Iteration stops at the first error returned by fn.
func Permutations(set []vm.Cell, fn func([]vm.Cell) error) error {
	a := slices.Clone(set)
	c := make([]int, len(a))
	if err := fn(slices.Clone(a)); err != nil {
		return err
	}
	for k := 1; k < len(a); {
		if c[k] < k {
			if k%2 == 0 {
				a[0], a[k] = a[k], a[0]
			} else {
				a[c[k]], a[k] = a[k], a[c[k]]
			}
			if err := fn(slices.Clone(a)); err != nil {
				return err
			}
			c[k]++
			k = 1
		} else {
			c[k] = 0
			k++
		}
	}
	return nil
}
