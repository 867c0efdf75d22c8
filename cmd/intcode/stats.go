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

	"github.com/codahale/metrics"
	"github.com/db47h/intcode/vm"
	"golang.org/x/exp/slices"
)

var (
	instructions = metrics.Counter("vm.instructions")
	suspends     = metrics.Counter("vm.suspends")
	outputs      = metrics.Counter("vm.outputs")
	instances    = metrics.Counter("vm.instances")
	memSize      = metrics.Gauge("vm.memory")
	netTurns     = metrics.Gauge("net.turns")

	maxMem int64
)

// account adds the statistics of a halted or blocked instance.
func account(i *vm.Instance) {
	instances.Add()
	instructions.AddN(uint64(i.InstructionCount()))
	if n := int64(len(i.Memory())); n > maxMem {
		maxMem = n
		memSize.Set(n)
	}
}

// countingReader counts suspensions, i.e. reads from the underlying reader.
func countingReader(r vm.Reader) vm.Reader {
	return vm.ReaderFunc(func() (vm.Cell, error) {
		suspends.Add()
		return r.ReadCell()
	})
}

func printStats(w io.Writer) {
	counters, gauges := metrics.Snapshot()
	names := make([]string, 0, len(counters)+len(gauges))
	values := make(map[string]int64, len(counters)+len(gauges))
	for k, v := range counters {
		names = append(names, k)
		values[k] = int64(v)
	}
	for k, v := range gauges {
		names = append(names, k)
		values[k] = v
	}
	slices.Sort(names)
	for _, k := range names {
		fmt.Fprintf(w, "%-16s %d\n", k, values[k])
	}
}
