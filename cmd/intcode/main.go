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
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/db47h/intcode/asm"
	"github.com/db47h/intcode/vm"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

type patch struct {
	addr, value vm.Cell
}

type patchList []patch

func (p *patchList) String() string { return "" }
func (p *patchList) Set(s string) error {
	k := strings.IndexByte(s, '=')
	if k < 0 {
		return errors.Errorf("invalid patch %q, expected addr=value", s)
	}
	addr, err := strconv.ParseInt(strings.TrimSpace(s[:k]), 0, 64)
	if err != nil {
		return errors.Wrap(err, "invalid patch address")
	}
	v, err := strconv.ParseInt(strings.TrimSpace(s[k+1:]), 0, 64)
	if err != nil {
		return errors.Wrap(err, "invalid patch value")
	}
	*p = append(*p, patch{vm.Cell(addr), vm.Cell(v)})
	return nil
}
func (p *patchList) Get() interface{} { return *p }

// cellList is a comma separated list of values.
type cellList struct {
	v   []vm.Cell
	set bool
}

func (l *cellList) String() string {
	if l == nil {
		return ""
	}
	var b strings.Builder
	vm.Format(&b, l.v)
	return b.String()
}
func (l *cellList) Set(s string) error {
	v, err := vm.Parse(strings.NewReader(s))
	if err != nil {
		return err
	}
	l.v, l.set = append(l.v, v...), true
	return nil
}
func (l *cellList) Get() interface{} { return l.v }

// config holds the defaults read from the INTCODE_* environment variables.
type config struct {
	Program    string
	LogLevel   string        `default:"info"`
	FrameDelay time.Duration `split_words:"true" default:"50ms"`
}

func loadConfig() (cfg config, err error) {
	err = envconfig.Process("intcode", &cfg)
	return cfg, errors.Wrap(err, "invalid environment")
}

var (
	debug bool
	dump  bool
	stats bool
)

func loadProgram(name string, assemble bool) ([]vm.Cell, error) {
	if !assemble {
		return vm.Load(name)
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, errors.Wrap(err, "Load")
	}
	defer f.Close()
	return asm.Assemble(name, f)
}

func atExit(i *vm.Instance, err error) {
	if stats {
		printStats(os.Stderr)
	}
	if err == nil {
		return
	}
	if !debug {
		fmt.Fprintf(os.Stderr, "\n%v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "\n%+v\n", err)
	if i != nil {
		fmt.Fprintf(os.Stderr, "Status: %v, PC: %v, RB: %v, Input: %v\n", i.Status(), i.PC(), i.RelativeBase(), i.Pending())
		if v, e := i.Peek(i.PC()); e == nil && i.PC() >= 0 {
			op, modes, _ := vm.Decode(v)
			fmt.Fprintf(os.Stderr, "Instruction: %d (%v %v)\n", v, op, modes[:op.Arity()])
		}
	}
	os.Exit(1)
}

func main() {
	// check exit condition
	var err error
	var i *vm.Instance

	stdout := bufio.NewWriter(os.Stdout)

	// flush output, catch and log errors
	defer func() {
		if err == nil && dump && i != nil {
			err = dumpVM(i, stdout)
		}
		if e := stdout.Flush(); err == nil && e != nil {
			err = errors.Wrap(e, "write failed")
		}
		atExit(i, err)
	}()

	var cfg config
	if cfg, err = loadConfig(); err != nil {
		return
	}

	var (
		patches patchList
		input   cellList
		phases  cellList
	)

	fileName := flag.String("program", cfg.Program, "load program from file `filename` (default $INTCODE_PROGRAM)")
	assemble := flag.Bool("asm", false, "the program file is assembly source")
	flag.Var(&patches, "patch", "set memory to `addr=value` before running (can be specified multiple times)")
	flag.Var(&input, "input", "comma separated input `values`. If not set, input is read from stdin")
	fixed := flag.Bool("fixed", false, "do not grow memory beyond the program size")
	flag.Var(&phases, "amp", "run an amplifier chain with the given comma separated `phases`")
	feedback := flag.Bool("feedback", false, "loop the amplifier chain back to its first stage")
	search := flag.Bool("search", false, "search the permutation of -amp phases giving the highest signal")
	paint := flag.Int("paint", -1, "run a hull painting robot starting on a panel of the given `color`")
	arcade := flag.Int("arcade", -1, "run an arcade cabinet with the given number of `coins` (0: free play)")
	trace := flag.Bool("trace", false, "render frames in paint and arcade modes")
	disasm := flag.Bool("disasm", false, "disassemble the program and exit")
	flag.BoolVar(&dump, "dump", false, "dump memory upon exit")
	flag.BoolVar(&debug, "debug", false, "enable debug diagnostics")
	flag.BoolVar(&stats, "stats", false, "print execution statistics upon exit")
	logLevel := flag.String("loglevel", cfg.LogLevel, "log `level`: trace, debug, info, warn, error, critical or off")

	flag.Parse()

	if err = setLogLevel(*logLevel); err != nil {
		return
	}
	if *fileName == "" {
		err = errors.New("no program file, use -program or set INTCODE_PROGRAM")
		return
	}

	var prog []vm.Cell
	if prog, err = loadProgram(*fileName, *assemble); err != nil {
		return
	}
	mainLog.Debugf("loaded %d cells from %s", len(prog), *fileName)

	if *disasm {
		err = asm.DisassembleAll(prog, 0, stdout)
		return
	}

	// default options
	opts := []vm.Option{vm.Logger(vmLog)}
	if *fixed {
		opts = append(opts, vm.Fixed())
	}
	for _, p := range patches {
		opts = append(opts, vm.Patch(p.addr, p.value))
	}

	switch {
	case phases.set:
		var signal vm.Cell
		if len(input.v) > 0 {
			signal = input.v[0]
		}
		err = runAmp(stdout, prog, phases.v, signal, *feedback, *search, opts)
	case *paint >= 0:
		i, err = runPaint(stdout, prog, vm.Cell(*paint), opts, *trace, cfg.FrameDelay)
	case *arcade >= 0:
		if *arcade > 0 {
			opts = append(opts, vm.Patch(0, vm.Cell(*arcade)))
		}
		i, err = runArcade(stdout, prog, opts, *trace, cfg.FrameDelay)
	default:
		var in []vm.Cell
		if input.set {
			in = input.v
			if in == nil {
				in = []vm.Cell{}
			}
		}
		i, err = runProgram(stdout, prog, in, opts)
	}
}
