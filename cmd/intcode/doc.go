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

// The intcode command line tool runs Intcode programs with the package
// github.com/db47h/intcode/vm.
//
// Usage:
//
//	-amp phases
//		  run an amplifier chain with the given comma separated phases
//	-arcade coins
//		  run an arcade cabinet with the given number of coins (0: free play) (default -1)
//	-asm
//		  the program file is assembly source
//	-debug
//		  enable debug diagnostics
//	-disasm
//		  disassemble the program and exit
//	-dump
//		  dump memory upon exit
//	-feedback
//		  loop the amplifier chain back to its first stage
//	-fixed
//		  do not grow memory beyond the program size
//	-input values
//		  comma separated input values. If not set, input is read from stdin
//	-loglevel level
//		  log level: trace, debug, info, warn, error, critical or off (default "info")
//	-paint color
//		  run a hull painting robot starting on a panel of the given color (default -1)
//	-patch addr=value
//		  set memory to addr=value before running (can be specified multiple times)
//	-program filename
//		  load program from file filename (default $INTCODE_PROGRAM)
//	-search
//		  search the permutation of -amp phases giving the highest signal
//	-stats
//		  print execution statistics upon exit
//	-trace
//		  render frames in paint and arcade modes
//
// -program: the program file is a comma separated list of integers. With -asm,
// it is assembled first (see package github.com/db47h/intcode/asm for the
// syntax). Use -disasm to get a listing of a program.
//
// -input: when not set, values are read from stdin, one per line, every time
// the program waits for input. If stdin is a terminal, a "> " prompt is
// printed. Outputs are printed one per line.
//
// -patch: typically used to set the "noun" and "verb" of a program, or to put
// coins in an arcade cabinet:
//
//	intcode -program day02.txt -patch 1=12 -patch 2=2 -dump
//
// -amp: runs one instance of the program per phase setting, the output of one
// instance being fed to the next one. The first value of -input, if any, is
// the initial signal. With -feedback, the last stage loops back to the first
// one until all instances halt. With -search, all permutations of the phase
// settings are tried and the highest signal is printed along with the phase
// sequence that produced it:
//
//	intcode -program day07.txt -amp 5,6,7,8,9 -feedback -search
//
// -paint and -arcade: drive robot and arcade programs. With -trace, every move
// or screen update is rendered, with a delay between frames set by the
// INTCODE_FRAME_DELAY environment variable (default 50ms).
//
// -debug: will print a full stacktrace and the VM state should the VM crash.
//
// -dump: the memory is dumped to stdout in the program file format. The
// registers are logged at the info level.
//
// -loglevel: the VM traces every instruction at the trace level. The default
// can be set with the INTCODE_LOGLEVEL environment variable.
package main
