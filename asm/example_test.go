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

package asm_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/db47h/intcode/asm"
	"github.com/db47h/intcode/vm"
)

// Shows off some of the assembler features.
func ExampleAssemble() {
	code := `
	( a constant definition. Does not generate any code on its own )
	.equ ONE 1

	arb #msg		( rb points to the string )
:loop	jf @0 #done		( stop on the terminating zero )
	out @0
	arb #ONE
	jt #1 #loop
:done	hlt

:msg	.dat 'H' 'i' '!' 0
`
	prog, err := asm.Assemble("hello", strings.NewReader(code))
	if err != nil {
		fmt.Println(err)
		return
	}

	i, err := vm.New(prog)
	if err != nil {
		fmt.Println(err)
		return
	}
	out, err := i.Execute()
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, c := range out {
		fmt.Print(string(rune(c)))
	}
	fmt.Println()

	// data is disassembled as whatever instruction it looks like.
	asm.DisassembleAll(prog, 0, os.Stdout)

	// Output:
	// Hi!
	// (      0 )	arb #13
	// (      2 )	jf @0 #12
	// (      5 )	out @0
	// (      7 )	arb #1
	// (      9 )	jt #1 #2
	// (     12 )	hlt
	// (     13 )	.dat 72
	// (     14 )	jt #33 0
}

// Demonstrates use of local labels
func Example_locals() {
	code := `
:1	jt #1 #1+
:2	jf #0 #1-
:1	jt #1 #2+
:2	jf #0 #1-
`

	prog, err := asm.Assemble("locals", strings.NewReader(code))
	if err != nil {
		fmt.Println(err)
		return
	}

	asm.DisassembleAll(prog, 0, os.Stdout)

	// Output:
	// (      0 )	jt #1 #6
	// (      3 )	jf #0 #0
	// (      6 )	jt #1 #9
	// (      9 )	jf #0 #6
}
