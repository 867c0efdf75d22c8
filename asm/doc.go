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

// Package asm provides utility functions to assemble and disassemble Intcode
// VM code.
//
// Supported assembler mnemonics:
//
//	Parameters are noted p1, p2, p3. Parameters marked with a star are write
//	targets and cannot use the immediate addressing mode.
//
//	opcode	asm	params		description
//	------	---	------		------------------------------------------------------
//	1	add	p1 p2 p3*	store p1 + p2 in p3
//	2	mul	p1 p2 p3*	store p1 * p2 in p3
//	3	in	p1*		store the next input value in p1. Blocks if no input is available
//	4	out	p1		output p1
//	5	jt	p1 p2		jump to p2 if p1 != 0 (alias: jnz)
//	6	jf	p1 p2		jump to p2 if p1 == 0 (alias: jz)
//	7	lt	p1 p2 p3*	store 1 in p3 if p1 < p2, 0 otherwise
//	8	eq	p1 p2 p3*	store 1 in p3 if p1 == p2, 0 otherwise
//	9	arb	p1		add p1 to the relative base (alias: rb)
//	99	hlt			halt (alias: halt)
//
// Addressing modes:
//
// The addressing mode of a parameter is given by a prefix:
//
//	42	position mode: the parameter is the value at address 42
//	#42	immediate mode: the parameter is 42
//	@42	relative mode: the parameter is the value at address relative base + 42
//
// The assembler computes the instruction word from the opcode and the
// parameter modes, so that
//
//	add #1 @-2 12
//
// compiles as 2101 1 -2 12.
//
// Comments:
//
// Comments are placed between parentheses, i.e. '(' and ')'. The body of the
// comment must be separated from the enclosing parentheses by a space:
//
//	( this is a valid comment )
//	(this will be seen by the parser as label "(this" and will not work )
//
// Literals and label/const identifiers:
//
// Input is split at white space (space, tab or new line) into tokens. Where a
// value is expected (parameter or data), the following rules apply:
//
//	- If a token can be converted to a Go integer (see strconv.ParseInt), it will
//	  be converted to an integer literal.
//	- If it is a Go character literal between single quotes, it will be converted to
//	  the corresponding integer literal.
//	- If a token is the name of a defined constant, it will be replaced by the
//	  constant's value.
//	- Anything else is a reference to a label, which is replaced by the label's
//	  address.
//
// Where an instruction is expected, a token must be a mnemonic, a label
// definition, a directive or a comment. Values cannot appear outside of an
// instruction or a .dat directive.
//
// Labels:
//
// Labels are defined by prefixing them with a colon (:) and evaluate to the
// address of the next cell. Forward references are fine:
//
//	in counter
//	:loop	add counter #-1 counter
//		jt counter #loop	( jump to loop while counter != 0 )
//		hlt
//	:counter .dat 0
//
// Note that "jt counter #loop" uses an immediate label: the jump target is the
// address of loop, not the value stored there.
//
// Local labels:
//
// Local labels work in the same way as in the GNU assembler. They are defined
// as a colon followed by a sequence of digits (i.e. :007, :0, :42) and can be
// defined multiple times. References to such labels must be suffixed with
// either a '-' (backward reference to the last definition of this label), or a
// '+' (forward reference to the next definition of this label):
//
//	:1	jt x #1+
//		out #0
//	:1	jf y #1-
//
// Internally, local labels are renamed N·counter (the middle character is
// '·'). You should therefore not use labels of the form N·N where N is any
// non-empty sequence of digits.
//
// Assembler directives:
//
//	.equ <IDENTIFIER> <value>
//
// defines a constant value. The value must be an integer value, named constant
// or character literal.
//
//	.org <value>
//
// places the next instruction at the address specified by the given integer
// literal or named constant. Skipped cells are filled with zeros.
//
//	.dat <value> [<value>...]
//
// compiles the given values as-is. All values up to the next mnemonic, label
// definition or directive are part of the directive:
//
//	:table	.dat 65 'B' table
//
// The cells at addresses table+0, table+1 and table+2 will contain 65, 66 and
// the address of table respectively.
package asm
