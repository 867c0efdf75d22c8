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

package asm

import (
	"io"
	"strconv"
	"strings"
	"text/scanner"
	"unicode"

	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

const (
	maxErrors = 10
	maxOrg    = 1 << 24 // highest .org address
)

func isIdentRune(ch rune, i int) bool {
	return unicode.IsLetter(ch) || unicode.IsSymbol(ch) || unicode.IsPunct(ch) || unicode.IsDigit(ch)
}

type labelSite struct {
	pos     scanner.Position
	address int
}

type label struct {
	labelSite
	uses []labelSite
}

// parser states
const (
	stInstr = iota
	stParam
	stData
	stOrg
	stEquName
	stEquValue
)

type parser struct {
	i      []vm.Cell
	pc     int
	size   int
	s      scanner.Scanner
	labels map[string]*label
	consts map[string]labelSite
	locals map[string]int
	errs   ErrAsm
	state  int

	// instruction being assembled
	op    vm.Opcode
	opPC  int
	opPos scanner.Position
	modes [vm.MaxParams]vm.Mode
	argc  int

	cstName string
	cstPos  scanner.Position
}

func newParser() *parser {
	p := new(parser)
	p.labels = make(map[string]*label)
	p.consts = make(map[string]labelSite)
	p.locals = make(map[string]int)
	return p
}

func (p *parser) pos() scanner.Position {
	pos := p.s.Position
	if !pos.IsValid() {
		pos = p.s.Pos()
	}
	return pos
}

func (p *parser) errorAt(pos scanner.Position, msg string) {
	if len(p.errs) < maxErrors {
		p.errs = append(p.errs, Error{Pos: pos, Msg: msg})
	}
}

func (p *parser) error(msg string) {
	p.errorAt(p.pos(), msg)
}

func (p *parser) write(v vm.Cell) {
	for p.pc >= len(p.i) {
		p.i = append(p.i, make([]vm.Cell, 256)...)
	}
	p.i[p.pc] = v
	p.pc++
	if p.pc > p.size {
		p.size = p.pc
	}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// localRef returns the internal name of a local label reference like 1+ or 1-.
func (p *parser) localRef(s string) (string, bool) {
	n := len(s) - 1
	if n < 1 || !isDigits(s[:n]) {
		return "", false
	}
	c := p.locals[s[:n]]
	switch s[n] {
	case '-':
		if c == 0 {
			return "", false
		}
	case '+':
		c++
	default:
		return "", false
	}
	return s[:n] + "·" + strconv.Itoa(c), true
}

func (p *parser) useLabel(name string) {
	if n, ok := p.localRef(name); ok {
		name = n
	}
	lbl := p.labels[name]
	if lbl == nil {
		lbl = &label{
			// use current position as valid temp position
			labelSite{p.pos(), -1},
			nil,
		}
		p.labels[name] = lbl
	}
	lbl.uses = append(lbl.uses, labelSite{p.pos(), p.pc})
}

func (p *parser) defineLabel(name string) {
	if name == "" {
		p.error("empty label name")
		return
	}
	if isDigits(name) {
		p.locals[name]++
		name += "·" + strconv.Itoa(p.locals[name])
	}
	lbl := p.labels[name]
	if lbl == nil {
		p.labels[name] = &label{labelSite{p.pos(), p.pc}, nil}
		return
	}
	if lbl.address >= 0 {
		p.error("label " + name + " already defined at " + lbl.pos.String())
		return
	}
	lbl.labelSite = labelSite{p.pos(), p.pc}
}

// literal converts an integer literal, character literal or constant name to
// its value.
func (p *parser) literal(s string) (v vm.Cell, ok bool, err error) {
	// Our assembly is forth like: words can start with and contain digits,
	// symbols, punctuation and so on. The stdlib scanner can only return
	// tokens, so we need to convert back to integers when required.
	if n, err := strconv.ParseInt(s, 0, 64); err == nil {
		return vm.Cell(n), true, nil
	}
	if len(s) > 2 && s[0] == '\'' && s[len(s)-1] == '\'' {
		r, _, tail, err := strconv.UnquoteChar(s[1:len(s)-1], '\'')
		if err != nil {
			return 0, false, errors.Wrapf(err, "invalid character literal %s", s)
		}
		if tail != "" {
			return 0, false, errors.Errorf("invalid character literal %s", s)
		}
		return vm.Cell(r), true, nil
	}
	if c, ok := p.consts[s]; ok {
		return vm.Cell(c.address), true, nil
	}
	return 0, false, nil
}

// value writes an integer literal, character literal, constant value or label
// address at the current pc.
func (p *parser) value(s string) {
	v, ok, err := p.literal(s)
	switch {
	case err != nil:
		p.error(err.Error())
	case !ok:
		p.useLabel(s)
	}
	p.write(v)
}

// isWord returns true if s must be parsed as an instruction, label definition
// or directive.
func isWord(s string) bool {
	if s[0] == ':' || s[0] == '.' {
		return true
	}
	_, ok := mnemonics[s]
	return ok
}

func (p *parser) instr(s string) {
	switch {
	case s[0] == ':':
		p.defineLabel(s[1:])
	case s[0] == '.':
		switch s {
		case ".org":
			p.state = stOrg
		case ".dat":
			p.state = stData
		case ".equ":
			p.state = stEquName
		default:
			p.error("unknown directive " + s)
		}
	default:
		op, ok := mnemonics[s]
		if !ok {
			p.error("unknown mnemonic " + s)
			return
		}
		p.op, p.opPC, p.opPos, p.argc = op, p.pc, p.pos(), 0
		p.modes = [vm.MaxParams]vm.Mode{}
		p.write(vm.Cell(op))
		if op.Arity() == 0 {
			p.state = stInstr
			return
		}
		p.state = stParam
	}
}

func (p *parser) param(s string) {
	if isWord(s) {
		p.errorAt(p.opPos, "missing parameter "+strconv.Itoa(p.argc+1)+" for "+p.op.String())
		p.encode()
		p.instr(s)
		return
	}
	mode := vm.ModePosition
	switch s[0] {
	case '#':
		mode = vm.ModeImmediate
		s = s[1:]
	case '@':
		mode = vm.ModeRelative
		s = s[1:]
	}
	if s == "" {
		p.error("missing value after addressing mode")
		s = "0"
	}
	if mode == vm.ModeImmediate && p.argc == p.op.Writes() {
		p.error("immediate mode not allowed for parameter " + strconv.Itoa(p.argc+1) + " of " + p.op.String())
	}
	p.modes[p.argc] = mode
	p.value(s)
	p.argc++
	if p.argc == p.op.Arity() {
		p.encode()
	}
}

// encode writes the instruction word of the current instruction.
func (p *parser) encode() {
	p.i[p.opPC] = vm.Encode(p.op, p.modes[:p.op.Arity()]...)
	p.state = stInstr
}

func (p *parser) intArg(s string, what string) (vm.Cell, bool) {
	v, ok, err := p.literal(s)
	if err != nil {
		p.error(err.Error())
		return 0, false
	}
	if !ok {
		p.error("integer or constant value expected for " + what + ", got " + s)
		return 0, false
	}
	return v, true
}

func (p *parser) skipComment() {
	for tok := p.s.Scan(); tok != scanner.EOF; tok = p.s.Scan() {
		if p.s.TokenText() == ")" {
			return
		}
	}
	p.error("unterminated comment")
}

// Parse does the parsing and compiling.
func (p *parser) Parse(name string, r io.Reader) ([]vm.Cell, error) {
	p.s.Init(r)
	p.s.Error = func(s *scanner.Scanner, msg string) {
		p.error(msg)
	}
	p.s.IsIdentRune = isIdentRune
	p.s.Mode = scanner.ScanIdents
	p.s.Filename = name

	for tok := p.s.Scan(); tok != scanner.EOF && len(p.errs) < maxErrors; tok = p.s.Scan() {
		if tok != scanner.Ident {
			p.error("unexpected character " + strconv.QuoteRune(tok))
			continue
		}
		s := p.s.TokenText()
		if s == "(" {
			p.skipComment()
			continue
		}
		switch p.state {
		case stInstr:
			p.instr(s)
		case stParam:
			p.param(s)
		case stData:
			if isWord(s) {
				p.state = stInstr
				p.instr(s)
				break
			}
			p.value(s)
		case stOrg:
			p.state = stInstr
			if v, ok := p.intArg(s, ".org"); ok {
				if v < 0 || v > maxOrg {
					p.error("address " + strconv.FormatInt(int64(v), 10) + " out of range [0, " + strconv.Itoa(maxOrg) + "] in .org")
					break
				}
				p.pc = int(v)
			}
		case stEquName:
			if isWord(s) || isDigits(s) {
				p.error("invalid constant name " + s)
				p.state = stInstr
				break
			}
			if c, ok := p.consts[s]; ok {
				p.error("constant " + s + " already defined at " + c.pos.String())
			}
			p.cstName, p.cstPos = s, p.pos()
			p.state = stEquValue
		case stEquValue:
			p.state = stInstr
			if v, ok := p.intArg(s, ".equ"); ok {
				p.consts[p.cstName] = labelSite{p.cstPos, int(v)}
			}
		}
	}

	switch p.state {
	case stParam:
		p.errorAt(p.opPos, "missing parameter "+strconv.Itoa(p.argc+1)+" for "+p.op.String())
		p.encode()
	case stOrg, stEquName, stEquValue:
		p.error("unexpected end of input")
	}

	// resolve labels
	names := make([]string, 0, len(p.labels))
	for k := range p.labels {
		names = append(names, k)
	}
	slices.Sort(names)
	for _, k := range names {
		l := p.labels[k]
		if l.address < 0 {
			name := k
			if i := strings.IndexRune(k, '·'); i > 0 {
				name = k[:i] + "+"
			}
			p.errorAt(l.uses[0].pos, "undefined label "+name)
			continue
		}
		for _, u := range l.uses {
			p.i[u.address] = vm.Cell(l.address)
		}
	}

	if len(p.errs) > 0 {
		slices.SortStableFunc(p.errs, func(a, b Error) bool { return a.Pos.Offset < b.Pos.Offset })
		return nil, p.errs
	}
	return p.i[:p.size], nil
}
