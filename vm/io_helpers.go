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

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

type valueReader struct {
	v []Cell
}

func (r *valueReader) ReadCell() (Cell, error) {
	if len(r.v) == 0 {
		return 0, io.EOF
	}
	v := r.v[0]
	r.v = r.v[1:]
	return v, nil
}

// Values returns a Reader that reads from the given list of values.
func Values(v ...Cell) Reader {
	return &valueReader{v}
}

type lineReader struct {
	s      *bufio.Scanner
	prompt io.Writer
	text   string
	line   int
}

func (r *lineReader) ReadCell() (Cell, error) {
	for {
		if r.prompt != nil {
			if _, err := io.WriteString(r.prompt, r.text); err != nil {
				return 0, errors.Wrap(err, "prompt failed")
			}
			if f, ok := r.prompt.(interface{ Flush() error }); ok {
				if err := f.Flush(); err != nil {
					return 0, errors.Wrap(err, "prompt failed")
				}
			}
		}
		if !r.s.Scan() {
			if err := r.s.Err(); err != nil {
				return 0, errors.Wrap(err, "read failed")
			}
			return 0, io.EOF
		}
		r.line++
		s := strings.TrimSpace(r.s.Text())
		if s == "" {
			continue
		}
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, errors.Wrapf(err, "line %d", r.line)
		}
		return Cell(v), nil
	}
}

// NewLineReader returns a Reader that reads one integer per line from r. Blank
// lines are skipped. If prompt is not nil, the prompt text is written to it
// (and flushed if it implements a Flush() error method) before reading each
// line.
func NewLineReader(r io.Reader, prompt io.Writer, text string) Reader {
	return &lineReader{s: bufio.NewScanner(r), prompt: prompt, text: text}
}
