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
	"bytes"
	"io"
	"io/ioutil"
	"os"
	"strconv"

	"github.com/db47h/intcode/internal/iox"
	"github.com/pkg/errors"
)

// Parse reads an Intcode program in its usual text form: a comma separated list
// of integers. White space around values is ignored, as well as a trailing
// comma.
func Parse(r io.Reader) ([]Cell, error) {
	b, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read failed")
	}
	fields := bytes.Split(b, []byte{','})
	if n := len(fields); len(bytes.TrimSpace(fields[n-1])) == 0 {
		fields = fields[:n-1]
	}
	prog := make([]Cell, 0, len(fields))
	for n, f := range fields {
		f = bytes.TrimSpace(f)
		v, err := strconv.ParseInt(string(f), 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "field %d", n)
		}
		prog = append(prog, Cell(v))
	}
	return prog, nil
}

// Load loads a program from file fileName.
func Load(fileName string) ([]Cell, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "Load")
	}
	defer f.Close()
	prog, err := Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "Load %v", fileName)
	}
	return prog, nil
}

// Format writes cells to w in the comma separated text form read by Parse.
func Format(w io.Writer, cells []Cell) error {
	ew := iox.NewErrWriter(w)
	for n, v := range cells {
		if n > 0 {
			ew.Write([]byte{','})
		}
		ew.WriteString(strconv.FormatInt(int64(v), 10))
	}
	return ew.Err
}
