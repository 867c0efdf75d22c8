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

package iox_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/db47h/intcode/internal/iox"
)

type failWriter struct{ n int }

func (w *failWriter) Write(p []byte) (int, error) {
	if w.n == 0 {
		return 0, errors.New("disk full")
	}
	w.n--
	return len(p), nil
}

func TestErrWriter(t *testing.T) {
	var b bytes.Buffer
	w := iox.NewErrWriter(&b)
	w.WriteString("foo")
	w.Write([]byte("bar"))
	if w.Err != nil || b.String() != "foobar" {
		t.Fatalf("got %q, err %v", b.String(), w.Err)
	}
	if iox.NewErrWriter(w) != w {
		t.Error("NewErrWriter did not reuse existing ErrWriter")
	}

	w = iox.NewErrWriter(&failWriter{1})
	if _, err := w.WriteString("ok"); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	w.WriteString("ko")
	if n, err := w.WriteString("again"); n != 0 || err == nil {
		t.Errorf("expected sticky error, got %d, %v", n, err)
	}
	if w.Err.Error() != "write failed: disk full" {
		t.Errorf("unexpected error message %q", w.Err)
	}
}
