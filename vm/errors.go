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

import "github.com/pkg/errors"

var (
	// ErrMalformedProgram is the cause of all fatal execution errors: unknown
	// opcode or addressing mode, write to an immediate mode parameter or
	// access to an invalid memory address.
	ErrMalformedProgram = errors.New("malformed program")

	// ErrInputExhausted is returned by Drive when the instance is blocked on
	// input and the input Reader has no more values.
	ErrInputExhausted = errors.New("input exhausted")
)
