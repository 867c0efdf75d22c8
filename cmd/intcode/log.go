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
	"os"

	"github.com/btcsuite/btclog"
	"github.com/pkg/errors"
)

var (
	backendLog = btclog.NewBackend(os.Stderr)

	mainLog = backendLog.Logger("MAIN")
	vmLog   = backendLog.Logger("VM")
	netLog  = backendLog.Logger("NETW")
)

// setLogLevel sets the logging level of all subsystems.
func setLogLevel(level string) error {
	lvl, ok := btclog.LevelFromString(level)
	if !ok {
		return errors.Errorf("invalid log level %q", level)
	}
	for _, l := range []btclog.Logger{mainLog, vmLog, netLog} {
		l.SetLevel(lvl)
	}
	return nil
}
