/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package logging sets up the single op/go-logging logger the engine
// writes to. Unlike the UCI-era original this has no per-subsystem log
// files: one logger, one stdout backend.
package logging

import (
	"os"
	"sync"

	logging "github.com/op/go-logging"

	"github.com/evanphx/corvid/internal/config"
)

var (
	once sync.Once
	log  *logging.Logger
)

var levelByConfig = map[int]logging.Level{
	0: logging.CRITICAL,
	1: logging.ERROR,
	2: logging.WARNING,
	3: logging.NOTICE,
	4: logging.INFO,
	5: logging.DEBUG,
}

// GetLog returns the engine's single preconfigured logger, creating it on
// first use. The severity threshold comes from config.Settings.Log.Level
// (0 Critical .. 5 Debug, default 4/Info).
func GetLog() *logging.Logger {
	once.Do(func() {
		log = logging.MustGetLogger("corvid")
		backend := logging.NewLogBackend(os.Stdout, "", 0)
		format := logging.MustStringFormatter(
			`%{time:15:04:05.000} %{shortfile}:%{shortfunc} %{level:7s}: %{message}`,
		)
		formatted := logging.NewBackendFormatter(backend, format)
		leveled := logging.AddModuleLevel(formatted)
		level, ok := levelByConfig[config.Settings.Log.Level]
		if !ok {
			level = logging.INFO
		}
		leveled.SetLevel(level, "")
		logging.SetBackend(leveled)
	})
	return log
}
