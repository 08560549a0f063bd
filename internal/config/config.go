//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package config holds globally available configuration variables
// which are either set by defaults, read from a config file or set
// by command line options.
package config

import (
	"fmt"
	"log"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/evanphx/corvid/internal/util"
)

// globally available config values.
var (
	// ConfFile hold the path to the used config file (relative to working directory)
	ConfFile = "./config.toml"

	// Settings is the global configuration read in from file; it holds the
	// defaults until Setup runs
	Settings = defaults()

	initialized = false
)

type logConfiguration struct {
	// Level is the op/go-logging severity threshold (0 Critical .. 5 Debug).
	Level int
}

type searchConfiguration struct {
	// MaxDepth is a configured ply cap; the search does not read it and is
	// bounded by types.MaxDepth instead.
	MaxDepth int
	// Contempt is the centipawn penalty applied to a repetition/draw score
	// from the side-to-move's perspective, to steer away from draws when
	// ahead and toward them when behind.
	Contempt int
	// TTSizeMB is a configured table size in megabytes; it is not read, and
	// the transposition table always has its fixed 2^20 slots.
	TTSizeMB int
}

type conf struct {
	Log    logConfiguration
	Search searchConfiguration
}

func defaults() conf {
	return conf{
		Log:    logConfiguration{Level: 4},
		Search: searchConfiguration{MaxDepth: 32, Contempt: -50, TTSizeMB: 32},
	}
}

// Setup reads the configuration file and sets Settings from it, falling
// back to defaults for anything the file doesn't override or when no file
// is found.
func Setup() {
	if initialized {
		return
	}
	Settings = defaults()

	path, _ := util.ResolveFile(ConfFile)
	if _, err := toml.DecodeFile(path, &Settings); err != nil {
		log.Println("Config file not found. Using defaults. (", err, ")")
	}
	initialized = true
}

// String prints out the current configuration settings and values using
// reflection to read field names and values.
func (settings *conf) String() string {
	var c strings.Builder
	c.WriteString("Search Config:\n")
	s := reflect.ValueOf(&settings.Search).Elem()
	typeOfT := s.Type()
	for i := 0; i < s.NumField(); i++ {
		f := s.Field(i)
		c.WriteString(fmt.Sprintf("%-2d: %-22s %-6s = %v\n", i, typeOfT.Field(i).Name, f.Type(), f.Interface()))
	}
	c.WriteString("\nLog Config:\n")
	s = reflect.ValueOf(&settings.Log).Elem()
	typeOfT = s.Type()
	for i := 0; i < s.NumField(); i++ {
		f := s.Field(i)
		c.WriteString(fmt.Sprintf("%-2d: %-22s %-6s = %v\n", i, typeOfT.Field(i).Name, f.Type(), f.Interface()))
	}
	return c.String()
}
