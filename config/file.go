/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package config

import (
	"fmt"
	"log/slog"

	"github.com/BurntSushi/toml"

	"dirpx.dev/typemeta/apis"
)

// File is the on-disk form of the configuration, read by Load.
//
//	[names]
//	qualified = false
//	strip_type_params = false
//	max_depth = 8
//
//	[log]
//	level = "info"
//
// Identifiers never appear in the file; they are assigned per run.
type File struct {
	Names NamesSection `toml:"names"`
	Log   LogSection   `toml:"log"`
}

// NamesSection mirrors apis.Config. Unset keys keep their defaults.
type NamesSection struct {
	Qualified       *bool `toml:"qualified"`
	StripTypeParams *bool `toml:"strip_type_params"`
	MaxDepth        *int  `toml:"max_depth"`
}

// LogSection selects the slog level of the command-line tool.
type LogSection struct {
	Level string `toml:"level"`
}

// Load decodes the TOML file at path. Unknown keys are rejected so typos do
// not silently fall back to defaults.
func Load(path string) (File, error) {
	var f File
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return File{}, fmt.Errorf("config: decode %s: %w", path, err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		return File{}, fmt.Errorf("config: %s: unknown key %q", path, undec[0].String())
	}
	if _, err := f.Level(); err != nil {
		return File{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return f, nil
}

// Config converts the names section into an apis.Config.
func (f File) Config() apis.Config {
	var opts []Option
	if f.Names.Qualified != nil {
		opts = append(opts, WithQualifiedNames(*f.Names.Qualified))
	}
	if f.Names.StripTypeParams != nil {
		opts = append(opts, WithStripTypeParams(*f.Names.StripTypeParams))
	}
	if f.Names.MaxDepth != nil {
		opts = append(opts, WithMaxDepth(*f.Names.MaxDepth))
	}
	return NewConfig(opts...)
}

// Level parses the log level; an empty value means slog.LevelInfo.
func (f File) Level() (slog.Level, error) {
	var lvl slog.Level
	if f.Log.Level == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(f.Log.Level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level: %w", err)
	}
	return lvl, nil
}
