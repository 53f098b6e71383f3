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
	"dirpx.dev/typemeta/apis"
)

const (
	// DefaultQualifiedNames represents the default for QualifiedNames.
	// Short "pkg.Type" names read better in logs and diagnostics.
	DefaultQualifiedNames = false
	// DefaultStripTypeParams represents the default for StripTypeParams.
	// Instantiation arguments are kept so Box[int] and Box[string] stay distinct.
	DefaultStripTypeParams = false
	// DefaultMaxDepth represents the default for MaxDepth.
	// A value of 8 should be sufficient for all practical purposes.
	DefaultMaxDepth = 8
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	// Ensure MaxDepth is valid.
	if cfg.MaxDepth < 0 {
		cfg.MaxDepth = DefaultMaxDepth
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		QualifiedNames:  DefaultQualifiedNames,
		StripTypeParams: DefaultStripTypeParams,
		MaxDepth:        DefaultMaxDepth,
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithQualifiedNames sets the QualifiedNames option.
func WithQualifiedNames(qualified bool) Option {
	return func(c *apis.Config) {
		c.QualifiedNames = qualified
	}
}

// WithStripTypeParams sets the StripTypeParams option.
func WithStripTypeParams(strip bool) Option {
	return func(c *apis.Config) {
		c.StripTypeParams = strip
	}
}

// WithMaxDepth sets the MaxDepth option.
// A negative value resets to the default.
func WithMaxDepth(depth int) Option {
	return func(c *apis.Config) {
		if depth < 0 {
			c.MaxDepth = DefaultMaxDepth
			return
		}
		c.MaxDepth = depth
	}
}
