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

package config_test

import (
	"testing"

	"dirpx.dev/typemeta/config"
)

func TestDefaultConfigValues(t *testing.T) {
	got := config.DefaultConfig()

	if got.QualifiedNames != config.DefaultQualifiedNames {
		t.Fatalf("QualifiedNames = %v, want %v", got.QualifiedNames, config.DefaultQualifiedNames)
	}
	if got.StripTypeParams != config.DefaultStripTypeParams {
		t.Fatalf("StripTypeParams = %v, want %v", got.StripTypeParams, config.DefaultStripTypeParams)
	}
	if got.MaxDepth != config.DefaultMaxDepth {
		t.Fatalf("MaxDepth = %d, want %d", got.MaxDepth, config.DefaultMaxDepth)
	}
}

func TestNewConfig_NoOptions_EqualsDefault(t *testing.T) {
	def := config.DefaultConfig()
	got := config.NewConfig()
	if got != def {
		t.Fatalf("NewConfig() = %+v, want default %+v", got, def)
	}
}

func TestWithQualifiedNames(t *testing.T) {
	if c := config.NewConfig(config.WithQualifiedNames(true)); !c.QualifiedNames {
		t.Fatalf("QualifiedNames = %v, want true", c.QualifiedNames)
	}
	if c := config.NewConfig(config.WithQualifiedNames(false)); c.QualifiedNames {
		t.Fatalf("QualifiedNames = %v, want false", c.QualifiedNames)
	}
}

func TestWithStripTypeParams(t *testing.T) {
	if c := config.NewConfig(config.WithStripTypeParams(true)); !c.StripTypeParams {
		t.Fatalf("StripTypeParams = %v, want true", c.StripTypeParams)
	}
}

func TestWithMaxDepth(t *testing.T) {
	if c := config.NewConfig(config.WithMaxDepth(3)); c.MaxDepth != 3 {
		t.Fatalf("MaxDepth = %d, want 3", c.MaxDepth)
	}
	if c := config.NewConfig(config.WithMaxDepth(-1)); c.MaxDepth != config.DefaultMaxDepth {
		t.Fatalf("MaxDepth = %d, want default %d", c.MaxDepth, config.DefaultMaxDepth)
	}
	// Zero is kept; consumers treat it as "use the default".
	if c := config.NewConfig(config.WithMaxDepth(0)); c.MaxDepth != 0 {
		t.Fatalf("MaxDepth = %d, want 0", c.MaxDepth)
	}
}

func TestOptionsOrder_LastWins(t *testing.T) {
	c := config.NewConfig(
		config.WithQualifiedNames(true),
		config.WithQualifiedNames(false),
		config.WithMaxDepth(2),
		config.WithMaxDepth(5),
	)
	if c.QualifiedNames {
		t.Errorf("QualifiedNames = %v, want false (last option wins)", c.QualifiedNames)
	}
	if c.MaxDepth != 5 {
		t.Errorf("MaxDepth = %d, want 5 (last option wins)", c.MaxDepth)
	}
}
