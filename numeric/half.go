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

// Package numeric holds storage-only element types that have no Go builtin
// equivalent. They exist so the reserved identifier table can bind them.
package numeric

import (
	"strconv"

	"github.com/x448/float16"
)

// Half is an IEEE 754 binary16 value kept as its raw bit pattern.
type Half uint16

// Float32 widens h. The conversion is exact.
func (h Half) Float32() float32 {
	return float16.Frombits(uint16(h)).Float32()
}

func (h Half) String() string {
	return strconv.FormatFloat(float64(h.Float32()), 'g', -1, 32)
}

// ComplexHalf is a pair of Half values.
type ComplexHalf struct {
	Real Half
	Imag Half
}

// Complex64 widens c.
func (c ComplexHalf) Complex64() complex64 {
	return complex(c.Real.Float32(), c.Imag.Float32())
}
