/*
Copyright 2025 Trident Authors

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

package node

import (
	"encoding/base64"
	"math"
	"strconv"
	"strings"
)

// xsdDecimalType, xsdIntegerType, xsdBooleanType, and xsdBase64BinaryType
// are the default datatypes used by the numeric constructors when no
// explicit datatype is given, mirroring the DATATYPE_* helpers in the
// original node.c.
var (
	xsdDecimalType      = NewURI(nsXSD + "decimal")
	xsdIntegerType      = NewURI(nsXSD + "integer")
	xsdBooleanType      = NewURI(nsXSD + "boolean")
	xsdBase64BinaryType = NewURI(nsXSD + "base64Binary")
)

// NewBoolean returns a typed literal with body "true" or "false" and
// datatype xsd:boolean.
func NewBoolean(b bool) *Node {
	s := "false"
	if b {
		s = "true"
	}
	n, _ := NewTypedLiteral(s, xsdBooleanType)
	return n
}

// NewInteger returns a typed literal holding the canonical decimal ASCII
// representation of i: an optional leading '-' followed by digits with no
// leading zeros (other than "0" itself). dt defaults to xsd:integer.
func NewInteger(i int64, dt *Node) (*Node, error) {
	if dt == nil {
		dt = xsdIntegerType
	}

	var abs uint64
	neg := i < 0
	if neg {
		// Negate via uint64 to avoid overflow on math.MinInt64.
		abs = uint64(-(i + 1)) + 1
	} else {
		abs = uint64(i)
	}

	digits := strconv.FormatUint(abs, 10)
	if neg {
		digits = "-" + digits
	}

	return NewTypedLiteral(digits, dt)
}

// NewDecimal returns a typed literal holding the canonical lexical form of
// d: an optional sign, the integer part, a '.', and up to fracDigits
// fractional digits produced by rounding (|d|-⌊|d|⌋) * 10^fracDigits to the
// nearest integer, right-trimmed of trailing zeros so that at least one
// fractional digit remains. It fails if d is not finite. dt defaults to
// xsd:decimal.
//
// The digit writing and rounding here is done by hand (not via
// strconv.FormatFloat or fmt's %f verb) because those use a different
// rounding and trailing-zero policy than the one specified; see
// serd_new_decimal in the original sources this is ported from.
func NewDecimal(d float64, fracDigits uint, dt *Node) (*Node, error) {
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return nil, newConstructError("NewDecimal", "value must be finite", nil)
	}
	if dt == nil {
		dt = xsdDecimalType
	}

	neg := math.Signbit(d)
	absD := math.Abs(d)
	intPart := math.Floor(absD)
	fracPart := absD - intPart

	scale := math.Pow10(int(fracDigits))
	intU := uint64(intPart)
	fracU := uint64(math.Round(fracPart * scale))
	if scaleU := uint64(scale); fracU >= scaleU {
		// Rounding carried the fractional part into the integer part, e.g.
		// 0.999 rounded to 2 places becomes 1.00, not 0.100.
		intU++
		fracU -= scaleU
	}

	fracStr := strconv.FormatUint(fracU, 10)
	for uint(len(fracStr)) < fracDigits {
		fracStr = "0" + fracStr
	}
	fracStr = strings.TrimRight(fracStr, "0")
	if fracStr == "" {
		fracStr = "0"
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteString(strconv.FormatUint(intU, 10))
	b.WriteByte('.')
	b.WriteString(fracStr)

	return NewTypedLiteral(b.String(), dt)
}

// blobLineLen is the column width serd wraps base64 output to when wrap
// is requested, per RFC 2045's 76-character MIME line length.
const blobLineLen = 76

// NewBlob base64-encodes data (RFC 4648) and returns it as a typed
// literal. If wrap is true, newlines are inserted every 76 columns, which
// sets FlagHasNewline on the result automatically via the usual body scan.
// dt defaults to xsd:base64Binary. It fails if data is empty.
func NewBlob(data []byte, wrap bool, dt *Node) (*Node, error) {
	if len(data) == 0 {
		return nil, newConstructError("NewBlob", "data must not be empty", nil)
	}
	if dt == nil {
		dt = xsdBase64BinaryType
	}

	encoded := base64.StdEncoding.EncodeToString(data)
	if !wrap {
		return NewTypedLiteral(encoded, dt)
	}

	var b strings.Builder
	for i := 0; i < len(encoded); i += blobLineLen {
		end := i + blobLineLen
		if end > len(encoded) {
			end = len(encoded)
		}
		b.WriteString(encoded[i:end])
		if end < len(encoded) {
			b.WriteByte('\n')
		}
	}

	return NewTypedLiteral(b.String(), dt)
}
