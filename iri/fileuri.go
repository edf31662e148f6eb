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

package iri

import (
	"strings"
)

// IsRelative reports whether s is a relative IRI reference, i.e. it has no
// ALPHA *(ALPHA / DIGIT / "+" / "-" / ".") scheme terminated by ':' at the
// start of the string. It never fails: every byte sequence is either
// absolute (has such a scheme) or relative.
func IsRelative(s string) bool {
	if s == "" || !isASCIILetter(rune(s[0])) {
		return true
	}
	for i := 1; i < len(s); i++ {
		c := s[i]
		switch {
		case c == ':':
			return false
		case c == '+' || c == '-' || c == '.':
			continue
		case isASCIILetter(rune(c)) || isASCIIDigit(rune(c)):
			continue
		default:
			return true
		}
	}
	return true
}

// isWindowsPath reports whether path begins with a Windows drive
// specifier, e.g. "C:\" or "C:/" or "C|/".
func isWindowsPath(path string) bool {
	return len(path) >= 3 &&
		isASCIILetter(rune(path[0])) &&
		(path[1] == ':' || path[1] == '|') &&
		(path[2] == '/' || path[2] == '\\')
}

// FileURI assembles a "file:" URI string from a filesystem path and an
// optional host, percent-encoding every path byte that isURIPathChar
// rejects. A literal '%' in the path is doubled rather than escaped, and
// on a Windows drive path ('C:\...') backslashes are translated to
// forward slashes and a leading '/' is inserted before the drive letter,
// matching the "file:///C:/..." form. The "file://" prefix and the host are
// written only for an absolute path or a Windows drive path; any other path
// is returned with its bytes escaped and no prefix.
func FileURI(path, host string) string {
	windows := isWindowsPath(path)

	var b strings.Builder
	if len(path) > 0 && (path[0] == '/' || windows) {
		b.WriteString("file://")
		b.WriteString(host)
		if windows {
			b.WriteByte('/')
		}
	}

	for i := 0; i < len(path); i++ {
		c := path[i]
		switch {
		case windows && c == '\\':
			b.WriteByte('/')
		case c == '%':
			b.WriteString("%%")
		case isURIPathChar(c):
			b.WriteByte(c)
		default:
			b.WriteByte('%')
			writeUpperHex(&b, c)
		}
	}
	return b.String()
}

const upperHexDigits = "0123456789ABCDEF"

// writeUpperHex writes the two-digit uppercase hexadecimal representation
// of b to the builder, per RFC 3986's pct-encoded production.
func writeUpperHex(b *strings.Builder, c byte) {
	b.WriteByte(upperHexDigits[c>>4])
	b.WriteByte(upperHexDigits[c&0x0f])
}
