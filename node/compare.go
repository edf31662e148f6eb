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

import "strings"

// Equals reports whether a and b represent the same node: same type, same
// flags, same body, and recursively equal meta children. Two nil nodes are
// equal; a nil and a non-nil node are not.
func Equals(a, b *Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.typ != b.typ || a.flags != b.flags || a.body != b.body {
		return false
	}
	return Equals(a.meta, b.meta)
}

// Compare defines a total order over nodes: an absent node sorts before
// any present node, then nodes are ordered by Type, then by body (as raw
// bytes), then, recursively, by meta child. It returns a negative number,
// zero, or a positive number as a < b, a == b, or a > b.
func Compare(a, b *Node) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}

	if a.typ != b.typ {
		if a.typ < b.typ {
			return -1
		}
		return 1
	}

	if c := strings.Compare(a.body, b.body); c != 0 {
		return c
	}

	return Compare(a.meta, b.meta)
}

// WildcardCompare is like Compare, except a nil node on either side acts
// as a wildcard that compares equal to anything, for use by triple-pattern
// matching callers outside this package's scope.
func WildcardCompare(a, b *Node) int {
	if a == nil || b == nil {
		return 0
	}
	return Compare(a, b)
}
