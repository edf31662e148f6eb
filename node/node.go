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

// Package node provides an in-memory representation of an RDF term: a
// blank node, a CURIE, a URI, or a literal, optionally carrying a
// datatype or a language tag. A Node is an immutable value; every
// operation that changes one returns a new one.
//
// Nodes compare and order the same way regardless of how they were
// built, and every constructor that can fail returns a nil *Node
// together with a non-nil error rather than panicking.
package node

// Type identifies which kind of RDF term a Node represents.
type Type uint8

const (
	// Nothing is the zero Type, representing the absence of a node. A nil
	// *Node has this type.
	Nothing Type = iota
	// Literal is a node carrying a lexical string, optionally with a
	// datatype or a language tag (never both).
	Literal
	// URI is an absolute or relative URI reference.
	URI
	// Curie is a compact URI, such as "rdf:type".
	Curie
	// Blank is a blank node identifier.
	Blank
)

// String returns a short, human-readable name for the type.
func (t Type) String() string {
	switch t {
	case Nothing:
		return "Nothing"
	case Literal:
		return "Literal"
	case URI:
		return "URI"
	case Curie:
		return "Curie"
	case Blank:
		return "Blank"
	default:
		return "Type(?)"
	}
}

// Flags is a bitset of boolean properties attached to a Node, mirroring
// the flags serd stores alongside a node's header.
type Flags uint8

const (
	// FlagHasNewline is set when the node's body contains a '\n'.
	FlagHasNewline Flags = 1 << iota
	// FlagHasQuote is set when the node's body contains a '"'.
	FlagHasQuote
	// FlagHasDatatype is set when the node carries a datatype meta child.
	// Mutually exclusive with FlagHasLanguage.
	FlagHasDatatype
	// FlagHasLanguage is set when the node carries a language-tag meta
	// child. Mutually exclusive with FlagHasDatatype.
	FlagHasLanguage
)

// nodeHeaderSize models the fixed header every node carries ahead of its
// body, the same role sizeof(SerdNode) plays in the C implementation this
// is ported from. It is also the alignment granularity used by TotalSize.
const nodeHeaderSize = 8

// Node is an RDF term: a blank node, a CURIE, a URI, or a literal. The
// zero value is not a valid Node; use one of the New* constructors. A nil
// *Node represents an absent node ("Nothing") and is safe to pass to
// every accessor and operation in this package.
type Node struct {
	typ   Type
	flags Flags
	body  string
	meta  *Node
}

// Type reports the node's type, or Nothing for a nil Node.
func (n *Node) Type() Type {
	if n == nil {
		return Nothing
	}
	return n.typ
}

// Len returns the length in bytes of the node's lexical body.
func (n *Node) Len() int {
	if n == nil {
		return 0
	}
	return len(n.body)
}

// String returns the node's lexical body: for a URI this is the URI
// string, for a Literal the literal's text, and so on. It implements
// fmt.Stringer. A nil Node returns "".
func (n *Node) String() string {
	if n == nil {
		return ""
	}
	return n.body
}

// Flags returns the node's flag bitset.
func (n *Node) Flags() Flags {
	if n == nil {
		return 0
	}
	return n.flags
}

// Datatype returns the node's datatype, or nil if it has none. Only
// Literal nodes with FlagHasDatatype set carry one.
func (n *Node) Datatype() *Node {
	if n == nil || n.flags&FlagHasDatatype == 0 {
		return nil
	}
	return n.meta
}

// Language returns the node's language-tag literal, or nil if it has
// none. Only Literal nodes with FlagHasLanguage set carry one.
func (n *Node) Language() *Node {
	if n == nil || n.flags&FlagHasLanguage == 0 {
		return nil
	}
	return n.meta
}

// paddedLen returns the padded byte length serd would allocate for a body
// of n bytes: the body, a NUL terminator, and zero-padding out to the
// next multiple of nodeHeaderSize (at least one byte of padding, so a
// body that already lands on a boundary still grows by a full block).
func paddedLen(n int) int {
	rem := (n + 1) % nodeHeaderSize
	return n + 1 + (nodeHeaderSize - rem)
}

// TotalSize reports the number of bytes serd would need to store this
// node contiguously: a fixed header, the padded body, and, recursively,
// any meta child. A nil Node has size 0.
func (n *Node) TotalSize() int {
	if n == nil {
		return 0
	}
	size := nodeHeaderSize + paddedLen(len(n.body))
	if n.meta != nil {
		size += n.meta.TotalSize()
	}
	return size
}

// Copy returns a deep copy of n, including its meta child. Copy(nil) is
// nil.
func (n *Node) Copy() *Node {
	if n == nil {
		return nil
	}
	cp := *n
	cp.meta = n.meta.Copy()
	return &cp
}

// Set assigns src into *dst, replacing whatever was there. A nil src
// clears *dst to nil ("Nothing"), mirroring serd_node_set's handling of
// an absent source node.
func Set(dst **Node, src *Node) {
	*dst = src.Copy()
}

// scanFlags computes FlagHasNewline and FlagHasQuote for s in a single
// pass, the same scan serd_node_set performs while copying a node's body.
func scanFlags(s string) Flags {
	var f Flags
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\n':
			f |= FlagHasNewline
		case '"':
			f |= FlagHasQuote
		}
	}
	return f
}
