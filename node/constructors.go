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
	"strings"
	"sync"

	"github.com/jplu/rdfterm/iri"
	"github.com/jplu/rdfterm/langtag"
)

// nsXSD and nsRDF are the namespaces used by the numeric constructors and
// by the rdf:langString mutual-exclusion check, matching NS_XSD/NS_RDF in
// the original C sources.
const (
	nsXSD = "http://www.w3.org/2001/XMLSchema#"
	nsRDF = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"

	rdfLangStringURI = nsRDF + "langString"
)

// NewString returns a simple Literal node with no datatype or language.
func NewString(s string) *Node {
	return &Node{typ: Literal, flags: scanFlags(s), body: s}
}

// NewBlank returns a Blank node with the given identifier.
func NewBlank(s string) *Node {
	return &Node{typ: Blank, flags: scanFlags(s), body: s}
}

// NewCurie returns a Curie node with the given compact representation,
// e.g. "rdf:type".
func NewCurie(s string) *Node {
	return &Node{typ: Curie, flags: scanFlags(s), body: s}
}

// NewURI returns a URI node wrapping the given URI reference string. The
// string is stored as-is; it is not parsed or validated, mirroring
// serd_new_uri, which accepts any byte string as a URI node's body.
func NewURI(s string) *Node {
	return &Node{typ: URI, flags: scanFlags(s), body: s}
}

// NewFileURI returns a URI node for the local filesystem path, optionally
// qualified with an authority host, escaping it per RFC 8089.
func NewFileURI(path, host string) *Node {
	return NewURI(iri.FileURI(path, host))
}

var (
	langtagOnce   sync.Once
	langtagParser *langtag.Parser
	langtagErr    error
)

func getLangtagParser() (*langtag.Parser, error) {
	langtagOnce.Do(func() {
		langtagParser, langtagErr = langtag.NewParser()
	})
	return langtagParser, langtagErr
}

// NewPlainLiteral returns a Literal node for s. If lang is empty, the
// result is equivalent to NewString(s). Otherwise lang is validated as a
// well-formed BCP 47 language tag (RFC 5646 syntax, not full IANA-registry
// validity — see the note on node.NewPlainLiteral in DESIGN.md) and stored
// verbatim as a Literal meta child, with FlagHasLanguage set.
func NewPlainLiteral(s, lang string) (*Node, error) {
	if lang == "" {
		return NewString(s), nil
	}

	parser, err := getLangtagParser()
	if err != nil {
		return nil, newConstructError("NewPlainLiteral", "language tag registry unavailable", err)
	}
	if _, err := parser.Parse(lang); err != nil {
		return nil, newConstructError("NewPlainLiteral", "malformed language tag", err)
	}

	return &Node{
		typ:   Literal,
		flags: scanFlags(s) | FlagHasLanguage,
		body:  s,
		meta:  &Node{typ: Literal, flags: scanFlags(lang), body: lang},
	}, nil
}

// NewTypedLiteral returns a Literal node for s with datatype dt. If dt is
// nil, the result is equivalent to NewString(s). It fails if dt is not a
// URI node, or if its lexical form is rdf:langString, since
// language-tagged literals must use NewPlainLiteral instead.
func NewTypedLiteral(s string, dt *Node) (*Node, error) {
	if dt == nil {
		return NewString(s), nil
	}
	if dt.Type() != URI {
		return nil, newConstructError("NewTypedLiteral", "datatype must be a URI node", nil)
	}
	if dt.body == rdfLangStringURI {
		return nil, newConstructError("NewTypedLiteral",
			"rdf:langString cannot be used as an explicit datatype; use NewPlainLiteral", nil)
	}

	return &Node{
		typ:   Literal,
		flags: scanFlags(s) | FlagHasDatatype,
		body:  s,
		meta:  dt.Copy(),
	}, nil
}

// NewResolvedURI resolves the IRI reference s against base and returns the
// result as a new URI node. base must itself be an absolute URI node. As a
// special case, an empty s resolves to a copy of base, matching
// serd_new_resolved_uri_i's handling of an empty reference string.
func NewResolvedURI(s string, base *Node) (*Node, error) {
	if base.Type() != URI {
		return nil, newConstructError("NewResolvedURI", "base must be a URI node", nil)
	}
	if s == "" {
		return base.Copy(), nil
	}

	baseIri, err := iri.ParseIri(base.body)
	if err != nil {
		return nil, newConstructError("NewResolvedURI", "base is not a valid absolute IRI", err)
	}

	resolved, err := baseIri.Resolve(s)
	if err != nil {
		return nil, newConstructError("NewResolvedURI", "could not resolve reference against base", err)
	}

	return NewURI(resolved.String()), nil
}

// NewRelativeURI serializes s, an absolute URI, relative to base. If root
// is non-nil, the result is constrained not to traverse above it: when s
// does not fall under root's path, or when relativizing against base
// would require climbing above root, the full absolute form of s is
// returned instead of a relative reference.
func NewRelativeURI(s string, base, root *Node) (*Node, error) {
	if base.Type() != URI {
		return nil, newConstructError("NewRelativeURI", "base must be a URI node", nil)
	}

	absIri, err := iri.ParseIri(s)
	if err != nil {
		return nil, newConstructError("NewRelativeURI", "target is not a valid absolute IRI", err)
	}
	baseIri, err := iri.ParseIri(base.body)
	if err != nil {
		return nil, newConstructError("NewRelativeURI", "base is not a valid absolute IRI", err)
	}

	if root != nil {
		if root.Type() != URI {
			return nil, newConstructError("NewRelativeURI", "root must be a URI node", nil)
		}
		rootIri, err := iri.ParseIri(root.body)
		if err != nil {
			return nil, newConstructError("NewRelativeURI", "root is not a valid absolute IRI", err)
		}
		if !strings.HasPrefix(absIri.Path(), rootIri.Path()) ||
			!strings.HasPrefix(baseIri.Path(), rootIri.Path()) {
			return NewURI(absIri.String()), nil
		}
	}

	rel, err := baseIri.Relativize(absIri)
	if err != nil {
		// The target's path contains dot-segments that cannot be expressed
		// relatively; fall back to the full absolute form.
		return NewURI(absIri.String()), nil
	}

	return NewURI(rel.String()), nil
}
