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

package node_test

import (
	"strings"
	"testing"

	"github.com/jplu/rdfterm/node"
)

func TestNewStringBlankCurieURI(t *testing.T) {
	s := node.NewString("hello")
	if s.Type() != node.Literal || s.String() != "hello" {
		t.Errorf("NewString: got type=%v body=%q", s.Type(), s.String())
	}

	b := node.NewBlank("b0")
	if b.Type() != node.Blank || b.String() != "b0" {
		t.Errorf("NewBlank: got type=%v body=%q", b.Type(), b.String())
	}

	c := node.NewCurie("rdf:type")
	if c.Type() != node.Curie || c.String() != "rdf:type" {
		t.Errorf("NewCurie: got type=%v body=%q", c.Type(), c.String())
	}

	u := node.NewURI("http://example.org/")
	if u.Type() != node.URI || u.String() != "http://example.org/" {
		t.Errorf("NewURI: got type=%v body=%q", u.Type(), u.String())
	}
}

// TestNewStringFlags is S6: new_string("hello\n\"world\"") carries both
// has_newline and has_quote.
func TestNewStringFlags(t *testing.T) {
	n := node.NewString("hello\n\"world\"")
	if n.Flags()&node.FlagHasNewline == 0 {
		t.Error("expected FlagHasNewline")
	}
	if n.Flags()&node.FlagHasQuote == 0 {
		t.Error("expected FlagHasQuote")
	}
}

// TestNewFileURI covers S2/S3: plain and host-qualified file URIs.
func TestNewFileURI(t *testing.T) {
	tests := []struct {
		name string
		path string
		host string
		want string
	}{
		{"unix path", "/foo/bar baz", "", "file:///foo/bar%20baz"},
		{"with host", "/foo/bar", "example.org", "file://example.org/foo/bar"},
		{"windows drive", "C:/Users/x", "", "file:///C:/Users/x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := node.NewFileURI(tt.path, tt.host)
			if n.Type() != node.URI {
				t.Fatalf("NewFileURI returned type %v, want URI", n.Type())
			}
			if got := n.String(); got != tt.want {
				t.Errorf("NewFileURI(%q, %q) = %q, want %q", tt.path, tt.host, got, tt.want)
			}
		})
	}
}

// TestNewPlainLiteral is S5: new_plain_literal("hallo", "de") has body
// "hallo", FlagHasLanguage set, and a Literal meta child "de".
func TestNewPlainLiteral(t *testing.T) {
	n, err := node.NewPlainLiteral("hallo", "de")
	if err != nil {
		t.Fatalf("NewPlainLiteral: %v", err)
	}
	if n.Type() != node.Literal || n.String() != "hallo" {
		t.Fatalf("got type=%v body=%q", n.Type(), n.String())
	}
	if n.Flags()&node.FlagHasLanguage == 0 {
		t.Error("expected FlagHasLanguage")
	}
	lang := n.Language()
	if lang == nil || lang.Type() != node.Literal || lang.String() != "de" {
		t.Errorf("Language() = %v, want Literal \"de\"", lang)
	}
}

func TestNewPlainLiteralNoLang(t *testing.T) {
	n, err := node.NewPlainLiteral("hello", "")
	if err != nil {
		t.Fatalf("NewPlainLiteral: %v", err)
	}
	if !node.Equals(n, node.NewString("hello")) {
		t.Error("NewPlainLiteral with empty lang should equal NewString")
	}
}

func TestNewPlainLiteralInvalidTag(t *testing.T) {
	if _, err := node.NewPlainLiteral("hello", "!!!not-a-tag"); err == nil {
		t.Fatal("expected an error for a malformed language tag")
	}
}

func TestNewTypedLiteral(t *testing.T) {
	dt := node.NewURI("http://www.w3.org/2001/XMLSchema#integer")
	n, err := node.NewTypedLiteral("42", dt)
	if err != nil {
		t.Fatalf("NewTypedLiteral: %v", err)
	}
	if n.Type() != node.Literal || n.String() != "42" {
		t.Fatalf("got type=%v body=%q", n.Type(), n.String())
	}
	if n.Flags()&node.FlagHasDatatype == 0 {
		t.Error("expected FlagHasDatatype")
	}
	got := n.Datatype()
	if got == nil || got.Type() != node.URI || got.String() != dt.String() {
		t.Errorf("Datatype() = %v, want URI %q", got, dt.String())
	}
}

func TestNewTypedLiteralNilDatatype(t *testing.T) {
	n, err := node.NewTypedLiteral("hello", nil)
	if err != nil {
		t.Fatalf("NewTypedLiteral: %v", err)
	}
	if !node.Equals(n, node.NewString("hello")) {
		t.Error("NewTypedLiteral with nil datatype should equal NewString")
	}
}

func TestNewTypedLiteralRejectsNonURIDatatype(t *testing.T) {
	if _, err := node.NewTypedLiteral("x", node.NewBlank("b0")); err == nil {
		t.Fatal("expected an error when datatype is not a URI node")
	}
}

// TestNewTypedLiteralRejectsLangString ensures has_datatype and
// has_language stay mutually exclusive (property 5): rdf:langString must
// be rejected as an explicit datatype since a language-tagged literal
// must go through NewPlainLiteral instead.
func TestNewTypedLiteralRejectsLangString(t *testing.T) {
	dt := node.NewURI("http://www.w3.org/1999/02/22-rdf-syntax-ns#langString")
	if _, err := node.NewTypedLiteral("hello", dt); err == nil {
		t.Fatal("expected an error when datatype is rdf:langString")
	}
}

// TestNewResolvedURI is S1: resolving "rel/uri" against
// "http://example.org/" yields "http://example.org/rel/uri".
func TestNewResolvedURI(t *testing.T) {
	base := node.NewURI("http://example.org/")
	got, err := node.NewResolvedURI("rel/uri", base)
	if err != nil {
		t.Fatalf("NewResolvedURI: %v", err)
	}
	if want := "http://example.org/rel/uri"; got.String() != want {
		t.Errorf("NewResolvedURI = %q, want %q", got.String(), want)
	}
}

// TestNewResolvedURIDotSegments is S7: the resolver merges ".." segments
// against the base path per RFC 3986 §5.3.
func TestNewResolvedURIDotSegments(t *testing.T) {
	base := node.NewURI("http://example.org/a/b/c")
	got, err := node.NewResolvedURI("../x", base)
	if err != nil {
		t.Fatalf("NewResolvedURI: %v", err)
	}
	if want := "http://example.org/a/x"; got.String() != want {
		t.Errorf("NewResolvedURI = %q, want %q", got.String(), want)
	}
}

func TestNewResolvedURIEmptyReference(t *testing.T) {
	base := node.NewURI("http://example.org/a/b")
	got, err := node.NewResolvedURI("", base)
	if err != nil {
		t.Fatalf("NewResolvedURI: %v", err)
	}
	if !node.Equals(got, base) {
		t.Error("resolving an empty reference should return a copy of base")
	}
}

func TestNewResolvedURIRequiresURIBase(t *testing.T) {
	if _, err := node.NewResolvedURI("x", node.NewBlank("b0")); err == nil {
		t.Fatal("expected an error when base is not a URI node")
	}
}

func TestNewRelativeURI(t *testing.T) {
	base := node.NewURI("http://example.org/a/b/")
	target := "http://example.org/a/b/c"

	got, err := node.NewRelativeURI(target, base, nil)
	if err != nil {
		t.Fatalf("NewRelativeURI: %v", err)
	}
	if want := "c"; got.String() != want {
		t.Errorf("NewRelativeURI = %q, want %q", got.String(), want)
	}
}

func TestNewRelativeURIOutsideRoot(t *testing.T) {
	base := node.NewURI("http://example.org/a/b/")
	root := node.NewURI("http://example.org/a/b/")
	target := "http://example.org/other/c"

	got, err := node.NewRelativeURI(target, base, root)
	if err != nil {
		t.Fatalf("NewRelativeURI: %v", err)
	}
	if got.String() != target {
		t.Errorf("target outside root should serialize absolutely: got %q, want %q", got.String(), target)
	}
}

func TestNewRelativeURIRoundTripsThroughResolve(t *testing.T) {
	base := node.NewURI("http://example.org/a/b/c")
	target := "http://example.org/a/x/y"

	rel, err := node.NewRelativeURI(target, base, nil)
	if err != nil {
		t.Fatalf("NewRelativeURI: %v", err)
	}
	resolved, err := node.NewResolvedURI(rel.String(), base)
	if err != nil {
		t.Fatalf("NewResolvedURI: %v", err)
	}
	if resolved.String() != target {
		t.Errorf("round trip: relativize(%q) then resolve = %q, want %q", target, resolved.String(), target)
	}
}

// TestEqualsByStructure is S8: two independently constructed URI nodes
// with the same body are equal and compare equal.
func TestEqualsByStructure(t *testing.T) {
	a := node.NewURI("http://x")
	b := node.NewURI("http://x")
	if !node.Equals(a, b) {
		t.Error("independently constructed identical URI nodes should be Equals")
	}
	if node.Compare(a, b) != 0 {
		t.Error("independently constructed identical URI nodes should Compare equal")
	}
	if a == b {
		t.Error("should be distinct allocations")
	}
}

func TestNewFileURIEscapesSpecialChars(t *testing.T) {
	n := node.NewFileURI("/a b/c#d", "")
	if strings.Contains(n.String(), " ") {
		t.Errorf("file URI should not contain a literal space: %q", n.String())
	}
}
