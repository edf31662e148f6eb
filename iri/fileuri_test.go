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

//nolint:testpackage // white-box test; exercises unexported isWindowsPath too.
package iri

import "testing"

func TestIsRelative(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"empty", "", true},
		{"absolute http", "http://example.com/", false},
		{"absolute urn", "urn:isbn:0-486-27557-4", false},
		{"scheme with digits and dots", "z39.50r://host", false},
		{"relative path", "foo/bar", true},
		{"relative with colon not a scheme terminator first", "/a:b", true},
		{"starts with colon", ":foo", true},
		{"fragment only", "#frag", true},
		{"no scheme terminator before slash", "a/b:c", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRelative(tt.input); got != tt.want {
				t.Errorf("IsRelative(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFileURI(t *testing.T) {
	tests := []struct {
		name string
		path string
		host string
		want string
	}{
		{"unix path no host", "/foo/bar", "", "file:///foo/bar"},
		{"unix path with host", "/foo/bar", "host", "file://host/foo/bar"},
		{"escape space and percent", "/a b%c", "", "file:///a%20b%%c"},
		{"windows drive backslashes", `C:\Users\x`, "", "file:///C:/Users/x"},
		{"windows drive with pipe", `C|\Users`, "", "file:///C%7C/Users"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FileURI(tt.path, tt.host); got != tt.want {
				t.Errorf("FileURI(%q, %q) = %q, want %q", tt.path, tt.host, got, tt.want)
			}
		})
	}
}

func TestIsWindowsPath(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"backslash drive", `C:\foo`, true},
		{"forward slash drive", "C:/foo", true},
		{"pipe drive", `C|\foo`, true},
		{"unix path", "/foo/bar", false},
		{"too short", "C:", false},
		{"not a letter", "1:/foo", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isWindowsPath(tt.input); got != tt.want {
				t.Errorf("isWindowsPath(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
