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

import "fmt"

// ConstructError is returned by a constructor in this package when its
// arguments cannot form a valid Node. A failed constructor always
// returns a nil *Node alongside a non-nil *ConstructError.
type ConstructError struct {
	// Op names the constructor that failed, e.g. "NewTypedLiteral".
	Op string
	// Reason describes why construction failed.
	Reason string
	// Err, if non-nil, is the underlying error that caused the failure.
	Err error
}

// Error implements the error interface.
func (e *ConstructError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("node: %s: %s: %v", e.Op, e.Reason, e.Err)
	}
	return fmt.Sprintf("node: %s: %s", e.Op, e.Reason)
}

// Unwrap provides compatibility with Go's standard errors package.
func (e *ConstructError) Unwrap() error {
	return e.Err
}

func newConstructError(op, reason string, err error) *ConstructError {
	return &ConstructError{Op: op, Reason: reason, Err: err}
}
