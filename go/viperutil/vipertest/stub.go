/*
Copyright 2026 The Codepoint Authors.

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

// Package vipertest stubs configuration values in tests.
package vipertest

import (
	"testing"

	"codepoint.dev/codepoint/go/viperutil"
)

// Stub overrides a configuration value for the duration of a test. The
// returned function restores the previous value and is usually deferred:
//
//	defer vipertest.Stub(t, ucddata.CacheDirConf, t.TempDir())()
func Stub[T any](t *testing.T, val viperutil.Value[T], stub T) func() {
	t.Helper()

	prev := val.Get()
	val.Set(stub)
	return func() {
		val.Set(prev)
	}
}
