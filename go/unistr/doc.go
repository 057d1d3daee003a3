/*
Copyright 2026 The rflx Authors.

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

// Package unistr provides an immutable, single-owner byte string and a
// borrowed view type, both iterated by Unicode code point rather than by
// byte.
//
// A String exclusively owns its buffer. Ownership moves with Move and
// Assign, which leave the source empty; Clone is the only way to duplicate
// content. A View borrows bytes it does not own and compares by identity:
// two views are == only when they cover the same region of the same
// backing memory.
package unistr
