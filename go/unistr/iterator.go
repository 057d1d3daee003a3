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

package unistr

import (
	"rflx.io/rflx/go/unicode/utf8"
)

// Iterator is a forward-only cursor over the code points of a View. It holds
// the unconsumed suffix together with the code point decoded from its
// front, so every position is decoded exactly once. Iterators are
// comparable, and reaching End means the suffix is the zero-length view at
// the tail.
type Iterator struct {
	v     View
	r     rune
	width int
}

func newIterator(v View) Iterator {
	r, width := utf8.DecodeRune(v.Data())
	return Iterator{v: v, r: r, width: width}
}

// Rune returns the code point at the current position, or utf8.RuneError
// when the bytes there are malformed or the iterator is exhausted.
func (it Iterator) Rune() rune {
	return it.r
}

// Width returns the number of bytes the current code point occupies.
// Malformed bytes have width 1 and an exhausted iterator has width 0.
func (it Iterator) Width() int {
	return it.width
}

// Next returns an iterator positioned after the current code point.
// Advancing an exhausted iterator returns it unchanged.
func (it Iterator) Next() Iterator {
	if it.width == 0 {
		return it
	}
	return newIterator(it.v.Substr(it.width))
}

// View returns the unconsumed suffix.
func (it Iterator) View() View {
	return it.v
}

// Done reports whether no bytes remain.
func (it Iterator) Done() bool {
	return it.v.Empty()
}
