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

package command

import (
	"iter"

	"rflx.io/rflx/go/unicode/charset"
	"rflx.io/rflx/go/unicode/utf8"
	"rflx.io/rflx/go/unistr"
)

// units decodes data in cs. UTF-8 input is walked with a unistr.View
// iterator; every other charset goes through charset.Units.
func units(cs charset.Charset, data []byte) iter.Seq[charset.Unit] {
	if _, ok := cs.(charset.Charset_utf8mb4); !ok {
		return charset.Units(cs, data)
	}
	return func(yield func(charset.Unit) bool) {
		v := unistr.NewView(data)
		for it, end := v.Begin(), v.End(); it != end; it = it.Next() {
			r, width := it.Rune(), it.Width()
			u := charset.Unit{
				Offset:  v.Size() - it.View().Size(),
				Width:   width,
				Rune:    r,
				Invalid: r == utf8.RuneError && width == 1,
			}
			if !yield(u) {
				return
			}
		}
	}
}
