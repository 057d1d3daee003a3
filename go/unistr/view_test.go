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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rflx.io/rflx/go/unicode/utf8"
)

var viewTestStrings = []string{
	"",
	"abcd",
	"☺☻☹",
	"日a本b語ç日ð本Ê語þ日¥本¼語i日©",
	"\x80\x80\x80\x80",
	"aa\xe2",
	"\xed\xa0\x80",
	"a\xe2\x80",
}

func TestViewIdentityEquality(t *testing.T) {
	buf := []byte("☺☻☹")
	other := []byte("☺☻☹")

	a := NewView(buf)
	b := NewView(buf)
	c := NewView(other)

	assert.True(t, a == b, "views of the same pointer and length must be ==")
	assert.False(t, a == c, "views of different buffers must not be ==")
	assert.True(t, a.EqualContent(c))
	assert.False(t, a == a.SubstrN(0, 3))
	assert.True(t, a.Substr(3) == b.Substr(3))
	assert.True(t, a.SubstrN(3, 3) == b.Substr(3).SubstrN(0, 3))

	s := Literal("☺☻☹")
	assert.True(t, s.View() == s.View())
	assert.False(t, s.View() == a)
	assert.True(t, s.View().EqualContent(a))

	assert.True(t, View{} == NewView(nil))
	assert.True(t, View{}.EqualContent(NewView([]byte{})))
}

func TestViewIdentityAcrossDerivations(t *testing.T) {
	buf := []byte("ab☺cd")
	whole := NewView(buf)

	for k := 0; k < len(buf); k++ {
		direct := NewView(buf[k:])
		assert.True(t, whole.Substr(k) == direct, "Substr(%d) and a view of buf[%d:] share start and length", k, k)
		assert.True(t, whole.End() == direct.End(), "tail of buf[%d:]", k)
		for m := 1; k+m <= len(buf); m++ {
			assert.True(t, whole.SubstrN(k, m) == NewView(buf[k:k+m]), "SubstrN(%d, %d)", k, m)
			assert.True(t, whole.SubstrN(k, m) == direct.SubstrN(0, m), "SubstrN(%d, %d) of the suffix", k, m)
		}
	}

	// Empty views reached from different parents at the same address.
	assert.True(t, whole.SubstrN(2, 0) == whole.SubstrN(1, 1).Substr(1))
	assert.True(t, whole.Substr(len(buf)) == NewView(buf[2:]).Substr(len(buf)-2))
	assert.False(t, whole.SubstrN(2, 0) == whole.SubstrN(3, 0))

	suffix := NewView(buf[2:])
	assert.True(t, whole.Begin().Next().Next() == suffix.Begin())

	var steps int
	for it := suffix.Begin(); it != whole.End(); it = it.Next() {
		steps++
		require.LessOrEqual(t, steps, len(buf), "iteration over buf[2:] must reach the end of buf")
	}
	assert.Equal(t, 3, steps)
}

func TestIteratorDecodesEachPosition(t *testing.T) {
	for _, s := range viewTestStrings {
		v := ViewString(s)
		it, end := v.Begin(), v.End()
		for ; it != end; it = it.Next() {
			r, width := utf8.DecodeRune(it.View().Data())
			assert.Equal(t, r, it.Rune(), "rune at %q", it.View().String())
			assert.Equal(t, width, it.Width(), "width at %q", it.View().String())
			assert.Positive(t, it.Width())
		}
		assert.Equal(t, utf8.RuneError, it.Rune())
		assert.Equal(t, 0, it.Width())
		assert.Equal(t, it, it.Next())
	}
}

func TestViewConstructors(t *testing.T) {
	assert.Equal(t, "ab", ViewCString([]byte("ab\x00cd")).String())
	assert.Equal(t, "abcd", ViewCString([]byte("abcd")).String())
	assert.Equal(t, 0, ViewCString([]byte("\x00")).Size())

	v := ViewString("日本")
	assert.Equal(t, 6, v.Size())
	assert.False(t, v.Empty())
	assert.Equal(t, []byte("日本"), v.Data())

	assert.True(t, ViewString("").Empty())
	assert.Nil(t, View{}.Data())
}

func TestViewSubstr(t *testing.T) {
	v := ViewString("abcdef")

	assert.Equal(t, "def", v.Substr(3).String())
	assert.Equal(t, "abcdef", v.Substr(0).String())
	assert.True(t, v.Substr(6).Empty())
	assert.Equal(t, v.End().View(), v.Substr(6))
	assert.Equal(t, View{}, v.Substr(7))
	assert.Equal(t, View{}, v.Substr(-1))

	assert.Equal(t, "cd", v.SubstrN(2, 2).String())
	assert.Equal(t, "ef", v.SubstrN(4, 2).String())
	assert.True(t, v.SubstrN(6, 0).Empty())
	assert.Equal(t, View{}, v.SubstrN(5, 2))
	assert.Equal(t, View{}, v.SubstrN(-1, 2))
	assert.Equal(t, View{}, v.SubstrN(1, -2))

	// The data of a sub-view cannot grow into the rest of the buffer.
	sub := v.SubstrN(0, 2).Data()
	assert.Equal(t, 2, cap(sub))
}

func TestViewIteration(t *testing.T) {
	v := ViewString("a☺\xffb")
	var got []rune
	for it := v.Begin(); it != v.End(); it = it.Next() {
		got = append(got, it.Rune())
	}
	assert.Equal(t, []rune{'a', '☺', utf8.RuneError, 'b'}, got)

	it := v.Begin().Next()
	assert.Equal(t, "☺\xffb", it.View().String())
	assert.True(t, it.View() == v.Substr(1))
}

func TestViewCodecAgreement(t *testing.T) {
	for _, s := range viewTestStrings {
		b := []byte(s)
		v := NewView(b)

		assert.Equal(t, utf8.Valid(b), v.Valid(), "Valid(%q)", s)
		assert.Equal(t, utf8.ValidString(s), v.Valid(), "ValidString(%q)", s)
		assert.Equal(t, utf8.RuneCount(b), v.RuneCount(), "RuneCount(%q)", s)
		assert.Equal(t, utf8.RuneCountInString(s), v.RuneCount(), "RuneCountInString(%q)", s)
		assert.Equal(t, utf8.FullRune(b), v.FullRune(), "FullRune(%q)", s)

		r1, n1 := utf8.DecodeRune(b)
		r2, n2 := v.DecodeRune()
		assert.Equal(t, r1, r2, "DecodeRune(%q)", s)
		assert.Equal(t, n1, n2, "DecodeRune(%q)", s)

		r1, n1 = utf8.DecodeLastRune(b)
		r2, n2 = v.DecodeLastRune()
		assert.Equal(t, r1, r2, "DecodeLastRune(%q)", s)
		assert.Equal(t, n1, n2, "DecodeLastRune(%q)", s)

		var count int
		for range v.Runes() {
			count++
		}
		assert.Equal(t, v.RuneCount(), count, "Runes(%q)", s)
	}
}

func TestRuneCountScenarios(t *testing.T) {
	assert.Equal(t, 4, Literal("abcd").View().RuneCount())
	assert.Equal(t, 3, Literal("☺☻☹").View().RuneCount())
}
