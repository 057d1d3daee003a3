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

func assertOwned(t *testing.T, s *String, want string) {
	t.Helper()
	require.False(t, s.Moved())
	assert.Equal(t, len(want), s.Size())
	assert.Equal(t, want, string(s.Data()))
	require.Len(t, s.buf, s.Size()+1)
	assert.Equal(t, Sentinel, s.buf[s.Size()], "missing sentinel")
}

func TestConstructors(t *testing.T) {
	testCases := []struct {
		name string
		s    *String
		want string
	}{
		{"Empty", Empty(), ""},
		{"New", New([]byte("abcd")), "abcd"},
		{"NewNil", New(nil), ""},
		{"FromCString", FromCString([]byte("ab\x00cd")), "ab"},
		{"FromCStringNoNUL", FromCString([]byte("abcd")), "abcd"},
		{"Repeat", Repeat(3, 'x'), "xxx"},
		{"RepeatZero", Repeat(0, 'x'), ""},
		{"FromBytes", FromBytes(0xe2, 0x98, 0xba), "☺"},
		{"FromBytesNUL", FromBytes(0x00), "\x00"},
		{"Literal", Literal("☺☻☹"), "☺☻☹"},
		{"LiteralBytes", LiteralBytes('h', 'i'), "hi"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assertOwned(t, tc.s, tc.want)
		})
	}

	assert.Panics(t, func() { Repeat(-1, 'x') })
}

func TestNewCopiesInput(t *testing.T) {
	in := []byte("abcd")
	s := New(in)
	in[0] = 'z'
	assert.Equal(t, "abcd", s.String())
}

func TestClone(t *testing.T) {
	s := Literal("日a本b")
	c := s.Clone()
	assertOwned(t, c, "日a本b")
	assert.NotSame(t, &s.buf[0], &c.buf[0])

	s.Release()
	assert.True(t, s.Moved())
	assertOwned(t, c, "日a本b")

	assertOwned(t, s.Clone(), "")
}

func TestConcat(t *testing.T) {
	a := Literal("abc")
	b := Literal("☺")
	c := a.Concat(b)
	assertOwned(t, c, "abc☺")
	assertOwned(t, a, "abc")
	assertOwned(t, b, "☺")

	assertOwned(t, Empty().Concat(Empty()), "")

	moved := Literal("gone")
	moved.Move()
	assertOwned(t, a.Concat(moved), "abc")
}

func TestMove(t *testing.T) {
	s := Literal("abcd")
	data := &s.buf[0]

	m := s.Move()
	assert.True(t, s.Moved())
	assert.Equal(t, 0, s.Size())
	assert.Nil(t, s.Data())
	assertOwned(t, m, "abcd")
	assert.Same(t, data, &m.buf[0], "move must not copy")

	// Releasing a moved-out string is a no-op.
	s.Release()
	s.Release()
	assert.True(t, s.Moved())
}

func TestAssign(t *testing.T) {
	dst := Literal("old")
	src := Literal("new")
	data := &src.buf[0]

	dst.Assign(src)
	assertOwned(t, dst, "new")
	assert.Same(t, data, &dst.buf[0])
	assert.True(t, src.Moved())

	dst.Assign(dst)
	assertOwned(t, dst, "new")

	dst.Assign(src)
	assert.True(t, dst.Moved())
}

func TestIteration(t *testing.T) {
	testCases := []struct {
		in    string
		runes []rune
		width []int
	}{
		{"", nil, nil},
		{"abcd", []rune{'a', 'b', 'c', 'd'}, []int{1, 1, 1, 1}},
		{"☺☻☹", []rune{'☺', '☻', '☹'}, []int{3, 3, 3}},
		{"a\x80b", []rune{'a', utf8.RuneError, 'b'}, []int{1, 1, 1}},
		{"\xf0\x9f\x98", []rune{utf8.RuneError, utf8.RuneError, utf8.RuneError}, []int{1, 1, 1}},
		{"\U0010FFFF", []rune{0x10FFFF}, []int{4}},
	}

	for _, tc := range testCases {
		s := Literal(tc.in)

		var (
			runes []rune
			width []int
		)
		for it, end := s.Begin(), s.End(); it != end; it = it.Next() {
			require.False(t, it.Done())
			runes = append(runes, it.Rune())
			width = append(width, it.Width())
		}
		assert.Equal(t, tc.runes, runes, "iterating %q", tc.in)
		assert.Equal(t, tc.width, width, "iterating %q", tc.in)

		runes = nil
		offset := 0
		for i, r := range s.Runes() {
			assert.Equal(t, offset, i, "offset in %q", tc.in)
			offset += tc.width[len(runes)]
			runes = append(runes, r)
		}
		assert.Equal(t, tc.runes, runes, "ranging %q", tc.in)
	}
}

func TestIteratorTerminal(t *testing.T) {
	s := Literal("é")
	end := s.End()
	assert.True(t, end.Done())
	assert.Equal(t, utf8.RuneError, end.Rune())
	assert.Equal(t, 0, end.Width())
	assert.Equal(t, end, end.Next())

	it := s.Begin().Next()
	assert.Equal(t, end, it)
	assert.True(t, it.View().Empty())

	moved := Literal("x")
	moved.Release()
	assert.Equal(t, moved.Begin(), moved.End())
}

func TestRunesBreak(t *testing.T) {
	var got []rune
	for _, r := range Literal("☺☻☹").Runes() {
		got = append(got, r)
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, []rune{'☺', '☻'}, got)
}

func TestStringer(t *testing.T) {
	s := Literal("日本語")
	assert.Equal(t, "日本語", s.String())
	assert.Equal(t, "日本語", s.View().String())
	assert.Equal(t, "", Empty().String())
}
