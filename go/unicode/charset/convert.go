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

package charset

import (
	"fmt"

	"rflx.io/rflx/go/unicode/utf8"
)

// ErrFailedConversion counts the code points that could not be decoded
// from the source or encoded in the destination. Each of them was
// replaced by '?'.
type ErrFailedConversion int

func (e ErrFailedConversion) Error() string {
	return fmt.Sprintf("failed to convert %d codepoints", e)
}

func grow(dst []byte, nDst int) []byte {
	if len(dst)-nDst >= utf8.UTFMax {
		return dst
	}
	newDst := make([]byte, 2*len(dst)+utf8.UTFMax)
	copy(newDst, dst[:nDst])
	return newDst
}

func encodeOrReplace(dst []byte, dstCharset Charset, cp rune, failed *int) int {
	w := dstCharset.EncodeRune(dst, cp)
	if w < 0 {
		*failed++
		w = dstCharset.EncodeRune(dst, '?')
	}
	return w
}

func convertFastFromUTF8(dst []byte, dstCharset Charset, src []byte) ([]byte, error) {
	var failed, nDst int

	if dst == nil {
		dst = make([]byte, len(src)*3)
	} else {
		dst = dst[:cap(dst)]
	}

	for len(src) > 0 {
		cp, width := utf8.DecodeRune(src)
		if cp == RuneError && width < 3 {
			failed++
			cp = '?'
		}
		src = src[width:]

		dst = grow(dst, nDst)
		nDst += encodeOrReplace(dst[nDst:], dstCharset, cp, &failed)
	}

	if failed > 0 {
		return dst[:nDst], ErrFailedConversion(failed)
	}
	return dst[:nDst], nil
}

func convertSlow(dst []byte, dstCharset Charset, src []byte, srcCharset Charset) ([]byte, error) {
	var failed, nDst int

	if dst == nil {
		dst = make([]byte, len(src)*3)
	} else {
		dst = dst[:cap(dst)]
	}

	for len(src) > 0 {
		cp, width := srcCharset.DecodeRune(src)
		if decodeFailed(srcCharset, src, cp, width) {
			failed++
			cp = '?'
		}
		src = src[width:]

		dst = grow(dst, nDst)
		nDst += encodeOrReplace(dst[nDst:], dstCharset, cp, &failed)
	}

	if failed > 0 {
		return dst[:nDst], ErrFailedConversion(failed)
	}
	return dst[:nDst], nil
}

// Convert transforms `src`, encoded with Charset `srcCharset`, and
// changes its encoding so that it becomes encoded with `dstCharset`.
// The result is written into `dst` if `dst` is not nil; otherwise
// a new byte slice will be allocated to store the result.
//
// When dstCharset is a superset of srcCharset, src is returned as is.
// Conversion never stops early: malformed and unrepresentable code points
// become '?', and their number is returned as an ErrFailedConversion
// together with the converted bytes.
func Convert(dst []byte, dstCharset Charset, src []byte, srcCharset Charset) ([]byte, error) {
	if dstCharset.IsSuperset(srcCharset) {
		return src, nil
	}
	switch srcCharset.(type) {
	case Charset_utf8mb4:
		return convertFastFromUTF8(dst, dstCharset, src)
	default:
		return convertSlow(dst, dstCharset, src, srcCharset)
	}
}

// ConvertFromUTF8 is Convert with a UTF-8 source.
func ConvertFromUTF8(dst []byte, dstCharset Charset, src []byte) ([]byte, error) {
	return Convert(dst, dstCharset, src, Charset_utf8mb4{})
}

// EncodeFromUTF8 encodes the UTF-8 text in into cs. The UTF-16 charsets
// go through golang.org/x/text, which replaces malformed input with
// U+FFFD instead of failing.
func EncodeFromUTF8(cs Charset, in []byte) ([]byte, error) {
	if enc := textEncoding(cs); enc != nil {
		return enc.NewEncoder().Bytes(in)
	}
	return ConvertFromUTF8(nil, cs, in)
}

// DecodeToUTF8 decodes in, encoded with cs, into UTF-8.
func DecodeToUTF8(cs Charset, in []byte) ([]byte, error) {
	if enc := textEncoding(cs); enc != nil {
		return enc.NewDecoder().Bytes(in)
	}
	return Convert(nil, Charset_utf8mb4{}, in, cs)
}
