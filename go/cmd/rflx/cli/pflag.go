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

package cli

import (
	"github.com/spf13/pflag"

	"rflx.io/rflx/go/unicode/charset"
)

// CharsetFlag adds the pflag.Value interface to a charset.Charset.
type CharsetFlag struct {
	charset.Charset
}

var _ pflag.Value = (*CharsetFlag)(nil)

// NewCharsetFlag returns a flag holding def.
func NewCharsetFlag(def charset.Charset) *CharsetFlag {
	return &CharsetFlag{Charset: def}
}

// Set is part of the pflag.Value interface.
func (v *CharsetFlag) Set(arg string) error {
	cs, err := charset.Lookup(arg)
	if err != nil {
		return err
	}

	v.Charset = cs

	return nil
}

// String is part of the pflag.Value interface.
func (v *CharsetFlag) String() string {
	if v.Charset == nil {
		return ""
	}
	return v.Charset.Name()
}

// Type is part of the pflag.Value interface.
func (v *CharsetFlag) Type() string {
	return "charset"
}
