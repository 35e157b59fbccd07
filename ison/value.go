/*
 * Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License").
 * You may not use this file except in compliance with the License.
 * A copy of the License is located at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * or in the "license" file accompanying this file. This file is distributed
 * on an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either
 * express or implied. See the License for the specific language governing
 * permissions and limitations under the License.
 */

package ison

import "strconv"

// A Type represents the type of an ISON value. The variant set is closed;
// there are exactly six kinds of value and no others.
type Type int

const (
	// TypeNull is the type of the null value, written '~' or 'null'.
	TypeNull Type = iota

	// TypeBool is the type of the boolean values 'true' and 'false'.
	TypeBool

	// TypeInt is the type of signed 64-bit integer values.
	TypeInt

	// TypeFloat is the type of 64-bit floating-point values.
	TypeFloat

	// TypeString is the type of string values.
	TypeString

	// TypeReference is the type of reference values, e.g. ':42' or ':OWNS:5'.
	TypeReference
)

var typeNameMap = map[Type]string{
	TypeNull: "Null", TypeBool: "Bool", TypeInt: "Int",
	TypeFloat: "Float", TypeString: "String", TypeReference: "Reference",
}

// String satisfies Stringer.
func (t Type) String() string {
	if s, ok := typeNameMap[t]; ok {
		return s
	}
	return "Unknown"
}

// A Value is a single typed datum in a Row: one of null, bool, int, float,
// string, or reference. The zero Value is null.
type Value struct {
	typ Type
	b   bool
	i   int64
	f   float64
	s   string
	ref Reference
}

// Null returns the null Value.
func Null() Value {
	return Value{typ: TypeNull}
}

// Bool returns a boolean Value.
func Bool(v bool) Value {
	return Value{typ: TypeBool, b: v}
}

// Int returns an integer Value.
func Int(v int64) Value {
	return Value{typ: TypeInt, i: v}
}

// Float returns a floating-point Value.
func Float(v float64) Value {
	return Value{typ: TypeFloat, f: v}
}

// String returns a string Value.
func String(v string) Value {
	return Value{typ: TypeString, s: v}
}

// Ref returns a reference Value.
func Ref(r Reference) Value {
	return Value{typ: TypeReference, ref: r}
}

// Type returns the type of this value.
func (v Value) Type() Type {
	return v.typ
}

// IsNull reports whether this value is null.
func (v Value) IsNull() bool {
	return v.typ == TypeNull
}

// AsBool returns the boolean payload, if this value is a bool.
func (v Value) AsBool() (bool, bool) {
	if v.typ != TypeBool {
		return false, false
	}
	return v.b, true
}

// AsInt returns the integer payload, if this value is an int.
func (v Value) AsInt() (int64, bool) {
	if v.typ != TypeInt {
		return 0, false
	}
	return v.i, true
}

// AsFloat returns the floating-point payload. Ints are promoted, so both
// int and float values report ok.
func (v Value) AsFloat() (float64, bool) {
	switch v.typ {
	case TypeFloat:
		return v.f, true
	case TypeInt:
		return float64(v.i), true
	}
	return 0, false
}

// AsString returns the string payload, if this value is a string.
func (v Value) AsString() (string, bool) {
	if v.typ != TypeString {
		return "", false
	}
	return v.s, true
}

// AsRef returns the reference payload, if this value is a reference.
func (v Value) AsRef() (Reference, bool) {
	if v.typ != TypeReference {
		return Reference{}, false
	}
	return v.ref, true
}

// Interface returns the Go representation of this value: nil, bool, int64,
// float64, string, or Reference.
func (v Value) Interface() interface{} {
	switch v.typ {
	case TypeBool:
		return v.b
	case TypeInt:
		return v.i
	case TypeFloat:
		return v.f
	case TypeString:
		return v.s
	case TypeReference:
		return v.ref
	}
	return nil
}

// Equal reports whether two values have the same type and payload.
func (v Value) Equal(o Value) bool {
	return v == o
}

// Text returns the canonical ISON rendering of this value. Strings are
// quoted and escaped only when emitting them bare would change how they
// read back; see encodeString.
func (v Value) Text() string {
	switch v.typ {
	case TypeBool:
		if v.b {
			return textBoolTrue
		}
		return textBoolFalse
	case TypeInt:
		return strconv.FormatInt(v.i, 10)
	case TypeFloat:
		return formatFloat(v.f)
	case TypeString:
		return encodeString(v.s)
	case TypeReference:
		return v.ref.String()
	}
	return textNull
}

// String satisfies Stringer; it is the canonical text form.
func (v Value) String() string {
	return v.Text()
}
