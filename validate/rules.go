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

package validate

import (
	"fmt"
	"regexp"

	"github.com/maheshvaikri-code/ison/ison"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// A FieldSchema checks one value against a chain of constraints. All
// schemas in this package use value receivers and return modified copies,
// so a partially-built schema can be shared and extended freely.
type FieldSchema interface {
	// check validates a single value; present is false when the row has
	// no value for the field at all.
	check(v ison.Value, present bool) error

	// fallback returns the declared default, if any.
	fallback() (ison.Value, bool)
}

// base carries the constraints common to every field schema.
type base struct {
	optional bool
	def      *ison.Value
}

func (b base) fallback() (ison.Value, bool) {
	if b.def == nil {
		return ison.Null(), false
	}
	return *b.def, true
}

// missing handles an absent or null value. It reports whether checking
// should continue.
func (b base) missing(v ison.Value, present bool) (error, bool) {
	if present && !v.IsNull() {
		return nil, true
	}
	if b.optional || b.def != nil {
		return nil, false
	}
	return fmt.Errorf("required field is missing"), false
}

// A StringSchema validates string values.
type StringSchema struct {
	base
	minLen  *int
	maxLen  *int
	email   bool
	pattern *regexp.Regexp
	oneOf   []string
}

// String creates a string schema; the field is required unless Optional
// or Default is chained.
func String() StringSchema {
	return StringSchema{}
}

// Min requires a minimum length.
func (s StringSchema) Min(n int) StringSchema {
	s.minLen = &n
	return s
}

// Max requires a maximum length.
func (s StringSchema) Max(n int) StringSchema {
	s.maxLen = &n
	return s
}

// Email requires the value to look like an email address.
func (s StringSchema) Email() StringSchema {
	s.email = true
	return s
}

// Regex requires the value to match the given pattern.
func (s StringSchema) Regex(pattern *regexp.Regexp) StringSchema {
	s.pattern = pattern
	return s
}

// OneOf requires the value to be one of the given strings.
func (s StringSchema) OneOf(choices ...string) StringSchema {
	s.oneOf = choices
	return s
}

// Optional allows the field to be absent or null.
func (s StringSchema) Optional() StringSchema {
	s.base.optional = true
	return s
}

// Default declares a value that Normalize substitutes for absent or null
// fields; a field with a default is implicitly not required.
func (s StringSchema) Default(v string) StringSchema {
	d := ison.String(v)
	s.base.def = &d
	return s
}

func (s StringSchema) check(v ison.Value, present bool) error {
	if err, cont := s.missing(v, present); !cont {
		return err
	}

	str, ok := v.AsString()
	if !ok {
		return fmt.Errorf("expected string, got %v", v.Type())
	}
	if s.minLen != nil && len(str) < *s.minLen {
		return fmt.Errorf("string must be at least %d characters", *s.minLen)
	}
	if s.maxLen != nil && len(str) > *s.maxLen {
		return fmt.Errorf("string must be at most %d characters", *s.maxLen)
	}
	if s.email && !emailPattern.MatchString(str) {
		return fmt.Errorf("invalid email format")
	}
	if s.pattern != nil && !s.pattern.MatchString(str) {
		return fmt.Errorf("string does not match required pattern")
	}
	if len(s.oneOf) > 0 {
		for _, choice := range s.oneOf {
			if str == choice {
				return nil
			}
		}
		return fmt.Errorf("value %q is not one of the allowed choices", str)
	}
	return nil
}

// A NumberSchema validates int and float values.
type NumberSchema struct {
	base
	minVal   *float64
	maxVal   *float64
	intOnly  bool
	positive bool
}

// Number creates a schema accepting ints and floats.
func Number() NumberSchema {
	return NumberSchema{}
}

// Int creates a schema accepting only integer values.
func Int() NumberSchema {
	return NumberSchema{intOnly: true}
}

// Float is an alias for Number.
func Float() NumberSchema {
	return Number()
}

// Min requires a minimum value.
func (s NumberSchema) Min(n float64) NumberSchema {
	s.minVal = &n
	return s
}

// Max requires a maximum value.
func (s NumberSchema) Max(n float64) NumberSchema {
	s.maxVal = &n
	return s
}

// Positive requires a value greater than zero.
func (s NumberSchema) Positive() NumberSchema {
	s.positive = true
	return s
}

// Optional allows the field to be absent or null.
func (s NumberSchema) Optional() NumberSchema {
	s.base.optional = true
	return s
}

// Default declares a value substituted by Normalize.
func (s NumberSchema) Default(v float64) NumberSchema {
	var d ison.Value
	if s.intOnly {
		d = ison.Int(int64(v))
	} else {
		d = ison.Float(v)
	}
	s.base.def = &d
	return s
}

func (s NumberSchema) check(v ison.Value, present bool) error {
	if err, cont := s.missing(v, present); !cont {
		return err
	}

	if s.intOnly {
		if v.Type() != ison.TypeInt {
			return fmt.Errorf("expected integer, got %v", v.Type())
		}
	}
	num, ok := v.AsFloat()
	if !ok {
		return fmt.Errorf("expected number, got %v", v.Type())
	}
	if s.minVal != nil && num < *s.minVal {
		return fmt.Errorf("number must be at least %v", *s.minVal)
	}
	if s.maxVal != nil && num > *s.maxVal {
		return fmt.Errorf("number must be at most %v", *s.maxVal)
	}
	if s.positive && num <= 0 {
		return fmt.Errorf("number must be positive")
	}
	return nil
}

// A BoolSchema validates boolean values.
type BoolSchema struct {
	base
}

// Bool creates a boolean schema.
func Bool() BoolSchema {
	return BoolSchema{}
}

// Optional allows the field to be absent or null.
func (s BoolSchema) Optional() BoolSchema {
	s.base.optional = true
	return s
}

// Default declares a value substituted by Normalize.
func (s BoolSchema) Default(v bool) BoolSchema {
	d := ison.Bool(v)
	s.base.def = &d
	return s
}

func (s BoolSchema) check(v ison.Value, present bool) error {
	if err, cont := s.missing(v, present); !cont {
		return err
	}
	if _, ok := v.AsBool(); !ok {
		return fmt.Errorf("expected boolean, got %v", v.Type())
	}
	return nil
}

// A RefSchema validates reference values.
type RefSchema struct {
	base
	tag          *string
	relationship bool
}

// Ref creates a reference schema.
func Ref() RefSchema {
	return RefSchema{}
}

// Tag requires the reference to carry the given type tag, verbatim.
func (s RefSchema) Tag(tag string) RefSchema {
	s.tag = &tag
	return s
}

// Relationship requires a relationship reference (entirely upper-case
// tag).
func (s RefSchema) Relationship() RefSchema {
	s.relationship = true
	return s
}

// Optional allows the field to be absent or null.
func (s RefSchema) Optional() RefSchema {
	s.base.optional = true
	return s
}

func (s RefSchema) check(v ison.Value, present bool) error {
	if err, cont := s.missing(v, present); !cont {
		return err
	}

	ref, ok := v.AsRef()
	if !ok {
		return fmt.Errorf("expected reference, got %v", v.Type())
	}
	if s.tag != nil && ref.TypeTag != *s.tag {
		return fmt.Errorf("expected reference tag %q, got %q", *s.tag, ref.TypeTag)
	}
	if s.relationship && !ref.IsRelationship() {
		return fmt.Errorf("expected relationship reference, got %q", ref.String())
	}
	return nil
}

// An AnySchema accepts every value; use it to require mere presence.
type AnySchema struct {
	base
}

// Any creates a schema that accepts any non-null value.
func Any() AnySchema {
	return AnySchema{}
}

// Optional allows the field to be absent or null.
func (s AnySchema) Optional() AnySchema {
	s.base.optional = true
	return s
}

func (s AnySchema) check(v ison.Value, present bool) error {
	err, _ := s.missing(v, present)
	return err
}
