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
	"strings"

	"github.com/maheshvaikri-code/ison/ison"
)

// A FieldError is one constraint violation, located by block, row index
// and field name.
type FieldError struct {
	Block   string
	Row     int
	Field   string
	Message string
}

// Path returns the dotted location of the violation, e.g.
// 'users.row[2].email'.
func (e FieldError) Path() string {
	if e.Field == "" {
		return e.Block
	}
	return fmt.Sprintf("%s.row[%d].%s", e.Block, e.Row, e.Field)
}

func (e FieldError) Error() string {
	return e.Path() + ": " + e.Message
}

// Errors is an aggregate of every violation found in one validation
// pass.
type Errors []FieldError

func (e Errors) Error() string {
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

// A TableSchema validates the rows of one block. Field order is the
// order of Field calls; fields of the block that no schema mentions are
// ignored.
type TableSchema struct {
	name   string
	fields []fieldRule
}

type fieldRule struct {
	name   string
	schema FieldSchema
}

// Table starts a schema for the named block.
func Table(name string) TableSchema {
	return TableSchema{name: name}
}

// Name returns the block name this schema applies to.
func (t TableSchema) Name() string {
	return t.name
}

// Field adds a constraint for the named field, returning an extended
// copy; the receiver is unchanged.
func (t TableSchema) Field(name string, s FieldSchema) TableSchema {
	fields := make([]fieldRule, len(t.fields), len(t.fields)+1)
	copy(fields, t.fields)
	t.fields = append(fields, fieldRule{name: name, schema: s})
	return t
}

// Validate checks every row of the block against every field constraint
// and returns the aggregate of all violations; it never stops at the
// first one. A nil return means the block is valid.
func (t TableSchema) Validate(b *ison.Block) Errors {
	var errs Errors
	for i, row := range b.Rows {
		for _, fr := range t.fields {
			v, present := row[fr.name]
			if err := fr.schema.check(v, present); err != nil {
				errs = append(errs, FieldError{
					Block:   b.Name,
					Row:     i,
					Field:   fr.name,
					Message: err.Error(),
				})
			}
		}
	}
	return errs
}

// Normalize returns a copy of the block's rows with declared defaults
// substituted for absent or null fields. The block itself is never
// mutated.
func (t TableSchema) Normalize(b *ison.Block) []ison.Row {
	rows := make([]ison.Row, len(b.Rows))
	for i, row := range b.Rows {
		out := make(ison.Row, len(row))
		for k, v := range row {
			out[k] = v
		}
		for _, fr := range t.fields {
			v, present := out[fr.name]
			if present && !v.IsNull() {
				continue
			}
			if def, ok := fr.schema.fallback(); ok {
				out[fr.name] = def
			}
		}
		rows[i] = out
	}
	return rows
}

// A DocumentSchema validates several blocks of one document.
type DocumentSchema struct {
	tables   []TableSchema
	optional map[string]bool
}

// Document starts an empty document schema.
func Document() DocumentSchema {
	return DocumentSchema{}
}

// Table adds a required block schema, returning an extended copy.
func (d DocumentSchema) Table(t TableSchema) DocumentSchema {
	tables := make([]TableSchema, len(d.tables), len(d.tables)+1)
	copy(tables, d.tables)
	d.tables = append(tables, t)
	return d
}

// Optional adds a block schema that is only applied when the block is
// present.
func (d DocumentSchema) Optional(t TableSchema) DocumentSchema {
	d = d.Table(t)
	opt := make(map[string]bool, len(d.optional)+1)
	for k, v := range d.optional {
		opt[k] = v
	}
	opt[t.name] = true
	d.optional = opt
	return d
}

// Validate applies every table schema to its block, aggregating all
// violations. A missing required block contributes a single error for
// the block itself.
func (d DocumentSchema) Validate(doc *ison.Document) Errors {
	var errs Errors
	for _, t := range d.tables {
		b, ok := doc.Get(t.name)
		if !ok {
			if !d.optional[t.name] {
				errs = append(errs, FieldError{Block: t.name, Message: "required block is missing"})
			}
			continue
		}
		errs = append(errs, t.Validate(b)...)
	}
	return errs
}
