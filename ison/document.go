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

// A Row maps field names to values. Its key set is fixed by the parent
// block's field header; field order lives on the Block, not the Row.
type Row map[string]Value

// A FieldInfo describes one declared field of a block. The declared type
// is advisory metadata only; it never alters how row values are parsed.
type FieldInfo struct {
	// Name is the field name, unique within its block.
	Name string

	// DeclaredType is the ':type' annotation, verbatim, or "" if absent.
	// A ':computed' marker sets Computed instead and records no type.
	DeclaredType string

	// Computed marks a derived field. The core stores values for computed
	// fields but never computes them.
	Computed bool
}

// header returns the field-header token for this field.
func (fi FieldInfo) header() string {
	switch {
	case fi.Computed:
		return fi.Name + ":computed"
	case fi.DeclaredType != "":
		return fi.Name + ":" + fi.DeclaredType
	}
	return fi.Name
}

// A Block is a named collection of rows of kind 'table' or 'object',
// with an ordered field header and an optional trailing free-text summary.
type Block struct {
	Kind   string
	Name   string
	Fields []string    // field names, in declaration order
	Info   []FieldInfo // parallel to Fields

	Rows []Row

	// Summary is the verbatim text following the '---' marker,
	// newline-joined. It is never tokenized and never counted as rows.
	Summary string
}

// NewBlock creates an empty block of the given kind and name.
func NewBlock(kind, name string) *Block {
	return &Block{Kind: kind, Name: name}
}

// AddField appends a field with an optional declared type ("" for none).
func (b *Block) AddField(name, declaredType string) {
	b.Fields = append(b.Fields, name)
	b.Info = append(b.Info, FieldInfo{Name: name, DeclaredType: declaredType})
}

// AddComputedField appends a field flagged as computed.
func (b *Block) AddComputedField(name string) {
	b.Fields = append(b.Fields, name)
	b.Info = append(b.Info, FieldInfo{Name: name, Computed: true})
}

// AddRow appends a data row.
func (b *Block) AddRow(row Row) {
	b.Rows = append(b.Rows, row)
}

// Size returns the number of data rows, excluding any summary.
func (b *Block) Size() int {
	return len(b.Rows)
}

// Row returns the i'th data row.
func (b *Block) Row(i int) (Row, bool) {
	if i < 0 || i >= len(b.Rows) {
		return nil, false
	}
	return b.Rows[i], true
}

// FieldNames returns a copy of the field names in declaration order.
func (b *Block) FieldNames() []string {
	names := make([]string, len(b.Fields))
	copy(names, b.Fields)
	return names
}

// FieldType returns the declared type of the named field, if one was
// declared.
func (b *Block) FieldType(name string) (string, bool) {
	for _, fi := range b.Info {
		if fi.Name == name && fi.DeclaredType != "" {
			return fi.DeclaredType, true
		}
	}
	return "", false
}

// ComputedFields returns the names of fields flagged ':computed'.
func (b *Block) ComputedFields() []string {
	var names []string
	for _, fi := range b.Info {
		if fi.Computed {
			names = append(names, fi.Name)
		}
	}
	return names
}

// A Document is an ordered sequence of blocks, produced wholesale by one
// parse call or assembled incrementally with AddBlock. Block names are
// unique within a document; lookups return the first occurrence.
type Document struct {
	Blocks []*Block
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{}
}

// AddBlock appends a block, rejecting duplicate names.
func (d *Document) AddBlock(b *Block) error {
	if d.Has(b.Name) {
		return &UsageError{API: "Document.AddBlock", Msg: "duplicate block name " + b.Name}
	}
	d.Blocks = append(d.Blocks, b)
	return nil
}

// Get returns the first block with the given name.
func (d *Document) Get(name string) (*Block, bool) {
	for _, b := range d.Blocks {
		if b.Name == name {
			return b, true
		}
	}
	return nil, false
}

// Has reports whether a block with the given name exists.
func (d *Document) Has(name string) bool {
	_, ok := d.Get(name)
	return ok
}

// Len returns the number of blocks.
func (d *Document) Len() int {
	return len(d.Blocks)
}
