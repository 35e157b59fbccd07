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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentAddBlock(t *testing.T) {
	doc := NewDocument()
	require.NoError(t, doc.AddBlock(NewBlock("table", "users")))
	require.NoError(t, doc.AddBlock(NewBlock("object", "config")))
	assert.Equal(t, 2, doc.Len())

	err := doc.AddBlock(NewBlock("table", "users"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate block name")

	b, ok := doc.Get("config")
	require.True(t, ok)
	assert.Equal(t, "object", b.Kind)

	_, ok = doc.Get("missing")
	assert.False(t, ok)
	assert.False(t, doc.Has("missing"))
	assert.True(t, doc.Has("users"))
}

func TestBlockQueries(t *testing.T) {
	b := NewBlock("table", "t")
	b.AddField("id", "int")
	b.AddField("name", "")
	b.AddComputedField("total")
	b.AddRow(Row{"id": Int(1), "name": String("a"), "total": Int(1)})
	b.AddRow(Row{"id": Int(2), "name": String("b"), "total": Int(2)})
	b.Summary = "ignored by Size"

	assert.Equal(t, 2, b.Size())
	assert.Equal(t, []string{"id", "name", "total"}, b.FieldNames())
	assert.Equal(t, []string{"total"}, b.ComputedFields())

	row, ok := b.Row(1)
	require.True(t, ok)
	assert.Equal(t, Int(2), row["id"])

	_, ok = b.Row(2)
	assert.False(t, ok)
	_, ok = b.Row(-1)
	assert.False(t, ok)

	// FieldNames returns a copy, not an alias.
	names := b.FieldNames()
	names[0] = "mutated"
	assert.Equal(t, "id", b.Fields[0])
}

func TestValueAccessors(t *testing.T) {
	i, ok := Int(42).AsInt()
	require.True(t, ok)
	assert.Equal(t, int64(42), i)

	_, ok = Int(42).AsBool()
	assert.False(t, ok)

	// Ints promote to float on read.
	f, ok := Int(42).AsFloat()
	require.True(t, ok)
	assert.Equal(t, 42.0, f)

	f, ok = Float(2.5).AsFloat()
	require.True(t, ok)
	assert.Equal(t, 2.5, f)

	s, ok := String("x").AsString()
	require.True(t, ok)
	assert.Equal(t, "x", s)

	r, ok := Ref(Reference{ID: "9"}).AsRef()
	require.True(t, ok)
	assert.Equal(t, "9", r.ID)

	assert.True(t, Null().IsNull())
	assert.False(t, Int(0).IsNull())

	var zero Value
	assert.True(t, zero.IsNull())
}

func TestValueInterface(t *testing.T) {
	assert.Nil(t, Null().Interface())
	assert.Equal(t, true, Bool(true).Interface())
	assert.Equal(t, int64(7), Int(7).Interface())
	assert.Equal(t, 2.5, Float(2.5).Interface())
	assert.Equal(t, "x", String("x").Interface())
	assert.Equal(t, Reference{ID: "9"}, Ref(Reference{ID: "9"}).Interface())
}

func TestValueText(t *testing.T) {
	assert.Equal(t, "~", Null().Text())
	assert.Equal(t, "true", Bool(true).Text())
	assert.Equal(t, "false", Bool(false).Text())
	assert.Equal(t, "-17", Int(-17).Text())
	assert.Equal(t, "2.5", Float(2.5).Text())
	assert.Equal(t, "hello", String("hello").Text())
	assert.Equal(t, `"two words"`, String("two words").Text())
	assert.Equal(t, ":OWNS:5", Ref(Reference{ID: "5", TypeTag: "OWNS"}).Text())
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "Null", TypeNull.String())
	assert.Equal(t, "Reference", TypeReference.String())
	assert.Equal(t, "Unknown", Type(99).String())
}
