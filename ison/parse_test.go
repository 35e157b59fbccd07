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

func TestParseBasic(t *testing.T) {
	doc, err := Parse("table.users\nid name\n1 Alice\n2 Bob")
	require.NoError(t, err)
	require.Equal(t, 1, doc.Len())

	users, ok := doc.Get("users")
	require.True(t, ok)
	assert.Equal(t, "table", users.Kind)
	assert.Equal(t, []string{"id", "name"}, users.Fields)
	require.Equal(t, 2, users.Size())

	assert.Equal(t, Int(1), users.Rows[0]["id"])
	assert.Equal(t, String("Alice"), users.Rows[0]["name"])
	assert.Equal(t, Int(2), users.Rows[1]["id"])
	assert.Equal(t, String("Bob"), users.Rows[1]["name"])
}

func TestParseInferencePrecedence(t *testing.T) {
	test := func(text string, expected Value) {
		t.Run(text, func(t *testing.T) {
			doc, err := Parse("table.t\nv\n" + text)
			require.NoError(t, err)
			b, _ := doc.Get("t")
			require.Equal(t, 1, b.Size())
			assert.Equal(t, expected, b.Rows[0]["v"])
		})
	}

	test("~", Null())
	test("null", Null())
	test("true", Bool(true))
	test("false", Bool(false))
	test(":id1", Ref(Reference{ID: "id1"}))
	test(":TAG:id", Ref(Reference{ID: "id", TypeTag: "TAG"}))
	test("42", Int(42))
	test("-17", Int(-17))
	test("0", Int(0))
	test("3.14", Float(3.14))
	test("-2.5", Float(-2.5))
	test("0.0", Float(0))
	test("hello", String("hello"))
	test("1e5", String("1e5"))
	test("NULL", String("NULL"))
	test("TRUE", String("TRUE"))
	test(":foo!", String(":foo!"))
	test(":a:b:c", String(":a:b:c"))

	// Digit strings beyond int64 range stay strings, keeping the exact
	// text instead of a lossy float.
	test("9999999999999999999999999", String("9999999999999999999999999"))
	test("-9999999999999999999999999", String("-9999999999999999999999999"))
}

func TestParseQuotingOverridesInference(t *testing.T) {
	doc, err := Parse("table.t\na b c d\n\"42\" \"true\" \"~\" \":ref\"")
	require.NoError(t, err)

	b, _ := doc.Get("t")
	require.Equal(t, 1, b.Size())
	assert.Equal(t, String("42"), b.Rows[0]["a"])
	assert.Equal(t, String("true"), b.Rows[0]["b"])
	assert.Equal(t, String("~"), b.Rows[0]["c"])
	assert.Equal(t, String(":ref"), b.Rows[0]["d"])
}

func TestParseFieldHeader(t *testing.T) {
	doc, err := Parse("table.products\nid:int name price:float total:computed\n1 Widget 9.99 9.99")
	require.NoError(t, err)

	b, _ := doc.Get("products")
	assert.Equal(t, []string{"id", "name", "price", "total"}, b.Fields)

	typ, ok := b.FieldType("id")
	require.True(t, ok)
	assert.Equal(t, "int", typ)

	_, ok = b.FieldType("name")
	assert.False(t, ok)

	// ':computed' is a flag, not a declared type.
	_, ok = b.FieldType("total")
	assert.False(t, ok)
	assert.Equal(t, []string{"total"}, b.ComputedFields())

	// Declared types are advisory; they never steer inference.
	assert.Equal(t, Int(1), b.Rows[0]["id"])
	assert.Equal(t, Float(9.99), b.Rows[0]["price"])
}

func TestParseMultipleBlocks(t *testing.T) {
	input := "table.users\nid name\n1 Alice\n\nobject.config\nkey value\ndebug true\n"
	doc, err := Parse(input)
	require.NoError(t, err)
	require.Equal(t, 2, doc.Len())

	assert.Equal(t, "users", doc.Blocks[0].Name)
	assert.Equal(t, "config", doc.Blocks[1].Name)
	assert.Equal(t, "object", doc.Blocks[1].Kind)
	assert.Equal(t, Bool(true), doc.Blocks[1].Rows[0]["value"])
}

func TestParseBackToBackHeaders(t *testing.T) {
	// A new block header terminates the previous block even without a
	// separating blank line.
	doc, err := Parse("table.a\nx\n1\ntable.b\ny\n2")
	require.NoError(t, err)
	require.Equal(t, 2, doc.Len())
	assert.Equal(t, 1, doc.Blocks[0].Size())
	assert.Equal(t, 1, doc.Blocks[1].Size())
}

func TestParseComments(t *testing.T) {
	input := "# file comment\ntable.users\n# before fields\nid name\n# between rows\n1 Alice\n2 Bob\n"
	doc, err := Parse(input)
	require.NoError(t, err)

	b, _ := doc.Get("users")
	assert.Equal(t, []string{"id", "name"}, b.Fields)
	assert.Equal(t, 2, b.Size())
}

func TestParseSummary(t *testing.T) {
	input := "table.sales\nregion amount\nnorth 1000\nsouth 2000\n---\nTotal 3000"
	doc, err := Parse(input)
	require.NoError(t, err)

	b, _ := doc.Get("sales")
	assert.Equal(t, 2, b.Size())
	assert.Equal(t, "Total 3000", b.Summary)
}

func TestParseSummaryMultiline(t *testing.T) {
	input := "table.sales\nregion amount\nnorth 1000\n---\nTotal 1000\nAudited: yes\n\ntable.next\nx\n1\n"
	doc, err := Parse(input)
	require.NoError(t, err)
	require.Equal(t, 2, doc.Len())

	b, _ := doc.Get("sales")
	assert.Equal(t, 1, b.Size())
	assert.Equal(t, "Total 1000\nAudited: yes", b.Summary)
}

func TestParseEmptyInput(t *testing.T) {
	test := func(name, input string) {
		t.Run(name, func(t *testing.T) {
			doc, err := Parse(input)
			require.NoError(t, err)
			assert.Equal(t, 0, doc.Len())
		})
	}

	test("empty", "")
	test("blank lines", "\n\n\n")
	test("comments only", "# one\n# two\n")
}

func TestParseInvalidHeader(t *testing.T) {
	test := func(input string) {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "Invalid block header")
		})
	}

	test("invalid_header")
	test("list.users\nid\n1")
	test("table.\nid\n1")
	// '|' is the ISONL segment separator; names containing it could not
	// survive an ISONL round trip.
	test("table.a|b\nid\n1")
}

func TestParseMissingFieldDefinitions(t *testing.T) {
	test := func(name, input string) {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(input)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "missing field definitions")
		})
	}

	test("eof", "table.users")
	test("blank line", "table.users\n\n")
	test("next header", "table.users\ntable.other\nid\n1")
}

func TestParseUnterminatedString(t *testing.T) {
	_, err := Parse("table.users\nid name\n1 \"unterminated")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unterminated")

	var syntaxErr *SyntaxError
	require.ErrorAs(t, err, &syntaxErr)
	assert.Equal(t, 3, syntaxErr.Line)
}

func TestParseFieldCountMismatch(t *testing.T) {
	test := func(name, input string, row, fields, values int) {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(input)
			require.Error(t, err)

			var countErr *FieldCountError
			require.ErrorAs(t, err, &countErr)
			assert.Equal(t, "users", countErr.Block)
			assert.Equal(t, row, countErr.Row)
			assert.Equal(t, fields, countErr.Fields)
			assert.Equal(t, values, countErr.Values)
		})
	}

	test("too few", "table.users\nid name\n1", 0, 2, 1)
	test("too many", "table.users\nid name\n1 Alice x", 0, 2, 3)
	test("second row", "table.users\nid name\n1 Alice\n2", 1, 2, 1)
}

func TestParseDuplicateBlockName(t *testing.T) {
	_, err := Parse("table.users\nid\n1\n\ntable.users\nid\n2\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate block name")
}

func TestParseDuplicateFieldName(t *testing.T) {
	_, err := Parse("table.users\nid id\n1 2\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate field")
}

func TestParseCRLF(t *testing.T) {
	doc, err := Parse("table.users\r\nid name\r\n1 Alice\r\n")
	require.NoError(t, err)
	b, _ := doc.Get("users")
	require.Equal(t, 1, b.Size())
	assert.Equal(t, String("Alice"), b.Rows[0]["name"])
}
