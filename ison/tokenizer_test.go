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

func TestClassifyLine(t *testing.T) {
	test := func(line string, expected lineClass) {
		t.Run(line, func(t *testing.T) {
			assert.Equal(t, expected, classifyLine(line))
		})
	}

	test("", lineBlank)
	test("   \t", lineBlank)
	test("# a comment", lineComment)
	test("  # indented comment", lineComment)
	test("---", lineSummary)
	test("  ---  ", lineSummary)
	test("table.users", lineHeader)
	test("object.config", lineHeader)
	test("  table.users", lineHeader)
	test("table.", lineData)
	test("meta.users", lineData)
	test("invalid_header", lineData)
	test("1 Alice", lineData)
	test("3.14 foo", lineData)
	test("table.two words", lineData)
	test("table.a|b", lineData)
	test("----", lineData)
}

func TestScanTokens(t *testing.T) {
	test := func(line string, expected ...token) {
		t.Run(line, func(t *testing.T) {
			tokens, err := scanTokens(line, 1)
			require.NoError(t, err)
			assert.Equal(t, expected, tokens)
		})
	}

	test("1 Alice", token{"1", false}, token{"Alice", false})
	test("  a\t b  ", token{"a", false}, token{"b", false})
	test(`"hello world"`, token{"hello world", true})
	test(`""`, token{"", true})
	test(`x "y z" w`, token{"x", false}, token{"y z", true}, token{"w", false})
	test(`"line1\nline2"`, token{"line1\nline2", true})
	test(`"tab\there"`, token{"tab\there", true})
	test(`"quote\"inside"`, token{`quote"inside`, true})
	test(`"back\\slash"`, token{`back\slash`, true})
	test(`"unknown\qescape"`, token{`unknown\qescape`, true})

	// Outside quotes, a quote is a value boundary, never content.
	test(`abc"def"ghi`, token{"abc", false}, token{"def", true}, token{"ghi", false})
}

func TestScanTokensUnterminated(t *testing.T) {
	_, err := scanTokens(`"unterminated`, 7)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unterminated")

	var syntaxErr *SyntaxError
	require.ErrorAs(t, err, &syntaxErr)
	assert.Equal(t, 7, syntaxErr.Line)
}

func TestIntLiteral(t *testing.T) {
	assert.True(t, isIntLiteral("0"))
	assert.True(t, isIntLiteral("42"))
	assert.True(t, isIntLiteral("-17"))
	assert.False(t, isIntLiteral(""))
	assert.False(t, isIntLiteral("-"))
	assert.False(t, isIntLiteral("3.14"))
	assert.False(t, isIntLiteral("1a"))
	assert.False(t, isIntLiteral("+1"))
}

func TestFloatLiteral(t *testing.T) {
	assert.True(t, isFloatLiteral("3.14"))
	assert.True(t, isFloatLiteral("-2.5"))
	assert.True(t, isFloatLiteral("0.0"))
	assert.False(t, isFloatLiteral("42"))
	assert.False(t, isFloatLiteral(".5"))
	assert.False(t, isFloatLiteral("5."))
	assert.False(t, isFloatLiteral("1.2.3"))
	assert.False(t, isFloatLiteral("1e5"))
	assert.False(t, isFloatLiteral("1.-5"))
}

func TestSplitLines(t *testing.T) {
	assert.Equal(t, []string{"a", "b", ""}, splitLines("a\r\nb\n"))
	assert.Equal(t, []string{""}, splitLines(""))
}
