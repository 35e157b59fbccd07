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

import "strings"

const (
	textNull      = "~"
	textNullWord  = "null"
	textBoolTrue  = "true"
	textBoolFalse = "false"

	// summaryMarker separates a block's data rows from its trailing
	// free-text summary.
	summaryMarker = "---"
)

// lineClass is the classification of a single raw input line.
type lineClass int

const (
	lineBlank   lineClass = iota // block separator
	lineComment                  // first non-space rune is '#'; discarded
	lineHeader                   // 'kind.name' block header
	lineSummary                  // the summary marker '---', exactly
	lineData                     // anything else: field header or data row
)

// splitLines splits raw input into lines, tolerating CRLF endings.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// classifyLine buckets a raw line. Classification looks only at the
// trimmed line; token scanning works on the raw text.
func classifyLine(line string) lineClass {
	trimmed := strings.TrimSpace(line)
	switch {
	case trimmed == "":
		return lineBlank
	case trimmed[0] == '#':
		return lineComment
	case trimmed == summaryMarker:
		return lineSummary
	}
	if _, _, ok := parseBlockHeader(trimmed); ok {
		return lineHeader
	}
	return lineData
}

// parseBlockHeader matches 'kind.name' where kind is 'table' or 'object'
// and name is a non-empty identifier-like token. '|' is excluded from
// names because it is the ISONL segment separator.
func parseBlockHeader(line string) (kind, name string, ok bool) {
	dot := strings.IndexByte(line, '.')
	if dot < 0 {
		return "", "", false
	}
	kind, name = line[:dot], line[dot+1:]
	if kind != "table" && kind != "object" {
		return "", "", false
	}
	if name == "" || strings.ContainsAny(name, " \t\"|") {
		return "", "", false
	}
	return kind, name, true
}

// A token is one scanned value from a data or field-header line. Quoted
// tokens carry their decoded content with quotes stripped and escapes
// resolved; quoting is remembered because it pins the token to String
// during type inference.
type token struct {
	text   string
	quoted bool
}

// scanTokens splits a line into tokens separated by runs of whitespace.
// A '"' begins a quoted token: scanning continues rune by rune, resolving
// backslash escapes, until an unescaped closing '"'. Outside quotes a
// quote character is a value boundary, never content. Reaching the end of
// the line inside a quoted token is a syntax error.
func scanTokens(line string, lineno int) ([]token, error) {
	var tokens []token
	var cur strings.Builder
	inQuotes := false
	started := false // an empty quoted token is still a token

	flush := func(quoted bool) {
		if started || cur.Len() > 0 {
			tokens = append(tokens, token{text: cur.String(), quoted: quoted})
			cur.Reset()
			started = false
		}
	}

	for i := 0; i < len(line); i++ {
		ch := line[i]

		if inQuotes {
			switch ch {
			case '\\':
				if i+1 < len(line) {
					i++
					switch line[i] {
					case 'n':
						cur.WriteByte('\n')
					case 't':
						cur.WriteByte('\t')
					case '"':
						cur.WriteByte('"')
					case '\\':
						cur.WriteByte('\\')
					default:
						// Unrecognized escape; the backslash passes through.
						cur.WriteByte('\\')
						cur.WriteByte(line[i])
					}
				} else {
					cur.WriteByte('\\')
				}
			case '"':
				inQuotes = false
				flush(true)
			default:
				cur.WriteByte(ch)
			}
			continue
		}

		switch ch {
		case '"':
			flush(false)
			inQuotes = true
			started = true
		case ' ', '\t':
			flush(false)
		default:
			cur.WriteByte(ch)
		}
	}

	if inQuotes {
		return nil, &SyntaxError{Msg: "Unterminated string", Line: lineno}
	}
	flush(false)
	return tokens, nil
}

// isIntLiteral matches an optional leading '-' followed by one or more
// digits and nothing else.
func isIntLiteral(s string) bool {
	if strings.HasPrefix(s, "-") {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// isFloatLiteral matches an optional leading '-', digits, a single
// decimal point, and digits. Exponent notation is not part of the
// grammar; '1e5' reads back as a string.
func isFloatLiteral(s string) bool {
	dot := strings.IndexByte(s, '.')
	if dot < 0 {
		return false
	}
	return isIntLiteral(s[:dot]) && isIntLiteral(s[dot+1:]) && !strings.HasPrefix(s[dot+1:], "-")
}
