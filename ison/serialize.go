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
	"io"
	"strconv"
	"strings"
)

// DumpsOptions configures serialization.
type DumpsOptions struct {
	// AlignColumns pads values so columns line up visually. Padding is
	// plain whitespace and does not survive a re-parse, which is fine:
	// the round-trip law is about values, not bytes.
	AlignColumns bool
}

// Dumps serializes a Document to canonical ISON text. For any document D,
// Parse(Dumps(D)) is value-equal to D field by field.
func Dumps(doc *Document) string {
	return DumpsWithOptions(doc, DumpsOptions{})
}

// DumpsWithOptions serializes a Document with the given options.
func DumpsWithOptions(doc *Document, opts DumpsOptions) string {
	var sb strings.Builder
	for i, b := range doc.Blocks {
		if i > 0 {
			sb.WriteByte('\n')
		}
		writeBlock(&sb, b, opts)
	}
	return sb.String()
}

// Dump serializes a Document to the given writer.
func Dump(doc *Document, w io.Writer) error {
	_, err := io.WriteString(w, Dumps(doc))
	return err
}

func writeBlock(sb *strings.Builder, b *Block, opts DumpsOptions) {
	sb.WriteString(b.Kind)
	sb.WriteByte('.')
	sb.WriteString(b.Name)
	sb.WriteByte('\n')

	cells := renderRows(b)
	var widths []int
	if opts.AlignColumns {
		widths = columnWidths(b, cells)
	}

	for i, fi := range b.Info {
		if i > 0 {
			sb.WriteByte(' ')
		}
		writeCell(sb, fi.header(), widths, i, len(b.Info))
	}
	sb.WriteByte('\n')

	for _, row := range cells {
		for i, cell := range row {
			if i > 0 {
				sb.WriteByte(' ')
			}
			writeCell(sb, cell, widths, i, len(row))
		}
		sb.WriteByte('\n')
	}

	if b.Summary != "" {
		sb.WriteString(summaryMarker)
		sb.WriteByte('\n')
		sb.WriteString(b.Summary)
		sb.WriteByte('\n')
	}
}

// renderRows renders every row of a block to canonical cell text, in
// field order. A field missing from a row renders as null.
func renderRows(b *Block) [][]string {
	cells := make([][]string, len(b.Rows))
	for r, row := range b.Rows {
		line := make([]string, len(b.Fields))
		for i, field := range b.Fields {
			val, ok := row[field]
			if !ok {
				val = Null()
			}
			line[i] = val.Text()
		}
		cells[r] = line
	}
	return cells
}

func columnWidths(b *Block, cells [][]string) []int {
	widths := make([]int, len(b.Fields))
	for i, fi := range b.Info {
		widths[i] = len(fi.header())
	}
	for _, row := range cells {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}
	return widths
}

func writeCell(sb *strings.Builder, cell string, widths []int, i, n int) {
	sb.WriteString(cell)
	// The last column is never padded.
	if widths != nil && i < n-1 {
		for p := len(cell); p < widths[i]; p++ {
			sb.WriteByte(' ')
		}
	}
}

// formatFloat renders a float in plain decimal notation, keeping a
// decimal point so the text re-parses as a float rather than an int.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".") {
		s += ".0"
	}
	return s
}

// encodeString renders a string value, quoting and escaping only when
// emitting it bare would change how the text reads back: whitespace or
// quote/backslash content, the empty string, anything type inference
// would not read as a string, and anything the line classifier could
// mistake for a comment, summary marker, or block header.
func encodeString(s string) string {
	if !needsQuotes(s) {
		return s
	}

	var sb strings.Builder
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch ch := s[i]; ch {
		case '\\':
			sb.WriteString(`\\`)
		case '"':
			sb.WriteString(`\"`)
		case '\n':
			sb.WriteString(`\n`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			sb.WriteByte(ch)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

func needsQuotes(s string) bool {
	if s == "" || s == summaryMarker {
		return true
	}
	// Carriage returns must be quoted too: a bare trailing CR would be
	// eaten as CRLF tolerance on the way back in.
	if strings.ContainsAny(s, " \t\n\r\"\\") {
		return true
	}
	if strings.HasPrefix(s, "#") {
		return true
	}
	if _, _, ok := parseBlockHeader(s); ok {
		return true
	}
	// Anything the inference engine would type as non-string must be
	// quoted to force String on the way back in.
	return inferScalar(s).Type() != TypeString
}
