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
	"bufio"
	"io"
	"strings"
)

// A Record is one decoded ISONL line: a single row together with the
// block and field context the line carries itself.
type Record struct {
	Kind   string
	Name   string
	Fields []string
	Info   []FieldInfo
	Values Row
}

// DumpsISONL serializes a Document to ISONL: one self-describing
// 'kind.name|fields|values' line per row. Rows of one block are emitted
// contiguously, which preserves the document's original order; summaries
// have no per-row representation and are not carried.
func DumpsISONL(doc *Document) string {
	var sb strings.Builder
	for _, b := range doc.Blocks {
		header := b.Kind + "." + b.Name + "|"
		fields := make([]string, len(b.Info))
		for i, fi := range b.Info {
			fields[i] = fi.header()
		}
		header += strings.Join(fields, " ") + "|"

		for _, row := range b.Rows {
			sb.WriteString(header)
			for i, field := range b.Fields {
				if i > 0 {
					sb.WriteByte(' ')
				}
				val, ok := row[field]
				if !ok {
					val = Null()
				}
				sb.WriteString(val.Text())
			}
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// ParseISONL parses ISONL text into a Document.
func ParseISONL(text string) (*Document, error) {
	return CollectRecords(NewRecordReader(strings.NewReader(text)))
}

// CollectRecords drains a RecordReader into a Document. Records parse
// independently; rows aggregate into blocks keyed by (kind, name), and a
// block's canonical field header is the one on the first record seen for
// its key. Later records may re-declare fields, which applies to that
// record's own value mapping only.
func CollectRecords(r *RecordReader) (*Document, error) {
	doc := NewDocument()
	blocks := make(map[string]*Block)

	for {
		rec, err := r.Next()
		if err == io.EOF {
			return doc, nil
		}
		if err != nil {
			return nil, err
		}

		key := rec.Kind + "." + rec.Name
		block, ok := blocks[key]
		if !ok {
			block = NewBlock(rec.Kind, rec.Name)
			block.Fields = rec.Fields
			block.Info = rec.Info
			blocks[key] = block
			doc.Blocks = append(doc.Blocks, block)
		}
		block.Rows = append(block.Rows, rec.Values)
	}
}

// parseRecord decodes a single ISONL line of the shape
// 'kind.name|field1 field2 ...|value1 value2 ...'.
func parseRecord(line string, lineno int) (Record, error) {
	trimmed := strings.TrimSpace(line)

	parts := strings.SplitN(trimmed, "|", 3)
	if len(parts) != 3 {
		return Record{}, &SyntaxError{
			Msg:  "malformed ISONL line (want 3 '|' segments): " + trimmed,
			Line: lineno,
		}
	}

	kind, name, ok := parseBlockHeader(strings.TrimSpace(parts[0]))
	if !ok {
		return Record{}, &SyntaxError{
			Msg:  "Invalid block header: " + parts[0],
			Line: lineno,
		}
	}

	rec := Record{Kind: kind, Name: name}

	fieldTokens, err := scanTokens(parts[1], lineno)
	if err != nil {
		return Record{}, err
	}
	for _, tok := range fieldTokens {
		fi := parseFieldDef(tok.text)
		rec.Fields = append(rec.Fields, fi.Name)
		rec.Info = append(rec.Info, fi)
	}

	valueTokens, err := scanTokens(parts[2], lineno)
	if err != nil {
		return Record{}, err
	}
	if len(valueTokens) != len(rec.Fields) {
		return Record{}, &FieldCountError{
			Block:  rec.Name,
			Fields: len(rec.Fields),
			Values: len(valueTokens),
			Line:   lineno,
		}
	}

	rec.Values = make(Row, len(valueTokens))
	for i, tok := range valueTokens {
		rec.Values[rec.Fields[i]] = inferValue(tok)
	}
	return rec, nil
}

// A RecordReader decodes ISONL records one line at a time from a stream,
// without aggregating them into blocks. Next returns io.EOF when the
// input is exhausted.
type RecordReader struct {
	scanner *bufio.Scanner
	lineno  int
}

// NewRecordReader creates a RecordReader over the given stream.
func NewRecordReader(r io.Reader) *RecordReader {
	return &RecordReader{scanner: bufio.NewScanner(r)}
}

// Next returns the next record in the stream, skipping blank and comment
// lines.
func (r *RecordReader) Next() (Record, error) {
	for r.scanner.Scan() {
		r.lineno++
		line := strings.TrimSuffix(r.scanner.Text(), "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		return parseRecord(line, r.lineno)
	}
	if err := r.scanner.Err(); err != nil {
		return Record{}, err
	}
	return Record{}, io.EOF
}

// ToISONL converts ISON text directly to ISONL text.
func ToISONL(isonText string) (string, error) {
	doc, err := Parse(isonText)
	if err != nil {
		return "", err
	}
	return DumpsISONL(doc), nil
}

// FromISONL converts ISONL text directly to ISON text.
func FromISONL(isonlText string) (string, error) {
	doc, err := ParseISONL(isonlText)
	if err != nil {
		return "", err
	}
	return Dumps(doc), nil
}
