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
	"strconv"
	"strings"
)

// Parse parses ISON text into a Document. It is a pure function: the
// first error aborts the whole parse, and no state is retained between
// calls. Empty and comment-only input yields an empty Document.
func Parse(text string) (*Document, error) {
	p := &parser{lines: splitLines(text)}
	return p.parse()
}

// inferValue types a scanned token using the fixed precedence order
// null > bool > reference > int > float > string. A quoted token is
// never reinterpreted: quoting forces String, which is what makes the
// serializer's quoting decisions round-trip.
func inferValue(tok token) Value {
	if tok.quoted {
		return String(tok.text)
	}
	return inferScalar(tok.text)
}

func inferScalar(text string) Value {
	switch text {
	case textNull, textNullWord:
		return Null()
	case textBoolTrue:
		return Bool(true)
	case textBoolFalse:
		return Bool(false)
	}
	if strings.HasPrefix(text, ":") {
		if ref, ok := parseReference(text); ok {
			return Ref(ref)
		}
		return String(text)
	}
	if isIntLiteral(text) {
		if i, err := strconv.ParseInt(text, 10, 64); err == nil {
			return Int(i)
		}
	}
	if isFloatLiteral(text) {
		if f, err := strconv.ParseFloat(text, 64); err == nil {
			return Float(f)
		}
	}
	return String(text)
}

// parseFieldDef splits a field-header token into its parts: 'name',
// 'name:type', or 'name:computed'.
func parseFieldDef(tok string) FieldInfo {
	colon := strings.IndexByte(tok, ':')
	if colon <= 0 {
		return FieldInfo{Name: tok}
	}
	name, typ := tok[:colon], tok[colon+1:]
	if typ == "computed" {
		return FieldInfo{Name: name, Computed: true}
	}
	return FieldInfo{Name: name, DeclaredType: typ}
}

// parser is an explicit state machine over classified lines. pos is the
// index of the next unconsumed line; line numbers in errors are 1-based.
type parser struct {
	lines []string
	pos   int
}

func (p *parser) lineno() int {
	return p.pos + 1
}

func (p *parser) parse() (*Document, error) {
	doc := NewDocument()

	for p.pos < len(p.lines) {
		line := p.lines[p.pos]

		switch classifyLine(line) {
		case lineBlank, lineComment:
			p.pos++

		case lineHeader:
			headerLine := p.lineno()
			block, err := p.parseBlock()
			if err != nil {
				return nil, err
			}
			if doc.Has(block.Name) {
				return nil, &SyntaxError{
					Msg:  "duplicate block name: " + block.Name,
					Line: headerLine,
				}
			}
			doc.Blocks = append(doc.Blocks, block)

		default:
			// Anything else at top level had to be a block header.
			return nil, &SyntaxError{
				Msg:  "Invalid block header: " + strings.TrimSpace(line),
				Line: p.lineno(),
			}
		}
	}

	return doc, nil
}

// parseBlock consumes one block: header line, field-header line, data
// rows, and an optional '---' summary section.
func (p *parser) parseBlock() (*Block, error) {
	header := strings.TrimSpace(p.lines[p.pos])
	kind, name, _ := parseBlockHeader(header)
	p.pos++

	block := NewBlock(kind, name)

	if err := p.parseFieldHeader(block); err != nil {
		return nil, err
	}

	for p.pos < len(p.lines) {
		line := p.lines[p.pos]

		switch classifyLine(line) {
		case lineComment:
			p.pos++
			continue

		case lineBlank:
			p.pos++
			return block, nil

		case lineHeader:
			// Next block; leave the line for the caller.
			return block, nil

		case lineSummary:
			p.pos++
			block.Summary = p.parseSummary()
			return block, nil
		}

		tokens, err := scanTokens(line, p.lineno())
		if err != nil {
			return nil, err
		}
		if len(tokens) != len(block.Fields) {
			return nil, &FieldCountError{
				Block:  block.Name,
				Row:    len(block.Rows),
				Fields: len(block.Fields),
				Values: len(tokens),
				Line:   p.lineno(),
			}
		}

		row := make(Row, len(tokens))
		for i, tok := range tokens {
			row[block.Fields[i]] = inferValue(tok)
		}
		block.Rows = append(block.Rows, row)
		p.pos++
	}

	return block, nil
}

// parseFieldHeader consumes the field-header line immediately following a
// block header. Only comments may intervene; a blank line, EOF, or
// another header means the block declared no fields.
func (p *parser) parseFieldHeader(block *Block) error {
	for p.pos < len(p.lines) {
		line := p.lines[p.pos]

		switch classifyLine(line) {
		case lineComment:
			p.pos++
			continue

		case lineBlank, lineHeader, lineSummary:
			return &SyntaxError{
				Msg:  "missing field definitions for block " + block.Name,
				Line: p.lineno(),
			}
		}

		tokens, err := scanTokens(line, p.lineno())
		if err != nil {
			return err
		}
		for _, tok := range tokens {
			fi := parseFieldDef(tok.text)
			for _, existing := range block.Fields {
				if existing == fi.Name {
					return &SyntaxError{
						Msg:  "duplicate field " + fi.Name + " in block " + block.Name,
						Line: p.lineno(),
					}
				}
			}
			block.Fields = append(block.Fields, fi.Name)
			block.Info = append(block.Info, fi)
		}
		p.pos++
		return nil
	}

	return &SyntaxError{
		Msg:  "missing field definitions for block " + block.Name,
		Line: p.lineno(),
	}
}

// parseSummary collects verbatim lines after the '---' marker until a
// blank line or EOF ends the block. The text is stored newline-joined and
// never re-tokenized.
func (p *parser) parseSummary() string {
	var lines []string
	for p.pos < len(p.lines) {
		line := p.lines[p.pos]
		if strings.TrimSpace(line) == "" {
			p.pos++
			break
		}
		lines = append(lines, line)
		p.pos++
	}
	return strings.Join(lines, "\n")
}
