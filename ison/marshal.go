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
	"bytes"
	"encoding/json"
	"strconv"
)

// ToJSON converts ISON text directly to indented JSON. The export is
// one-way; there is no JSON importer.
func ToJSON(isonText string) (string, error) {
	doc, err := Parse(isonText)
	if err != nil {
		return "", err
	}
	return doc.ToJSON()
}

// ToJSON renders the document as an indented JSON object with one key
// per block name, each holding an array of row objects. Blocks keep
// document order and row objects keep field order, which the stock map
// encoder would not. References have no JSON counterpart and render as
// their canonical ISON text.
func (d *Document) ToJSON() (string, error) {
	var buf bytes.Buffer
	if err := encodeJSON(&buf, d); err != nil {
		return "", err
	}

	var out bytes.Buffer
	if err := json.Indent(&out, buf.Bytes(), "", "  "); err != nil {
		return "", err
	}
	return out.String(), nil
}

func encodeJSON(buf *bytes.Buffer, d *Document) error {
	buf.WriteByte('{')
	for i, b := range d.Blocks {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := encodeJSONString(buf, b.Name); err != nil {
			return err
		}
		buf.WriteByte(':')
		if err := encodeJSONBlock(buf, b); err != nil {
			return err
		}
	}
	buf.WriteByte('}')
	return nil
}

func encodeJSONBlock(buf *bytes.Buffer, b *Block) error {
	buf.WriteByte('[')
	for r, row := range b.Rows {
		if r > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('{')
		for i, field := range b.Fields {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := encodeJSONString(buf, field); err != nil {
				return err
			}
			buf.WriteByte(':')
			val, ok := row[field]
			if !ok {
				val = Null()
			}
			if err := encodeJSONValue(buf, val); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	}
	buf.WriteByte(']')
	return nil
}

func encodeJSONValue(buf *bytes.Buffer, v Value) error {
	switch v.Type() {
	case TypeNull:
		buf.WriteString("null")
	case TypeBool:
		b, _ := v.AsBool()
		buf.WriteString(strconv.FormatBool(b))
	case TypeInt:
		i, _ := v.AsInt()
		buf.WriteString(strconv.FormatInt(i, 10))
	case TypeFloat:
		f, _ := v.AsFloat()
		enc, err := json.Marshal(f)
		if err != nil {
			return err
		}
		buf.Write(enc)
	case TypeString:
		s, _ := v.AsString()
		return encodeJSONString(buf, s)
	case TypeReference:
		ref, _ := v.AsRef()
		return encodeJSONString(buf, ref.String())
	}
	return nil
}

func encodeJSONString(buf *bytes.Buffer, s string) error {
	enc, err := json.Marshal(s)
	if err != nil {
		return err
	}
	buf.Write(enc)
	return nil
}
