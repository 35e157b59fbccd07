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

import "fmt"

// A SyntaxError is returned when the parser encounters invalid input for
// which no more specific error type is defined. Line numbers are 1-based.
type SyntaxError struct {
	Msg  string
	Line int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("ison: syntax error: %v (line %v)", e.Msg, e.Line)
}

// A FieldCountError is returned when a data row supplies more or fewer
// values than its block declares fields. Row is the 0-based index of the
// offending row within its block.
type FieldCountError struct {
	Block  string
	Row    int
	Fields int
	Values int
	Line   int
}

func (e *FieldCountError) Error() string {
	return fmt.Sprintf("ison: field/value count mismatch in block %v row %v: %v fields, %v values (line %v)",
		e.Block, e.Row, e.Fields, e.Values, e.Line)
}

// A UsageError is returned when a Document is assembled in an
// inappropriate way, for example by adding two blocks with the same name.
type UsageError struct {
	API string
	Msg string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("ison: usage error in %v: %v", e.API, e.Msg)
}
