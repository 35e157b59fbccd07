/* Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved. */

// ison is a line-oriented, typed tabular text format that is comprised
// of three parts:
// * A small set of data types with whitespace-delimited, type-inferred
//   literal notation
// * A blocked textual notation ("ISON") of named tables and objects
// * A line-delimited streaming notation ("ISONL") where every line
//   carries its own block and field context
//
// This package owns the grammar: it parses raw text into a Document
// model, infers value types, interprets the reference sub-grammar, and
// converts losslessly between ISON, ISONL and JSON. It performs no
// semantic validation and never resolves references to rows; both are
// left to callers.
package ison
