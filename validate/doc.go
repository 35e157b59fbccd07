/* Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved. */

// validate layers field-level constraint checking on top of parsed ISON
// documents. Schemas are built with a fluent API of immutable constraint
// records and applied to blocks row by row; unlike the parser's
// fail-fast errors, validation aggregates every violation across all
// rows before reporting. The package reads Row contents only and never
// mutates the Document it is given.
package validate
