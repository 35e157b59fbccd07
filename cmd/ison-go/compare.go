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

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/maheshvaikri-code/ison/ison"
)

// compare parses two inputs and reports whether they are value-equal,
// printing a structural diff and a colored line diff of the canonical
// serializations when they are not.
func compare(args []string) error {
	if len(args) != 2 {
		return errors.New("compare expects exactly two input files")
	}

	a, err := loadDocument(args[0])
	if err != nil {
		return fmt.Errorf("%v: %w", args[0], err)
	}
	b, err := loadDocument(args[1])
	if err != nil {
		return fmt.Errorf("%v: %w", args[1], err)
	}

	diff := cmp.Diff(a, b)
	if diff == "" {
		fmt.Println("documents are value-equal")
		return nil
	}

	fmt.Println("documents differ:")
	fmt.Println(diff)
	printTextDiff(ison.Dumps(a), ison.Dumps(b))
	os.Exit(1)
	return nil
}

func printTextDiff(a, b string) {
	dmp := diffmatchpatch.New()
	chars1, chars2, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(chars1, chars2, false), lines)

	removed := color.New(color.FgRed)
	added := color.New(color.FgGreen)

	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			removed.Printf("- %v", d.Text)
		case diffmatchpatch.DiffInsert:
			added.Printf("+ %v", d.Text)
		default:
			fmt.Printf("  %v", d.Text)
		}
	}
}
