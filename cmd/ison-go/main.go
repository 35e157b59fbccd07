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
	"github.com/mattn/go-isatty"

	"github.com/maheshvaikri-code/ison/internal"
	"github.com/maheshvaikri-code/ison/ison"
)

// main is the main entry point for ison-go.
func main() {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}

	if len(os.Args) <= 1 {
		printHelp()
		return
	}

	var err error

	switch os.Args[1] {
	case "help", "--help", "-h":
		printHelp()

	case "version", "--version", "-v":
		err = printVersion()

	case "process":
		err = process(os.Args[2:])

	case "compare":
		err = compare(os.Args[2:])

	default:
		err = errors.New("unrecognized command \"" + os.Args[1] + "\"")
	}

	if err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, err.Error())
		printHelp()
		os.Exit(1)
	}
}

// printHelp prints the help message for the program.
func printHelp() {
	fmt.Println("Usage:")
	fmt.Println("  ison-go help")
	fmt.Println("  ison-go version")
	fmt.Println("  ison-go process [args]")
	fmt.Println("  ison-go compare [args]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  help       Prints this help message.")
	fmt.Println("  version    Prints version information about this tool.")
	fmt.Println("  process    Reads the input file(s) and re-writes the contents in the specified format.")
	fmt.Println("  compare    Compares two documents and reports whether they are value-equal.")
}

// printVersion prints (as an ISON object block) the version info for
// this tool.
func printVersion() error {
	doc := ison.NewDocument()

	b := ison.NewBlock("object", "version")
	b.AddField("commit", "")
	b.AddField("build_time", "")
	b.AddRow(ison.Row{
		"commit":     ison.String(internal.GitCommit),
		"build_time": ison.String(internal.BuildTime),
	})
	if err := doc.AddBlock(b); err != nil {
		return err
	}

	return ison.Dump(doc, os.Stdout)
}
