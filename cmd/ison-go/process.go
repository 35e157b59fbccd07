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
	"io"
	"strings"

	"github.com/maheshvaikri-code/ison/ison"
)

// process reads the specified input file(s) and re-writes the contents
// in the specified format.
func process(args []string) error {
	p, err := newProcessor(args)
	if err != nil {
		return err
	}
	return p.run()
}

type processor struct {
	infs   []string
	outf   string
	format string
}

func newProcessor(args []string) (*processor, error) {
	ret := &processor{format: "ison"}

	i := 0
	for ; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") || arg == "-" {
			break
		}
		if arg == "--" {
			i++
			break
		}

		switch arg {
		case "-o", "--output":
			i++
			if i >= len(args) {
				return nil, errors.New("missing argument for " + arg)
			}
			ret.outf = args[i]

		case "-f", "--format":
			i++
			if i >= len(args) {
				return nil, errors.New("missing argument for " + arg)
			}
			ret.format = args[i]
			switch ret.format {
			case "ison", "isonl", "json":
			default:
				return nil, errors.New("unrecognized output format \"" + ret.format + "\"")
			}

		default:
			return nil, errors.New("unrecognized option \"" + arg + "\"")
		}
	}

	ret.infs = args[i:]
	if len(ret.infs) == 0 {
		return nil, errors.New("no input files")
	}

	return ret, nil
}

func (p *processor) run() error {
	out, err := OpenOutput(p.outf)
	if err != nil {
		return err
	}
	defer out.Close()

	for _, inf := range p.infs {
		doc, err := loadDocument(inf)
		if err != nil {
			return fmt.Errorf("%v: %w", inf, err)
		}
		if err := p.write(out, doc); err != nil {
			return err
		}
	}

	return nil
}

func (p *processor) write(out io.Writer, doc *ison.Document) error {
	switch p.format {
	case "isonl":
		_, err := io.WriteString(out, ison.DumpsISONL(doc))
		return err

	case "json":
		text, err := doc.ToJSON()
		if err != nil {
			return err
		}
		_, err = io.WriteString(out, text+"\n")
		return err

	default:
		return ison.Dump(doc, out)
	}
}

// loadDocument reads one input and parses it, sniffing whether it is
// ISON or ISONL. ISONL inputs decode record by record.
func loadDocument(inf string) (*ison.Document, error) {
	text, err := ReadInput(inf)
	if err != nil {
		return nil, err
	}
	if isISONL(text) {
		return ison.CollectRecords(ison.NewRecordReader(strings.NewReader(text)))
	}
	return ison.Parse(text)
}

// isISONL reports whether the first meaningful line is '|'-segmented.
func isISONL(text string) bool {
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		return strings.Contains(trimmed, "|")
	}
	return false
}
