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
	"io"
	"os"
)

type uncloseable struct {
	w io.Writer
}

func (u uncloseable) Write(bs []byte) (int, error) {
	return u.w.Write(bs)
}

func (u uncloseable) Close() error {
	return nil
}

// OpenOutput opens the output stream, defaulting to stdout.
func OpenOutput(outf string) (io.WriteCloser, error) {
	if outf == "" {
		return uncloseable{os.Stdout}, nil
	}
	return os.OpenFile(outf, os.O_RDWR|os.O_TRUNC|os.O_CREATE, 0644)
}

// ReadInput reads one input file; "-" means stdin.
func ReadInput(inf string) (string, error) {
	if inf == "-" {
		bs, err := io.ReadAll(os.Stdin)
		return string(bs), err
	}
	bs, err := os.ReadFile(inf)
	return string(bs), err
}
