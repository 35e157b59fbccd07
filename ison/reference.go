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

// A Reference is an identifier value that points at a row by ID, optionally
// tagged with a type. It is plain immutable data: the core never resolves
// it to an actual row. Classification is derived from the tag, not stored:
// a tag that is entirely upper-case marks a relationship reference, any
// other tag marks a namespaced reference, and no tag marks a simple one.
type Reference struct {
	// ID is the referenced identifier; never empty for a parsed Reference.
	ID string

	// TypeTag is the optional type tag, with its case preserved verbatim.
	TypeTag string
}

// IsSimple reports whether this reference carries no type tag.
func (r Reference) IsSimple() bool {
	return r.TypeTag == ""
}

// IsRelationship reports whether this reference's tag is entirely
// upper-case, e.g. ':MEMBER_OF:10'.
func (r Reference) IsRelationship() bool {
	if r.TypeTag == "" {
		return false
	}
	for _, c := range r.TypeTag {
		if c != '_' && (c < 'A' || c > 'Z') {
			return false
		}
	}
	return true
}

// IsNamespaced reports whether this reference carries a tag that is not a
// relationship tag, e.g. ':user:101'.
func (r Reference) IsNamespaced() bool {
	return r.TypeTag != "" && !r.IsRelationship()
}

// Equal reports whether two references are identical, including tag case.
func (r Reference) Equal(o Reference) bool {
	return r == o
}

// String returns the canonical text form: ':id', or ':TAG:id' with the
// tag's case preserved.
func (r Reference) String() string {
	if r.TypeTag != "" {
		return ":" + r.TypeTag + ":" + r.ID
	}
	return ":" + r.ID
}

// isRefRune reports whether c may appear in a reference ID or tag.
func isRefRune(c rune) bool {
	switch {
	case c >= 'a' && c <= 'z':
		return true
	case c >= 'A' && c <= 'Z':
		return true
	case c >= '0' && c <= '9':
		return true
	case c == '.' || c == '-' || c == '_':
		return true
	}
	return false
}

// parseReference interprets a token of the form ':' ID or ':' TAG ':' ID,
// where ID and TAG are non-empty runs of alphanumeric, '.', '-' or '_'
// runes. It reports false for anything else, including a bare ':'.
func parseReference(text string) (Reference, bool) {
	if len(text) < 2 || text[0] != ':' {
		return Reference{}, false
	}

	rest := text[1:]
	sep := -1
	for i, c := range rest {
		if c == ':' {
			sep = i
			break
		}
		if !isRefRune(c) {
			return Reference{}, false
		}
	}

	if sep < 0 {
		// No second ':'; the whole remainder is the ID.
		return Reference{ID: rest}, true
	}

	tag, id := rest[:sep], rest[sep+1:]
	if tag == "" || id == "" {
		return Reference{}, false
	}
	for _, c := range id {
		if !isRefRune(c) {
			return Reference{}, false
		}
	}
	return Reference{ID: id, TypeTag: tag}, true
}
