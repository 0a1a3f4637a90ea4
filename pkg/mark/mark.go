// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package mark

import (
	"bytes"
	"regexp"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// DefaultMarker is the section-divider comment prefix understood by Xcode.
const DefaultMarker = "// MARK:"

// labelStart matches the first character of a label: anything that is not
// whitespace (Unicode aware) and not a hyphen.
const labelStart = `([^\s\v\x{1c}-\x{1f}\x{85}\p{Z}-])`

// 🔄 Rule rewrites one malformed marker shape into the canonical form
type Rule struct {
	// Name identifies the rule in logs
	Name string

	pattern *regexp.Regexp
}

// 📦 Result contains the outcome of normalizing one piece of content
type Result struct {
	// Original is the content before normalization
	Original []byte

	// Modified is the content after both rules ran
	Modified []byte

	// Count is the number of markers rewritten across all rules
	Count int

	// WasModified is true when Modified differs from Original
	WasModified bool
}

// 🎯 Normalizer rewrites `MARK: Label` and `MARK:Label` into `MARK: - Label`
type Normalizer struct {
	marker string
	rules  []Rule
}

// 🏭 New creates a normalizer for the given marker token
func New(marker string) (*Normalizer, error) {
	if strings.TrimSpace(marker) == "" {
		return nil, errors.New("marker is required")
	}

	quoted := regexp.QuoteMeta(marker)
	return &Normalizer{
		marker: marker,
		rules: []Rule{
			// "MARK: Label" -> "MARK: - Label"
			{Name: "missing_hyphen", pattern: regexp.MustCompile(quoted + ` ` + labelStart)},
			// "MARK:Label" -> "MARK: - Label"
			{Name: "missing_space", pattern: regexp.MustCompile(quoted + labelStart)},
		},
	}, nil
}

// Marker returns the marker token this normalizer rewrites
func (n *Normalizer) Marker() string {
	return n.marker
}

// Rules returns the rules in the order they are applied
func (n *Normalizer) Rules() []Rule {
	return n.rules
}

// 📝 Normalize applies every rule in order, each to the output of the previous one
func (n *Normalizer) Normalize(content []byte) *Result {
	result := &Result{
		Original: content,
		Modified: content,
	}

	current := content
	for _, rule := range n.rules {
		var count int
		current, count = n.apply(rule, current)
		result.Count += count
	}

	result.Modified = current
	result.WasModified = !bytes.Equal(content, current)
	return result
}

// NormalizeString is Normalize for strings
func (n *Normalizer) NormalizeString(content string) (string, int) {
	result := n.Normalize([]byte(content))
	return string(result.Modified), result.Count
}

// apply replaces only the matched boundary: the marker, the optional space and
// the first label character. The rest of the line is copied as is.
func (n *Normalizer) apply(rule Rule, src []byte) ([]byte, int) {
	matches := rule.pattern.FindAllSubmatchIndex(src, -1)
	if len(matches) == 0 {
		return src, 0
	}

	var buf bytes.Buffer
	buf.Grow(len(src) + len(matches)*3)

	last := 0
	for _, m := range matches {
		buf.Write(src[last:m[0]])
		buf.WriteString(n.marker)
		buf.WriteString(" - ")
		buf.Write(src[m[2]:m[3]])
		last = m[1]
	}
	buf.Write(src[last:])

	return buf.Bytes(), len(matches)
}
