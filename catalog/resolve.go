/*
 *	Copyright 2024 The moldata authors
 *
 *	Licensed under the Apache License, Version 2.0 (the "License");
 *	you may not use this file except in compliance with the License.
 *	You may obtain a copy of the License at
 *
 *	http://www.apache.org/licenses/LICENSE-2.0
 *
 *	Unless required by applicable law or agreed to in writing, software
 *	distributed under the License is distributed on an "AS IS" BASIS,
 *	WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *	See the License for the specific language governing permissions and
 *	limitations under the License.
 */

package catalog

import (
	"strings"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

var (
	// UnknownDatasetError is returned when no catalog entry matches the
	// given name closely enough. The caller should retry with a corrected
	// name -- Names lists the valid ones.
	UnknownDatasetError = errors.New("unknown dataset")

	// AmbiguousNameError is returned when two catalog entries match the
	// given name about equally well, so no single correction is safe.
	AmbiguousNameError = errors.New("ambiguous dataset name")
)

// Fuzzy matching policy: an input is accepted for a candidate when their
// normalized similarity reaches acceptThreshold; if the runner-up is within
// tieTolerance of the winner the match is ambiguous instead.
const (
	acceptThreshold = 0.6
	tieTolerance    = 0.05
)

// Resolve maps a user-supplied dataset name to the canonical name of a
// catalog entry in the given category.
//
// An exact match (any letter-casing) wins immediately. Otherwise the
// closest name by normalized edit-distance similarity is chosen, and a
// notice is logged so the caller knows fuzzy correction occurred.
func (c *Catalog) Resolve(category TaskCategory, name string) (*Entry, error) {
	if entry := c.lookup(category, name); entry != nil {
		return entry, nil
	}

	input := normalizeName(name)
	var best, secondBest float64
	var bestEntry *Entry
	for _, entry := range c.byCategory[category] {
		score := similarity(input, normalizeName(entry.Name))
		if score > best {
			best, secondBest = score, best
			bestEntry = entry
		} else if score > secondBest {
			secondBest = score
		}
	}
	if bestEntry == nil || best < acceptThreshold {
		return nil, errors.Wrapf(UnknownDatasetError,
			"no dataset matching %q in category %s (valid names: %s)",
			name, category, strings.Join(c.Names(category), ", "))
	}
	if best-secondBest < tieTolerance {
		return nil, errors.Wrapf(AmbiguousNameError,
			"dataset name %q matches more than one entry in category %s about equally well",
			name, category)
	}
	klog.Infof("dataset name %q corrected to %q", name, bestEntry.Name)
	return bestEntry, nil
}

// normalizeName lowercases and strips separator characters, so that
// "Caco2-Wang" and "caco2_wang" compare equal.
func normalizeName(name string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch r {
		case '-', '_', '.', ' ':
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// similarity scores two normalized names in [0, 1]: 1 for identical
// strings, falling with edit distance relative to the longer string.
func similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	longest := max(len(a), len(b))
	if longest == 0 {
		return 0
	}
	return 1 - float64(levenshtein(a, b))/float64(longest)
}

// levenshtein computes the edit distance between two strings with the
// two-row dynamic program, O(min(m,n)) space.
func levenshtein(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}
	if len(a) < len(b) {
		a, b = b, a
	}
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(min(prev[j]+1, curr[j-1]+1), prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
