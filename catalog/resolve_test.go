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
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestResolveCanonical: every canonical name resolves to itself, whatever
// the letter-casing.
func TestResolveCanonical(t *testing.T) {
	c := Builtin()
	for _, category := range []TaskCategory{SingleInstance, MultiInstance, Generation} {
		for _, name := range c.Names(category) {
			for _, spelling := range []string{name, strings.ToUpper(name), strings.ToUpper(name[:1]) + name[1:]} {
				entry, err := c.Resolve(category, spelling)
				require.NoErrorf(t, err, "resolving %q", spelling)
				assert.Equal(t, name, entry.Name)
			}
		}
	}
}

func TestResolveFuzzy(t *testing.T) {
	c := Builtin()
	for input, want := range map[string]string{
		"cacoo2_wang": "caco2_wang", // One letter doubled.
		"caco_wang":   "caco2_wang", // One character dropped.
		"Caco2-Wang":  "caco2_wang", // Separator and casing noise.
		"herrg":       "herg",
		"bbb_martin":  "bbb_martins",
	} {
		entry, err := c.Resolve(SingleInstance, input)
		require.NoErrorf(t, err, "resolving %q", input)
		assert.Equalf(t, want, entry.Name, "resolving %q", input)
	}
}

func TestResolveUnknown(t *testing.T) {
	c := Builtin()
	_, err := c.Resolve(SingleInstance, "zzz_not_a_dataset")
	require.Error(t, err)
	assert.True(t, errors.Is(err, UnknownDatasetError))
	// The offending input is echoed back.
	assert.Contains(t, err.Error(), "zzz_not_a_dataset")

	// A name from another category doesn't leak across categories.
	_, err = c.Resolve(Generation, "caco2_wang")
	assert.True(t, errors.Is(err, UnknownDatasetError))
}

func TestResolveAmbiguous(t *testing.T) {
	c := Builtin()
	// "cyp_veith" sits exactly between cyp2d6_veith and cyp3a4_veith.
	_, err := c.Resolve(SingleInstance, "cyp_veith")
	require.Error(t, err)
	assert.True(t, errors.Is(err, AmbiguousNameError))
	assert.Contains(t, err.Error(), "cyp_veith")
}

func TestSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, similarity("caco2wang", "caco2wang"))
	assert.Equal(t, 0.0, similarity("a", ""))
	assert.InDelta(t, 1.0-1.0/9.0, similarity("cacowang", "caco2wang"), 1e-9)
	assert.Less(t, similarity("zzznotadataset", "caco2wang"), acceptThreshold)
}

func TestLevenshtein(t *testing.T) {
	assert.Equal(t, 0, levenshtein("herg", "herg"))
	assert.Equal(t, 4, levenshtein("", "herg"))
	assert.Equal(t, 4, levenshtein("herg", ""))
	assert.Equal(t, 1, levenshtein("herrg", "herg"))
	assert.Equal(t, 3, levenshtein("kitten", "sitting"))
}
