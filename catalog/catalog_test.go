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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskCategory(t *testing.T) {
	assert.Equal(t, "single_instance", SingleInstance.String())
	assert.Equal(t, "multi_instance", MultiInstance.String())
	assert.Equal(t, "generation", Generation.String())
	assert.Panics(t, func() { _ = TaskCategory(99).String() })

	for _, category := range []TaskCategory{SingleInstance, MultiInstance, Generation} {
		parsed, ok := ParseTaskCategory(category.String())
		require.True(t, ok)
		assert.Equal(t, category, parsed)
	}
	_, ok := ParseTaskCategory("quantum")
	assert.False(t, ok)
}

func TestEntryColumns(t *testing.T) {
	entry := singleInstanceEntry("ADME", "caco2_wang")
	// Identifiers first, features next, label last.
	assert.Equal(t, []string{DrugIDCol, DrugCol, ScaffoldCol, LabelCol}, entry.Columns())
	assert.Equal(t, ScaffoldCol, entry.GroupKey())

	pair := multiInstanceEntry("DTI", "davis")
	// Group column is already a feature, it must not repeat.
	assert.Equal(t, []string{DrugIDCol, TargetIDCol, DrugCol, TargetCol, LabelCol}, pair.Columns())
	assert.Equal(t, DrugCol, pair.GroupKey())

	gen := generationEntry("MolGen", "moses")
	assert.Equal(t, []string{DrugIDCol, DrugCol}, gen.Columns())
}

func TestCatalogUniqueness(t *testing.T) {
	assert.Panics(t, func() {
		New(
			singleInstanceEntry("ADME", "caco2_wang"),
			singleInstanceEntry("ADME", "Caco2_Wang"),
		)
	})
}

func TestBuiltin(t *testing.T) {
	c := Builtin()
	names := c.Names(SingleInstance)
	require.NotEmpty(t, names)
	assert.IsIncreasing(t, names)
	assert.Contains(t, names, "caco2_wang")
	assert.Contains(t, c.Names(MultiInstance), "davis")
	assert.Contains(t, c.Names(Generation), "moses")
	assert.Equal(t, []string{"ADME", "DTI", "MolGen", "Tox"}, c.Tasks())

	entries := c.Entries(SingleInstance)
	require.Equal(t, len(names), len(entries))
	for ii, entry := range entries {
		assert.Equal(t, names[ii], entry.Name)
		assert.NotEmpty(t, entry.URL)
	}
}
