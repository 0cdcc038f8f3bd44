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

// Package catalog defines the taxonomy of therapeutics ML benchmark datasets:
// task categories, per-dataset configuration entries, and resolution of
// user-supplied (possibly misspelled) names to canonical ones.
package catalog

import (
	"strings"

	"github.com/gomlx/exceptions"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// TaskCategory is one of the three top-level ML problem framings datasets
// are organized under.
type TaskCategory int

const (
	// SingleInstance tasks predict a property of one entity, e.g. ADME or
	// toxicity of a single compound.
	SingleInstance TaskCategory = iota

	// MultiInstance tasks predict a property of a pair (or more) of
	// entities, e.g. drug-target binding affinity.
	MultiInstance

	// Generation tasks sample new entities, e.g. molecule generation.
	Generation
)

// String implements fmt.Stringer.
func (c TaskCategory) String() string {
	switch c {
	case SingleInstance:
		return "single_instance"
	case MultiInstance:
		return "multi_instance"
	case Generation:
		return "generation"
	}
	exceptions.Panicf("invalid TaskCategory(%d)", int(c))
	return "" // Unreachable.
}

// ParseTaskCategory converts a category name ("single_instance",
// "multi_instance" or "generation") back to a TaskCategory.
func ParseTaskCategory(name string) (TaskCategory, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "single_instance", "single":
		return SingleInstance, true
	case "multi_instance", "multi":
		return MultiInstance, true
	case "generation", "gen":
		return Generation, true
	}
	return 0, false
}

// Entry is the configuration record for one dataset: where to find it and
// how its columns are laid out. Datasets are described by configuration,
// not by per-dataset types.
type Entry struct {
	// Name is the canonical identifier of the dataset. Unique within Task.
	Name string

	// Task is the task (problem) name this dataset belongs to, e.g. "ADME".
	Task string

	// Category is the top-level problem framing of Task.
	Category TaskCategory

	// IDColumns come first in the loaded table, e.g. a compound identifier.
	IDColumns []string

	// FeatureColumns hold free-form string features, e.g. SMILES encodings.
	FeatureColumns []string

	// LabelColumn is the prediction target. Always ordered last. Empty for
	// generation tasks, which have no label.
	LabelColumn string

	// GroupColumn optionally designates the leakage-safe grouping key for
	// scaffold-style splits. If empty, the first feature column is used.
	GroupColumn string

	// URL is where the remote repository serves this dataset's CSV.
	URL string

	// CheckSum is an optional sha256 of the remote file.
	CheckSum string
}

// Columns returns the entry's expected column names in their deterministic
// load order: IDs first, then features, then the grouping column (when it
// is not already a feature), with the label last.
func (e *Entry) Columns() []string {
	cols := make([]string, 0, len(e.IDColumns)+len(e.FeatureColumns)+2)
	cols = append(cols, e.IDColumns...)
	cols = append(cols, e.FeatureColumns...)
	if e.GroupColumn != "" && !slices.Contains(cols, e.GroupColumn) {
		cols = append(cols, e.GroupColumn)
	}
	if e.LabelColumn != "" {
		cols = append(cols, e.LabelColumn)
	}
	return cols
}

// GroupKey returns the column used to group records for leakage-safe
// splitting.
func (e *Entry) GroupKey() string {
	if e.GroupColumn != "" {
		return e.GroupColumn
	}
	if len(e.FeatureColumns) > 0 {
		return e.FeatureColumns[0]
	}
	return ""
}

// Catalog is an immutable collection of dataset entries. It is built once,
// at process start, and passed explicitly to the resolver and the loader --
// there is no global mutable catalog.
type Catalog struct {
	byCategory map[TaskCategory]map[string]*Entry
}

// New builds a Catalog from the given entries. It panics if two entries of
// the same task share a canonical name: that is a build-time data bug, not
// a runtime condition.
func New(entries ...Entry) *Catalog {
	c := &Catalog{byCategory: make(map[TaskCategory]map[string]*Entry)}
	seen := make(map[string]bool)
	for ii := range entries {
		entry := &entries[ii]
		key := entry.Task + "/" + strings.ToLower(entry.Name)
		if seen[key] {
			exceptions.Panicf("catalog: duplicate dataset %q in task %q", entry.Name, entry.Task)
		}
		seen[key] = true
		perCategory := c.byCategory[entry.Category]
		if perCategory == nil {
			perCategory = make(map[string]*Entry)
			c.byCategory[entry.Category] = perCategory
		}
		if _, found := perCategory[strings.ToLower(entry.Name)]; found {
			exceptions.Panicf("catalog: dataset %q registered twice under category %s", entry.Name, entry.Category)
		}
		perCategory[strings.ToLower(entry.Name)] = entry
	}
	return c
}

// Names returns the sorted canonical dataset names of the given category.
func (c *Catalog) Names(category TaskCategory) []string {
	perCategory := c.byCategory[category]
	names := make([]string, 0, len(perCategory))
	for _, entry := range perCategory {
		names = append(names, entry.Name)
	}
	slices.Sort(names)
	return names
}

// Tasks returns the sorted task names present in the catalog.
func (c *Catalog) Tasks() []string {
	tasks := make(map[string]bool)
	for _, perCategory := range c.byCategory {
		for _, entry := range perCategory {
			tasks[entry.Task] = true
		}
	}
	names := maps.Keys(tasks)
	slices.Sort(names)
	return names
}

// Entries returns the entries of the given category, sorted by name.
func (c *Catalog) Entries(category TaskCategory) []*Entry {
	perCategory := c.byCategory[category]
	entries := maps.Values(perCategory)
	slices.SortFunc(entries, func(a, b *Entry) int {
		return strings.Compare(a.Name, b.Name)
	})
	return entries
}

// lookup returns the entry with the given canonical name, if present.
// Matching is case-insensitive.
func (c *Catalog) lookup(category TaskCategory, name string) *Entry {
	return c.byCategory[category][strings.ToLower(name)]
}
