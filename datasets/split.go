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

package datasets

import (
	"math"
	"math/rand"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/pkg/errors"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Method selects the partitioning strategy of GetSplit.
type Method int

const (
	// Random partitions records uniformly at random under the given seed.
	Random Method = iota

	// Scaffold partitions by the dataset's grouping column: records
	// sharing a group key (e.g. the same molecular scaffold) always land
	// in the same partition, so structurally related entities never leak
	// across splits.
	Scaffold

	// Stratified partitions each label value separately, preserving the
	// label distribution in every partition.
	Stratified
)

// String implements fmt.Stringer.
func (m Method) String() string {
	switch m {
	case Random:
		return "random"
	case Scaffold:
		return "scaffold"
	case Stratified:
		return "stratified"
	}
	return "invalid"
}

// ParseMethod converts a method name to a Method.
func ParseMethod(name string) (Method, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "random":
		return Random, true
	case "scaffold":
		return Scaffold, true
	case "stratified":
		return Stratified, true
	}
	return 0, false
}

// BenchmarkSeed is the fixed, well-known seed used by default: splits taken
// with it are comparable across papers and across processes.
const BenchmarkSeed int64 = 1234

// DefaultFractions is the customary train/valid/test proportion.
var DefaultFractions = []float64{0.7, 0.1, 0.2}

// Split partition names.
const (
	Train = "train"
	Valid = "valid"
	Test  = "test"
)

// Split maps partition name ("train", "valid", "test") to the records of
// that partition. Partitions are disjoint and jointly cover the loaded
// dataset. The caller owns the result; the loader does not keep it.
type Split map[string]dataframe.DataFrame

// fracSumTolerance is how far the fraction sum may drift from 1.0 before
// it is rejected. Wide enough for float noise, narrow enough to catch a
// mistyped triple.
const fracSumTolerance = 1e-3

// GetSplit partitions the loaded dataset into train/valid/test.
//
// frac must hold exactly three non-negative fractions summing to 1.0; use
// DefaultFractions for the customary 0.7/0.1/0.2. Pass BenchmarkSeed as
// seed unless a different reproducible shuffle is wanted.
//
// For a fixed (dataset, method, seed, frac) tuple the result is identical
// across calls and across processes.
func (l *Loader) GetSplit(method Method, seed int64, frac []float64) (Split, error) {
	counts, err := partitionCounts(l.df.Nrow(), frac)
	if err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(seed))
	var indices [3][]int
	switch method {
	case Random:
		indices = randomPartition(l.df.Nrow(), counts, rng)
	case Scaffold:
		indices, err = l.groupedPartition(counts, rng)
	case Stratified:
		indices, err = l.stratifiedPartition(frac, rng)
	default:
		return nil, errors.Errorf("invalid split method Method(%d)", int(method))
	}
	if err != nil {
		return nil, err
	}
	if l.df.Nrow() > 0 {
		for _, part := range indices {
			if len(part) == 0 {
				return nil, errors.Wrapf(InvalidFractionError,
					"fractions %v leave an empty partition on %d records", frac, l.df.Nrow())
			}
		}
	}
	split := make(Split, 3)
	for ii, name := range []string{Train, Valid, Test} {
		slices.Sort(indices[ii])
		split[name] = l.df.Subset(indices[ii])
	}
	return split, nil
}

// partitionCounts validates frac and turns it into record counts: train
// and valid round to nearest, test takes the remainder.
func partitionCounts(n int, frac []float64) ([3]int, error) {
	var counts [3]int
	if len(frac) != 3 {
		return counts, errors.Wrapf(InvalidFractionError, "want 3 fractions, got %v", frac)
	}
	var sum float64
	for _, f := range frac {
		if f < 0 {
			return counts, errors.Wrapf(InvalidFractionError, "negative fraction in %v", frac)
		}
		sum += f
	}
	if math.Abs(sum-1.0) > fracSumTolerance {
		return counts, errors.Wrapf(InvalidFractionError, "fractions %v sum to %g, want 1.0", frac, sum)
	}
	// A fraction sum just inside the tolerance can round past n; clamp so
	// every count stays within [0, n] and they add up to n exactly.
	counts[0] = min(int(math.Round(frac[0]*float64(n))), n)
	counts[1] = min(int(math.Round(frac[1]*float64(n))), n-counts[0])
	counts[2] = n - counts[0] - counts[1]
	return counts, nil
}

// randomPartition deals a seeded permutation of [0, n) into the three
// partitions by count.
func randomPartition(n int, counts [3]int, rng *rand.Rand) (indices [3][]int) {
	perm := rng.Perm(n)
	indices[0] = perm[:counts[0]]
	indices[1] = perm[counts[0] : counts[0]+counts[1]]
	indices[2] = perm[counts[0]+counts[1]:]
	return
}

// groupedPartition shuffles the dataset's group keys and assigns each
// whole group to the currently most underfilled partition, so no group
// ever straddles a partition boundary.
func (l *Loader) groupedPartition(counts [3]int, rng *rand.Rand) (indices [3][]int, err error) {
	groupKey := l.entry.GroupKey()
	if groupKey == "" {
		return indices, errors.Errorf("dataset %q has no grouping column, scaffold split unavailable", l.entry.Name)
	}
	groups := make(map[string][]int)
	for row, value := range l.df.Col(groupKey).Records() {
		groups[value] = append(groups[value], row)
	}
	keys := maps.Keys(groups)
	slices.Sort(keys) // Fixed order before shuffling, for determinism.
	rng.Shuffle(len(keys), func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })

	for _, key := range keys {
		target := mostUnderfilled(indices, counts)
		indices[target] = append(indices[target], groups[key]...)
	}
	return indices, nil
}

// mostUnderfilled picks the partition furthest below its target count,
// preferring train, then valid, on ties.
func mostUnderfilled(indices [3][]int, counts [3]int) int {
	best, bestDeficit := 0, math.Inf(-1)
	for ii := 0; ii < 3; ii++ {
		if counts[ii] == 0 {
			continue
		}
		deficit := 1 - float64(len(indices[ii]))/float64(counts[ii])
		if deficit > bestDeficit {
			best, bestDeficit = ii, deficit
		}
	}
	return best
}

// stratifiedPartition splits every label value separately with the given
// fractions, so each partition preserves the label distribution.
func (l *Loader) stratifiedPartition(frac []float64, rng *rand.Rand) (indices [3][]int, err error) {
	if l.entry.LabelColumn == "" {
		return indices, errors.Errorf("dataset %q has no label column, stratified split unavailable", l.entry.Name)
	}
	strata := make(map[string][]int)
	for row, value := range l.df.Col(l.entry.LabelColumn).Records() {
		strata[value] = append(strata[value], row)
	}
	values := maps.Keys(strata)
	slices.Sort(values) // Fixed iteration order, for determinism.
	for _, value := range values {
		rows := strata[value]
		counts, err := partitionCounts(len(rows), frac)
		if err != nil {
			return indices, err
		}
		perm := rng.Perm(len(rows))
		at := 0
		for ii := 0; ii < 3; ii++ {
			for jj := 0; jj < counts[ii]; jj++ {
				indices[ii] = append(indices[ii], rows[perm[at]])
				at++
			}
		}
	}
	return indices, nil
}
