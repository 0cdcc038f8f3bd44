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

package commands

import (
	"testing"

	"github.com/moldata/moldata/datasets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSeed(t *testing.T) {
	// The documented "benchmark" literal, in any casing.
	for _, arg := range []string{"benchmark", "Benchmark", "BENCHMARK"} {
		seed, err := parseSeed(arg)
		require.NoError(t, err)
		assert.Equal(t, datasets.BenchmarkSeed, seed)
	}

	seed, err := parseSeed("42")
	require.NoError(t, err)
	assert.EqualValues(t, 42, seed)

	seed, err = parseSeed("-7")
	require.NoError(t, err)
	assert.EqualValues(t, -7, seed)

	for _, arg := range []string{"", "bench", "1.5", "seed42"} {
		_, err = parseSeed(arg)
		require.Errorf(t, err, "arg=%q", arg)
		assert.Contains(t, err.Error(), arg)
	}
}

func TestParseFractions(t *testing.T) {
	frac, err := parseFractions("0.7,0.1,0.2")
	require.NoError(t, err)
	assert.Equal(t, []float64{0.7, 0.1, 0.2}, frac)

	// Whitespace around the commas is tolerated.
	frac, err = parseFractions("0.8, 0.1, 0.1")
	require.NoError(t, err)
	assert.Equal(t, []float64{0.8, 0.1, 0.1}, frac)

	// Arity is the splitter's concern; the parser passes pairs through.
	frac, err = parseFractions("0.5,0.5")
	require.NoError(t, err)
	assert.Len(t, frac, 2)

	for _, arg := range []string{"0.7,x,0.2", "", "0.7;0.1;0.2"} {
		_, err = parseFractions(arg)
		require.Errorf(t, err, "arg=%q", arg)
	}
}
