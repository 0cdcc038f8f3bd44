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
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/janpfeifer/must"
	"github.com/moldata/moldata/catalog"
	"github.com/moldata/moldata/datasets"
	"github.com/spf13/cobra"
)

var (
	splitMethod string
	splitSeed   string
	splitFrac   string
	splitOut    string
)

var splitCmd = &cobra.Command{
	Use:   "split <task-category> <dataset>",
	Short: "Partition a dataset into train/valid/test",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		method, ok := datasets.ParseMethod(splitMethod)
		if !ok {
			fmt.Fprintf(os.Stderr, "unknown split method %q: want random, scaffold or stratified\n", splitMethod)
			os.Exit(1)
		}
		seed, err := parseSeed(splitSeed)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		frac, err := parseFractions(splitFrac)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		loader, err := datasets.Load(catalog.Builtin(), parseCategory(args[0]), args[1],
			datasets.WithCacheDir(cacheDir))
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		split, err := loader.GetSplit(method, seed, frac)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		for _, name := range []string{datasets.Train, datasets.Valid, datasets.Test} {
			fmt.Printf("%s\t%d records\n", name, split[name].Nrow())
		}
		if splitOut != "" {
			writeSplit(loader.Name(), split)
		}
	},
}

// parseSeed accepts an integer or the literal "benchmark".
func parseSeed(arg string) (int64, error) {
	if strings.EqualFold(arg, "benchmark") {
		return datasets.BenchmarkSeed, nil
	}
	seed, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid seed %q: want an integer or \"benchmark\"", arg)
	}
	return seed, nil
}

func parseFractions(arg string) ([]float64, error) {
	parts := strings.Split(arg, ",")
	frac := make([]float64, 0, len(parts))
	for _, part := range parts {
		value, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid fractions %q: %v", arg, err)
		}
		frac = append(frac, value)
	}
	return frac, nil
}

// writeSplit saves each partition as "<dataset>_<partition>.csv" under the
// --out directory.
func writeSplit(datasetName string, split datasets.Split) {
	must.M(os.MkdirAll(splitOut, 0777))
	for name, df := range split {
		filePath := filepath.Join(splitOut, fmt.Sprintf("%s_%s.csv", datasetName, name))
		f := must.M1(os.Create(filePath))
		must.M(df.WriteCSV(f))
		must.M(f.Close())
		fmt.Printf("wrote %s\n", filePath)
	}
}

func init() {
	splitCmd.Flags().StringVar(&splitMethod, "method", "random",
		"Split method: random, scaffold or stratified.")
	splitCmd.Flags().StringVar(&splitSeed, "seed", "benchmark",
		"Random seed: an integer, or \"benchmark\" for the fixed benchmark seed.")
	splitCmd.Flags().StringVar(&splitFrac, "frac", "0.7,0.1,0.2",
		"Comma-separated train,valid,test fractions, must sum to 1.")
	splitCmd.Flags().StringVar(&splitOut, "out", "",
		"If set, write each partition as CSV into this directory.")
	rootCmd.AddCommand(splitCmd)
}
