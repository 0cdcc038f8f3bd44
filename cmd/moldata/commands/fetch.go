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

	"github.com/moldata/moldata/catalog"
	"github.com/moldata/moldata/datasets"
	"github.com/spf13/cobra"
)

var fetchStats bool

var fetchCmd = &cobra.Command{
	Use:   "fetch <task-category> <dataset>",
	Short: "Fetch a dataset into the local cache",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		loader, err := datasets.Load(catalog.Builtin(), parseCategory(args[0]), args[1],
			datasets.WithCacheDir(cacheDir))
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Printf("%s: %d records at %s\n", loader.Name(), loader.NumRecords(), loader.CachePath())
		if fetchStats {
			printLabelSummary(loader)
		}
	},
}

func printLabelSummary(loader *datasets.Loader) {
	summary := loader.LabelSummary()
	if summary == nil {
		fmt.Println("no label column (generation corpus)")
		return
	}
	if summary.Numeric {
		fmt.Printf("label %q: count=%d mean=%.4f min=%.4f max=%.4f\n",
			summary.Column, summary.Count, summary.Mean, summary.Min, summary.Max)
		return
	}
	fmt.Printf("label %q: count=%d\n", summary.Column, summary.Count)
	for value, count := range summary.ValueCounts {
		fmt.Printf("\t%q: %d\n", value, count)
	}
}

func init() {
	fetchCmd.Flags().BoolVar(&fetchStats, "stats", false,
		"Print label summary statistics after fetching.")
	rootCmd.AddCommand(fetchCmd)
}
