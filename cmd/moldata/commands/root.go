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

var cacheDir string

var rootCmd = &cobra.Command{
	Use:   "moldata",
	Short: "Therapeutics ML dataset loader",
	Long: `moldata fetches therapeutics machine-learning benchmark datasets,
caches them locally, and produces reproducible train/valid/test splits.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("see help or -h for available commands")
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cacheDir, "cache-dir", datasets.DefaultCacheDir,
		"Directory holding the local dataset cache.")
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// parseCategory converts the CLI's category argument, exiting with the
// valid spellings on failure.
func parseCategory(arg string) catalog.TaskCategory {
	category, ok := catalog.ParseTaskCategory(arg)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown task category %q: want single_instance, multi_instance or generation\n", arg)
		os.Exit(1)
	}
	return category
}
