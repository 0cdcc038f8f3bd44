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
	"strings"

	"github.com/moldata/moldata/catalog"
	"github.com/spf13/cobra"
)

var listCategory string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the datasets in the builtin catalog",
	Run: func(cmd *cobra.Command, args []string) {
		categories := []catalog.TaskCategory{catalog.SingleInstance, catalog.MultiInstance, catalog.Generation}
		if listCategory != "" {
			categories = []catalog.TaskCategory{parseCategory(listCategory)}
		}
		c := catalog.Builtin()
		for _, category := range categories {
			fmt.Printf("%s:\n", category)
			for _, entry := range c.Entries(category) {
				fmt.Printf("\t%-28s task=%-8s columns=%s\n",
					entry.Name, entry.Task, strings.Join(entry.Columns(), ","))
			}
		}
	},
}

func init() {
	listCmd.Flags().StringVar(&listCategory, "task-category", "",
		"Restrict listing to one task category.")
	rootCmd.AddCommand(listCmd)
}
