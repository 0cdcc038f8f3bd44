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
	"strings"

	"github.com/go-gota/gota/series"
	"github.com/pkg/errors"
)

// Format selects the rendering GetData returns the loaded dataset in.
type Format int

const (
	// FormatDataFrame renders as a dataframe.DataFrame.
	FormatDataFrame Format = iota

	// FormatColumns renders as a map from column name to that column's
	// values as strings.
	FormatColumns

	// FormatRecords renders as one map per record, keyed by column name.
	FormatRecords
)

// String implements fmt.Stringer.
func (f Format) String() string {
	switch f {
	case FormatDataFrame:
		return "dataframe"
	case FormatColumns:
		return "columns"
	case FormatRecords:
		return "records"
	}
	return "invalid"
}

// ParseFormat converts a format name to a Format.
func ParseFormat(name string) (Format, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "dataframe", "df":
		return FormatDataFrame, true
	case "columns", "dict":
		return FormatColumns, true
	case "records", "list":
		return FormatRecords, true
	}
	return 0, false
}

// GetData returns the loaded dataset rendered in the given format:
// dataframe.DataFrame for FormatDataFrame, map[string][]string for
// FormatColumns, []map[string]any for FormatRecords. Any other format
// fails with UnsupportedFormatError.
func (l *Loader) GetData(format Format) (any, error) {
	switch format {
	case FormatDataFrame:
		return l.df, nil
	case FormatColumns:
		columns := make(map[string][]string, len(l.df.Names()))
		for _, name := range l.df.Names() {
			columns[name] = l.df.Col(name).Records()
		}
		return columns, nil
	case FormatRecords:
		return l.df.Maps(), nil
	}
	return nil, errors.Wrapf(UnsupportedFormatError, "format %d", int(format))
}

// LabelSummary describes the label column of a loaded dataset: moment
// statistics for numeric labels, value counts for categorical ones.
type LabelSummary struct {
	Column string
	Count  int

	// Numeric is set when the label column parsed as numbers, in which
	// case Mean/Min/Max are populated. Otherwise ValueCounts is.
	Numeric        bool
	Mean, Min, Max float64
	ValueCounts    map[string]int
}

// LabelSummary computes summary statistics of the label column. Returns
// nil for datasets without a label (generation corpora).
func (l *Loader) LabelSummary() *LabelSummary {
	if l.entry.LabelColumn == "" {
		return nil
	}
	col := l.df.Col(l.entry.LabelColumn)
	summary := &LabelSummary{
		Column: l.entry.LabelColumn,
		Count:  col.Len(),
	}
	switch col.Type() {
	case series.Float, series.Int:
		summary.Numeric = true
		summary.Mean = col.Mean()
		summary.Min = col.Min()
		summary.Max = col.Max()
	default:
		summary.ValueCounts = make(map[string]int)
		for _, value := range col.Records() {
			summary.ValueCounts[value]++
		}
	}
	return summary
}
