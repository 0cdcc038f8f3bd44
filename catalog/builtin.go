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

import "fmt"

// RepositoryBaseURL is the remote dataset repository all builtin entries
// point at. Files are keyed by "<task>/<canonical name>.csv".
const RepositoryBaseURL = "https://data.moldata.dev/v1"

func datasetURL(task, name string) string {
	return fmt.Sprintf("%s/%s/%s.csv", RepositoryBaseURL, task, name)
}

// Column names shared by the builtin entries. Single-instance tables carry
// one compound per row; multi-instance tables carry a compound/target pair.
const (
	DrugIDCol   = "Drug_ID"
	DrugCol     = "Drug" // SMILES encoding of the compound.
	TargetIDCol = "Target_ID"
	TargetCol   = "Target" // Amino-acid sequence of the target.
	LabelCol    = "Y"
	ScaffoldCol = "Scaffold" // Bemis-Murcko scaffold of the compound.
)

func singleInstanceEntry(task, name string) Entry {
	return Entry{
		Name:           name,
		Task:           task,
		Category:       SingleInstance,
		IDColumns:      []string{DrugIDCol},
		FeatureColumns: []string{DrugCol},
		LabelColumn:    LabelCol,
		GroupColumn:    ScaffoldCol,
		URL:            datasetURL(task, name),
	}
}

func multiInstanceEntry(task, name string) Entry {
	return Entry{
		Name:           name,
		Task:           task,
		Category:       MultiInstance,
		IDColumns:      []string{DrugIDCol, TargetIDCol},
		FeatureColumns: []string{DrugCol, TargetCol},
		LabelColumn:    LabelCol,
		GroupColumn:    DrugCol,
		URL:            datasetURL(task, name),
	}
}

func generationEntry(task, name string) Entry {
	return Entry{
		Name:           name,
		Task:           task,
		Category:       Generation,
		IDColumns:      []string{DrugIDCol},
		FeatureColumns: []string{DrugCol},
		URL:            datasetURL(task, name),
	}
}

// Builtin returns the catalog of datasets shipped with the library.
//
// It covers the commonly benchmarked ADME and toxicity property tables,
// drug-target binding affinity pairs, and the standard molecule-generation
// corpora. New datasets are added by registering further entries, not by
// writing new types.
func Builtin() *Catalog {
	return New(
		// ADME: absorption, distribution, metabolism, excretion.
		singleInstanceEntry("ADME", "caco2_wang"),
		singleInstanceEntry("ADME", "hia_hou"),
		singleInstanceEntry("ADME", "pgp_broccatelli"),
		singleInstanceEntry("ADME", "bbb_martins"),
		singleInstanceEntry("ADME", "lipophilicity_astrazeneca"),
		singleInstanceEntry("ADME", "solubility_aqsoldb"),
		singleInstanceEntry("ADME", "cyp2d6_veith"),
		singleInstanceEntry("ADME", "cyp3a4_veith"),
		singleInstanceEntry("ADME", "half_life_obach"),
		singleInstanceEntry("ADME", "clearance_hepatocyte_az"),

		// Tox: toxicity endpoints.
		singleInstanceEntry("Tox", "herg"),
		singleInstanceEntry("Tox", "ames"),
		singleInstanceEntry("Tox", "dili"),
		singleInstanceEntry("Tox", "ld50_zhu"),

		// DTI: drug-target binding affinity.
		multiInstanceEntry("DTI", "bindingdb_kd"),
		multiInstanceEntry("DTI", "davis"),
		multiInstanceEntry("DTI", "kiba"),

		// MolGen: molecule generation corpora. No label column.
		generationEntry("MolGen", "moses"),
		generationEntry("MolGen", "zinc"),
		generationEntry("MolGen", "chembl"),
	)
}
