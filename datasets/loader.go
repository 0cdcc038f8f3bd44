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

// Package datasets loads therapeutics ML benchmark datasets into tabular
// form and partitions them into reproducible train/valid/test splits.
//
// A Loader resolves a (possibly misspelled) dataset name against a
// catalog, retrieves the table cache-first, and holds it immutable for the
// life of the process:
//
//	loader, err := datasets.Load(catalog.Builtin(), catalog.SingleInstance, "caco2_wang")
//	split, err := loader.GetSplit(datasets.Random, datasets.BenchmarkSeed, datasets.DefaultFractions)
package datasets

import (
	"os"
	"path/filepath"

	"github.com/go-gota/gota/dataframe"
	"github.com/moldata/moldata/catalog"
	"github.com/moldata/moldata/data"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// DefaultCacheDir is where dataset files land unless WithCacheDir is given.
const DefaultCacheDir = "~/.moldata/cache"

// Source supplies dataset files from a remote repository. Fetch must write
// the file for the given entry to destPath, atomically (no partial file
// may remain on failure).
type Source interface {
	Fetch(entry *catalog.Entry, destPath string) error
}

// httpSource fetches from the entry's URL over HTTP, with the download
// layer's bounded retry and checksum validation.
type httpSource struct{}

func (httpSource) Fetch(entry *catalog.Entry, destPath string) error {
	return data.DownloadIfMissing(entry.URL, destPath, entry.CheckSum)
}

// Option configures a Loader at construction.
type Option func(*Loader)

// WithCacheDir overrides the local cache directory.
func WithCacheDir(dir string) Option {
	return func(l *Loader) { l.cacheDir = dir }
}

// WithSource overrides the remote repository collaborator. Used to inject
// fakes in tests, or to fetch from a mirror.
func WithSource(source Source) Option {
	return func(l *Loader) { l.source = source }
}

// Loader holds one loaded dataset. The underlying table is fetched once at
// construction and is immutable afterwards; splits are derived views that
// the caller owns.
type Loader struct {
	entry    *catalog.Entry
	cacheDir string
	source   Source
	df       dataframe.DataFrame
}

// Load resolves name within the given category of the catalog, retrieves
// the dataset (cache-first, remote otherwise) and parses it into memory.
//
// Name resolution failures return UnknownDatasetError or
// AmbiguousNameError from the catalog package; retrieval failures return
// RetrievalError.
func Load(c *catalog.Catalog, category catalog.TaskCategory, name string, options ...Option) (*Loader, error) {
	entry, err := c.Resolve(category, name)
	if err != nil {
		return nil, err
	}
	l := &Loader{
		entry:    entry,
		cacheDir: DefaultCacheDir,
		source:   httpSource{},
	}
	for _, option := range options {
		option(l)
	}
	l.cacheDir = data.ReplaceTildeInDir(l.cacheDir)
	l.df, err = l.retrieve()
	if err != nil {
		return nil, err
	}
	return l, nil
}

// CachePath returns where the dataset's file lives in the local cache.
func (l *Loader) CachePath() string {
	return filepath.Join(l.cacheDir, l.entry.Name+".csv")
}

// retrieve loads from the cache if a structurally valid copy is present,
// otherwise fetches from the remote source, persists and parses. An
// invalid cached file is discarded and fetched again once.
func (l *Loader) retrieve() (df dataframe.DataFrame, err error) {
	cachePath := l.CachePath()
	if data.FileExists(cachePath) {
		df, err = l.parse(cachePath)
		if err == nil {
			klog.Infof("dataset %s: using cached copy at %s", l.entry.Name, cachePath)
			return df, nil
		}
		klog.Warningf("dataset %s: cached copy at %s is invalid, refetching: %v", l.entry.Name, cachePath, err)
		if err = os.Remove(cachePath); err != nil {
			return df, errors.Wrapf(RetrievalError, "cannot remove invalid cache file %q: %v", cachePath, err)
		}
	}
	if err = l.source.Fetch(l.entry, cachePath); err != nil {
		return df, errors.Wrapf(RetrievalError, "fetching dataset %q: %v", l.entry.Name, err)
	}
	df, err = l.parse(cachePath)
	if err != nil {
		return df, errors.Wrapf(RetrievalError, "parsing dataset %q from %q: %v", l.entry.Name, cachePath, err)
	}
	return df, nil
}

// parse reads the CSV at path and reorders columns deterministically:
// identifiers first, features next, label last. A missing expected column
// makes the file structurally invalid.
func (l *Loader) parse(path string) (df dataframe.DataFrame, err error) {
	f, err := os.Open(path)
	if err != nil {
		return df, errors.Wrapf(err, "failed reading %q", path)
	}
	defer func() {
		_ = f.Close() // Discard reading error on Close.
	}()
	df = dataframe.ReadCSV(f)
	if df.Error() != nil {
		return df, errors.Wrapf(df.Error(), "failed parsing CSV %q", path)
	}
	expected := l.entry.Columns()
	have := make(map[string]bool, len(df.Names()))
	for _, name := range df.Names() {
		have[name] = true
	}
	for _, name := range expected {
		if !have[name] {
			return df, errors.Errorf("dataset %q: file %q is missing column %q", l.entry.Name, path, name)
		}
	}
	df = df.Select(expected)
	if df.Error() != nil {
		return df, errors.Wrapf(df.Error(), "failed selecting columns of %q", path)
	}
	return df, nil
}

// Name returns the canonical name of the loaded dataset.
func (l *Loader) Name() string { return l.entry.Name }

// Entry returns the catalog entry the loader resolved to.
func (l *Loader) Entry() *catalog.Entry { return l.entry }

// NumRecords returns the number of records loaded. Fixed once loaded.
func (l *Loader) NumRecords() int { return l.df.Nrow() }

// DataFrame returns the loaded table. Callers must not mutate it.
func (l *Loader) DataFrame() dataframe.DataFrame { return l.df }
