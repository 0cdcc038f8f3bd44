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

package data

import (
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	assert.True(t, FileExists(dir))
	assert.False(t, FileExists(filepath.Join(dir, "nope")))
}

func TestValidateChecksum(t *testing.T) {
	dir := t.TempDir()
	filePath := filepath.Join(dir, "payload")
	contents := []byte("Drug_ID,Drug,Y\nD1,CCO,0.5\n")
	require.NoError(t, os.WriteFile(filePath, contents, 0666))

	hash := sha256.Sum256(contents)
	require.NoError(t, ValidateChecksum(filePath, hex.EncodeToString(hash[:])))

	// A wrong hash fails and removes the offending file.
	require.NoError(t, os.WriteFile(filePath, contents, 0666))
	err := ValidateChecksum(filePath, "deadbeef")
	require.Error(t, err)
	assert.False(t, FileExists(filePath))
}

func TestDownload(t *testing.T) {
	const contents = "Drug_ID,Drug,Y\nD1,CCO,0.5\nD2,CCN,0.7\n"
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(contents))
	}))
	defer server.Close()

	dir := t.TempDir()
	filePath := filepath.Join(dir, "sub", "dataset.csv")
	size, err := Download(server.URL, filePath, false)
	require.NoError(t, err)
	assert.Equal(t, int64(len(contents)), size)
	assert.EqualValues(t, 1, calls.Load())

	got, err := os.ReadFile(filePath)
	require.NoError(t, err)
	assert.Equal(t, contents, string(got))

	// No temporary leftovers next to the target.
	entries, err := os.ReadDir(filepath.Dir(filePath))
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

// TestDownloadRetriesOnce: a transient server failure is retried exactly
// once, after which the download succeeds.
func TestDownloadRetriesOnce(t *testing.T) {
	const contents = "Drug_ID,Drug,Y\nD1,CCO,0.5\n"
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(contents))
	}))
	defer server.Close()

	filePath := filepath.Join(t.TempDir(), "dataset.csv")
	_, err := Download(server.URL, filePath, false)
	require.NoError(t, err)
	assert.EqualValues(t, 2, calls.Load())
}

// TestDownloadFailureLeavesNothing: a failed download must not leave a
// partial or corrupted file behind.
func TestDownloadFailureLeavesNothing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	dir := t.TempDir()
	filePath := filepath.Join(dir, "dataset.csv")
	_, err := Download(server.URL, filePath, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), server.URL)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDownloadIfMissing(t *testing.T) {
	const contents = "Drug_ID,Drug,Y\nD1,CCO,0.5\n"
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(contents))
	}))
	defer server.Close()

	filePath := filepath.Join(t.TempDir(), "dataset.csv")
	hash := sha256.Sum256([]byte(contents))
	checkHash := hex.EncodeToString(hash[:])

	require.NoError(t, DownloadIfMissing(server.URL, filePath, checkHash))
	assert.EqualValues(t, 1, calls.Load())

	// Present already: no new request.
	require.NoError(t, DownloadIfMissing(server.URL, filePath, checkHash))
	assert.EqualValues(t, 1, calls.Load())
}
