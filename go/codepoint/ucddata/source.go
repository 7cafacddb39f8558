/*
Copyright 2026 The Codepoint Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package ucddata locates, downloads and caches the Unicode Character
// Database text files consumed by the table compiler.
package ucddata

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"path/filepath"

	"github.com/spf13/afero"

	"codepoint.dev/codepoint/go/log"
)

// DefaultVersion is the UCD version compiled when none is configured.
const DefaultVersion = "13.0.0"

// DefaultBaseURL is the public Unicode server.
const DefaultBaseURL = "https://www.unicode.org/Public"

// The UCD files the compiler reads.
const (
	UnicodeData           = "UnicodeData.txt"
	DerivedCoreProperties = "DerivedCoreProperties.txt"
	LineBreak             = "LineBreak.txt"
	EmojiData             = "emoji-data.txt"
)

// Source locates UCD files, fetching and caching them as needed. The
// zero value reads DefaultVersion from the public server into a
// "ucd-<version>" directory next to the working directory.
type Source struct {
	// Version is the UCD version, e.g. "13.0.0".
	Version string
	// CacheDir is the directory downloaded files land in. Defaults to
	// "ucd-<version>".
	CacheDir string
	// BaseURL overrides the public Unicode server, mostly for tests.
	BaseURL string
	// Offline disables downloading. A file missing from the cache
	// directory is then an error.
	Offline bool
	// Client overrides http.DefaultClient.
	Client *http.Client
	// Fs overrides the OS filesystem. Tests use an in-memory one.
	Fs afero.Fs
}

func (s *Source) version() string {
	if s.Version != "" {
		return s.Version
	}
	return DefaultVersion
}

func (s *Source) cacheDir() string {
	if s.CacheDir != "" {
		return s.CacheDir
	}
	return "ucd-" + s.version()
}

func (s *Source) baseURL() string {
	if s.BaseURL != "" {
		return s.BaseURL
	}
	return DefaultBaseURL
}

func (s *Source) client() *http.Client {
	if s.Client != nil {
		return s.Client
	}
	return http.DefaultClient
}

func (s *Source) fs() afero.Fs {
	if s.Fs != nil {
		return s.Fs
	}
	return afero.NewOsFs()
}

// URL returns the public URL of a UCD file for the source's version. The
// emoji data lives in its own subdirectory of the versioned tree.
func (s *Source) URL(name string) string {
	base := fmt.Sprintf("%s/%s/ucd", s.baseURL(), s.version())
	if name == EmojiData {
		return base + "/emoji/" + name
	}
	return base + "/" + name
}

// Open returns a reader for the named UCD file, downloading it into the
// cache directory first when it is not already there.
func (s *Source) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	fs := s.fs()
	path := filepath.Join(s.cacheDir(), name)

	ok, err := afero.Exists(fs, path)
	if err != nil {
		return nil, err
	}
	if !ok {
		if s.Offline {
			return nil, fmt.Errorf("%s not found in %s", name, s.cacheDir())
		}
		if err := s.download(ctx, name, path); err != nil {
			return nil, err
		}
	}
	return fs.Open(path)
}

// download fetches one file into dest. The body lands in a temp file
// first and is renamed into place, so a failed download never leaves a
// partial cache entry behind.
func (s *Source) download(ctx context.Context, name, dest string) error {
	fs := s.fs()
	dir := filepath.Dir(dest)
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	url := s.URL(name)
	log.Infof("fetching %s", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := s.client().Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: %s", url, resp.Status)
	}

	tmp, err := afero.TempFile(fs, dir, name+".*")
	if err != nil {
		return err
	}
	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		fs.Remove(tmp.Name())
		return fmt.Errorf("downloading %s: %w", url, err)
	}
	if err := tmp.Close(); err != nil {
		fs.Remove(tmp.Name())
		return err
	}
	if err := fs.Rename(tmp.Name(), dest); err != nil {
		fs.Remove(tmp.Name())
		return err
	}
	return nil
}
