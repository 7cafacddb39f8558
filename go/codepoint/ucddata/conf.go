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

package ucddata

import (
	"codepoint.dev/codepoint/go/viperutil"
)

// Configuration shared by the tools that read the UCD. Each tool binds
// the flags it registers through viperutil.BindFlags.
var (
	// VersionConf selects the UCD version to download.
	VersionConf = viperutil.Configure("ucd.version", viperutil.Options[string]{
		Default:  DefaultVersion,
		FlagName: "ucd-version",
		EnvVars:  []string{"UNICODE_UCD_VERSION"},
	})

	// DirConf points at a directory that already holds the UCD files.
	// Setting it disables downloading.
	DirConf = viperutil.Configure("ucd.dir", viperutil.Options[string]{
		FlagName: "ucd-dir",
		EnvVars:  []string{"UNICODE_UCD_DIR"},
	})

	// CacheDirConf overrides where downloaded files are cached.
	CacheDirConf = viperutil.Configure("ucd.cache-dir", viperutil.Options[string]{
		FlagName: "cache-dir",
		EnvVars:  []string{"UNICODE_CACHE_DIR"},
	})
)

// SourceFromConf builds a Source from the shared configuration.
func SourceFromConf() *Source {
	src := &Source{
		Version:  VersionConf.Get(),
		CacheDir: CacheDirConf.Get(),
	}
	if dir := DirConf.Get(); dir != "" {
		src.CacheDir = dir
		src.Offline = true
	}
	return src
}
