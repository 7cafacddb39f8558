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

// Package viperutil provides typed access to a process-wide viper
// registry.
//
// Values are declared once, usually at package scope, and resolve through
// the usual precedence: an explicit Set, then the bound command line
// flag, then the bound environment variables, then the declared default.
//
//	var cacheDir = viperutil.Configure("ucd.cache-dir", viperutil.Options[string]{
//		Default:  "",
//		FlagName: "cache-dir",
//		EnvVars:  []string{"UNICODE_CACHE_DIR"},
//	})
//
// Flags are bound after the FlagSet is populated, via BindFlags.
package viperutil

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// registry is the single viper instance backing every configured value.
var registry = viper.New()

// Registerable is the flag-binding subset of Value, free of the value's
// type parameter so heterogeneous values can be bound in one call.
type Registerable interface {
	Key() string
	Flag(fs *pflag.FlagSet) (*pflag.Flag, error)
}

// Value is a typed configuration value.
type Value[T any] interface {
	Registerable

	// Get returns the current value of the key.
	Get() T
	// Default returns the declared default.
	Default() T
	// Set overrides the key at the highest precedence. Used by tests.
	Set(v T)
}

// Options configures a Value.
type Options[T any] struct {
	// Aliases are alternate keys resolving to the same value.
	Aliases []string
	// FlagName names the command line flag the value binds to, when it
	// differs from the key or when the value is flag-bound at all.
	FlagName string
	// EnvVars are environment variables bound to the value.
	EnvVars []string
	// Default is returned when no other source provides the key.
	Default T
	// GetFunc overrides the getter derived from the value's type.
	GetFunc func(v *viper.Viper) func(key string) T
}

// Configure declares a value in the registry.
func Configure[T any](key string, opts Options[T]) Value[T] {
	getfunc := opts.GetFunc
	if getfunc == nil {
		getfunc = getFuncForType[T]()
	}

	registry.SetDefault(key, opts.Default)
	for _, alias := range opts.Aliases {
		registry.RegisterAlias(alias, key)
	}
	if len(opts.EnvVars) > 0 {
		_ = registry.BindEnv(append([]string{key}, opts.EnvVars...)...)
	}

	return &value[T]{
		key:      key,
		def:      opts.Default,
		flagName: opts.FlagName,
		get:      getfunc(registry),
	}
}

// ErrNoFlagDefined is returned when a value names a flag that was never
// defined on the FlagSet it is bound against.
var ErrNoFlagDefined = errors.New("flag not defined")

// BindFlags binds each value to its flag on fs. It panics when a value
// names a missing flag; mismatched flag registration is a programming
// error that must fail at startup.
func BindFlags(fs *pflag.FlagSet, values ...Registerable) {
	for _, val := range values {
		flag, err := val.Flag(fs)
		switch {
		case err != nil:
			panic(fmt.Sprintf("failed to load flag for %s: %v", val.Key(), err))
		case flag == nil:
			continue
		}

		_ = registry.BindPFlag(val.Key(), flag)
		if flag.Name != val.Key() {
			registry.RegisterAlias(flag.Name, val.Key())
		}
	}
}

type value[T any] struct {
	key      string
	def      T
	flagName string
	get      func(key string) T
}

func (val *value[T]) Key() string { return val.key }
func (val *value[T]) Get() T      { return val.get(val.key) }
func (val *value[T]) Default() T  { return val.def }

func (val *value[T]) Set(v T) {
	registry.Set(val.key, v)
}

func (val *value[T]) Flag(fs *pflag.FlagSet) (*pflag.Flag, error) {
	if val.flagName == "" {
		return nil, nil
	}
	flag := fs.Lookup(val.flagName)
	if flag == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoFlagDefined, val.flagName)
	}
	return flag, nil
}
