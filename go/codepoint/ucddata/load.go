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
	"context"
	"errors"
	"io"

	"golang.org/x/sync/errgroup"

	"codepoint.dev/codepoint/go/codepoint/tablegen"
)

// Load opens the four UCD resources as a tablegen.Input, fetching the
// missing ones concurrently. The returned closer releases the underlying
// files and must be called once compilation is done.
func Load(ctx context.Context, src *Source) (tablegen.Input, func() error, error) {
	names := [...]string{UnicodeData, DerivedCoreProperties, LineBreak, EmojiData}
	var readers [len(names)]io.ReadCloser

	closeAll := func() error {
		var errs []error
		for _, rc := range readers {
			if rc != nil {
				errs = append(errs, rc.Close())
			}
		}
		return errors.Join(errs...)
	}

	g, ctx := errgroup.WithContext(ctx)
	for i, name := range names {
		g.Go(func() error {
			rc, err := src.Open(ctx, name)
			if err != nil {
				return err
			}
			readers[i] = rc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		_ = closeAll()
		return tablegen.Input{}, nil, err
	}

	return tablegen.Input{
		UnicodeData:           readers[0],
		DerivedCoreProperties: readers[1],
		LineBreak:             readers[2],
		EmojiData:             readers[3],
	}, closeAll, nil
}
