// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resource

import (
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"strings"
)

// ErrOutsideRoot is returned by [NormalizePath] for paths that escape
// the asset root.
var ErrOutsideRoot = errors.New("resource: path is outside the asset root")

// NormalizePath converts a path as delivered by the UI (possibly
// absolute, possibly with OS separators and ./.. segments) into the
// canonical root-relative slash form used as a resource key. It returns
// [ErrOutsideRoot] if the path does not stay within root.
func NormalizePath(root, p string) (string, error) {
	if !filepath.IsAbs(p) {
		p = filepath.Join(root, p)
	}
	rel, err := filepath.Rel(root, p)
	if err != nil {
		return "", fmt.Errorf("resource: %w", err)
	}
	rel = filepath.ToSlash(rel)
	if rel == ".." || strings.HasPrefix(rel, "../") {
		return "", ErrOutsideRoot
	}
	return path.Clean(rel), nil
}
