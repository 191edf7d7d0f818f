// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package vault

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// markdownExt is the only file extension recognized as indexable text.
const markdownExt = ".md"

// Discover returns the markdown files to index under root.
//
// When folders are given, each named sub-folder of root is walked
// recursively; sub-folders that do not exist are skipped. When no folders
// are given the whole root is walked, or, if root is itself a file, root is
// the single candidate. Results follow filepath.WalkDir's lexical order, so
// discovery is deterministic within a run.
func Discover(root string, folders []string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNoSuchPath, root)
		}
		return nil, err
	}

	if info.Mode().IsRegular() {
		return []string{root}, nil
	}

	targets := []string{root}
	if len(folders) > 0 {
		targets = make([]string, 0, len(folders))
		for _, folder := range folders {
			targets = append(targets, filepath.Join(root, folder))
		}
	}

	var files []string
	for _, target := range targets {
		if _, err := os.Stat(target); os.IsNotExist(err) {
			continue
		}
		err := filepath.WalkDir(target, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			if filepath.Ext(path) == markdownExt {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walking %s: %w", target, err)
		}
	}

	return files, nil
}
