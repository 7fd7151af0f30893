// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package derby

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const FilePermissions = 0755

// Directory is the directory where derby keeps its files.
var Directory = filepath.Join(xdg.Home, "derby")

// ConfigFile is the path of the default race configuration.
var ConfigFile = filepath.Join(Directory, "race.yaml")

// TryMkdir creates the given directory, along with any missing parents, if
// it doesn't exist yet.
func TryMkdir(dir string) error {
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		return os.MkdirAll(dir, FilePermissions)
	}

	return nil
}

// TryCreate writes data to the given file if it doesn't exist yet. It
// reports whether the file was created.
func TryCreate(file string, data []byte) (bool, error) {
	_, err := os.Stat(file)
	if !errors.Is(err, fs.ErrNotExist) {
		return false, err
	}

	if err := TryMkdir(filepath.Dir(file)); err != nil {
		return false, err
	}

	return true, os.WriteFile(file, data, FilePermissions)
}
