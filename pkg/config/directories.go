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

package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// ConfigFile is the location of the user's config file, relative to the
// xdg config directories.
var ConfigFile = filepath.Join("seater", "config.yaml")

// Discover returns the path of the user's config file, or an empty path if
// none of the xdg config directories has one.
func Discover() string {
	path, err := xdg.SearchConfigFile(ConfigFile)
	if err != nil {
		return ""
	}

	return path
}
