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

// Package roster collects the names of the participants, from the command
// line and from files, into an ordered list without duplicates.
package roster

import (
	"slices"
	"strings"
)

// Roster is an insertion ordered set of participant names. Names are
// trimmed before use and compared exactly, so "Ana" and "ana" are two
// different participants.
type Roster struct {
	names []string
	index map[string]int
}

// New returns a Roster holding the given names. The zero Roster is an
// empty roster ready to use.
func New(names ...string) *Roster {
	var roster Roster
	roster.Merge(names)
	return &roster
}

// Add adds the name to the roster. It reports false if the name is empty
// once trimmed or is already on the roster.
func (roster *Roster) Add(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" || roster.Contains(name) {
		return false
	}

	if roster.index == nil {
		roster.index = make(map[string]int)
	}

	roster.index[name] = len(roster.names)
	roster.names = append(roster.names, name)
	return true
}

// Merge adds every name to the roster and returns how many were new.
func (roster *Roster) Merge(names []string) int {
	added := 0
	for _, name := range names {
		if roster.Add(name) {
			added++
		}
	}

	return added
}

// Remove takes the name off the roster. It reports false if the name
// wasn't on it.
func (roster *Roster) Remove(name string) bool {
	name = strings.TrimSpace(name)
	i, found := roster.index[name]
	if !found {
		return false
	}

	roster.names = slices.Delete(roster.names, i, i+1)
	delete(roster.index, name)
	for ; i < len(roster.names); i++ {
		roster.index[roster.names[i]] = i
	}

	return true
}

func (roster *Roster) Contains(name string) bool {
	_, found := roster.index[strings.TrimSpace(name)]
	return found
}

func (roster *Roster) Len() int {
	return len(roster.names)
}

// Names returns a copy of the names in the order they were added.
func (roster *Roster) Names() []string {
	return slices.Clone(roster.names)
}
