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

// Package seating assigns participants to tables over several rounds while
// keeping the number of repeated pairings as low as it can.
package seating

import "fmt"

// Table is the list of participants seated at a single table in a round,
// in the order they were seated.
type Table []string

// Round is a full re-seating of the participants, one Table per table.
type Round []Table

// Placed returns the number of participants seated in the round.
func (round Round) Placed() int {
	placed := 0
	for _, table := range round {
		placed += len(table)
	}

	return placed
}

// Unallocated is the Entry.Table value of a participant who was not seated
// in a round.
const Unallocated = -1

// Entry is a single step of a participant's route.
type Entry struct {
	Round int `yaml:"round"`
	Table int `yaml:"table"`
}

// Allocated reports whether the participant was seated in the entry's round.
func (entry Entry) Allocated() bool {
	return entry.Table != Unallocated
}

// String returns the human readable (1-indexed) form of the entry.
func (entry Entry) String() string {
	if !entry.Allocated() {
		return fmt.Sprintf("Round %d: Unallocated", entry.Round+1)
	}

	return fmt.Sprintf("Round %d: Table %d", entry.Round+1, entry.Table+1)
}

// Config describes the shape of a seating run.
type Config struct {
	Tables   int `yaml:"tables"`   // Number of tables in every round.
	Capacity int `yaml:"capacity"` // Target number of participants per table.
	Rounds   int `yaml:"rounds"`   // Number of rounds to seat.

	// The placement policy used to seat each round: greedy or cyclic.
	Policy string `yaml:"policy"`

	// What the greedy policy does with participants that don't fit in
	// Tables*Capacity seats: spread them over the tables or leave them out.
	Overflow string `yaml:"overflow"`
}

// Seats returns the number of seats the configuration plans for.
func (config Config) Seats() int {
	return config.Tables * config.Capacity
}

// Result is the outcome of a single scheduling run.
type Result struct {
	Rounds []Round
	Routes map[string][]Entry

	// History holds the pairs seated together during the run.
	History *History

	Warnings []Warning
}
