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

package seating

import (
	"sort"
)

// Pair is an unordered pair of participants. A is always the smaller of
// the two names, so (x, y) and (y, x) map to the same Pair.
type Pair struct {
	A, B string
}

// NewPair returns the canonical Pair of the two participants.
func NewPair(a, b string) Pair {
	if b < a {
		a, b = b, a
	}

	return Pair{A: a, B: b}
}

// History counts how many times each pair of participants shared a table.
// Every pair is stored once under its canonical key, so the counts are
// symmetric by construction.
type History struct {
	counts map[Pair]int
}

func NewHistory() *History {
	return &History{counts: make(map[Pair]int)}
}

// Add records one more shared table for a and b. A participant can't meet
// themself, so a == b is ignored.
func (history *History) Add(a, b string) {
	if a == b {
		return
	}

	history.counts[NewPair(a, b)]++
}

// Count returns the number of times a and b shared a table.
func (history *History) Count(a, b string) int {
	return history.counts[NewPair(a, b)]
}

// Met reports whether a and b have shared a table at least once.
func (history *History) Met(a, b string) bool {
	return history.Count(a, b) > 0
}

// Len returns the number of distinct pairs that have met.
func (history *History) Len() int {
	return len(history.counts)
}

// Pairs returns every pair that has met, sorted by (A, B).
func (history *History) Pairs() []Pair {
	pairs := make([]Pair, 0, len(history.counts))
	for pair := range history.counts {
		pairs = append(pairs, pair)
	}

	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].A != pairs[j].A {
			return pairs[i].A < pairs[j].A
		}

		return pairs[i].B < pairs[j].B
	})

	return pairs
}
