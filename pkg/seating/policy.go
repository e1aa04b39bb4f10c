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
	"fmt"
	"math"
	"slices"
)

const (
	PolicyGreedy = "greedy"
	PolicyCyclic = "cyclic"

	OverflowSpread = "spread"
	OverflowStrict = "strict"
)

// NewPolicy returns the placement policy described by the config.
func NewPolicy(config Config) (Policy, error) {
	switch config.Overflow {
	case OverflowSpread, OverflowStrict, "":
	default:
		return nil, fmt.Errorf("new policy: invalid overflow %s", config.Overflow)
	}

	switch config.Policy {
	case PolicyGreedy, "":
		return &Greedy{Strict: config.Overflow == OverflowStrict}, nil
	case PolicyCyclic:
		return &Cyclic{}, nil
	default:
		return nil, fmt.Errorf("new policy: invalid policy %s", config.Policy)
	}
}

// Policy decides how the participants of a round are seated.
type Policy interface {
	// Order returns the order in which the participants are offered to
	// Place in the given round. The participants slice must not be changed.
	Order(round int, participants []string, shuffle Shuffle) []string

	// Place seats or unallocates every participant of order on the board.
	Place(board *Board, order []string)
}

// Greedy fills the emptiest table first, each time with the participant who
// has met the fewest of the people already sitting there.
type Greedy struct {
	// Strict stops tables from growing past the board's capacity. The
	// participants left over are unallocated for the round.
	Strict bool
}

// Order keeps the first participant as an anchor and shuffles everyone else.
// The first round is seated in roster order.
func (greedy *Greedy) Order(round int, participants []string, shuffle Shuffle) []string {
	order := slices.Clone(participants)
	if round == 0 || len(order) < 2 {
		return order
	}

	rest := order[1:]
	shuffle(len(rest), func(i, j int) {
		rest[i], rest[j] = rest[j], rest[i]
	})

	return order
}

func (greedy *Greedy) Place(board *Board, order []string) {
	limit := -1
	if greedy.Strict {
		limit = board.Capacity()
	}

	for len(order) > 0 {
		table := board.Smallest(limit)
		if table == -1 {
			// Every table is full.
			for _, participant := range order {
				board.Unallocate(participant)
			}

			return
		}

		best, fewest := 0, math.MaxInt
		for i, participant := range order {
			if conflicts := board.Conflicts(participant, table); conflicts < fewest {
				best, fewest = i, conflicts
			}
		}

		board.Seat(order[best], table)
		order = slices.Delete(order, best, best+1)
	}
}

// Cyclic deals the shuffled participants out to the tables in turn. A
// participant dealt to a full table sits out the round. The pair history is
// never consulted.
type Cyclic struct{}

// Order shuffles all of the participants.
func (cyclic *Cyclic) Order(round int, participants []string, shuffle Shuffle) []string {
	order := slices.Clone(participants)
	shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})

	return order
}

func (cyclic *Cyclic) Place(board *Board, order []string) {
	for i, participant := range order {
		table := i % board.Tables()
		if board.Size(table) >= board.Capacity() {
			board.Unallocate(participant)
			continue
		}

		board.Seat(participant, table)
	}
}
