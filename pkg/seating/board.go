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
	"github.com/sirupsen/logrus"
)

// Board is the seating state of the round currently being placed. It keeps
// the tables, the routes and the pair history in step with each other.
type Board struct {
	round    int
	capacity int

	tables  Round
	history *History
	routes  map[string][]Entry
}

func newBoard(round, tables, capacity int, history *History, routes map[string][]Entry) *Board {
	board := Board{
		round:    round,
		capacity: capacity,
		tables:   make(Round, tables),
		history:  history,
		routes:   routes,
	}

	for i := range board.tables {
		board.tables[i] = Table{}
	}

	return &board
}

// Tables returns the number of tables in the round.
func (board *Board) Tables() int {
	return len(board.tables)
}

// Capacity returns the target number of participants per table.
func (board *Board) Capacity() int {
	return board.capacity
}

// Size returns the number of participants already seated at the table.
func (board *Board) Size(table int) int {
	return len(board.tables[table])
}

// Seat places the participant at the given table, records the round in
// their route and marks them as having met everyone already at the table.
func (board *Board) Seat(participant string, table int) {
	logrus.Tracef("round %d: seating %s at table %d", board.round+1, participant, table+1)

	for _, member := range board.tables[table] {
		board.history.Add(participant, member)
	}

	board.tables[table] = append(board.tables[table], participant)
	board.routes[participant] = append(board.routes[participant], Entry{
		Round: board.round,
		Table: table,
	})
}

// Unallocate records that the participant sits out the round.
func (board *Board) Unallocate(participant string) {
	logrus.Tracef("round %d: %s is unallocated", board.round+1, participant)

	board.routes[participant] = append(board.routes[participant], Entry{
		Round: board.round,
		Table: Unallocated,
	})
}

// Conflicts returns how many of the participants seated at the table the
// given participant has already met.
func (board *Board) Conflicts(participant string, table int) int {
	conflicts := 0
	for _, member := range board.tables[table] {
		if board.history.Met(participant, member) {
			conflicts++
		}
	}

	return conflicts
}

// Smallest returns the table with the fewest participants, preferring the
// lowest index on ties. If limit is non-negative, only tables with less than
// limit participants are considered. It returns -1 if no table qualifies.
func (board *Board) Smallest(limit int) int {
	smallest := -1
	for i, table := range board.tables {
		if limit >= 0 && len(table) >= limit {
			continue
		}

		if smallest == -1 || len(table) < len(board.tables[smallest]) {
			smallest = i
		}
	}

	return smallest
}
