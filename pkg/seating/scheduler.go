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
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
)

// ErrNoParticipants is returned when a run is started with an empty roster.
var ErrNoParticipants = errors.New("schedule: no participants to seat")

// Shuffle permutes n elements through swap. It has the signature of
// (*rand.Rand).Shuffle.
type Shuffle func(n int, swap func(i, j int))

// Identity is the Shuffle which leaves the order untouched.
func Identity(n int, swap func(i, j int)) {}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithShuffle makes every run of the scheduler use the given Shuffle.
func WithShuffle(shuffle Shuffle) Option {
	return func(scheduler *Scheduler) {
		scheduler.shuffle = func() Shuffle { return shuffle }
	}
}

// WithSeed makes every run of the scheduler shuffle with a fresh random
// source seeded with seed, so runs over the same roster are identical.
func WithSeed(seed int64) Option {
	return func(scheduler *Scheduler) {
		scheduler.shuffle = func() Shuffle {
			return rand.New(rand.NewSource(seed)).Shuffle
		}
	}
}

func NewScheduler(config Config, options ...Option) (*Scheduler, error) {
	if config.Tables < 0 || config.Capacity < 0 || config.Rounds < 0 {
		return nil, fmt.Errorf(
			"new scheduler: negative configuration (tables %d, capacity %d, rounds %d)",
			config.Tables, config.Capacity, config.Rounds,
		)
	}

	policy, err := NewPolicy(config)
	if err != nil {
		return nil, err
	}

	scheduler := Scheduler{
		Config: config,
		policy: policy,
		shuffle: func() Shuffle {
			return rand.New(rand.NewSource(time.Now().UnixNano())).Shuffle
		},
	}

	for _, option := range options {
		option(&scheduler)
	}

	return &scheduler, nil
}

// Scheduler seats a roster of participants over Config.Rounds rounds.
// A Scheduler holds no state between runs.
type Scheduler struct {
	Config Config

	policy  Policy
	shuffle func() Shuffle
}

// Run seats the participants round by round. The participants must be
// trimmed, non-empty and unique. The only error is ErrNoParticipants;
// anything else worth knowing about is reported in Result.Warnings.
func (scheduler *Scheduler) Run(participants []string) (*Result, error) {
	if len(participants) == 0 {
		return nil, ErrNoParticipants
	}

	result := Result{
		Rounds:   make([]Round, 0, scheduler.Config.Rounds),
		Routes:   make(map[string][]Entry, len(participants)),
		History:  NewHistory(),
		Warnings: scheduler.check(len(participants)),
	}

	for _, participant := range participants {
		result.Routes[participant] = make([]Entry, 0, scheduler.Config.Rounds)
	}

	shuffle := scheduler.shuffle()
	for round := 0; round < scheduler.Config.Rounds; round++ {
		board := newBoard(
			round,
			scheduler.Config.Tables,
			scheduler.Config.Capacity,
			result.History, result.Routes,
		)

		order := scheduler.policy.Order(round, participants, shuffle)
		if board.Tables() == 0 {
			// Nowhere to seat anyone.
			for _, participant := range order {
				board.Unallocate(participant)
			}
		} else {
			scheduler.policy.Place(board, order)
		}

		logrus.Debugf(
			"round %d: seated %d of %d participants at %d tables",
			round+1, board.tables.Placed(), len(participants), board.Tables(),
		)

		result.Rounds = append(result.Rounds, board.tables)
	}

	return &result, nil
}

// check returns the warnings for seating count participants.
func (scheduler *Scheduler) check(count int) []Warning {
	var warnings []Warning

	config := scheduler.Config
	switch seats := config.Seats(); {
	case count < seats:
		warnings = append(warnings, Warning{
			Kind: CapacityMismatch,
			Message: fmt.Sprintf(
				"%d participants are not enough to fill all of the tables (%d seats)",
				count, seats,
			),
		})

	case count > seats:
		fate := "left unallocated"
		if policy, ok := scheduler.policy.(*Greedy); ok && !policy.Strict && config.Tables > 0 {
			fate = "spread evenly across the tables"
		}

		warnings = append(warnings, Warning{
			Kind: CapacityMismatch,
			Message: fmt.Sprintf(
				"%d participants are more than the planned %d seats, the excess will be %s",
				count, seats, fate,
			),
		})
	}

	if _, ok := scheduler.policy.(*Cyclic); ok && count < config.Tables {
		warnings = append(warnings, Warning{
			Kind: UnderPopulated,
			Message: fmt.Sprintf(
				"%d participants can't occupy all %d tables, some will stay empty",
				count, config.Tables,
			),
		})
	}

	return warnings
}

// WarningKind classifies a Warning.
type WarningKind int

const (
	// The roster doesn't match Tables*Capacity.
	CapacityMismatch WarningKind = iota

	// The cyclic policy has fewer participants than tables.
	UnderPopulated
)

func (kind WarningKind) String() string {
	switch kind {
	case CapacityMismatch:
		return "capacity mismatch"
	case UnderPopulated:
		return "under populated"
	default:
		return "unknown"
	}
}

// Warning is a non-fatal condition noticed before seating.
type Warning struct {
	Kind    WarningKind
	Message string
}

func (warning Warning) String() string {
	return fmt.Sprintf("%s: %s", warning.Kind, warning.Message)
}
