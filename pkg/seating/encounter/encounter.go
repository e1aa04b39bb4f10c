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

// Package encounter finds the pairs of participants who shared a table in
// more than one round of a finished seating.
package encounter

import (
	"sort"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/seater/pkg/internal/util"
	"laptudirm.com/x/seater/pkg/seating"
)

// Recurrence is a partner met more than once and the number of meetings.
type Recurrence struct {
	Partner string `yaml:"partner"`
	Count   int    `yaml:"count"`
}

// Report lists the recurring encounters of a seating. Every recurring pair
// is listed once, under the smaller of the two names.
type Report struct {
	PerPerson  map[string][]Recurrence
	TotalPairs int

	// Encounters counts every pair that met, recurring or not.
	Encounters *seating.History
}

// Analyze counts how often every pair of participants shared a table over
// the rounds and reports the pairs which did so more than once. It only
// reads the rounds, so it works on any schedule, whichever policy made it.
func Analyze(rounds []seating.Round, participants []string) *Report {
	report := Report{
		PerPerson:  make(map[string][]Recurrence),
		Encounters: seating.NewHistory(),
	}

	known := make(map[string]bool, len(participants))
	for _, participant := range participants {
		known[participant] = true
	}

	for _, round := range rounds {
		for _, table := range round {
			for i := 0; i < len(table); i++ {
				if !known[table[i]] {
					logrus.Debugf("analyze: %s is seated but not on the roster", table[i])
				}

				for j := i + 1; j < len(table); j++ {
					report.Encounters.Add(table[i], table[j])
				}
			}
		}
	}

	for _, pair := range report.Encounters.Pairs() {
		count := report.Encounters.Count(pair.A, pair.B)
		if count <= 1 {
			continue
		}

		report.PerPerson[pair.A] = append(report.PerPerson[pair.A], Recurrence{
			Partner: pair.B,
			Count:   count,
		})
		report.TotalPairs++
	}

	for _, recurrences := range report.PerPerson {
		sort.SliceStable(recurrences, func(i, j int) bool {
			return recurrences[i].Count > recurrences[j].Count
		})
	}

	return &report
}

// Excess returns the number of meetings the participant had beyond the
// first with each of their listed partners.
func (report *Report) Excess(participant string) int {
	excess := 0
	for _, recurrence := range report.PerPerson[participant] {
		excess += recurrence.Count - 1
	}

	return excess
}

// Names returns the participants with recurring encounters in natural order.
func (report *Report) Names() []string {
	names := make([]string, 0, len(report.PerPerson))
	for name := range report.PerPerson {
		names = append(names, name)
	}

	sort.Slice(names, func(i, j int) bool {
		return util.NaturalLess(names[i], names[j])
	})

	return names
}
