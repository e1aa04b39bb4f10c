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

// Package report renders a finished seating as a plain text report or as
// a YAML document which can be analyzed again later.
package report

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"laptudirm.com/x/seater/pkg/internal/util"
	"laptudirm.com/x/seater/pkg/seating"
	"laptudirm.com/x/seater/pkg/seating/encounter"
)

// Input is everything a report is made of.
type Input struct {
	Config       seating.Config
	Participants []string

	Rounds []seating.Round
	Routes map[string][]seating.Entry

	// Encounters is left out of the report if nil.
	Encounters *encounter.Report
}

// Write renders the plain text report of the seating.
func Write(w io.Writer, in Input) error {
	out := bufio.NewWriter(w)

	fmt.Fprintln(out, "Seating Report")
	fmt.Fprintln(out, "==============")
	fmt.Fprintln(out)

	policy := in.Config.Policy
	if policy == "" {
		policy = seating.PolicyGreedy
	}

	if policy == seating.PolicyGreedy {
		overflow := in.Config.Overflow
		if overflow == "" {
			overflow = seating.OverflowSpread
		}

		policy = fmt.Sprintf("%s (overflow: %s)", policy, overflow)
	}

	fmt.Fprintln(out, "Configuration:")
	fmt.Fprintf(out, "- Tables: %d\n", in.Config.Tables)
	fmt.Fprintf(out, "- Participants per Table (target): %d\n", in.Config.Capacity)
	fmt.Fprintf(out, "- Rounds: %d\n", in.Config.Rounds)
	fmt.Fprintf(out, "- Participants: %d\n", len(in.Participants))
	fmt.Fprintf(out, "- Policy: %s\n", policy)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "Tables by Round:")
	for r, round := range in.Rounds {
		fmt.Fprintf(out, "\nRound %d:\n", r+1)
		for t, table := range round {
			members := "(empty)"
			if len(table) > 0 {
				members = strings.Join(table, ", ")
			}

			fmt.Fprintf(out, "  Table %d: %s\n", t+1, members)
		}
	}

	fmt.Fprintln(out, "\nItineraries:")
	for _, participant := range sorted(in.Routes) {
		steps := make([]string, len(in.Routes[participant]))
		for i, entry := range in.Routes[participant] {
			steps[i] = entry.String()
		}

		fmt.Fprintf(out, "%s: %s\n", participant, strings.Join(steps, " | "))
	}

	if in.Encounters != nil {
		writeEncounters(out, in.Encounters)
	}

	return out.Flush()
}

func writeEncounters(out io.Writer, report *encounter.Report) {
	fmt.Fprintln(out, "\nRecurring Encounters:")
	fmt.Fprintln(out, "=====================")
	fmt.Fprintln(out)

	if report.TotalPairs == 0 {
		fmt.Fprintln(out, "No recurring encounters were detected in this seating.")
		return
	}

	fmt.Fprintf(out, "Total recurring pairs: %d\n\n", report.TotalPairs)
	for _, participant := range report.Names() {
		fmt.Fprintf(out, "%s had %d recurring encounter(s):\n", participant, report.Excess(participant))
		for _, recurrence := range report.PerPerson[participant] {
			fmt.Fprintf(out, "  - %s - %s (%d times)\n", participant, recurrence.Partner, recurrence.Count)
		}

		fmt.Fprintln(out)
	}
}

// sorted returns the participants of the routes in natural order.
func sorted(routes map[string][]seating.Entry) []string {
	participants := make([]string, 0, len(routes))
	for participant := range routes {
		participants = append(participants, participant)
	}

	sort.Slice(participants, func(i, j int) bool {
		return util.NaturalLess(participants[i], participants[j])
	})

	return participants
}
