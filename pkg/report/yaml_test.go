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

package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laptudirm.com/x/seater/pkg/seating"
	"laptudirm.com/x/seater/pkg/seating/encounter"
)

func TestYAMLAnalyzesTheSame(t *testing.T) {
	participants := []string{"A", "B", "C", "D", "E", "F", "G"}
	config := seating.Config{Tables: 2, Capacity: 3, Rounds: 5}

	scheduler, err := seating.NewScheduler(config, seating.WithSeed(5))
	require.NoError(t, err)
	result, err := scheduler.Run(participants)
	require.NoError(t, err)

	in := Input{
		Config:       config,
		Participants: participants,
		Rounds:       result.Rounds,
		Routes:       result.Routes,
		Encounters:   encounter.Analyze(result.Rounds, participants),
	}

	var out bytes.Buffer
	require.NoError(t, WriteYAML(&out, in))

	document, err := ReadYAML(&out)
	require.NoError(t, err)

	assert.Equal(t, config, document.Config)
	assert.Equal(t, participants, document.Participants)
	assert.Equal(t, in.Encounters, encounter.Analyze(document.Rounds, document.Participants))

	require.NotNil(t, document.Recurring)
	assert.Equal(t, in.Encounters.TotalPairs, document.Recurring.TotalPairs)
	assert.Len(t, document.Routes["A"], config.Rounds)
}

func TestReadYAMLByHand(t *testing.T) {
	document, err := ReadYAML(strings.NewReader(heredoc.Doc(`
		rounds:
		  - [[Ana, Bruno], [Carla]]
		  - [[Carla, Bruno], []]
		  - [[Bruno, Ana, Davi]]
	`)))
	require.NoError(t, err)

	assert.Equal(t, []string{"Ana", "Bruno", "Carla", "Davi"}, document.Participants)
	require.Len(t, document.Rounds, 3)

	report := encounter.Analyze(document.Rounds, document.Participants)
	assert.Equal(t, 1, report.TotalPairs)
	assert.Equal(t, []encounter.Recurrence{{Partner: "Bruno", Count: 2}}, report.PerPerson["Ana"])
}

func TestReadYAMLSeatedTwice(t *testing.T) {
	_, err := ReadYAML(strings.NewReader(heredoc.Doc(`
		rounds:
		  - [[Ana, Bruno], [Ana]]
	`)))
	assert.EqualError(t, err, "read schedule: round 1: Ana is seated twice")
}

func TestReadYAMLMalformed(t *testing.T) {
	_, err := ReadYAML(strings.NewReader("rounds: {not: a list}"))
	assert.Error(t, err)
}

func TestDocumentInput(t *testing.T) {
	document := Document{
		Participants: []string{"Ana", "Bruno", "Carla"},
		Rounds: []seating.Round{
			{{"Ana", "Bruno"}, {"Carla"}},
			{{"Carla"}, {"Ana"}},
		},
	}

	in := document.Input()
	assert.Equal(t, map[string][]seating.Entry{
		"Ana":   {{Round: 0, Table: 0}, {Round: 1, Table: 1}},
		"Bruno": {{Round: 0, Table: 0}, {Round: 1, Table: seating.Unallocated}},
		"Carla": {{Round: 0, Table: 1}, {Round: 1, Table: 0}},
	}, in.Routes)
	assert.Nil(t, in.Encounters)
}
