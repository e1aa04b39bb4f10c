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
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"laptudirm.com/x/seater/pkg/seating"
	"laptudirm.com/x/seater/pkg/seating/encounter"
)

// Document is the YAML form of a seating.
type Document struct {
	Config       seating.Config  `yaml:"config"`
	Participants []string        `yaml:"participants"`
	Rounds       []seating.Round `yaml:"rounds"`

	// Routes are written for people to read and ignored when reading.
	Routes    map[string][]string `yaml:"routes,omitempty"`
	Recurring *Recurring          `yaml:"recurring,omitempty"`
}

type Recurring struct {
	TotalPairs int                               `yaml:"total-pairs"`
	PerPerson  map[string][]encounter.Recurrence `yaml:"per-person,omitempty"`
}

// WriteYAML writes the seating as a YAML Document.
func WriteYAML(w io.Writer, in Input) error {
	document := Document{
		Config:       in.Config,
		Participants: in.Participants,
		Rounds:       in.Rounds,
		Routes:       make(map[string][]string, len(in.Routes)),
	}

	for participant, route := range in.Routes {
		steps := make([]string, len(route))
		for i, entry := range route {
			steps[i] = entry.String()
		}

		document.Routes[participant] = steps
	}

	if in.Encounters != nil {
		document.Recurring = &Recurring{
			TotalPairs: in.Encounters.TotalPairs,
			PerPerson:  in.Encounters.PerPerson,
		}
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(&document); err != nil {
		return err
	}

	return encoder.Close()
}

// ReadYAML reads a Document written by WriteYAML, or by hand. Anyone seated
// in the rounds but missing from the participants is added to them in order
// of first appearance. Nobody may sit at two tables in a round.
func ReadYAML(r io.Reader) (*Document, error) {
	var document Document
	if err := yaml.NewDecoder(r).Decode(&document); err != nil {
		return nil, fmt.Errorf("read schedule: %w", err)
	}

	known := make(map[string]bool, len(document.Participants))
	for _, participant := range document.Participants {
		known[participant] = true
	}

	for number, round := range document.Rounds {
		seated := make(map[string]bool)
		for _, table := range round {
			for _, participant := range table {
				if seated[participant] {
					return nil, fmt.Errorf("read schedule: round %d: %s is seated twice", number+1, participant)
				}
				seated[participant] = true

				if !known[participant] {
					known[participant] = true
					document.Participants = append(document.Participants, participant)
				}
			}
		}
	}

	return &document, nil
}

// Input returns the report input of the document, with the routes rebuilt
// from the rounds. The encounters are left for the caller to analyze.
func (document *Document) Input() Input {
	in := Input{
		Config:       document.Config,
		Participants: document.Participants,
		Rounds:       document.Rounds,
		Routes:       make(map[string][]seating.Entry, len(document.Participants)),
	}

	for _, participant := range document.Participants {
		in.Routes[participant] = make([]seating.Entry, 0, len(document.Rounds))
	}

	for r, round := range document.Rounds {
		for t, table := range round {
			for _, participant := range table {
				in.Routes[participant] = append(in.Routes[participant], seating.Entry{Round: r, Table: t})
			}
		}

		for participant, route := range in.Routes {
			if len(route) == r {
				in.Routes[participant] = append(route, seating.Entry{Round: r, Table: seating.Unallocated})
			}
		}
	}

	return in
}
