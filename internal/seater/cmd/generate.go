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

package cmd

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/seater/pkg/report"
	"laptudirm.com/x/seater/pkg/roster"
	"laptudirm.com/x/seater/pkg/seating"
	"laptudirm.com/x/seater/pkg/seating/encounter"
)

// seater generate
func Generate() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate [roster-files...]",
		Short: "Seat the participants at tables over several rounds",
		Long: heredoc.Doc(`generate seats the roster at the given number of tables for
			the given number of rounds, trying to keep people who already
			shared a table apart, and reports the tables of every round,
			the itinerary of every participant and the pairs which still
			met more than once.

			Participants are taken from --name flags, from the event file
			and from the roster files given as arguments (.txt, .xlsx,
			.pdf or .docx, one name per line). Duplicate names are only
			seated once, and names given to --exclude are not seated.

			The shuffles are seeded from the clock unless --seed is set,
			so the same seed always produces the same seating.

			Settings are read from the --config event file, or from
			seater/config.yaml in the user's config directory, then from
			SEATER_ environment variables and finally from the flags.`),
		Args: cobra.ArbitraryArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			event, err := loadEvent(cmd, args)
			if err != nil {
				return err
			}

			participants := roster.New(event.Names...)
			if _, err := participants.Import(cmd.Context(), event.Files...); err != nil {
				return err
			}

			exclude(participants, event.Exclude)

			var options []seating.Option
			if event.Seed != nil {
				options = append(options, seating.WithSeed(*event.Seed))
			}

			scheduler, err := seating.NewScheduler(event.Seating(), options...)
			if err != nil {
				return err
			}

			names := participants.Names()
			logrus.Infof(
				"Seating \x1b[32m%d\x1b[0m participants at %d tables for %d rounds",
				len(names), event.Tables, event.Rounds,
			)

			result, err := scheduler.Run(names)
			if err != nil {
				return err
			}

			for _, warning := range result.Warnings {
				logrus.Warn(warning)
			}

			return writeReport(cmd, event, report.Input{
				Config:       event.Seating(),
				Participants: names,
				Rounds:       result.Rounds,
				Routes:       result.Routes,
				Encounters:   encounter.Analyze(result.Rounds, names),
			})
		},
	}

	addEventFlags(cmd)
	return cmd
}
