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
	"os"

	"github.com/spf13/cobra"

	"laptudirm.com/x/seater/pkg/config"
	"laptudirm.com/x/seater/pkg/report"
	"laptudirm.com/x/seater/pkg/seating/encounter"
)

func Analyze() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze schedule-file",
		Short: "Report the recurring encounters of a saved seating",
		Args:  cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer file.Close()

			document, err := report.ReadYAML(file)
			if err != nil {
				return err
			}

			in := document.Input()
			in.Encounters = encounter.Analyze(in.Rounds, in.Participants)

			event := config.Config{}
			event.Output, _ = cmd.Flags().GetString("output")
			event.Format, _ = cmd.Flags().GetString("format")
			event.SetDefaults()
			if err := event.Validate(); err != nil {
				return err
			}

			return writeReport(cmd, &event, in)
		},
	}

	cmd.Flags().StringP("output", "o", "", "File to write the report to instead of stdout")
	cmd.Flags().StringP("format", "f", "", "Report format: text or yaml")
	return cmd
}
