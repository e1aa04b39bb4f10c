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
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/seater/pkg/config"
	"laptudirm.com/x/seater/pkg/report"
)

// addEventFlags registers the flags which override the event config.
func addEventFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("config", "c", "", "Event file to read the settings from")
	cmd.Flags().StringArrayP("name", "n", nil, "Add a participant to the roster")
	cmd.Flags().StringArrayP("exclude", "x", nil, "Leave a participant out of the roster")

	cmd.Flags().Int("tables", 0, "Number of tables in every round")
	cmd.Flags().Int("capacity", 0, "Target number of participants per table")
	cmd.Flags().Int("rounds", 0, "Number of rounds to seat")
	cmd.Flags().String("policy", "", "Placement policy: greedy or cyclic")
	cmd.Flags().String("overflow", "", "What greedy does with excess participants: spread or strict")
	cmd.Flags().Int64P("seed", "s", 0, "Seed for the shuffles, seeded from the clock if unset")

	cmd.Flags().StringP("output", "o", "", "File to write the report to instead of stdout")
	cmd.Flags().StringP("format", "f", "", "Report format: text or yaml")
}

// loadEvent loads the event config and applies the flags which were set on
// the command line. Roster files given as args are added to the config's.
func loadEvent(cmd *cobra.Command, args []string) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.Discover()
	}

	if path != "" {
		logrus.Debugf("reading event config from %s", path)
	}

	event, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	for name, value := range map[string]*int{
		"tables":   &event.Tables,
		"capacity": &event.Capacity,
		"rounds":   &event.Rounds,
	} {
		if flags.Changed(name) {
			*value, _ = flags.GetInt(name)
		}
	}

	for name, value := range map[string]*string{
		"policy":   &event.Policy,
		"overflow": &event.Overflow,
		"output":   &event.Output,
		"format":   &event.Format,
	} {
		if flags.Changed(name) {
			*value, _ = flags.GetString(name)
		}
	}

	if flags.Changed("seed") {
		seed, _ := flags.GetInt64("seed")
		event.Seed = &seed
	}

	names, _ := flags.GetStringArray("name")
	event.Names = append(event.Names, names...)
	excluded, _ := flags.GetStringArray("exclude")
	event.Exclude = append(event.Exclude, excluded...)
	event.Files = append(event.Files, args...)

	for _, field := range event.Clamp() {
		logrus.Warnf("negative %s raised to 0", field)
	}

	if err := event.Validate(); err != nil {
		return nil, err
	}

	return event, nil
}

// writeReport writes the report in the event's format to the event's
// output, or to the command's stdout.
func writeReport(cmd *cobra.Command, event *config.Config, in report.Input) error {
	if event.Output == "" {
		return render(cmd.OutOrStdout(), event.Format, in)
	}

	file, err := os.Create(event.Output)
	if err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	err = render(file, event.Format, in)
	if cerr := file.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("write report: %w", cerr)
	}

	if err != nil {
		return err
	}

	logrus.Infof("Report written to \x1b[32m%s\x1b[0m", event.Output)
	return nil
}

func render(w io.Writer, format string, in report.Input) error {
	var err error
	switch format {
	case config.FormatYAML:
		err = report.WriteYAML(w, in)
	default:
		err = report.Write(w, in)
	}

	if err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return nil
}
