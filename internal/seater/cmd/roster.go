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

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/seater/pkg/roster"
)

func Roster() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roster [roster-files...]",
		Short: "Print the merged roster without duplicates",
		Args:  cobra.ArbitraryArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			names, _ := cmd.Flags().GetStringArray("name")
			participants := roster.New(names...)

			if _, err := participants.Import(cmd.Context(), args...); err != nil {
				return err
			}

			excluded, _ := cmd.Flags().GetStringArray("exclude")
			exclude(participants, excluded)

			if participants.Len() == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "\x1b[31mNo Participants Found.\x1b[0m")
				return nil
			}

			for _, name := range participants.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}

			logrus.Debugf("roster: %d participants", participants.Len())
			return nil
		},
	}

	cmd.Flags().StringArrayP("name", "n", nil, "Add a participant to the roster")
	cmd.Flags().StringArrayP("exclude", "x", nil, "Leave a participant out of the roster")
	return cmd
}

// exclude takes the names off the roster, warning about any which weren't
// on it.
func exclude(participants *roster.Roster, names []string) {
	for _, name := range names {
		if !participants.Remove(name) {
			logrus.Warnf("cannot exclude %s: not on the roster", name)
		}
	}
}
