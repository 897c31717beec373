/*

  Copyright 2012 Dmitry Kolesnikov, All Rights Reserved

  Licensed under the Apache License, Version 2.0 (the "License");
  you may not use this file except in compliance with the License.
  You may obtain a copy of the License at

      http://www.apache.org/licenses/LICENSE-2.0

  Unless required by applicable law or agreed to in writing, software
  distributed under the License is distributed on an "AS IS" BASIS,
  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
  See the License for the specific language governing permissions and
  limitations under the License.

*/

package cli

import (
	"fmt"

	"github.com/fogfish/ulid"
	"github.com/spf13/cobra"
)

func newGenerateCommand(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "generate",
		Short:   "Generate identifiers",
		Aliases: []string{"gen"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, _ := cmd.Flags().GetInt("count")
			at, _ := cmd.Flags().GetString("at")
			seedHex, _ := cmd.Flags().GetString("seed")

			if n < 1 {
				return fmt.Errorf("invalid --count %d", n)
			}

			var seed []byte
			if seedHex != "" {
				b, err := ulid.SeedFromHex(seedHex)
				if err != nil {
					return err
				}
				seed = b
			}

			var src ulid.Source = ulid.FromNow{}
			if at != "" || seed != nil {
				t := ulid.Time(app.clock.T())
				if at != "" {
					v, err := parseTime(at)
					if err != nil {
						return err
					}
					t = v
				}
				src = ulid.FromTime{Time: t, Seed: seed}
			}

			for i := 0; i < n; i++ {
				uid, err := ulid.New(app.clock, src)
				if err != nil {
					return err
				}

				out, err := format(uid, app.cfg.Format)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), out)
			}

			app.log.Debug().Int("count", n).Msg("generated")
			return nil
		},
	}

	cmd.Flags().IntP("count", "n", 1, "number of identifiers")
	cmd.Flags().String("at", "", "timestamp, unix ms or RFC3339")
	cmd.Flags().String("seed", "", "seed, 20 hex digits")

	return cmd
}
