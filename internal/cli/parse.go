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
	"encoding/hex"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

func newParseCommand(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "parse ID...",
		Short: "Decode identifiers given as canonical, uuid or integer",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 1, ' ', 0)

			for i, arg := range args {
				uid, err := parseID(arg)
				if err != nil {
					app.log.Debug().Err(err).Str("id", arg).Msg("parse failed")
					return err
				}

				if i > 0 {
					fmt.Fprintln(w)
				}
				fmt.Fprintf(w, "canonical\t%s\n", uid.String())
				fmt.Fprintf(w, "uuid\t%s\n", uid.UUIDString())
				fmt.Fprintf(w, "integer\t%s\n", uid.Uint128().String())
				fmt.Fprintf(w, "time\t%s\n", uid.Time().Format(time.RFC3339Nano))
				fmt.Fprintf(w, "timestamp\t%d\n", uid.Timestamp())
				fmt.Fprintf(w, "seed\t%s\n", hex.EncodeToString(uid.Seed()))
			}

			return w.Flush()
		},
	}
}
