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

func newBoundsCommand(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "bounds FROM [TO]",
		Short: "Print the smallest and the largest identifiers of the time range",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := parseTime(args[0])
			if err != nil {
				return err
			}

			to := from
			if len(args) == 2 {
				if to, err = parseTime(args[1]); err != nil {
					return err
				}
			}

			if to.Before(from) {
				return fmt.Errorf("invalid range, %s is before %s", args[1], args[0])
			}

			lo, hi := ulid.Bounds(from, to)
			for _, uid := range []ulid.ULID{lo, hi} {
				out, err := format(uid, app.cfg.Format)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), out)
			}

			return nil
		},
	}
}
