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
	"time"

	"github.com/fogfish/ulid"
	"github.com/fogfish/ulid/index"
	"github.com/spf13/cobra"
)

func newIndexCommand(app *app) *cobra.Command {
	cmd := &cobra.Command{Use: "index", Short: "Time ordered storage of values"}

	cmd.PersistentFlags().String("backend", "", "storage backend: bolt, pebble")
	cmd.PersistentFlags().String("path", "", "database file or directory")
	cmd.PersistentFlags().String("bucket", "", "bolt bucket")

	cmd.AddCommand(
		newIndexPutCommand(app),
		newIndexGetCommand(app),
		newIndexScanCommand(app),
	)

	return cmd
}

func newIndexPutCommand(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "put VALUE...",
		Short: "Store values under freshly allocated identifiers",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ix, err := app.openIndex()
			if err != nil {
				return err
			}
			defer ix.Close()

			for _, val := range args {
				uid, err := index.Append(ix, app.clock, []byte(val))
				if err != nil {
					return err
				}

				out, err := format(uid, app.cfg.Format)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), out)
			}

			app.log.Info().Int("count", len(args)).Msg("stored")
			return nil
		},
	}
}

func newIndexGetCommand(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Print value of the identifier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uid, err := parseID(args[0])
			if err != nil {
				return err
			}

			ix, err := app.openIndex()
			if err != nil {
				return err
			}
			defer ix.Close()

			val, err := ix.Get(uid)
			if err != nil {
				return fmt.Errorf("%s: %w", uid, err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), string(val))
			return nil
		},
	}
}

func newIndexScanCommand(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan FROM TO",
		Short: "Print values stored within the time range, ascending",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, _ := cmd.Flags().GetInt("limit")

			from, err := parseTime(args[0])
			if err != nil {
				return err
			}
			to, err := parseTime(args[1])
			if err != nil {
				return err
			}

			ix, err := app.openIndex()
			if err != nil {
				return err
			}
			defer ix.Close()

			start := time.Now()
			count := 0
			err = ix.Range(from, to, func(uid ulid.ULID, val []byte) error {
				if limit > 0 && count >= limit {
					return index.ErrStop
				}

				out, err := format(uid, app.cfg.Format)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", out, val)
				count++
				return nil
			})
			if err != nil {
				return err
			}

			app.log.Debug().
				Int("count", count).
				Dur("elapsed", time.Since(start)).
				Msg("scanned")
			return nil
		},
	}

	cmd.Flags().Int("limit", 0, "maximum number of values, 0 is unlimited")

	return cmd
}
