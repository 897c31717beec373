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

// Package cli contains Cobra commands of the ulid tool.
package cli

import (
	"fmt"
	"os"

	"github.com/fogfish/ulid"
	"github.com/fogfish/ulid/index"
	"github.com/fogfish/ulid/index/boltstore"
	"github.com/fogfish/ulid/index/pebblestore"
	"github.com/fogfish/ulid/internal/config"
	"github.com/fogfish/ulid/internal/logger"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// app is state shared by commands, it is set up before any command runs
type app struct {
	clock ulid.Chronos
	cfg   *config.Config
	log   zerolog.Logger
}

// NewRoot constructs the root command. Identifiers are allocated using the clock.
func NewRoot(clock ulid.Chronos) *cobra.Command {
	app := &app{clock: clock, log: zerolog.Nop()}

	root := &cobra.Command{
		Use:           "ulid",
		Short:         "Universally Unique Lexicographically Sortable Identifiers",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return app.setup(cmd)
		},
	}

	root.PersistentFlags().String("config", "", "directory containing ulid.yaml")
	root.PersistentFlags().StringP("format", "f", "", "output format: canonical, uuid, int, hex")

	root.AddCommand(
		newGenerateCommand(app),
		newParseCommand(app),
		newBoundsCommand(app),
		newIndexCommand(app),
	)

	return root
}

// flag name to config key
var bindings = map[string]string{
	"format":  "format",
	"backend": "index.backend",
	"path":    "index.path",
	"bucket":  "index.bucket",
}

func (app *app) setup(cmd *cobra.Command) error {
	dir, _ := cmd.Flags().GetString("config")

	v, err := config.Load(dir, config.Name)
	if err != nil {
		return err
	}

	if err := bind(v, cmd.Flags()); err != nil {
		return err
	}

	cfg, err := config.Decode(v)
	if err != nil {
		return err
	}

	app.cfg = cfg
	app.log = logger.New(cfg.Log, cmd.ErrOrStderr())
	app.log.Debug().
		Str("config", v.ConfigFileUsed()).
		Str("format", cfg.Format).
		Msg("configured")

	return nil
}

func bind(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range bindings {
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", name, err)
		}
	}
	return nil
}

func (app *app) openIndex() (index.Index, error) {
	cfg := app.cfg.Index
	app.log.Debug().
		Str("backend", cfg.Backend).
		Str("path", cfg.Path).
		Msg("opening index")

	switch cfg.Backend {
	case "pebble":
		if err := os.MkdirAll(cfg.Path, 0755); err != nil {
			return nil, err
		}
		return pebblestore.Open(pebblestore.Options{Dir: cfg.Path})
	default:
		return boltstore.Open(boltstore.Options{Path: cfg.Path, Bucket: cfg.Bucket})
	}
}
