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

// Package config loads settings of the command line tool from
// ulid.yaml and ULID_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fogfish/ulid/internal/logger"
	"github.com/spf13/viper"
)

// Name of config file, without extension
const Name = "ulid"

// Config of the command line tool
type Config struct {
	Log    logger.Config `mapstructure:"log"`
	Format string        `mapstructure:"format"`
	Index  Index         `mapstructure:"index"`
}

// Index storage settings
type Index struct {
	Backend string `mapstructure:"backend"`
	Path    string `mapstructure:"path"`
	Bucket  string `mapstructure:"bucket"`
}

// Load reads configuration from file and environment variables.
// configPath is the directory containing config files.
// configName is the name of the config file (without extension).
func Load(configPath, configName string) (*viper.Viper, error) {
	v := viper.New()

	v.SetConfigName(configName)
	v.SetConfigType("yaml")
	if configPath != "" {
		v.AddConfigPath(configPath)
	}
	v.AddConfigPath(".")

	v.SetDefault("log.level", "warn")
	v.SetDefault("log.pretty", false)
	v.SetDefault("format", "canonical")
	v.SetDefault("index.backend", "bolt")
	v.SetDefault("index.path", "ulid.db")
	v.SetDefault("index.bucket", "ulid")

	v.SetEnvPrefix("ULID")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return v, nil
}

// Decode unmarshal settings into Config
func Decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	switch cfg.Index.Backend {
	case "bolt", "pebble":
	default:
		return nil, fmt.Errorf("unknown index backend %q", cfg.Index.Backend)
	}

	return &cfg, nil
}
