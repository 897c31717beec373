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

package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/fogfish/it/v2"
	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	vectors := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		" DEBUG ": zerolog.DebugLevel,
		"info":    zerolog.InfoLevel,
		"error":   zerolog.ErrorLevel,
		"off":     zerolog.Disabled,
		"":        zerolog.WarnLevel,
		"unknown": zerolog.WarnLevel,
	}

	for in, expect := range vectors {
		it.Then(t).Should(
			it.Equal(parseLevel(in), expect),
		)
	}
}

func TestNewStructured(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "debug"}, &buf)
	log.Debug().Str("id", "01ARYZ6RR0T8CNRGXPSBZSA1PY").Msg("generated")

	var rec map[string]any
	err := json.Unmarshal(buf.Bytes(), &rec)

	it.Then(t).Should(
		it.Nil(err),
		it.Equal(rec["level"], any("debug")),
		it.Equal(rec["id"], any("01ARYZ6RR0T8CNRGXPSBZSA1PY")),
		it.Equal(rec["message"], any("generated")),
	)
}

func TestNewFiltersLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "error"}, &buf)
	log.Info().Msg("skipped")

	it.Then(t).Should(
		it.Equal(buf.Len(), 0),
	)
}
