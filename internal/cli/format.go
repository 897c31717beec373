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
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/fogfish/ulid"
)

func format(uid ulid.ULID, f string) (string, error) {
	switch strings.ToLower(f) {
	case "", "canonical":
		return uid.String(), nil
	case "uuid":
		return uid.UUIDString(), nil
	case "int", "integer":
		return uid.Uint128().String(), nil
	case "hex":
		return hex.EncodeToString(uid.Bytes()), nil
	default:
		return "", fmt.Errorf("unknown format %q", f)
	}
}

// parseID accepts canonical, uuid or decimal integer forms
func parseID(val string) (ulid.ULID, error) {
	switch len(val) {
	case ulid.EncodedSize, ulid.UUIDSize:
		return ulid.Parse(val)
	}

	x, ok := new(big.Int).SetString(val, 10)
	if !ok {
		return ulid.Parse(val)
	}
	return ulid.FromBig(x)
}

// parseTime accepts unix milliseconds or RFC3339
func parseTime(val string) (time.Time, error) {
	if ms, err := strconv.ParseInt(val, 10, 64); err == nil {
		return time.UnixMilli(ms).UTC(), nil
	}

	t, err := time.Parse(time.RFC3339Nano, val)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q; expected ms or RFC3339", val)
	}
	return t, nil
}
