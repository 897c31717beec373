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

package ulid

import (
	"errors"
	"fmt"
)

// Kinds of construction errors, use errors.Is to classify *Error.
var (
	ErrInvalidLength       = errors.New("invalid length")
	ErrInvalidCharacter    = errors.New("invalid character")
	ErrInvalidSeedEncoding = errors.New("invalid seed encoding")
	ErrOverflow            = errors.New("value overflows 128-bit identifier")
)

// Input is a class of input rejected by decoder
type Input string

const (
	InputCanonical Input = "canonical"
	InputUUID      Input = "uuid"
	InputBytes     Input = "bytes"
	InputSeed      Input = "seed"
	InputInteger   Input = "integer"
	InputTime      Input = "time"
)

/*

Error is returned by every decoder and constructor. It is never
accompanied by a partially built identifier.
*/
type Error struct {
	Kind  error
	Input Input
	// Got is the observed length for ErrInvalidLength, the offset of
	// offending character for ErrInvalidCharacter.
	Got int
}

func (e *Error) Error() string {
	switch e.Kind {
	case ErrInvalidLength:
		return fmt.Sprintf("ulid: %s: %v %d", e.Input, e.Kind, e.Got)
	case ErrInvalidCharacter:
		return fmt.Sprintf("ulid: %s: %v at %d", e.Input, e.Kind, e.Got)
	default:
		return fmt.Sprintf("ulid: %s: %v", e.Input, e.Kind)
	}
}

func (e *Error) Unwrap() error { return e.Kind }

func fault(kind error, input Input, got int) error {
	return &Error{Kind: kind, Input: input, Got: got}
}
