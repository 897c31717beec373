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
	oklog "github.com/oklog/ulid/v2"
)

// Oklog casts identifier to github.com/oklog/ulid value, the binary layout
// of both libraries is the same.
func (uid ULID) Oklog() oklog.ULID {
	return oklog.ULID(uid)
}

// FromOklog casts github.com/oklog/ulid value to identifier
func FromOklog(id oklog.ULID) ULID {
	return ULID(id)
}
