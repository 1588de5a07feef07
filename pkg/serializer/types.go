// Copyright (c) 2026, Buildstamp Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package serializer

import (
	"context"

	"github.com/buildstamp/buildstamp/pkg/props"
)

// Outcome classifies how a serialization attempt ended. It makes the
// best-effort IO policy observable: absorbed write failures still complete
// the invocation, but with a distinct outcome.
type Outcome string

const (
	// OutcomeWritten means the file was written completely.
	OutcomeWritten Outcome = "written"
	// OutcomeWrittenWithWarning means an IO failure was absorbed; the output
	// file may be missing or truncated.
	OutcomeWrittenWithWarning Outcome = "written-with-warning"
	// OutcomeAborted means the invocation failed before any write, e.g. the
	// target path exists as a directory.
	OutcomeAborted Outcome = "aborted"
)

// String returns the string representation of the Outcome.
func (o Outcome) String() string {
	return string(o)
}

// Serializer renders a property store to its destination. The returned error
// is non-nil only for aborting failures; absorbed IO failures surface solely
// through the Outcome.
type Serializer interface {
	Serialize(ctx context.Context, store *props.Store) (Outcome, error)
}
