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
	"bufio"
	"context"
	"io"
	"os"

	"github.com/buildstamp/buildstamp/pkg/props"
)

// StdoutWriter renders the property store to stdout in the same line format
// as the file writer. Useful for pipeline debugging.
type StdoutWriter struct {
	// Output overrides the destination; nil means os.Stdout.
	Output io.Writer
}

// NewStdoutWriter creates a StdoutWriter targeting os.Stdout.
func NewStdoutWriter() *StdoutWriter {
	return &StdoutWriter{}
}

// Serialize writes the sorted key=value lines. Write failures are absorbed
// like the file writer's.
func (w *StdoutWriter) Serialize(ctx context.Context, store *props.Store) (Outcome, error) {
	if err := ctx.Err(); err != nil {
		return OutcomeAborted, err
	}

	out := w.Output
	if out == nil {
		out = os.Stdout
	}

	if !writeLines(bufio.NewWriter(out), store) {
		return OutcomeWrittenWithWarning, nil
	}
	return OutcomeWritten, nil
}
