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
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/buildstamp/buildstamp/pkg/defaults"
	"github.com/buildstamp/buildstamp/pkg/errors"
	"github.com/buildstamp/buildstamp/pkg/props"
)

// FileWriter writes the property store to a file, creating parent
// directories as needed and overwriting any previous content.
type FileWriter struct {
	// Path is the target file path.
	Path string
}

// NewFileWriter creates a FileWriter targeting dir/name.
func NewFileWriter(dir, name string) *FileWriter {
	return &FileWriter{Path: filepath.Join(dir, name)}
}

// NewFileWriterOrStdout creates a file writer for path, or a stdout writer
// when path is empty or "-".
func NewFileWriterOrStdout(path string) Serializer {
	if path == "" || path == "-" {
		return NewStdoutWriter()
	}
	return &FileWriter{Path: path}
}

// Serialize writes one key=value line per entry in ascending key order. The
// only aborting failure is a target path that already exists as a directory;
// it is detected before any write. Open, write, flush, and close failures
// are logged as warnings and absorbed, yielding OutcomeWrittenWithWarning.
func (w *FileWriter) Serialize(ctx context.Context, store *props.Store) (Outcome, error) {
	if err := ctx.Err(); err != nil {
		return OutcomeAborted, err
	}

	if info, err := os.Stat(w.Path); err == nil && info.IsDir() {
		return OutcomeAborted, errors.New(errors.ErrCodeInvalidTarget,
			fmt.Sprintf("target %s must be a file, not a directory", w.Path))
	}

	if dir := filepath.Dir(w.Path); dir != "." {
		if err := os.MkdirAll(dir, defaults.DirMode); err != nil {
			slog.Warn("unable to create output directory", "dir", dir, "error", err.Error())
			return OutcomeWrittenWithWarning, nil
		}
	}

	slog.Info("writing build properties", "path", w.Path, "count", store.Len())

	file, err := os.OpenFile(w.Path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, defaults.FileMode)
	if err != nil {
		slog.Warn("unable to open output file", "path", w.Path, "error", err.Error())
		return OutcomeWrittenWithWarning, nil
	}

	warned := !writeLines(bufio.NewWriter(file), store)
	if cerr := file.Close(); cerr != nil {
		slog.Warn("unable to close output file", "path", w.Path, "error", cerr.Error())
		warned = true
	}

	if warned {
		return OutcomeWrittenWithWarning, nil
	}
	return OutcomeWritten, nil
}

// writeLines emits the sorted entries and flushes. It returns false on the
// first write or flush failure, after logging a warning. Each written line
// is echoed to the diagnostics sink.
func writeLines(out *bufio.Writer, store *props.Store) bool {
	for key, value := range store.Sorted() {
		line := fmt.Sprintf("%s=%s", key, value)
		if _, err := out.WriteString(line + lineSeparator()); err != nil {
			slog.Warn("unable to write property line", "error", err.Error())
			return false
		}
		slog.Info(line)
	}
	if err := out.Flush(); err != nil {
		slog.Warn("unable to flush output", "error", err.Error())
		return false
	}
	return true
}

// lineSeparator returns the platform-native line terminator.
func lineSeparator() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}
