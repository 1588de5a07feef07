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

package errors

import (
	stderrors "errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidTarget, "target is a directory")
	assert.Equal(t, "[INVALID_TARGET] target is a directory", err.Error())
	assert.Nil(t, err.Unwrap())
}

func TestWrap(t *testing.T) {
	cause := fs.ErrNotExist
	err := Wrap(ErrCodeIO, "reading descriptor", cause)

	assert.Equal(t, "[IO] reading descriptor: file does not exist", err.Error())
	assert.True(t, stderrors.Is(err, fs.ErrNotExist))
}

func TestWrapWithContext(t *testing.T) {
	err := WrapWithContext(ErrCodeLookupFailure, "version unavailable", nil, map[string]any{
		"key": "maven.version",
	})
	require.NotNil(t, err.Context)
	assert.Equal(t, "maven.version", err.Context["key"])
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, ErrorCode(""), CodeOf(nil))
	assert.Equal(t, ErrCodeIO, CodeOf(New(ErrCodeIO, "boom")))
	assert.Equal(t, ErrCodeInternal, CodeOf(stderrors.New("plain")))
}
