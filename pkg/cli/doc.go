/*
Copyright © 2026 Buildstamp Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package cli implements the buildstamp command surface: the write command
// that produces the properties file, and a version command. Flag values can
// also be supplied through BUILDSTAMP_* environment variables.
package cli
