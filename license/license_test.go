// SPDX-License-Identifier: MIT

package license_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orbital/license"
)

const bodyLines = 42

// TestParseStyle covers known names, the empty default and unknown names.
func TestParseStyle(t *testing.T) {
	for name, want := range map[string]license.Style{
		"text":  license.Text,
		"":      license.Text,
		"c":     license.C,
		"shell": license.Shell,
	} {
		got, err := license.ParseStyle(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	got, err := license.ParseStyle("fortran")
	assert.ErrorIs(t, err, license.ErrUnknownStyle)
	assert.Equal(t, license.Text, got, "unknown styles fall back to text")

	for _, s := range []license.Style{license.Text, license.C, license.Shell} {
		back, err := license.ParseStyle(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, back)
	}
}

// TestLines_Text checks the undecorated body.
func TestLines_Text(t *testing.T) {
	lines := license.Lines(license.Text)
	require.Len(t, lines, bodyLines)
	assert.Equal(t, "This file is part of the Electron Orbital Explorer. The Electron", lines[0])
	assert.Equal(t, "", lines[14])
	assert.Equal(t, "Copyright (c) 2013, Brian W. Johnson", lines[15])
	assert.Equal(t, "POSSIBILITY OF SUCH DAMAGE.", lines[bodyLines-1])
}

// TestLines_C checks the comment block framing and truncated blank prefix.
func TestLines_C(t *testing.T) {
	lines := license.Lines(license.C)
	require.Len(t, lines, bodyLines+2)
	assert.Equal(t, "/*", lines[0])
	assert.Equal(t, " * This file is part of the Electron Orbital Explorer. The Electron", lines[1])
	assert.Equal(t, " *", lines[15])
	assert.Equal(t, " */", lines[len(lines)-1])
	for _, l := range lines {
		assert.Equal(t, strings.TrimRight(l, " "), l, "no trailing whitespace")
	}
}

// TestLines_Shell checks the shebang header and '#' prefixes.
func TestLines_Shell(t *testing.T) {
	lines := license.Lines(license.Shell)
	require.Len(t, lines, bodyLines+2)
	assert.Equal(t, "#!/bin/sh", lines[0])
	assert.Equal(t, "#", lines[1])
	assert.Equal(t, "# This file is part of the Electron Orbital Explorer. The Electron", lines[2])
	assert.Equal(t, "#", lines[16])
	assert.Equal(t, "# POSSIBILITY OF SUCH DAMAGE.", lines[len(lines)-1])
}
