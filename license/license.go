// SPDX-License-Identifier: MIT

// Package license renders the Electron Orbital Explorer license block in
// the comment syntax of a target file type.
package license

import (
	"errors"
	"fmt"
)

// Style selects how license lines are decorated.
type Style int

const (
	// Text emits the bare license text.
	Text Style = iota

	// C wraps the text in a /* ... */ block with " * " line prefixes.
	C

	// Shell emits a #!/bin/sh line followed by "# "-prefixed lines.
	Shell
)

// ErrUnknownStyle is returned by ParseStyle for unrecognised style names.
var ErrUnknownStyle = errors.New("license: unknown style")

// ParseStyle maps "text", "c" and "shell" to a Style.
func ParseStyle(name string) (Style, error) {
	switch name {
	case "text", "":
		return Text, nil
	case "c":
		return C, nil
	case "shell":
		return Shell, nil
	}

	return Text, fmt.Errorf("%q: %w", name, ErrUnknownStyle)
}

// String returns the name accepted by ParseStyle.
func (s Style) String() string {
	switch s {
	case C:
		return "c"
	case Shell:
		return "shell"
	default:
		return "text"
	}
}

// paragraphs is the license body; empty strings separate paragraphs.
var paragraphs = []string{
	"This file is part of the Electron Orbital Explorer. The Electron",
	"Orbital Explorer is distributed under the Simplified BSD License",
	"(also called the \"BSD 2-Clause License\"), in hopes that these",
	"rendering techniques might be used by other programmers in",
	"applications such as scientific visualization, video gaming, and so",
	"on. If you find value in this software and use its technologies for",
	"another purpose, I would love to hear back from you at bjthinks (at)",
	"gmail (dot) com. If you improve this software and agree to release",
	"your modifications under the below license, I encourage you to fork",
	"the development tree on github and push your modifications. The",
	"Electron Orbital Explorer's development URL is:",
	"https://github.com/bjthinks/orbital-explorer",
	"(This paragraph is not part of the software license and may be",
	"removed.)",
	"",
	"Copyright (c) 2013, Brian W. Johnson",
	"All rights reserved.",
	"",
	"Redistribution and use in source and binary forms, with or without",
	"modification, are permitted provided that the following conditions",
	"are met:",
	"",
	"+ Redistributions of source code must retain the above copyright",
	"  notice, this list of conditions and the following disclaimer.",
	"",
	"+ Redistributions in binary form must reproduce the above copyright",
	"  notice, this list of conditions and the following disclaimer in",
	"  the documentation and/or other materials provided with the",
	"  distribution.",
	"",
	"THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS",
	"\"AS IS\" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT",
	"LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS",
	"FOR A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE",
	"COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT,",
	"INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING,",
	"BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES;",
	"LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER",
	"CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT",
	"LIABILITY, OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN",
	"ANY WAY OUT OF THE USE OF THIS SOFTWARE, EVEN IF ADVISED OF THE",
	"POSSIBILITY OF SUCH DAMAGE.",
}

// decoration is the per-style framing of the license body.
type decoration struct {
	header, footer []string
	prefix, blank  string
}

func decorationFor(s Style) decoration {
	switch s {
	case C:
		return decoration{header: []string{"/*"}, footer: []string{" */"}, prefix: " * ", blank: " *"}
	case Shell:
		return decoration{header: []string{"#!/bin/sh", "#"}, prefix: "# ", blank: "#"}
	default:
		return decoration{}
	}
}

// Lines returns the license as decorated lines, without trailing newlines.
// Blank separator lines carry only the style's truncated prefix so no
// line ends in whitespace.
func Lines(s Style) []string {
	d := decorationFor(s)
	out := make([]string, 0, len(d.header)+len(paragraphs)+len(d.footer))
	out = append(out, d.header...)
	for _, p := range paragraphs {
		if p == "" {
			out = append(out, d.blank)
			continue
		}
		out = append(out, d.prefix+p)
	}

	return append(out, d.footer...)
}
