// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Command camelot queries the Camelot harmonic mixing wheel and serves it
// over HTTP.
package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/camelot/pkg/ux"
)

func main() {
	os.Exit(execute(newRootCmd(), os.Stderr))
}

// execute runs cmd and reports a failure on stderr. It returns the
// process exit code.
func execute(cmd *cobra.Command, stderr io.Writer) int {
	if err := cmd.Execute(); err != nil {
		ux.Error(stderr, err.Error())
		return 1
	}
	return 0
}
