// SPDX-License-Identifier: MIT

// Command scramble lists every dictionary word that can be traced on a 4×4
// Scramble board and shows the path of each one.
//
//	scramble -l catsxxxxxxxxxxxx -d words.txt
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/scramble/tiles"
)

const (
	exitInput    = 1
	exitInternal = 2
)

func main() {
	cmd := newCommand()
	if err := cmd.Execute(); err != nil {
		if errors.Is(err, tiles.ErrTileCount) {
			fmt.Fprintln(os.Stderr, "[Internal]:", err)
			os.Exit(exitInternal)
		}
		fmt.Fprintln(os.Stderr, "[Error]:", err)
		os.Exit(exitInput)
	}
}
