package main

import (
	"errors"
	"fenboard/ui"
	"fmt"
	"os"
)

func main() {
	if err := ui.RunFenBoard(); err != nil {
		if !errors.Is(err, ui.ErrInvalidInput) {
			fmt.Fprintf(os.Stderr, "error fenboard: %v\n", err)
		}
		os.Exit(1)
	}
}
