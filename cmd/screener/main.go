package main

import (
	"os"

	"github.com/solatis/predicate/cmd/screener/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
