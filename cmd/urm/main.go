// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"log"
	"os"

	"github.com/ezrec/urm/cmd/urm/cmd"
)

func main() {
	log.SetPrefix("urm: ")
	log.SetFlags(0)

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
