package main

import (
	"log"

	"github.com/abritton2002/GrowthApp4Men/pkg/commands"
)

func main() {
	if err := commands.New().Execute(); err != nil {
		log.Fatalf("error during command execution: %v", err)
	}
}
