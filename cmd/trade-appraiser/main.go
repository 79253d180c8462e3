// Package main is the entry point for the trade-appraiser server.
package main

import (
	"os"

	"github.com/donaldgifford/trade-appraiser/cmd/trade-appraiser/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
