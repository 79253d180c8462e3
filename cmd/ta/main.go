// Package main is the entry point for the ta CLI client.
package main

import (
	"github.com/donaldgifford/trade-appraiser/cmd/ta/cmd"
)

func main() {
	cmd.Execute()
}
