// termo is a terminology candidate engine for Russian text.
// Single binary — grammatical identity checks, deduplication, and
// normal-form resolution over stored candidate lists.
package main

import (
	"os"

	"github.com/corey/termo/cmd/termo/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
