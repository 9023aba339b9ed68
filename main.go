// ABOUTME: Entry point for the studylink CLI
// ABOUTME: Terminal client for the StudyLink study-group platform

package main

import (
	"fmt"
	"os"

	"github.com/studylink/studylink-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
