// ABOUTME: Entry point for the strikersgear CLI
// ABOUTME: Terminal admin console for the Strikers Gear catalog API

package main

import (
	"fmt"
	"os"

	"github.com/osamaqaseem39/strikersgear-dashboard/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
