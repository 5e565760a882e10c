// Command joinboxctl is a demonstration CLI that drives a mailbox from a
// JSON fixture of events and prints the firings it produces, in order.
package main

import (
	"fmt"
	"os"

	joinboxcmd "github.com/openalpha/joinbox/cmd/joinboxctl/cmd"
)

func main() {
	root := joinboxcmd.NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
