// Command rangeflow reads a control-flow graph and reports every
// comparison whose outcome is already settled by the ranges its operands
// can hold.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
