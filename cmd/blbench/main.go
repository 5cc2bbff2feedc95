/*
Command blbench runs the blist benchmark scenarios.

	blbench list
	blbench run --size 100000 --html report.html
	blbench run --baseline report.html set-lookup-dense set-lookup-sparse

Without scenario arguments, run executes all scenarios.
*/
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
