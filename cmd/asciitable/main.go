// Command asciitable renders a table definition as a bordered text table.
//
// Without --file it renders a built-in cluster overview:
//
//	asciitable
//	asciitable --file scores.yaml --places 3
//	asciitable --color always --highlight-column 0
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
