// Package main provides the CLI entrypoint for schema-migrator.
//
// schema-migrator moves field data definitions between generations of the
// FAIMS platform:
//   - migrate rewrites a legacy notebook dump into a combined document with
//     human-readable field ids
//   - convert renders a FAIMS 2 module (data_schema.xml + ui_schema.xml) as a
//     TypeScript UI specification module
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
