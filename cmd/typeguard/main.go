// typeguard - inspect JSON and YAML documents as dynamic values
//
// Usage:
//
//	typeguard keys    [--all] [--inherited] [--hidden] [--path a.b] FILE...
//	typeguard values  [--all] [--inherited] [--hidden] [--path a.b] FILE...
//	typeguard entries [--all] [--inherited] [--hidden] [--path a.b] FILE...
//	typeguard tag     [--path a.b] FILE...
//	typeguard check   PREDICATE [--path a.b] FILE...
//	typeguard predicates
//	typeguard platform
//	typeguard version
//
// Files ending in .yaml or .yml are read as YAML, everything else as JSON.
// With no file, or with "-", the document is read from stdin.
package main

import (
	"errors"
	"fmt"
	"os"
)

const version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errCheckFailed) {
			fmt.Fprintf(os.Stderr, "typeguard: %v\n", err)
		}
		os.Exit(1)
	}
}
