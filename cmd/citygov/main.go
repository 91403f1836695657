// Command citygov runs the CityGov search tooling: indexing of
// content resources and competence filter lookups.
package main

import (
	"os"

	"github.com/sitepark/citygov-search/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
