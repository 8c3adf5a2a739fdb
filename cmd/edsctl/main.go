// Command edsctl wraps the EDS engine: statistics, pattern generation,
// synthetic EDS generation, MSA/VCF conversion, and the EDS -> l-EDS
// transformation.
package main

import (
	"fmt"
	"os"

	"github.com/draessld/EDSParser/cmd/edsctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
