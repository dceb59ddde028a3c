// Command devtool bundles the operator tasks of the case service: schema
// migrations, database and service probes, catalog checks, engine simulation
// and demo seeding.
package main

import "os"

func main() {
	if err := Execute(); err != nil {
		PrintError("%v", err)
		os.Exit(1)
	}
}
