// SPDX-License-Identifier: MIT

// Command platestat computes per-well and pooled statistics over microplate
// files.
//
//	platestat describe plate.yaml
//	platestat compute plate.yaml --stat mean --mode aggregated --begin 0 --length 2
//
// Settings come from PLATESTAT_* environment variables, optionally seeded by
// a .env file (see internal/config).
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
