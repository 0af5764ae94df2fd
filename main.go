// Package main is the entry point for the cadence application.
package main

import (
	"github.com/cadence-dl/cadence/cmd"
	"github.com/cadence-dl/cadence/config"
	"github.com/cadence-dl/cadence/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
