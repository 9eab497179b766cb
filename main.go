// Package main is the entry point for vpcalc.
package main

import (
	"github.com/samber/lo"
	"github.com/vpcalc/vpcalc/cmd"
	"github.com/vpcalc/vpcalc/config"
	"github.com/vpcalc/vpcalc/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
