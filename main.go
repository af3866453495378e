// Package main is the entry point for the anisubdl application.
package main

import (
	"github.com/Sac-94/AniSubDl/cmd"
	"github.com/Sac-94/AniSubDl/config"
	"github.com/Sac-94/AniSubDl/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
