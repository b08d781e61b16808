package main

import (
	"github.com/anitable/anitable/cmd"
	"github.com/anitable/anitable/config"
	"github.com/anitable/anitable/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
