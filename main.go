package main

import (
	"github.com/alecthomas/kong"

	"pouringat.com/PouringAt/cmd"
)

func main() {
	ctx := kong.Parse(&cmd.CLI, kong.Name("Pouring At"), kong.Description("Pouring At finds what is on tap at bars near you."))
	err := ctx.Run(&cmd.Context{Debug: cmd.CLI.Debug})
	ctx.FatalIfErrorf(err)
}
