package main

import (
	"github.com/spf13/cobra"

	"github.com/zostay/go-ical/cmd/icaltool/cmd"
)

func main() {
	err := cmd.Execute()
	cobra.CheckErr(err)
}
