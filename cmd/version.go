package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"atlas-client/atlas"
)

var versionCmd = &cobra.Command{
	Use: "version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("version: ", atlas.Version)
	},
}

func init() {
	RootCmd.AddCommand(versionCmd)
}
