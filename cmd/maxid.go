package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var maxidCmd = &cobra.Command{
	Use:   "maxid",
	Short: "Print the maximum known story id and update id",
	Long:  "Print the maximum known story id and update id",
	RunE:  runMaxid,
}

func init() {
	RootCmd.AddCommand(maxidCmd)
}

func runMaxid(cmd *cobra.Command, args []string) error {
	client := newClient()

	storyId, err := client.MaxStoryID(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to get max story id: %v", err)
	}
	updateId, err := client.MaxUpdateID(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to get max update id: %v", err)
	}

	fmt.Printf("max story id:  %v\n", storyId)
	fmt.Printf("max update id: %v\n", updateId)

	return nil
}
