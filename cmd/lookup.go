package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"atlas-client/atlas"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup",
	Short: "Look up one fic's metadata by id or link",
	Long:  "Look up one fic's metadata by id or link",
	RunE:  runLookup,
}

type lookupArgs struct {
	FicId int
	Link  string
}

var lArgs lookupArgs

func init() {
	lookupCmd.Flags().IntVarP(&lArgs.FicId, "id", "i", 0, "FFN story id")
	lookupCmd.Flags().StringVarP(&lArgs.Link, "link", "l", "", "FFN story link")
	RootCmd.AddCommand(lookupCmd)
}

func runLookup(cmd *cobra.Command, args []string) error {
	ficId := lArgs.FicId
	if lArgs.Link != "" {
		id, ok := atlas.ExtractFicID(lArgs.Link)
		if !ok {
			return fmt.Errorf("no story id found in link: %v", lArgs.Link)
		}
		ficId = id
	}
	if ficId == 0 {
		return fmt.Errorf("either a story id or a link is required")
	}

	client := newClient()
	story, err := client.GetStoryMetadata(cmd.Context(), ficId)
	if err != nil {
		return fmt.Errorf("failed to get story metadata: %v", err)
	}

	jsonBytes, err := json.MarshalIndent(story, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal story: %v", err)
	}
	fmt.Println(string(jsonBytes))
	fmt.Println(story.URL())

	return nil
}
