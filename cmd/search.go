package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"atlas-client/atlas"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search bulk fic metadata",
	Long:  "Search bulk fic metadata",
	RunE:  runSearch,
}

type searchArgs struct {
	Fandom      string
	Title       string
	Description string
	AuthorId    int
	MinFicId    int
	MinUpdateId int
	Limit       int
}

var sArgs searchArgs

func init() {
	searchCmd.Flags().StringVarP(&sArgs.Fandom, "fandom", "f", "", "ilike pattern applied to raw_fandoms")
	searchCmd.Flags().StringVarP(&sArgs.Title, "title", "t", "", "ilike pattern applied to title")
	searchCmd.Flags().StringVarP(&sArgs.Description, "description", "d", "", "ilike pattern applied to description")
	searchCmd.Flags().IntVarP(&sArgs.AuthorId, "author-id", "a", 0, "filter by author id")
	searchCmd.Flags().IntVar(&sArgs.MinFicId, "min-fic-id", 0, "minimum story id")
	searchCmd.Flags().IntVar(&sArgs.MinUpdateId, "min-update-id", 0, "minimum update id")
	searchCmd.Flags().IntVarP(&sArgs.Limit, "limit", "n", 100, "maximum number of results (1-10000)")
	RootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	client := newClient()
	stories, err := client.GetBulkMetadata(cmd.Context(), atlas.BulkQuery{
		MinUpdateID:      sArgs.MinUpdateId,
		MinFicID:         sArgs.MinFicId,
		TitleILike:       sArgs.Title,
		DescriptionILike: sArgs.Description,
		RawFandomsILike:  sArgs.Fandom,
		AuthorID:         sArgs.AuthorId,
		Limit:            sArgs.Limit,
	})
	if err != nil {
		return fmt.Errorf("failed to get bulk metadata: %v", err)
	}

	for _, story := range stories {
		fmt.Printf("%v\t%v by %v [%v]\n", story.Id, story.Title, story.Author.Name, strings.Join(story.Fandoms, " & "))
	}
	fmt.Printf("%v stories\n", len(stories))

	return nil
}
