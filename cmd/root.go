package cmd

import (
	"log"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"atlas-client/atlas"
	"atlas-client/config"
)

var RootCmd = &cobra.Command{
	Use:   "atlas-client",
	Short: "Query the Atlas FFN metadata API",
	Long:  "Query the Atlas FFN metadata API",
}

var verbose bool

func init() {
	RootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "log every API request")
}

func newClient() *atlas.Client {
	cfg := config.Load()

	logger := zap.NewNop()
	if verbose {
		var err error
		logger, err = zap.NewDevelopment()
		if err != nil {
			log.Fatalf("failed to create logger: %v", err)
		}
	}

	return atlas.New(atlas.Options{
		User:      cfg.AtlasUser,
		Pass:      cfg.AtlasPass,
		SemaLimit: cfg.SemaLimit,
		Logger:    logger,
	})
}
