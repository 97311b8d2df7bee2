package cmd

import (
	"encoding/json"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	config "github.com/salmanakber/mayaopps-sub001/internal/configs"
	repository "github.com/salmanakber/mayaopps-sub001/internal/repositories"
	"github.com/salmanakber/mayaopps-sub001/internal/seed"
)

var seedFile string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load a YAML rota fixture into the database",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			log.Println(".env file not found, using environment variables")
		}

		cfg := config.Load()

		fixture, err := seed.LoadFile(seedFile)
		if err != nil {
			return err
		}

		repos := repository.New(config.New(cfg.DatabaseDSN))
		summary, err := seed.Load(cmd.Context(), repos, fixture)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(summary)
	},
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "fixtures/rota.yaml", "path to the YAML fixture")
	rootCmd.AddCommand(seedCmd)
}
