package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/salmanakber/mayaopps-sub001/internal/calendar"
	config "github.com/salmanakber/mayaopps-sub001/internal/configs"
	dto "github.com/salmanakber/mayaopps-sub001/internal/data_models"
	repository "github.com/salmanakber/mayaopps-sub001/internal/repositories"
	"github.com/salmanakber/mayaopps-sub001/internal/services"
)

var (
	cloneCompanyID string
	cloneWeekOf    string
)

var cloneWeekCmd = &cobra.Command{
	Use:   "clone-week",
	Short: "Copy the previous week's tasks into a target week",
	Long:  "Copies every task of the week before the target week into it as PLANNED. Running it twice for one week duplicates the tasks.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			log.Println(".env file not found, using environment variables")
		}

		if cloneCompanyID == "" {
			return fmt.Errorf("--company is required")
		}

		cfg := config.Load()
		repos := repository.New(config.New(cfg.DatabaseDSN))
		svc := services.NewCloneService(repos)

		var (
			resp *dto.CloneWeekResponse
			err  error
		)
		if cloneWeekOf == "" {
			resp, err = svc.CloneNextWeek(cmd.Context(), cloneCompanyID, time.Now())
		} else {
			var day time.Time
			day, err = calendar.ParseDate(cloneWeekOf)
			if err != nil {
				return fmt.Errorf("--week: %w", err)
			}
			week := calendar.WeekOf(day)
			resp, err = svc.CloneWeek(cmd.Context(), cloneCompanyID, week.Start, week.End)
		}
		if err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	},
}

func init() {
	cloneWeekCmd.Flags().StringVar(&cloneCompanyID, "company", "", "company id to clone for")
	cloneWeekCmd.Flags().StringVar(&cloneWeekOf, "week", "", "any date in the target week (defaults to next week)")
	rootCmd.AddCommand(cloneWeekCmd)
}
