package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blockedby/jobtrack/internal/forms"
)

var addForm forms.Form

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a new application",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := addForm.ToApplication()
		if err != nil {
			return err
		}

		id, err := repo.Insert(cmd.Context(), &app)
		if err != nil {
			return err
		}

		fmt.Printf("Added application %d\n", id)
		return nil
	},
}

func init() {
	addCmd.Flags().StringVar(&addForm.Company, "company", "", "company name")
	addCmd.Flags().StringVar(&addForm.Position, "position", "", "position title")
	addCmd.Flags().StringVar(&addForm.Location, "location", "", "job location")
	addCmd.Flags().StringVar(&addForm.Date, "date", "", "application date (YYYY-MM-DD)")
	addCmd.Flags().StringVar(&addForm.CV, "cv", "", "path to the resume that was sent")
	addCmd.Flags().StringVar(&addForm.SalaryMin, "salary-min", "", "salary range lower bound")
	addCmd.Flags().StringVar(&addForm.SalaryMax, "salary-max", "", "salary range upper bound")
	addCmd.Flags().StringVar(&addForm.Status, "status", "applied", "status: applied, interview, offer or rejected")
	addCmd.Flags().StringVar(&addForm.Round, "round", "", "interview round (with --status interview)")
	addCmd.Flags().StringVar(&addForm.Amount, "amount", "", "offer amount (with --status offer)")
}
