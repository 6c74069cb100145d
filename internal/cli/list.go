package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/blockedby/jobtrack/internal/models"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")).
			MarginTop(1).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all applications, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		apps, err := repo.GetAll(cmd.Context())
		if err != nil {
			return err
		}

		if len(apps) == 0 {
			fmt.Println("No applications yet. Record one with 'jobtrack add'")
			return nil
		}

		fmt.Println(titleStyle.Render("Your Applications"))
		for _, app := range apps {
			printApplication(app)
		}
		return nil
	},
}

func printApplication(app models.JobApplication) {
	fmt.Printf("%s %s — %s\n", labelStyle.Render(fmt.Sprintf("[%d]", *app.ID)), app.Company, app.Position)
	fmt.Printf("    %s %s | %s %s | %s %s\n",
		dimStyle.Render("where:"), app.Location,
		dimStyle.Render("status:"), app.Status.Encode(),
		dimStyle.Render("salary:"), app.Salary.String())
	if app.Date != nil {
		fmt.Printf("    %s %s\n", dimStyle.Render("applied:"), app.Date.Format(models.DateLayout))
	}
	if app.CV != nil {
		fmt.Printf("    %s %s\n", dimStyle.Render("cv:"), *app.CV)
	}
}
