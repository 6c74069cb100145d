package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/blockedby/jobtrack/internal/models"
	"github.com/blockedby/jobtrack/internal/repository"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a single application",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		app, err := repo.GetByID(cmd.Context(), id)
		if err != nil {
			return err
		}

		printApplication(app)
		return nil
	},
}

var setStatusCmd = &cobra.Command{
	Use:   "set-status <id> <status>",
	Short: "Move an application to a new status",
	Long:  "Status is given in its text form: applied, rejected, interview:<round> or offer:<amount>.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		status, err := models.ParseStatus(args[1])
		if err != nil {
			return err
		}

		app, err := repo.GetByID(cmd.Context(), id)
		if err != nil {
			return err
		}

		app.Status = status
		if err := repo.Update(cmd.Context(), &app); err != nil {
			return err
		}

		fmt.Printf("Application %d is now %s\n", id, status)
		return nil
	},
}

var rmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete an application",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		if err := repo.Delete(cmd.Context(), id); err != nil {
			if repository.IsNotFound(err) {
				return fmt.Errorf("no application with id %d", id)
			}
			return err
		}

		fmt.Printf("Deleted application %d\n", id)
		return nil
	},
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every stored application",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := repo.ClearAll(cmd.Context()); err != nil {
			return err
		}

		fmt.Println("Cleared all applications")
		return nil
	},
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id: %s", raw)
	}
	return id, nil
}
