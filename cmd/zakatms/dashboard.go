package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/saylanihub/zakatms/internal/pkg/currency"
	"github.com/saylanihub/zakatms/services/auth/guard"
	donationusecase "github.com/saylanihub/zakatms/services/donations/usecase"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show your donations and totals",
	RunE:  runDashboard,
}

func runDashboard(cmd *cobra.Command, args []string) error {
	if err := requireAccess(guard.Resolve(app.session)); err != nil {
		return err
	}

	screen := donationusecase.NewDashboardScreen(app.donations, app.receipts, app.session)
	state := screen.Refresh(cmd.Context())
	if state.Error != "" {
		return fmt.Errorf("%s", state.Error)
	}

	fmt.Printf("Assalamu Alaikum, %s\n", app.session.User().Name)
	fmt.Printf("Total Donations: %d   Total Amount: %s\n\n", state.Count, currency.FormatPKR(state.TotalAmount))

	for _, d := range state.Donations {
		campaign := "General Relief Fund"
		if d.Campaign != nil {
			campaign = d.Campaign.Title
		}
		fmt.Printf("#%s  %s  %s  %s  %s  [%s]\n",
			d.TransactionID,
			d.CreatedAt.Format("02 Jan 2006"),
			currency.FormatPKR(d.Amount),
			d.Type,
			campaign,
			d.Status)
	}
	return nil
}

var receiptCmd = &cobra.Command{
	Use:   "receipt <transaction-id>",
	Short: "Re-download the PDF receipt for one of your donations",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAccess(guard.Resolve(app.session)); err != nil {
			return err
		}

		screen := donationusecase.NewDashboardScreen(app.donations, app.receipts, app.session)
		state := screen.Refresh(cmd.Context())
		if state.Error != "" {
			return fmt.Errorf("%s", state.Error)
		}

		wanted := strings.ToUpper(args[0])
		for i := range state.Donations {
			if strings.ToUpper(state.Donations[i].TransactionID) == wanted {
				path, err := screen.DownloadReceipt(&state.Donations[i])
				if err != nil {
					return err
				}
				fmt.Printf("Receipt saved to %s\n", path)
				return nil
			}
		}
		return fmt.Errorf("no donation with transaction id %s", args[0])
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd, receiptCmd)
}
