package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saylanihub/zakatms/internal/pkg/currency"
	campaignusecase "github.com/saylanihub/zakatms/services/campaigns/usecase"
)

var campaignsCmd = &cobra.Command{
	Use:   "campaigns",
	Short: "Browse active fundraising campaigns",
	RunE: func(cmd *cobra.Command, args []string) error {
		screen := campaignusecase.NewBrowseScreen(app.campaigns)
		state := screen.Refresh(cmd.Context())
		if state.Error != "" {
			return fmt.Errorf("%s", state.Error)
		}

		if len(state.Campaigns) == 0 {
			fmt.Println("No active campaigns right now.")
			return nil
		}

		for _, c := range state.Campaigns {
			fmt.Printf("%s  %s\n", c.ID, c.Title)
			fmt.Printf("    %s raised of %s (%.1f%% funded), deadline %s\n",
				currency.FormatPKR(c.RaisedAmount),
				currency.FormatPKR(c.GoalAmount),
				c.ProgressPercent(),
				c.Deadline.Format("2 January 2006"))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(campaignsCmd)
}
