package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/saylanihub/zakatms/internal/pkg/currency"
	adminusecase "github.com/saylanihub/zakatms/services/admin/usecase"
	"github.com/saylanihub/zakatms/services/auth/guard"
)

var (
	campaignTitle       string
	campaignDescription string
	campaignGoal        float64
	campaignDeadline    string
	deleteConfirmed     bool
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Admin console: stats, donation ledger and campaign management",
}

func adminConsole() (*adminusecase.Console, error) {
	if err := requireAccess(guard.ResolveAdmin(app.session)); err != nil {
		return nil, err
	}
	return adminusecase.NewConsole(app.donations, app.campaigns), nil
}

var adminStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate donation statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		console, err := adminConsole()
		if err != nil {
			return err
		}
		state := console.Refresh(cmd.Context())
		if state.Error != "" {
			return fmt.Errorf("%s", state.Error)
		}

		fmt.Printf("Total Donations:      %d\n", state.Stats.TotalDonations)
		fmt.Printf("Total Revenue:        %s\n", currency.FormatPKR(state.Stats.TotalAmount))
		fmt.Printf("Verified Funds:       %s\n", currency.FormatPKR(state.Stats.VerifiedAmount))
		fmt.Printf("Pending Verification: %s\n", currency.FormatPKR(state.Stats.PendingAmount))
		return nil
	},
}

var adminDonationsCmd = &cobra.Command{
	Use:   "donations",
	Short: "Show the donation ledger",
	RunE: func(cmd *cobra.Command, args []string) error {
		console, err := adminConsole()
		if err != nil {
			return err
		}
		state := console.Refresh(cmd.Context())
		if state.Error != "" {
			return fmt.Errorf("%s", state.Error)
		}

		for _, d := range state.Donations {
			donor := "-"
			if d.User != nil {
				donor = d.User.Name
			}
			line := fmt.Sprintf("%s  #%s  %-20s  %10s  [%s]",
				d.ID, d.TransactionID, donor, currency.FormatPKR(d.Amount), d.Status)
			if adminusecase.CanVerify(d) {
				line += "  (verify with: zakatms admin verify " + d.ID + ")"
			}
			fmt.Println(line)
		}
		return nil
	},
}

var adminVerifyCmd = &cobra.Command{
	Use:   "verify <donation-id>",
	Short: "Mark a pending donation as Verified",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		console, err := adminConsole()
		if err != nil {
			return err
		}
		state := console.VerifyDonation(cmd.Context(), args[0])
		if state.Error != "" {
			return fmt.Errorf("%s", state.Error)
		}
		fmt.Println("Donation verified.")
		return nil
	},
}

var adminCampaignCmd = &cobra.Command{
	Use:   "campaign",
	Short: "Create, update or delete campaigns",
}

func campaignFormFromFlags(editingID string) (adminusecase.CampaignForm, error) {
	deadline, err := time.Parse("2006-01-02", campaignDeadline)
	if err != nil {
		return adminusecase.CampaignForm{}, fmt.Errorf("invalid deadline, want YYYY-MM-DD: %w", err)
	}
	return adminusecase.CampaignForm{
		EditingID:   editingID,
		Title:       campaignTitle,
		Description: campaignDescription,
		GoalAmount:  campaignGoal,
		Deadline:    deadline,
	}, nil
}

var adminCampaignCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new campaign",
	RunE: func(cmd *cobra.Command, args []string) error {
		console, err := adminConsole()
		if err != nil {
			return err
		}
		form, err := campaignFormFromFlags("")
		if err != nil {
			return err
		}
		state := console.SaveCampaign(cmd.Context(), form)
		if state.Error != "" {
			return fmt.Errorf("%s", state.Error)
		}
		fmt.Printf("Campaign %q created.\n", campaignTitle)
		return nil
	},
}

var adminCampaignUpdateCmd = &cobra.Command{
	Use:   "update <campaign-id>",
	Short: "Update an existing campaign",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		console, err := adminConsole()
		if err != nil {
			return err
		}
		form, err := campaignFormFromFlags(args[0])
		if err != nil {
			return err
		}
		state := console.SaveCampaign(cmd.Context(), form)
		if state.Error != "" {
			return fmt.Errorf("%s", state.Error)
		}
		fmt.Printf("Campaign %s updated.\n", args[0])
		return nil
	},
}

var adminCampaignDeleteCmd = &cobra.Command{
	Use:   "delete <campaign-id>",
	Short: "Delete a campaign (requires --yes)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		console, err := adminConsole()
		if err != nil {
			return err
		}
		state := console.DeleteCampaign(cmd.Context(), args[0], deleteConfirmed)
		if state.Error != "" {
			return fmt.Errorf("%s", state.Error)
		}
		fmt.Printf("Campaign %s deleted.\n", args[0])
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{adminCampaignCreateCmd, adminCampaignUpdateCmd} {
		c.Flags().StringVar(&campaignTitle, "title", "", "campaign title")
		c.Flags().StringVar(&campaignDescription, "description", "", "campaign description")
		c.Flags().Float64Var(&campaignGoal, "goal", 0, "goal amount in PKR")
		c.Flags().StringVar(&campaignDeadline, "deadline", "", "deadline (YYYY-MM-DD)")
	}
	adminCampaignDeleteCmd.Flags().BoolVar(&deleteConfirmed, "yes", false, "confirm the deletion")

	adminCampaignCmd.AddCommand(adminCampaignCreateCmd, adminCampaignUpdateCmd, adminCampaignDeleteCmd)
	adminCmd.AddCommand(adminStatsCmd, adminDonationsCmd, adminVerifyCmd, adminCampaignCmd)
	rootCmd.AddCommand(adminCmd)
}
