package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/saylanihub/zakatms/internal/pkg/currency"
	"github.com/saylanihub/zakatms/internal/pkg/models"
	"github.com/saylanihub/zakatms/internal/pkg/payment"
	"github.com/saylanihub/zakatms/internal/pkg/screen"
	"github.com/saylanihub/zakatms/services/auth/guard"
	donationusecase "github.com/saylanihub/zakatms/services/donations/usecase"
)

var (
	donateAmount   float64
	donateType     string
	donateCategory string
	donateMethod   string
	donateCampaign string

	cardNumber   string
	cardExpMonth string
	cardExpYear  string
	cardCVC      string
)

var donateCmd = &cobra.Command{
	Use:   "donate",
	Short: "Make a donation",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAccess(guard.Resolve(app.session)); err != nil {
			return err
		}

		flow := donationusecase.NewDonateScreen(
			app.donations, app.campaigns, app.charger, app.receipts, app.session)

		if donateCampaign != "" {
			state := flow.LoadCampaign(cmd.Context(), donateCampaign)
			if state.Error != "" {
				return fmt.Errorf("%s", state.Error)
			}
			fmt.Printf("Contributing to: %s\n", state.Campaign.Title)
		}

		fmt.Printf("Processing your donation of %s...\n", currency.FormatPKR(donateAmount))

		state := flow.Submit(cmd.Context(), donationusecase.DonateForm{
			Amount:        donateAmount,
			Type:          models.DonationType(donateType),
			Category:      models.DonationCategory(donateCategory),
			PaymentMethod: models.PaymentMethod(donateMethod),
			CampaignID:    donateCampaign,
			Card: payment.Card{
				Number:   cardNumber,
				ExpMonth: cardExpMonth,
				ExpYear:  cardExpYear,
				CVC:      cardCVC,
			},
		})
		if state.Phase != screen.PhaseSuccess {
			return fmt.Errorf("%s", state.Error)
		}

		fmt.Println("Alhamdulillah! Donation Successful")
		fmt.Printf("Receipt saved to %s\n", state.ReceiptPath)
		fmt.Printf("Redirecting to your dashboard in %s...\n", state.RedirectAfter)
		time.Sleep(state.RedirectAfter)
		return runDashboard(cmd, nil)
	},
}

func init() {
	donateCmd.Flags().Float64Var(&donateAmount, "amount", 0, "donation amount in PKR")
	donateCmd.Flags().StringVar(&donateType, "type", "Zakat", "donation type: Zakat, Sadqah, Fitra or General")
	donateCmd.Flags().StringVar(&donateCategory, "category", "General", "category: Food, Education, Medical or General")
	donateCmd.Flags().StringVar(&donateMethod, "method", "Cash", "payment method: Cash, Bank or Online")
	donateCmd.Flags().StringVar(&donateCampaign, "campaign", "", "campaign id to contribute to")
	donateCmd.Flags().StringVar(&cardNumber, "card-number", "", "card number (Online only)")
	donateCmd.Flags().StringVar(&cardExpMonth, "card-exp-month", "", "card expiry month (Online only)")
	donateCmd.Flags().StringVar(&cardExpYear, "card-exp-year", "", "card expiry year (Online only)")
	donateCmd.Flags().StringVar(&cardCVC, "card-cvc", "", "card CVC (Online only)")
	donateCmd.MarkFlagRequired("amount")

	rootCmd.AddCommand(donateCmd)
}
