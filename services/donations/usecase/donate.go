// Package usecase holds the donation screens: the submission flow and
// the donor dashboard.
package usecase

import (
	"context"
	"time"

	httpclient "github.com/saylanihub/zakatms/internal/pkg/http"
	"github.com/saylanihub/zakatms/internal/pkg/logger"
	"github.com/saylanihub/zakatms/internal/pkg/models"
	"github.com/saylanihub/zakatms/internal/pkg/payment"
	"github.com/saylanihub/zakatms/internal/pkg/screen"
	"github.com/saylanihub/zakatms/services/auth/guard"
	"github.com/saylanihub/zakatms/services/auth/session"
	campaigngw "github.com/saylanihub/zakatms/services/campaigns/gateway"
	"github.com/saylanihub/zakatms/services/donations/gateway"
	"github.com/saylanihub/zakatms/services/donations/receipt"
)

// RedirectDelay is how long the success screen shows before navigating
// to the dashboard
const RedirectDelay = 2500 * time.Millisecond

// DonateForm is what the donor submits
type DonateForm struct {
	Amount        float64
	Type          models.DonationType
	Category      models.DonationCategory
	PaymentMethod models.PaymentMethod
	CampaignID    string
	Card          payment.Card
}

// DonateState is the observable state of the donation screen
type DonateState struct {
	Phase    screen.Phase
	Error    string
	Campaign *models.Campaign
	// Donation is set once the record exists server-side, even when
	// receipt generation failed afterwards
	Donation    *models.Donation
	ReceiptPath string
	RedirectTo  string
	// RedirectAfter is the delay before navigating on success
	RedirectAfter time.Duration
}

// DonateScreen drives the donation submission flow
type DonateScreen struct {
	donations *gateway.Client
	campaigns *campaigngw.Client
	charger   payment.CardCharger
	receipts  *receipt.Generator
	session   *session.Store
	state     DonateState
}

// NewDonateScreen creates the donation flow state machine
func NewDonateScreen(
	donations *gateway.Client,
	campaigns *campaigngw.Client,
	charger payment.CardCharger,
	receipts *receipt.Generator,
	sess *session.Store,
) *DonateScreen {
	return &DonateScreen{
		donations: donations,
		campaigns: campaigns,
		charger:   charger,
		receipts:  receipts,
		session:   sess,
	}
}

// State returns the current screen state
func (s *DonateScreen) State() DonateState {
	return s.state
}

// LoadCampaign prefills the campaign the donor is contributing to
func (s *DonateScreen) LoadCampaign(ctx context.Context, campaignID string) DonateState {
	campaign, err := s.campaigns.Get(ctx, campaignID)
	if err != nil {
		s.state.Error = httpclient.MessageFromError(err, "Failed to load campaign")
		return s.state
	}
	s.state.Campaign = campaign
	return s.state
}

// Submit runs the whole donation flow: optional payment capture, record
// creation, receipt generation, then a scheduled redirect to the
// dashboard. Any failure surfaces its message and leaves the form open
// for retry; a capture failure aborts before any donation record is
// created.
func (s *DonateScreen) Submit(ctx context.Context, form DonateForm) DonateState {
	user := s.session.User()
	if user == nil {
		s.state = DonateState{Phase: screen.PhaseFailed, Error: "Please sign in to donate"}
		return s.state
	}
	if form.Amount <= 0 {
		s.state = DonateState{Phase: screen.PhaseFailed, Error: "Donation amount must be greater than zero", Campaign: s.state.Campaign}
		return s.state
	}

	s.state = DonateState{Phase: screen.PhaseSubmitting, Campaign: s.state.Campaign}

	var stripePaymentID *string
	if form.PaymentMethod == models.MethodOnline {
		// A missing payment capability is reported, never silently
		// swallowed
		if s.charger == nil {
			return s.fail("Online payments are not available right now")
		}

		intent, err := s.donations.CreatePaymentIntent(ctx, form.Amount)
		if err != nil {
			return s.fail(httpclient.MessageFromError(err, "Failed to start payment"))
		}

		paymentID, err := s.charger.Charge(ctx, intent.ClientSecret, form.Card)
		if err != nil {
			logger.Warn("Card capture failed, aborting donation",
				logger.Float64("amount", form.Amount),
				logger.Err(err))
			return s.fail(httpclient.MessageFromError(err, "Payment failed"))
		}
		stripePaymentID = &paymentID
	}

	req := models.CreateDonationRequest{
		Amount:          form.Amount,
		Type:            form.Type,
		Category:        form.Category,
		PaymentMethod:   form.PaymentMethod,
		StripePaymentID: stripePaymentID,
	}
	if form.CampaignID != "" {
		campaignID := form.CampaignID
		req.CampaignID = &campaignID
	}

	donation, err := s.donations.Create(ctx, req)
	if err != nil {
		return s.fail(httpclient.MessageFromError(err, "Donation failed"))
	}

	logger.Info("Donation created",
		logger.String("transaction_id", donation.TransactionID),
		logger.Float64("amount", donation.Amount),
		logger.String("method", string(donation.PaymentMethod)))

	path, err := s.receipts.Save(donation, user.Name)
	if err != nil {
		// The record exists server-side; keep it so the receipt can be
		// re-downloaded from the dashboard
		logger.Error("Receipt generation failed after donation creation",
			logger.String("transaction_id", donation.TransactionID),
			logger.Err(err))
		s.state = DonateState{
			Phase:    screen.PhaseFailed,
			Error:    "Your donation was recorded but the receipt could not be generated. You can re-download it from your dashboard.",
			Donation: donation,
			Campaign: s.state.Campaign,
		}
		return s.state
	}

	s.state = DonateState{
		Phase:         screen.PhaseSuccess,
		Campaign:      s.state.Campaign,
		Donation:      donation,
		ReceiptPath:   path,
		RedirectTo:    guard.RouteDashboard,
		RedirectAfter: RedirectDelay,
	}
	return s.state
}

func (s *DonateScreen) fail(msg string) DonateState {
	s.state = DonateState{Phase: screen.PhaseFailed, Error: msg, Campaign: s.state.Campaign}
	return s.state
}
