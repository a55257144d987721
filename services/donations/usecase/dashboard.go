package usecase

import (
	"context"

	httpclient "github.com/saylanihub/zakatms/internal/pkg/http"
	"github.com/saylanihub/zakatms/internal/pkg/models"
	"github.com/saylanihub/zakatms/services/auth/session"
	"github.com/saylanihub/zakatms/services/donations/gateway"
	"github.com/saylanihub/zakatms/services/donations/receipt"
)

// DashboardState is the observable state of the donor dashboard
type DashboardState struct {
	Loading   bool
	Error     string
	Donations []models.Donation
	// TotalAmount and Count are derived from the donor's own donations
	TotalAmount float64
	Count       int
}

// DashboardScreen shows the donor their own donations
type DashboardScreen struct {
	donations *gateway.Client
	receipts  *receipt.Generator
	session   *session.Store
	state     DashboardState
}

// NewDashboardScreen creates the donor dashboard state machine
func NewDashboardScreen(donations *gateway.Client, receipts *receipt.Generator, sess *session.Store) *DashboardScreen {
	return &DashboardScreen{donations: donations, receipts: receipts, session: sess}
}

// State returns the current screen state
func (s *DashboardScreen) State() DashboardState {
	return s.state
}

// Refresh fetches the donor's donations and derives the totals
func (s *DashboardScreen) Refresh(ctx context.Context) DashboardState {
	s.state = DashboardState{Loading: true, Donations: s.state.Donations}

	donations, err := s.donations.MyDonations(ctx)
	if err != nil {
		s.state = DashboardState{
			Error:     httpclient.MessageFromError(err, "Failed to load your donations"),
			Donations: s.state.Donations,
		}
		return s.state
	}

	var total float64
	for _, d := range donations {
		total += d.Amount
	}

	s.state = DashboardState{
		Donations:   donations,
		TotalAmount: total,
		Count:       len(donations),
	}
	return s.state
}

// DownloadReceipt re-generates the receipt for one of the donor's
// donations. This is the recovery path when receipt generation failed
// during submission.
func (s *DashboardScreen) DownloadReceipt(donation *models.Donation) (string, error) {
	user := s.session.User()
	name := ""
	if user != nil {
		name = user.Name
	}
	return s.receipts.Save(donation, name)
}
