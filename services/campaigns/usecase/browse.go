// Package usecase holds the campaign browsing screen state
package usecase

import (
	"context"

	httpclient "github.com/saylanihub/zakatms/internal/pkg/http"
	"github.com/saylanihub/zakatms/internal/pkg/models"
	"github.com/saylanihub/zakatms/services/campaigns/gateway"
)

// BrowseState is the observable state of the public campaigns screen
type BrowseState struct {
	Loading   bool
	Error     string
	Campaigns []models.Campaign
}

// BrowseScreen lists public campaigns for donors
type BrowseScreen struct {
	campaigns *gateway.Client
	state     BrowseState
}

// NewBrowseScreen creates the campaign browsing state machine
func NewBrowseScreen(campaigns *gateway.Client) *BrowseScreen {
	return &BrowseScreen{campaigns: campaigns}
}

// State returns the current screen state
func (s *BrowseScreen) State() BrowseState {
	return s.state
}

// Refresh fetches the public campaign list
func (s *BrowseScreen) Refresh(ctx context.Context) BrowseState {
	s.state = BrowseState{Loading: true, Campaigns: s.state.Campaigns}

	campaigns, err := s.campaigns.List(ctx)
	if err != nil {
		s.state = BrowseState{
			Error:     httpclient.MessageFromError(err, "Failed to load campaigns"),
			Campaigns: s.state.Campaigns,
		}
		return s.state
	}

	s.state = BrowseState{Campaigns: campaigns}
	return s.state
}
