// Package usecase drives the admin console: aggregate stats, the
// donation ledger, and campaign management. All three share one data
// refresh, and every mutation re-fetches the full dataset instead of
// patching local state.
package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	httpclient "github.com/saylanihub/zakatms/internal/pkg/http"
	"github.com/saylanihub/zakatms/internal/pkg/logger"
	"github.com/saylanihub/zakatms/internal/pkg/models"
	campaigngw "github.com/saylanihub/zakatms/services/campaigns/gateway"
	donationgw "github.com/saylanihub/zakatms/services/donations/gateway"
)

// ConsoleState is the shared state of the admin console views
type ConsoleState struct {
	Loading   bool
	Error     string
	Donations []models.Donation
	Campaigns []models.Campaign
	Stats     models.DonationStats
}

// CampaignForm is the reusable create/edit campaign form. A non-empty
// EditingID switches it to update mode.
type CampaignForm struct {
	EditingID   string
	Title       string
	Description string
	GoalAmount  float64
	Deadline    time.Time
}

// Console is the admin console state machine
type Console struct {
	donations *donationgw.Client
	campaigns *campaigngw.Client
	validate  *validator.Validate
	state     ConsoleState
	form      CampaignForm
}

// NewConsole creates the admin console
func NewConsole(donations *donationgw.Client, campaigns *campaigngw.Client) *Console {
	return &Console{
		donations: donations,
		campaigns: campaigns,
		validate:  validator.New(),
	}
}

// State returns the current console state
func (c *Console) State() ConsoleState {
	return c.state
}

// Form returns the current campaign form
func (c *Console) Form() CampaignForm {
	return c.form
}

// Refresh loads the full admin dataset: ledger, campaigns and stats
func (c *Console) Refresh(ctx context.Context) ConsoleState {
	c.state = ConsoleState{
		Loading:   true,
		Donations: c.state.Donations,
		Campaigns: c.state.Campaigns,
		Stats:     c.state.Stats,
	}

	donations, err := c.donations.ListAll(ctx)
	if err != nil {
		return c.failRefresh(err)
	}
	campaigns, err := c.campaigns.ListAll(ctx)
	if err != nil {
		return c.failRefresh(err)
	}
	stats, err := c.donations.Stats(ctx)
	if err != nil {
		return c.failRefresh(err)
	}

	c.state = ConsoleState{
		Donations: donations,
		Campaigns: campaigns,
		Stats:     *stats,
	}
	return c.state
}

func (c *Console) failRefresh(err error) ConsoleState {
	c.state = ConsoleState{
		Error:     httpclient.MessageFromError(err, "Failed to sync data"),
		Donations: c.state.Donations,
		Campaigns: c.state.Campaigns,
		Stats:     c.state.Stats,
	}
	return c.state
}

// CanVerify reports whether the verify action applies to a donation.
// The ledger hides the action for already-verified rows.
func CanVerify(d models.Donation) bool {
	return d.Status == models.StatusPending
}

// VerifyDonation flips a donation to Verified and re-fetches the
// dataset so the ledger never shows a stale status
func (c *Console) VerifyDonation(ctx context.Context, donationID string) ConsoleState {
	_, err := c.donations.UpdateStatus(ctx, donationID, models.StatusVerified)
	if err != nil {
		c.state.Error = httpclient.MessageFromError(err, "Update failed")
		return c.state
	}

	logger.Info("Donation verified", logger.String("donation_id", donationID))
	return c.Refresh(ctx)
}

// BeginEdit pre-fills the campaign form and switches it to update mode
func (c *Console) BeginEdit(campaign models.Campaign) CampaignForm {
	c.form = CampaignForm{
		EditingID:   campaign.ID,
		Title:       campaign.Title,
		Description: campaign.Description,
		GoalAmount:  campaign.GoalAmount,
		Deadline:    campaign.Deadline,
	}
	return c.form
}

// ResetForm clears the campaign form back to create mode
func (c *Console) ResetForm() {
	c.form = CampaignForm{}
}

// SaveCampaign creates or updates a campaign depending on the form
// mode, then re-fetches the dataset and resets the form
func (c *Console) SaveCampaign(ctx context.Context, form CampaignForm) ConsoleState {
	req := models.CampaignRequest{
		Title:       form.Title,
		Description: form.Description,
		GoalAmount:  form.GoalAmount,
		Deadline:    form.Deadline,
	}
	if err := c.validate.Struct(req); err != nil {
		c.state.Error = "Please fill in all campaign fields with a positive goal"
		return c.state
	}

	var err error
	if form.EditingID != "" {
		_, err = c.campaigns.Update(ctx, form.EditingID, req)
	} else {
		_, err = c.campaigns.Create(ctx, req)
	}
	if err != nil {
		c.state.Error = httpclient.MessageFromError(err, "Save failed")
		return c.state
	}

	c.ResetForm()
	return c.Refresh(ctx)
}

// DeleteCampaign removes a campaign after explicit confirmation, then
// re-fetches the dataset
func (c *Console) DeleteCampaign(ctx context.Context, campaignID string, confirmed bool) ConsoleState {
	if !confirmed {
		c.state.Error = fmt.Sprintf("Deleting campaign %s requires confirmation", campaignID)
		return c.state
	}

	if err := c.campaigns.Delete(ctx, campaignID); err != nil {
		c.state.Error = httpclient.MessageFromError(err, "Delete failed")
		return c.state
	}

	logger.Info("Campaign deleted", logger.String("campaign_id", campaignID))
	return c.Refresh(ctx)
}
