package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/saylanihub/zakatms/internal/pkg/config"
	httpclient "github.com/saylanihub/zakatms/internal/pkg/http"
	"github.com/saylanihub/zakatms/internal/pkg/logger"
	"github.com/saylanihub/zakatms/internal/pkg/models"
	"github.com/saylanihub/zakatms/internal/pkg/payment"
	authgw "github.com/saylanihub/zakatms/services/auth/gateway"
	"github.com/saylanihub/zakatms/services/auth/guard"
	"github.com/saylanihub/zakatms/services/auth/session"
	campaigngw "github.com/saylanihub/zakatms/services/campaigns/gateway"
	donationgw "github.com/saylanihub/zakatms/services/donations/gateway"
	"github.com/saylanihub/zakatms/services/donations/receipt"
)

var (
	configPath string

	app struct {
		cfg       *models.Config
		log       *logger.ZapLogger
		session   *session.Store
		auth      *authgw.Client
		campaigns *campaigngw.Client
		donations *donationgw.Client
		receipts  *receipt.Generator
		charger   payment.CardCharger
	}
)

var rootCmd = &cobra.Command{
	Use:   "zakatms",
	Short: "Saylani Zakat & Donation Management client",
	Long: `Command-line client for the Saylani Zakat & Donation Management
platform: browse campaigns, make donations, download receipts, and run
the admin console.`,
	SilenceUsage:      true,
	PersistentPreRunE: initApp,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if app.log != nil {
			_ = app.log.Close()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", ".env", "path to the env config file")
}

// initApp wires config, logger, session and API clients before any
// command runs
func initApp(cmd *cobra.Command, args []string) error {
	app.cfg = config.InitConfig(configPath)

	log, err := logger.NewZapLogger(app.cfg.Logger)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	app.log = log
	logger.SetGlobalLogger(log)

	app.session = session.NewStore(app.cfg.Session)
	if err := app.session.Rehydrate(); err != nil {
		return fmt.Errorf("failed to restore session: %w", err)
	}

	client := httpclient.NewTokenClient(
		app.cfg.API.BaseURL,
		time.Duration(app.cfg.API.Timeout)*time.Second,
		app.session,
	)
	app.auth = authgw.NewClient(client)
	app.campaigns = campaigngw.NewClient(client)
	app.donations = donationgw.NewClient(client)
	app.receipts = receipt.NewGenerator(app.cfg.Receipt)
	if app.cfg.Payment.PublicKey != "" {
		app.charger = payment.NewStripeCharger(app.cfg.Payment)
	}

	return nil
}

// requireAccess resolves the route guard for a protected command and
// turns a redirect into a user-facing error
func requireAccess(decision guard.Decision) error {
	if decision.Loading {
		return fmt.Errorf("session is still loading, try again")
	}
	switch decision.RedirectTo {
	case guard.RouteLogin:
		return fmt.Errorf("please sign in first: zakatms login")
	case guard.RouteDashboard:
		return fmt.Errorf("admin access required; see your dashboard instead: zakatms dashboard")
	}
	return nil
}
