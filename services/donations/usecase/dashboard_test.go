package usecase

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	httpclient "github.com/saylanihub/zakatms/internal/pkg/http"
	"github.com/saylanihub/zakatms/internal/pkg/models"
	"github.com/saylanihub/zakatms/services/auth/session"
	"github.com/saylanihub/zakatms/services/donations/gateway"
	"github.com/saylanihub/zakatms/services/donations/receipt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDashboardFixture(t *testing.T, handler http.Handler) *DashboardScreen {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	store := session.NewStore(models.SessionConfig{
		FilePath: filepath.Join(t.TempDir(), "session.json"),
	})
	require.NoError(t, store.Rehydrate())
	require.NoError(t, store.Login(&models.User{ID: "u1", Name: "Ayesha Khan"}, "tok"))

	return NewDashboardScreen(
		gateway.NewClient(httpclient.NewTokenClient(server.URL, 0, store)),
		receipt.NewGenerator(models.ReceiptConfig{OutputDir: t.TempDir()}),
		store,
	)
}

func TestDashboardScreen_RefreshDerivesTotals(t *testing.T) {
	screen := newDashboardFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/donations/my-donations", r.URL.Path)
		json.NewEncoder(w).Encode([]map[string]interface{}{
			{"_id": "d1", "transactionId": "t1", "amount": 5000, "status": "Verified", "createdAt": "2025-05-01T00:00:00Z"},
			{"_id": "d2", "transactionId": "t2", "amount": 1500, "status": "Pending", "createdAt": "2025-06-01T00:00:00Z"},
		})
	}))

	state := screen.Refresh(context.Background())

	assert.Empty(t, state.Error)
	assert.Equal(t, 2, state.Count)
	assert.Equal(t, float64(6500), state.TotalAmount)
}

func TestDashboardScreen_RefreshError(t *testing.T) {
	screen := newDashboardFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message":"Database unavailable"}`))
	}))

	state := screen.Refresh(context.Background())
	assert.Equal(t, "Database unavailable", state.Error)
	assert.Zero(t, state.Count)
}

func TestDashboardScreen_DownloadReceipt(t *testing.T) {
	screen := newDashboardFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	donation := &models.Donation{
		ID:            "d1",
		TransactionID: "txn-re-dl",
		Amount:        5000,
		Type:          models.TypeZakat,
		Category:      models.CategoryGeneral,
		PaymentMethod: models.MethodCash,
		Status:        models.StatusVerified,
		CreatedAt:     mustParseTime(t, "2025-06-01T10:00:00Z"),
	}

	path, err := screen.DownloadReceipt(donation)
	require.NoError(t, err)
	assert.Equal(t, "Saylani_Receipt_TXN-RE-DL.pdf", filepath.Base(path))
}

func mustParseTime(t *testing.T, s string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, s)
	require.NoError(t, err)
	return parsed
}
