// Package receipt renders donation receipts as PDF documents. Output
// is fully determined by the donation record and donor name: the
// document's creation date is pinned to the donation timestamp so
// identical inputs produce byte-identical files.
package receipt

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/saylanihub/zakatms/internal/pkg/currency"
	"github.com/saylanihub/zakatms/internal/pkg/logger"
	"github.com/saylanihub/zakatms/internal/pkg/models"
)

// FallbackCampaignTitle is printed when a donation has no campaign
const FallbackCampaignTitle = "General Relief Fund"

// Page geometry (A4 portrait, millimetres)
const (
	pageWidth  = 210.0
	centerX    = pageWidth / 2
	rightEdgeX = 190.0

	summaryStartY = 140.0
	summaryRowGap = 10.0
)

// Brand palette
var (
	emerald = [3]int{16, 185, 129}
	gold    = [3]int{217, 119, 6}
	lightBg = [3]int{240, 253, 244}
)

// Generate renders the receipt for a donation. It fails before
// emitting anything when a required field is missing; it never
// produces a partial document.
func Generate(donation *models.Donation, donorName string) ([]byte, error) {
	if err := validate(donation, donorName); err != nil {
		return nil, err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	// Both info-dictionary dates are emitted unconditionally; leaving
	// the modification date unset would stamp the wall clock into the
	// output
	pdf.SetCreationDate(donation.CreatedAt.UTC())
	pdf.SetModificationDate(donation.CreatedAt.UTC())
	pdf.AddPage()

	// Header band with accent rule
	pdf.SetFillColor(emerald[0], emerald[1], emerald[2])
	pdf.Rect(0, 0, pageWidth, 50, "F")
	pdf.SetFillColor(gold[0], gold[1], gold[2])
	pdf.Rect(0, 50, pageWidth, 2, "F")

	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 28)
	textCentered(pdf, 25, "DONATION RECEIPT")
	pdf.SetFont("Helvetica", "", 12)
	textCentered(pdf, 35, "Saylani Zakat & Donation Management System")
	pdf.SetFont("Helvetica", "", 10)
	textCentered(pdf, 42, "Transforming Lives Through Your Charity")

	// Receipt metadata, right aligned
	pdf.SetTextColor(40, 40, 40)
	pdf.SetFont("Helvetica", "B", 10)
	textRightAligned(pdf, 65, fmt.Sprintf("Receipt No: #%s", strings.ToUpper(donation.TransactionID)))
	pdf.SetFont("Helvetica", "", 10)
	textRightAligned(pdf, 72, fmt.Sprintf("Date of Issue: %s", donation.CreatedAt.Format("2 January 2006")))

	// Donor details panel
	pdf.SetFillColor(lightBg[0], lightBg[1], lightBg[2])
	pdf.RoundedRect(20, 85, 170, 25, 3, "1234", "F")

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(emerald[0], emerald[1], emerald[2])
	pdf.Text(30, 95, "DONOR DETAILS")

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Text(30, 103, fmt.Sprintf("Name: %s", donorName))

	// Contribution summary
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(emerald[0], emerald[1], emerald[2])
	pdf.Text(20, 125, "CONTRIBUTION SUMMARY")

	pdf.SetDrawColor(emerald[0], emerald[1], emerald[2])
	pdf.SetLineWidth(0.5)
	pdf.Line(20, 130, 190, 130)

	pdf.SetTextColor(60, 60, 60)
	pdf.SetFont("Helvetica", "", 11)

	rows := [][2]string{
		{"Donation Type:", string(donation.Type)},
		{"Category:", string(donation.Category)},
		{"Payment Method:", string(donation.PaymentMethod)},
		{"Current Status:", string(donation.Status)},
		{"Campaign:", campaignLine(donation)},
	}
	for i, row := range rows {
		y := summaryStartY + float64(i)*summaryRowGap
		pdf.SetFont("Helvetica", "B", 11)
		pdf.Text(25, y, row[0])
		pdf.SetFont("Helvetica", "", 11)
		pdf.Text(80, y, row[1])
	}

	// Total amount panel
	pdf.SetFillColor(emerald[0], emerald[1], emerald[2])
	pdf.RoundedRect(20, 200, 170, 35, 4, "1234", "F")

	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "", 14)
	textCentered(pdf, 212, "Total Contribution Amount")
	pdf.SetFont("Helvetica", "B", 22)
	textCentered(pdf, 225, currency.FormatPKR(donation.Amount))

	// Blessing and disclaimer
	pdf.SetTextColor(100, 100, 100)
	pdf.SetFont("Helvetica", "I", 11)
	textCentered(pdf, 255, `"May Allah accept your generous contribution and bless you abundantly."`)
	pdf.SetFont("Helvetica", "", 9)
	textCentered(pdf, 265, "This is a digitally signed document and does not require a physical signature.")

	// Footer
	pdf.SetDrawColor(gold[0], gold[1], gold[2])
	pdf.SetLineWidth(2)
	pdf.Line(70, 275, 140, 275)

	pdf.SetFont("Helvetica", "", 8)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	textCentered(pdf, 285, tr("Saylani Mass IT Training • Karachi, Pakistan • info@saylani.org"))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render receipt: %w", err)
	}
	return buf.Bytes(), nil
}

// FileName returns the download name for a donation's receipt
func FileName(transactionID string) string {
	return fmt.Sprintf("Saylani_Receipt_%s.pdf", strings.ToUpper(transactionID))
}

// Generator renders receipts and writes them to the configured
// output directory
type Generator struct {
	outputDir string
}

// NewGenerator creates a receipt generator from config
func NewGenerator(cfg models.ReceiptConfig) *Generator {
	dir := cfg.OutputDir
	if dir == "" {
		dir = "."
	}
	return &Generator{outputDir: dir}
}

// Save renders the receipt and writes it to disk, returning the file
// path
func (g *Generator) Save(donation *models.Donation, donorName string) (string, error) {
	data, err := Generate(donation, donorName)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(g.outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create receipt directory: %w", err)
	}

	path := filepath.Join(g.outputDir, FileName(donation.TransactionID))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write receipt: %w", err)
	}

	logger.Info("Receipt saved",
		logger.String("transaction_id", donation.TransactionID),
		logger.String("path", path))
	return path, nil
}

func validate(donation *models.Donation, donorName string) error {
	if donation == nil {
		return fmt.Errorf("receipt: donation is required")
	}
	if donation.TransactionID == "" {
		return fmt.Errorf("receipt: donation has no transaction id")
	}
	if donation.CreatedAt.IsZero() {
		return fmt.Errorf("receipt: donation has no creation timestamp")
	}
	if donation.Amount <= 0 {
		return fmt.Errorf("receipt: donation amount must be positive")
	}
	if donorName == "" {
		return fmt.Errorf("receipt: donor name is required")
	}
	return nil
}

func campaignLine(donation *models.Donation) string {
	if donation.Campaign != nil && donation.Campaign.Title != "" {
		return donation.Campaign.Title
	}
	return FallbackCampaignTitle
}

func textCentered(pdf *fpdf.Fpdf, y float64, s string) {
	pdf.Text(centerX-pdf.GetStringWidth(s)/2, y, s)
}

func textRightAligned(pdf *fpdf.Fpdf, y float64, s string) {
	pdf.Text(rightEdgeX-pdf.GetStringWidth(s), y, s)
}
