package utils

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"ClaimTrack/config"
	"ClaimTrack/models"
)

func TestBuildFlaggedDigestEmpty(t *testing.T) {
	body := BuildFlaggedDigest(nil)
	if !strings.Contains(body, "(0 claims)") {
		t.Errorf("header missing count: %q", body)
	}
	if !strings.Contains(body, "No claims are currently flagged.") {
		t.Errorf("empty digest body: %q", body)
	}
}

func TestBuildFlaggedDigestGap(t *testing.T) {
	claims := []models.Claim{
		{
			ClaimID:     "A1",
			PatientName: "Bob Lee",
			Payer:       "Acme",
			Amount:      decimal.RequireFromString("100"),
			PaidAmount:  decimal.RequireFromString("80.5"),
			Status:      "Denied",
		},
	}
	body := BuildFlaggedDigest(claims)
	if !strings.Contains(body, "billed 100.00 paid 80.50 (gap 19.50)") {
		t.Errorf("gap line wrong: %q", body)
	}
	if !strings.Contains(body, "A1 | Bob Lee | Acme") {
		t.Errorf("claim line missing: %q", body)
	}
}

func TestSendFlaggedDigestRequiresConfig(t *testing.T) {
	err := SendFlaggedDigest(config.SMTPConfig{}, nil)
	if err == nil {
		t.Fatal("expected error for incomplete SMTP configuration")
	}
}
