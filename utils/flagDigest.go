package utils

import (
	"ClaimTrack/config"
	"ClaimTrack/models"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"
)

// BuildFlaggedDigest renders the flagged-claims list as a plain-text
// report, one claim per line with the billed/paid gap.
func BuildFlaggedDigest(claims []models.Claim) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Flagged claims review digest (%d claims)\n\n", len(claims))
	if len(claims) == 0 {
		b.WriteString("No claims are currently flagged.\n")
		return b.String()
	}
	for _, c := range claims {
		gap := c.Amount.Sub(c.PaidAmount)
		fmt.Fprintf(&b, "%s | %s | %s | billed %s paid %s (gap %s) | %s\n",
			c.ClaimID, c.PatientName, c.Payer,
			c.Amount.StringFixed(2), c.PaidAmount.StringFixed(2), gap.StringFixed(2),
			c.Status)
	}
	return b.String()
}

// SendFlaggedDigest emails the digest to the configured recipient.
func SendFlaggedDigest(smtp config.SMTPConfig, claims []models.Claim) error {
	if smtp.Host == "" || smtp.From == "" || smtp.DigestTo == "" {
		return errors.New("SMTP digest configuration is incomplete")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", smtp.From)
	m.SetHeader("To", smtp.DigestTo)
	m.SetHeader("Subject", fmt.Sprintf("Flagged claims digest: %d claims awaiting review", len(claims)))
	m.SetBody("text/plain", BuildFlaggedDigest(claims))

	d := gomail.NewDialer(smtp.Host, smtp.Port, smtp.Username, smtp.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send digest email: %w", err)
	}
	return nil
}
