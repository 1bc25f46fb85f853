package importer

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/language"
	"golang.org/x/text/transform"

	"ClaimTrack/models"
)

// simpleDateLayouts is the basic pathway's own priority list; unlike the
// rich importer it accepts two-digit years and a day-first hyphenated
// form instead of textual months.
var simpleDateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"01/02/06",
	"02-01-2006",
}

// defaultStatus is applied by the simple importer when a row carries no
// status at all.
const defaultStatus = "Denied"

// SimpleImporter is the basic single-file ingestion path: comma-separated
// CSV only, exact header aliases, no detail linking, no dry-run or
// overwrite. It exists alongside the Orchestrator deliberately; the two
// pathways keep distinct alias lists and defaulting rules.
type SimpleImporter struct {
	store ClaimStore
}

func NewSimpleImporter(store ClaimStore) *SimpleImporter {
	return &SimpleImporter{store: store}
}

// Run imports a claims CSV, upserting by claim identifier. Existing
// claims are rewritten and counted as updated even when nothing changed.
func (s *SimpleImporter) Run(ctx context.Context, path string) (created, updated int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(transform.NewReader(f, unicode.UTF8BOM.NewDecoder()))
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return 0, 0, nil
	}
	if err != nil {
		return 0, 0, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	title := cases.Title(language.English)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return created, updated, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		row := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(record) {
				row[name] = record[i]
			}
		}

		claimID := strings.TrimSpace(rawPick(row, "claim_id", "id", "Claim ID"))
		if claimID == "" {
			continue
		}
		patient := strings.TrimSpace(rawPick(row, "patient_name", "Patient", "patient"))
		payer := strings.TrimSpace(rawPick(row, "insurer_name", "Payer", "Insurer", "payer"))
		billed := ParseCurrency(rawPick(row, "billed_amount", "Billed", "amount"))
		paid := ParseCurrency(rawPick(row, "paid_amount", "Paid"))
		status := strings.TrimSpace(rawPick(row, "status", "Status"))
		if status == "" {
			status = defaultStatus
		}
		status = title.String(strings.ToLower(status))
		service := ParseDate(rawPick(row, "discharge_date", "Service date", "service_date"), simpleDateLayouts)

		existing, err := s.store.GetByClaimID(ctx, claimID)
		if err != nil {
			return created, updated, err
		}
		if existing == nil {
			claim := &models.Claim{
				ClaimID:     claimID,
				PatientName: patient,
				Payer:       payer,
				Amount:      billed,
				PaidAmount:  paid,
				Status:      status,
				ServiceDate: service,
			}
			if err := s.store.Create(ctx, claim); err != nil {
				return created, updated, err
			}
			created++
			continue
		}

		existing.PatientName = patient
		existing.Payer = payer
		existing.Amount = billed
		existing.PaidAmount = paid
		existing.Status = status
		existing.ServiceDate = service
		if err := s.store.Update(ctx, existing); err != nil {
			return created, updated, err
		}
		updated++
	}
	return created, updated, nil
}

// rawPick matches exact header names, unlike Pick which expects
// normalized keys.
func rawPick(row map[string]string, keys ...string) string {
	for _, k := range keys {
		if v, ok := row[k]; ok && strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
