package importer

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestSimpleImporterCreates(t *testing.T) {
	store := newMemStore()
	path := writeFile(t, "claims.csv",
		"claim_id,patient_name,insurer_name,billed_amount,paid_amount,status,discharge_date\n"+
			"S1,Ana Diaz,Acme Health,250,200,paid,05-04-2021\n")
	created, updated, err := NewSimpleImporter(store).Run(context.Background(), path)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if created != 1 || updated != 0 {
		t.Fatalf("created=%d updated=%d, want 1/0", created, updated)
	}
	c := store.claims[0]
	if c.Status != "Paid" {
		t.Errorf("status not title-cased: %q", c.Status)
	}
	if !c.Amount.Equal(decimal.RequireFromString("250")) {
		t.Errorf("amount = %s", c.Amount)
	}
	want := time.Date(2021, time.April, 5, 0, 0, 0, 0, time.UTC)
	if c.ServiceDate == nil || !c.ServiceDate.Equal(want) {
		t.Errorf("service date = %v, want %s", c.ServiceDate, want)
	}
}

func TestSimpleImporterDefaultStatus(t *testing.T) {
	store := newMemStore()
	path := writeFile(t, "claims.csv", "claim_id,patient_name\nS2,Bob Lee\n")
	if _, _, err := NewSimpleImporter(store).Run(context.Background(), path); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if store.claims[0].Status != "Denied" {
		t.Errorf("missing status must default to Denied, got %q", store.claims[0].Status)
	}
}

func TestSimpleImporterTitleCasesMultiWordStatus(t *testing.T) {
	store := newMemStore()
	path := writeFile(t, "claims.csv", "claim_id,status\nS3,in review\n")
	if _, _, err := NewSimpleImporter(store).Run(context.Background(), path); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if store.claims[0].Status != "In Review" {
		t.Errorf("status = %q, want In Review", store.claims[0].Status)
	}
}

// Unlike the bulk importer, existing rows are rewritten and counted as
// updated even when every field is identical.
func TestSimpleImporterAlwaysCountsUpdates(t *testing.T) {
	store := newMemStore()
	path := writeFile(t, "claims.csv", "claim_id,patient_name,status\nS4,Sue Ray,Paid\n")
	ctx := context.Background()
	simple := NewSimpleImporter(store)
	if _, _, err := simple.Run(ctx, path); err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	created, updated, err := simple.Run(ctx, path)
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}
	if created != 0 || updated != 1 {
		t.Errorf("created=%d updated=%d, want 0/1", created, updated)
	}
}

func TestSimpleImporterSkipsBlankIDs(t *testing.T) {
	store := newMemStore()
	path := writeFile(t, "claims.csv", "claim_id,patient_name\n,Ghost Row\nS5,Real Row\n")
	created, updated, err := NewSimpleImporter(store).Run(context.Background(), path)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if created != 1 || updated != 0 {
		t.Errorf("created=%d updated=%d, want 1/0", created, updated)
	}
}

func TestSimpleImporterDisplayHeaders(t *testing.T) {
	store := newMemStore()
	path := writeFile(t, "claims.csv",
		"Claim ID,Patient,Payer,Billed,Paid,Status,Service date\n"+
			"S6,Lena Ortiz,Umbrella,99.50,0,denied,2021-07-19\n")
	if _, _, err := NewSimpleImporter(store).Run(context.Background(), path); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	c := store.claims[0]
	if c.PatientName != "Lena Ortiz" || c.Payer != "Umbrella" || c.Status != "Denied" {
		t.Errorf("display headers not resolved: %+v", c)
	}
	if !c.Amount.Equal(decimal.RequireFromString("99.5")) {
		t.Errorf("amount = %s", c.Amount)
	}
}
