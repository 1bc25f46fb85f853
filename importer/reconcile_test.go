package importer

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"ClaimTrack/models"
)

// memStore is an in-memory ClaimStore used by the importer tests; it
// mimics the store's touch-on-save invariant by refreshing LastUpdated
// on every create and update.
type memStore struct {
	nextID  uint
	claims  []*models.Claim
	details map[uint]*models.ClaimDetail
	writes  int
}

func newMemStore() *memStore {
	return &memStore{details: make(map[uint]*models.ClaimDetail)}
}

func (m *memStore) GetByClaimID(_ context.Context, claimID string) (*models.Claim, error) {
	for _, c := range m.claims {
		if c.ClaimID == claimID {
			return c, nil
		}
	}
	return nil, nil
}

func (m *memStore) Create(_ context.Context, claim *models.Claim) error {
	m.nextID++
	claim.ID = m.nextID
	claim.LastUpdated = time.Now()
	m.claims = append(m.claims, claim)
	m.writes++
	return nil
}

func (m *memStore) Update(_ context.Context, claim *models.Claim) error {
	claim.LastUpdated = time.Now()
	m.writes++
	return nil
}

func (m *memStore) AllClaims(_ context.Context) ([]models.Claim, error) {
	out := make([]models.Claim, 0, len(m.claims))
	for _, c := range m.claims {
		out = append(out, *c)
	}
	return out, nil
}

func (m *memStore) UpsertDetail(_ context.Context, claimRef uint, cptCodes, denialReason string) error {
	m.details[claimRef] = &models.ClaimDetail{ClaimRef: claimRef, CPTCodes: cptCodes, DenialReason: denialReason}
	m.writes++
	return nil
}

func (m *memStore) DeleteAllDetails(_ context.Context) error {
	m.details = make(map[uint]*models.ClaimDetail)
	m.writes++
	return nil
}

func (m *memStore) DeleteAllClaims(_ context.Context) error {
	m.claims = nil
	m.writes++
	return nil
}

func listRowsFixture() []Row {
	return []Row{
		NormalizeRow(map[string]string{
			"claim_id": "A1", "patient_name": "Bob Lee", "payer": "Acme",
			"amount": "100", "paid_amount": "80", "status": "Paid", "service_date": "2020-01-02",
		}),
		NormalizeRow(map[string]string{
			"claim_id": "A2", "patient_name": "Sue Ray", "payer": "Umbrella",
			"amount": "50", "paid_amount": "50", "status": "Paid", "service_date": "2020-02-03",
		}),
	}
}

func TestReconcileCreatesClaims(t *testing.T) {
	store := newMemStore()
	counts, err := NewEngine(store).Run(context.Background(), listRowsFixture(), nil, ModeAppend)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if counts.Created != 2 || counts.Updated != 0 || counts.Linked != 0 {
		t.Fatalf("counts = %+v, want {2 0 0}", counts)
	}
	if len(store.claims) != 2 {
		t.Fatalf("expected 2 stored claims, got %d", len(store.claims))
	}
	a1 := store.claims[0]
	if a1.ClaimID != "A1" || a1.PatientName != "Bob Lee" || a1.Payer != "Acme" {
		t.Errorf("unexpected claim: %+v", a1)
	}
	if !a1.Amount.Equal(decimal.RequireFromString("100")) || !a1.PaidAmount.Equal(decimal.RequireFromString("80")) {
		t.Errorf("unexpected amounts: %s / %s", a1.Amount, a1.PaidAmount)
	}
	if a1.ServiceDate == nil || !a1.ServiceDate.Equal(time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected service date: %v", a1.ServiceDate)
	}
	if a1.Flagged {
		t.Error("import must never set flagged")
	}
}

// Re-running the same import must write nothing: no creates, no updates.
func TestReconcileIdempotent(t *testing.T) {
	store := newMemStore()
	engine := NewEngine(store)
	ctx := context.Background()
	if _, err := engine.Run(ctx, listRowsFixture(), nil, ModeAppend); err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	writesAfterFirst := store.writes

	counts, err := engine.Run(ctx, listRowsFixture(), nil, ModeAppend)
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}
	if counts.Created != 0 || counts.Updated != 0 {
		t.Errorf("second run counts = %+v, want zero created/updated", counts)
	}
	if store.writes != writesAfterFirst {
		t.Errorf("second run performed %d extra writes", store.writes-writesAfterFirst)
	}
}

func TestReconcileUpdatesChangedFields(t *testing.T) {
	store := newMemStore()
	engine := NewEngine(store)
	ctx := context.Background()
	if _, err := engine.Run(ctx, listRowsFixture(), nil, ModeAppend); err != nil {
		t.Fatalf("first run failed: %v", err)
	}

	changed := listRowsFixture()
	changed[0]["paidamount"] = "90"
	counts, err := engine.Run(ctx, changed, nil, ModeAppend)
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}
	if counts.Created != 0 || counts.Updated != 1 {
		t.Errorf("counts = %+v, want {0 1 0}", counts)
	}
	if !store.claims[0].PaidAmount.Equal(decimal.RequireFromString("90")) {
		t.Errorf("paid amount not updated: %s", store.claims[0].PaidAmount)
	}
}

func TestReconcileSkipsRowsWithoutClaimID(t *testing.T) {
	store := newMemStore()
	rows := []Row{NormalizeRow(map[string]string{"patient_name": "No ID", "amount": "10"})}
	counts, err := NewEngine(store).Run(context.Background(), rows, nil, ModeAppend)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if counts.Created != 0 || counts.Updated != 0 || len(store.claims) != 0 {
		t.Errorf("identifier-less row must be skipped entirely: %+v", counts)
	}
}

func TestReconcileOverwriteClearsStore(t *testing.T) {
	store := newMemStore()
	engine := NewEngine(store)
	ctx := context.Background()
	if _, err := engine.Run(ctx, listRowsFixture(), nil, ModeAppend); err != nil {
		t.Fatalf("seed run failed: %v", err)
	}

	replacement := []Row{NormalizeRow(map[string]string{"claim_id": "B1", "amount": "70"})}
	counts, err := engine.Run(ctx, replacement, nil, ModeOverwrite)
	if err != nil {
		t.Fatalf("overwrite run failed: %v", err)
	}
	if counts.Created != 1 {
		t.Errorf("counts = %+v, want 1 created", counts)
	}
	if len(store.claims) != 1 || store.claims[0].ClaimID != "B1" {
		t.Errorf("store must contain exactly the new source records: %+v", store.claims)
	}
	if len(store.details) != 0 {
		t.Errorf("details must be cleared before claims: %v", store.details)
	}
}

func TestReconcileLinksDetails(t *testing.T) {
	store := newMemStore()
	detailRows := []Row{
		NormalizeRow(map[string]string{"claim_id": "A1", "cpt_codes": "99204; 82947", "denial_reason": "bundled"}),
		NormalizeRow(map[string]string{"claim_id": "GHOST", "cpt_codes": "11111"}),
	}
	counts, err := NewEngine(store).Run(context.Background(), listRowsFixture(), detailRows, ModeAppend)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if counts.Linked != 1 {
		t.Errorf("linked = %d, want 1 (unknown claim rows are skipped)", counts.Linked)
	}
	detail, ok := store.details[store.claims[0].ID]
	if !ok {
		t.Fatal("expected detail linked to A1")
	}
	if detail.CPTCodes != "99204,82947" {
		t.Errorf("cpt codes not normalized: %q", detail.CPTCodes)
	}
	if detail.DenialReason != "bundled" {
		t.Errorf("denial reason = %q", detail.DenialReason)
	}
}

// linked counts every attempt against a known claim, including repeats
// writing identical values.
func TestReconcileLinkedCountsRepeats(t *testing.T) {
	store := newMemStore()
	detailRows := []Row{
		NormalizeRow(map[string]string{"claim_id": "A1", "cpt_codes": "99204"}),
		NormalizeRow(map[string]string{"claim_id": "A1", "cpt_codes": "99204"}),
	}
	counts, err := NewEngine(store).Run(context.Background(), listRowsFixture(), detailRows, ModeAppend)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if counts.Linked != 2 {
		t.Errorf("linked = %d, want 2", counts.Linked)
	}
}

func TestParseMode(t *testing.T) {
	if m, ok := ParseMode(""); !ok || m != ModeAppend {
		t.Errorf("blank mode should default to append, got %v %v", m, ok)
	}
	if _, ok := ParseMode("replace"); ok {
		t.Error("unknown mode must be rejected")
	}
}
