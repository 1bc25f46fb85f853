package importer

import (
	"context"
	"strings"
	"time"

	"ClaimTrack/models"
)

// Mode selects how an import treats existing records.
type Mode string

const (
	// ModeAppend upserts into whatever is already stored.
	ModeAppend Mode = "append"
	// ModeOverwrite clears all claim details and claims before importing.
	ModeOverwrite Mode = "overwrite"
)

// ParseMode validates a mode string, defaulting blank input to append.
func ParseMode(s string) (Mode, bool) {
	switch Mode(s) {
	case "":
		return ModeAppend, true
	case ModeAppend, ModeOverwrite:
		return Mode(s), true
	default:
		return "", false
	}
}

// Counts reports what a reconciliation run did.
type Counts struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
	Linked  int `json:"linked"`
}

// ClaimStore is the persistence surface the reconciliation engine writes
// through. Implementations must refresh last_updated on every create and
// update as part of the same operation.
type ClaimStore interface {
	// GetByClaimID returns the claim with the given natural key, or nil
	// when none exists.
	GetByClaimID(ctx context.Context, claimID string) (*models.Claim, error)
	Create(ctx context.Context, claim *models.Claim) error
	Update(ctx context.Context, claim *models.Claim) error
	// AllClaims returns every stored claim; only ID and ClaimID need to
	// be populated.
	AllClaims(ctx context.Context) ([]models.Claim, error)
	// UpsertDetail creates or wholesale-replaces the detail record owned
	// by the given claim.
	UpsertDetail(ctx context.Context, claimRef uint, cptCodes, denialReason string) error
	DeleteAllDetails(ctx context.Context) error
	DeleteAllClaims(ctx context.Context) error
}

// Alias lists consulted in order; the first non-blank value wins.
var (
	aliasClaimID     = []string{"claimid", "id", "claim"}
	aliasPatientName = []string{"patientname", "patient", "fullname"}
	aliasPayer       = []string{"payer", "insurername", "insurer"}
	aliasBilled      = []string{"amount", "billedamount", "billed"}
	aliasPaid        = []string{"paidamount", "paid"}
	aliasStatus      = []string{"status"}
	aliasServiceDate = []string{"servicedate", "dischargedate", "dischargedon"}
	aliasCPTCodes    = []string{"cptcodes", "cpt"}
	aliasDenial      = []string{"denialreason", "reason"}
)

// Engine reconciles normalized rows against the claim store.
type Engine struct {
	store ClaimStore
}

func NewEngine(store ClaimStore) *Engine {
	return &Engine{store: store}
}

// Run upserts the claim list rows and links any detail rows, returning
// created/updated/linked counts. In overwrite mode all existing details
// and claims are deleted first, details before claims to respect
// ownership. Rows without a resolvable claim identifier are skipped
// without touching any counter.
func (e *Engine) Run(ctx context.Context, listRows, detailRows []Row, mode Mode) (Counts, error) {
	var counts Counts

	if mode == ModeOverwrite {
		if err := e.store.DeleteAllDetails(ctx); err != nil {
			return counts, err
		}
		if err := e.store.DeleteAllClaims(ctx); err != nil {
			return counts, err
		}
	}

	for _, row := range listRows {
		claimID := strings.TrimSpace(Pick(row, aliasClaimID...))
		if claimID == "" {
			continue
		}

		patient := Pick(row, aliasPatientName...)
		payer := Pick(row, aliasPayer...)
		billed := ParseCurrency(Pick(row, aliasBilled...))
		paid := ParseCurrency(Pick(row, aliasPaid...))
		status := Pick(row, aliasStatus...)
		service := ParseDate(Pick(row, aliasServiceDate...), claimDateLayouts)

		existing, err := e.store.GetByClaimID(ctx, claimID)
		if err != nil {
			return counts, err
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
			if err := e.store.Create(ctx, claim); err != nil {
				return counts, err
			}
			counts.Created++
			continue
		}

		changed := false
		if existing.PatientName != patient {
			existing.PatientName = patient
			changed = true
		}
		if existing.Payer != payer {
			existing.Payer = payer
			changed = true
		}
		if !existing.Amount.Equal(billed) {
			existing.Amount = billed
			changed = true
		}
		if !existing.PaidAmount.Equal(paid) {
			existing.PaidAmount = paid
			changed = true
		}
		if existing.Status != status {
			existing.Status = status
			changed = true
		}
		if !sameDate(existing.ServiceDate, service) {
			existing.ServiceDate = service
			changed = true
		}
		if changed {
			if err := e.store.Update(ctx, existing); err != nil {
				return counts, err
			}
			counts.Updated++
		}
	}

	if len(detailRows) > 0 {
		if err := e.linkDetails(ctx, detailRows, &counts); err != nil {
			return counts, err
		}
	}

	return counts, nil
}

// linkDetails upserts detail rows against a single snapshot of existing
// claim identifiers. Rows naming unknown claims are skipped silently;
// linked counts every row attempted against a known claim whether or not
// its values changed.
func (e *Engine) linkDetails(ctx context.Context, detailRows []Row, counts *Counts) error {
	claims, err := e.store.AllClaims(ctx)
	if err != nil {
		return err
	}
	byClaimID := make(map[string]uint, len(claims))
	for _, c := range claims {
		byClaimID[c.ClaimID] = c.ID
	}

	for _, row := range detailRows {
		claimID := strings.TrimSpace(Pick(row, "claimid", "id"))
		if claimID == "" {
			continue
		}
		ref, ok := byClaimID[claimID]
		if !ok {
			continue
		}
		cpt := NormalizeCPT(Pick(row, aliasCPTCodes...))
		denial := Pick(row, aliasDenial...)
		if err := e.store.UpsertDetail(ctx, ref, cpt, denial); err != nil {
			return err
		}
		counts.Linked++
	}
	return nil
}

func sameDate(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}
