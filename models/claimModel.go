package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Claim model. ClaimID is the natural key used by the importers to
// reconcile rows against existing records; it is indexed but not unique
// at the storage level.
type Claim struct {
	ID          uint            `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	ClaimID     string          `gorm:"column:claim_id;size:32;not null;index" json:"claim_id"`
	PatientName string          `gorm:"column:patient_name;size:128;index" json:"patient_name"`
	Payer       string          `gorm:"column:payer;size:128;index" json:"payer"`
	Amount      decimal.Decimal `gorm:"column:amount;type:numeric(12,2)" json:"amount"`
	PaidAmount  decimal.Decimal `gorm:"column:paid_amount;type:numeric(12,2)" json:"paid_amount"`
	Status      string          `gorm:"column:status;size:32;index;index:idx_claim_status_lastupd,priority:1" json:"status"`
	ServiceDate *time.Time      `gorm:"column:service_date;type:date;index" json:"service_date"`
	LastUpdated time.Time       `gorm:"column:last_updated;autoUpdateTime;index;index:idx_claim_status_lastupd,priority:2;index:idx_claim_flag_lastupd,priority:2" json:"last_updated"`
	Flagged     bool            `gorm:"column:flagged;not null;default:false;index:idx_claim_flag_lastupd,priority:1" json:"flagged"`
	Detail      *ClaimDetail    `gorm:"foreignKey:ClaimRef;references:ID" json:"detail,omitempty"`
	Notes       []ClaimNote     `gorm:"foreignKey:ClaimRef;references:ID" json:"-"`
}

func (Claim) TableName() string {
	return "claim"
}

// ClaimDetail model, one-to-one extension of a Claim. CPTCodes holds a
// comma-separated procedure code list; the importer replaces the whole
// record rather than diffing individual fields.
type ClaimDetail struct {
	ID           uint   `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	ClaimRef     uint   `gorm:"column:claim_id;not null;uniqueIndex" json:"claim_id"`
	CPTCodes     string `gorm:"column:cpt_codes;type:text" json:"cpt_codes"`
	DenialReason string `gorm:"column:denial_reason;type:text" json:"denial_reason"`
	Claim        Claim  `gorm:"foreignKey:ClaimRef;references:ID" json:"-"`
}

func (ClaimDetail) TableName() string {
	return "claim_detail"
}

// CPTList splits the stored code string into individual codes, tolerating
// semicolon-delimited input and dropping blank tokens.
func (d *ClaimDetail) CPTList() []string {
	parts := strings.Split(strings.ReplaceAll(d.CPTCodes, ";", ","), ",")
	codes := make([]string, 0, len(parts))
	for _, p := range parts {
		if c := strings.TrimSpace(p); c != "" {
			codes = append(codes, c)
		}
	}
	return codes
}

// ClaimNote model, append-only annotation on a Claim. AuthorID is nil for
// anonymous notes and never reassigned after creation.
type ClaimNote struct {
	ID        uint      `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	ClaimRef  uint      `gorm:"column:claim_id;not null;index" json:"claim_id"`
	AuthorID  *int64    `gorm:"column:author_id;index" json:"author_id"`
	Body      string    `gorm:"column:body;type:text;not null" json:"body"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime;index" json:"created_at"`
	Claim     Claim     `gorm:"foreignKey:ClaimRef;references:ID" json:"-"`
	Author    *User     `gorm:"foreignKey:AuthorID;references:ID" json:"author,omitempty"`
}

func (ClaimNote) TableName() string {
	return "claim_note"
}
