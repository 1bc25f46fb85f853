package importer

import "testing"

func TestNormalizeKey(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Claim ID", "claimid"},
		{"claim_id", "claimid"},
		{"CLAIM-ID", "claimid"},
		{" discharge_date ", "dischargedate"},
		{"Service date", "servicedate"},
		{"CPT Codes", "cptcodes"},
		{"", ""},
		{"___", ""},
	}
	for _, c := range cases {
		if got := NormalizeKey(c.in); got != c.want {
			t.Errorf("NormalizeKey(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeRowLastKeyWins(t *testing.T) {
	row := NormalizeRow(map[string]string{"amount": "10"})
	if row["amount"] != "10" {
		t.Fatalf("expected amount 10, got %q", row["amount"])
	}
	if len(row) != 1 {
		t.Fatalf("expected 1 key, got %d", len(row))
	}
}

func TestPickFirstNonBlankWins(t *testing.T) {
	row := Row{"claimid": "  ", "id": "A7", "claim": "B9"}
	if got := Pick(row, "claimid", "id", "claim"); got != "A7" {
		t.Errorf("expected A7, got %q", got)
	}
	if got := Pick(row, "missing", "alsomissing"); got != "" {
		t.Errorf("expected empty default, got %q", got)
	}
}

// A row exported with display headers must resolve to the same canonical
// fields as one exported with snake_case headers.
func TestAliasResolutionAcrossHeaderVariants(t *testing.T) {
	display := NormalizeRow(map[string]string{
		"Claim ID": "C100", "Patient": "Ana Diaz", "Insurer": "Acme Health", "Billed": "250",
	})
	snake := NormalizeRow(map[string]string{
		"claim_id": "C100", "patient_name": "Ana Diaz", "payer": "Acme Health", "amount": "250",
	})

	for _, row := range []Row{display, snake} {
		if got := Pick(row, aliasClaimID...); got != "C100" {
			t.Errorf("claim id: got %q", got)
		}
		if got := Pick(row, aliasPatientName...); got != "Ana Diaz" {
			t.Errorf("patient: got %q", got)
		}
		if got := Pick(row, aliasPayer...); got != "Acme Health" {
			t.Errorf("payer: got %q", got)
		}
		if got := Pick(row, aliasBilled...); got != "250" {
			t.Errorf("billed: got %q", got)
		}
	}
}
