package importer

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestParseCurrency(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"$1,234.50", "1234.5"},
		{"1234.5", "1234.5"},
		{"", "0"},
		{"N/A", "0"},
		{"  $99 ", "99"},
		{"not a number", "0"},
		{"-45.10", "-45.1"},
	}
	for _, c := range cases {
		want := decimal.RequireFromString(c.want)
		if got := ParseCurrency(c.in); !got.Equal(want) {
			t.Errorf("ParseCurrency(%q) = %s, want %s", c.in, got, want)
		}
	}
}

// 01/02/2020 is ambiguous; the layout list is tried in a fixed order and
// the US slash layout wins, so this is January 2nd, not February 1st.
// That priority is deliberate and pinned here.
func TestParseDatePriorityOrder(t *testing.T) {
	got := ParseDate("01/02/2020", claimDateLayouts)
	if got == nil {
		t.Fatal("expected a date, got nil")
	}
	want := time.Date(2020, time.January, 2, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ParseDate(01/02/2020) = %s, want %s", got, want)
	}
}

func TestParseDateLayouts(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
	}{
		{"2021-07-19", time.Date(2021, time.July, 19, 0, 0, 0, 0, time.UTC)},
		{"Mar 5, 2020", time.Date(2020, time.March, 5, 0, 0, 0, 0, time.UTC)},
		{"March 5, 2020", time.Date(2020, time.March, 5, 0, 0, 0, 0, time.UTC)},
	}
	for _, c := range cases {
		got := ParseDate(c.in, claimDateLayouts)
		if got == nil {
			t.Errorf("ParseDate(%q) = nil, want %s", c.in, c.want)
			continue
		}
		if !got.Equal(c.want) {
			t.Errorf("ParseDate(%q) = %s, want %s", c.in, got, c.want)
		}
	}
}

func TestParseDateAbsent(t *testing.T) {
	for _, in := range []string{"", "   ", "yesterday", "19/19/2020"} {
		if got := ParseDate(in, claimDateLayouts); got != nil {
			t.Errorf("ParseDate(%q) = %s, want nil", in, got)
		}
	}
}

func TestSimpleDateLayoutsDayFirst(t *testing.T) {
	got := ParseDate("05-04-2021", simpleDateLayouts)
	if got == nil {
		t.Fatal("expected a date, got nil")
	}
	want := time.Date(2021, time.April, 5, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ParseDate(05-04-2021) = %s, want %s", got, want)
	}
}

func TestSplitCPT(t *testing.T) {
	got := SplitCPT(" 99204; 82947 ,, 99406 ")
	want := []string{"99204", "82947", "99406"}
	if len(got) != len(want) {
		t.Fatalf("expected %d codes, got %d (%v)", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("code %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestNormalizeCPTKeepsOrderAndDuplicates(t *testing.T) {
	if got := NormalizeCPT("99406;99204;99406"); got != "99406,99204,99406" {
		t.Errorf("NormalizeCPT = %q", got)
	}
	if got := NormalizeCPT(""); got != "" {
		t.Errorf("NormalizeCPT(\"\") = %q", got)
	}
}
