package models

import "testing"

func TestCPTList(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"99204,82947", []string{"99204", "82947"}},
		{"99204; 82947 ;", []string{"99204", "82947"}},
		{"", nil},
		{" , ; ", nil},
	}
	for _, c := range cases {
		d := ClaimDetail{CPTCodes: c.in}
		got := d.CPTList()
		if len(got) != len(c.want) {
			t.Errorf("CPTList(%q) = %v, want %v", c.in, got, c.want)
			continue
		}
		for i := range c.want {
			if got[i] != c.want[i] {
				t.Errorf("CPTList(%q)[%d] = %q, want %q", c.in, i, got[i], c.want[i])
			}
		}
	}
}
