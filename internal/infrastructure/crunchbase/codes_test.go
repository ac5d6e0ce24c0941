package crunchbase

import "testing"

func TestDecodeRevenueRange(t *testing.T) {
	cases := map[string]string{
		"r_00000000": "Less than $1M",
		"r_00001000": "$1M - $10M",
		"r_00010000": "$10M - $50M",
		"r_00050000": "$50M - $100M",
		"r_00100000": "$100M - $500M",
		"r_00500000": "$500M - $1B",
		"r_01000000": "$1B - $10B",
		"r_10000000": "$10B+",
	}

	for code, want := range cases {
		if got := DecodeRevenueRange(code); got != want {
			t.Errorf("DecodeRevenueRange(%q) = %q, want %q", code, got, want)
		}
	}
}

func TestDecodeRevenueRangeUnrecognized(t *testing.T) {
	for _, code := range []string{"", "r_99999999", "garbage", "c_00001_00010"} {
		if got := DecodeRevenueRange(code); got != NotAvailable {
			t.Errorf("DecodeRevenueRange(%q) = %q, want %q", code, got, NotAvailable)
		}
	}
}

func TestDecodeEmployeeCount(t *testing.T) {
	cases := map[string]string{
		"c_00001_00010": "1-10",
		"c_00011_00050": "11-50",
		"c_00051_00100": "51-100",
		"c_00101_00250": "101-250",
		"c_00251_00500": "251-500",
		"c_00501_01000": "501-1,000",
		"c_01001_05000": "1,001-5,000",
		"c_05001_10000": "5,001-10,000",
		"c_10001_max":   "10,001+",
	}

	for code, want := range cases {
		if got := DecodeEmployeeCount(code); got != want {
			t.Errorf("DecodeEmployeeCount(%q) = %q, want %q", code, got, want)
		}
	}
}

func TestDecodeEmployeeCountUnrecognized(t *testing.T) {
	for _, code := range []string{"", "c_99999_max", "r_00001000"} {
		if got := DecodeEmployeeCount(code); got != NotAvailable {
			t.Errorf("DecodeEmployeeCount(%q) = %q, want %q", code, got, NotAvailable)
		}
	}
}
