package money

import "testing"

func TestFormat(t *testing.T) {
	cases := []struct {
		amountCents int64
		currency    string
		want        string
	}{
		{8500, "USD", "$85.00"},
		{8550, "USD", "$85.50"},
		{5, "USD", "$0.05"},
		{0, "USD", "$0.00"},
		{123456789, "USD", "$1234567.89"},
		{4500, "EUR", "€45.00"},
		{9900, "GBP", "£99.00"},
		{8500, "JPY", "¥85.00"},
		{2000, "MXN", "$20.00"},
		{-8500, "USD", "-$85.00"},
		{1234, "XYZ", "XYZ 12.34"},
		{8500, "usd", "$85.00"},
		{8500, "", "$85.00"},
	}
	for _, tc := range cases {
		if got := Format(tc.amountCents, tc.currency); got != tc.want {
			t.Errorf("Format(%d, %q) = %q, want %q", tc.amountCents, tc.currency, got, tc.want)
		}
	}
}
