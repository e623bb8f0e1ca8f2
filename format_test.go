package lotbook

import "testing"

func TestFormatAmount(t *testing.T) {
	testCases := []struct {
		code string
		in   string
		want string
	}{
		{"USD", "21500.00", "$21,500.00"},
		{"USD", "0", "$0.00"},
		{"USD", "-33250.50", "-$33,250.50"},
		{"EUR", "1234.56", "€1,234.56"},
		{"JPY", "1500", "¥1,500"},
	}
	for _, tc := range testCases {
		t.Run(tc.code+" "+tc.in, func(t *testing.T) {
			if got := FormatAmount(tc.code, dec(tc.in)); got != tc.want {
				t.Errorf("FormatAmount(%s, %s) = %q, want %q", tc.code, tc.in, got, tc.want)
			}
		})
	}
}
