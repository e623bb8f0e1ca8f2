package lotbook

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	testCases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "2025-01-31", want: NewDate(2025, time.January, 31)},
		{in: "2025-7-1", want: NewDate(2025, time.July, 1)},
		{in: "not-a-date", wantErr: true},
		{in: "2025-13-40", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseDate(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseDate(%q) = %v, want error", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q): %v", tc.in, err)
			}
			if !got.Equal(tc.want) {
				t.Errorf("ParseDate(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestDateString(t *testing.T) {
	d := NewDate(2024, time.March, 5)
	if got := d.String(); got != "2024-03-05" {
		t.Errorf("String() = %q, want %q", got, "2024-03-05")
	}
}

func TestDateOrdering(t *testing.T) {
	a := MustParseDate("2025-01-10")
	b := MustParseDate("2025-02-01")
	if !a.Before(b) || b.Before(a) {
		t.Errorf("Before is wrong for %v and %v", a, b)
	}
	if !b.After(a) || a.After(b) {
		t.Errorf("After is wrong for %v and %v", a, b)
	}
}

func TestDateNormalization(t *testing.T) {
	// Day overflow normalizes into the next month, like time.Date.
	d := NewDate(2025, time.January, 32)
	if want := NewDate(2025, time.February, 1); !d.Equal(want) {
		t.Errorf("NewDate(2025, January, 32) = %v, want %v", d, want)
	}
	if got := NewDate(2025, time.January, 31).AddMonth(1); !got.Equal(NewDate(2025, time.March, 3)) {
		t.Errorf("AddMonth(1) = %v, want 2025-03-03", got)
	}
}

func TestDateZero(t *testing.T) {
	var d Date
	if !d.IsZero() {
		t.Error("zero Date should report IsZero")
	}
	if MustParseDate("2025-01-01").IsZero() {
		t.Error("real date should not report IsZero")
	}
}
