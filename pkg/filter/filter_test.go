package filter

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) *decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return &d
}

func TestFingerprintDetectsChanges(t *testing.T) {
	a := Defaults()
	b := Defaults()
	if a.Fingerprint() != b.Fingerprint() {
		t.Fatalf("identical states must fingerprint equal")
	}

	b.Recurring = true
	if a.Fingerprint() == b.Fingerprint() {
		t.Fatalf("recurring toggle must change the fingerprint")
	}

	c := Defaults()
	c.Min = dec("10")
	if a.Fingerprint() == c.Fingerprint() {
		t.Fatalf("setting a bound must change the fingerprint")
	}
}

func TestFingerprintIgnoresCosmeticSearchEdits(t *testing.T) {
	a := State{Search: "rent"}
	b := State{Search: "  Rent "}
	if a.Fingerprint() != b.Fingerprint() {
		t.Fatalf("trim/case differences are not query changes")
	}
}

func TestFingerprintNilVsZeroBounds(t *testing.T) {
	unset := Defaults()
	zero := Defaults()
	zero.Min = dec("0")
	if unset.Fingerprint() == zero.Fingerprint() {
		t.Fatalf("an explicit zero bound differs from no bound")
	}
}

func TestQueryKeyIncludesPage(t *testing.T) {
	s := Defaults()
	if s.QueryKey(0) == s.QueryKey(1) {
		t.Fatalf("page index must be part of the key")
	}
}

func TestResetRestoresDefaults(t *testing.T) {
	s := State{Search: "x", Type: "expense", From: "2025-01-01", Min: dec("5"), Recurring: true}
	if !s.Active() {
		t.Fatalf("state should be active")
	}
	s.Reset()
	if s.Active() {
		t.Fatalf("reset state should be inactive")
	}
	if s.Fingerprint() != Defaults().Fingerprint() {
		t.Fatalf("reset must restore the default fingerprint")
	}
}

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total, size, want int
	}{
		{0, 10, 1},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{25, 10, 3},
		{5, 0, 1},
	}
	for _, tc := range cases {
		if got := TotalPages(tc.total, tc.size); got != tc.want {
			t.Fatalf("TotalPages(%d, %d) = %d, want %d", tc.total, tc.size, got, tc.want)
		}
	}
}
