package service

import "testing"

func TestDeptPrefix(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Billing and Collection", "BILLINGANDCOLLECTION"},
		{"Marketing/Creative", "MARKETINGCREATIVE"},
		{"  hr  ", "HR"},
		{"Dept 7", "DEPT7"},
		{"warehouse", "WAREHOUSE"},
		{"!!!", ""},
		{"", ""},
		{"   ", ""},
	}
	for _, tc := range cases {
		if got := DeptPrefix(tc.in); got != tc.want {
			t.Errorf("DeptPrefix(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNextItemCodeEmptyScope(t *testing.T) {
	if got := NextItemCode("HR", nil); got != "HR-0001" {
		t.Errorf("NextItemCode on empty scope = %q, want HR-0001", got)
	}
}

func TestNextItemCodeContinuesSequence(t *testing.T) {
	codes := []string{"HR-0001", "HR-0002", "HR-0007"}
	if got := NextItemCode("HR", codes); got != "HR-0008" {
		t.Errorf("NextItemCode = %q, want HR-0008", got)
	}
}

func TestNextItemCodeIgnoresOtherPrefixes(t *testing.T) {
	cases := []struct {
		prefix string
		codes  []string
		want   string
	}{
		// Foreign prefixes never influence the sequence.
		{"A", []string{"B-0099"}, "A-0001"},
		// The prefix must match in full, not as a substring.
		{"A", []string{"AB-0004"}, "A-0001"},
		{"HR", []string{"HRX-0005", "XHR-0009"}, "HR-0001"},
	}
	for _, tc := range cases {
		if got := NextItemCode(tc.prefix, tc.codes); got != tc.want {
			t.Errorf("NextItemCode(%q, %v) = %q, want %q", tc.prefix, tc.codes, got, tc.want)
		}
	}
}

func TestNextItemCodeCaseInsensitive(t *testing.T) {
	if got := NextItemCode("HR", []string{"hr-0003"}); got != "HR-0004" {
		t.Errorf("NextItemCode = %q, want HR-0004", got)
	}
}

func TestNextItemCodeWidensPast9999(t *testing.T) {
	if got := NextItemCode("HR", []string{"HR-9999"}); got != "HR-10000" {
		t.Errorf("NextItemCode = %q, want HR-10000", got)
	}
}

func TestNextItemCodeSkipsGarbage(t *testing.T) {
	codes := []string{"HR-", "HR-abc", "", "  HR-0002  "}
	if got := NextItemCode("HR", codes); got != "HR-0003" {
		t.Errorf("NextItemCode = %q, want HR-0003", got)
	}
}
