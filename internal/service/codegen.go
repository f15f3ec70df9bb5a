package service

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// DeptPrefix normalizes a department name into a code prefix: trimmed,
// uppercased, with every rune outside A-Z0-9 removed. Multi-word names
// collapse into one token ("Billing and Collection" -> "BILLINGANDCOLLECTION").
func DeptPrefix(department string) string {
	up := strings.ToUpper(strings.TrimSpace(department))
	var b strings.Builder
	for _, r := range up {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NextItemCode derives the next code in a department's PREFIX-NNNN sequence
// from the codes currently stored. Only codes matching the full prefix count;
// a code belonging to another department never influences the result. The
// sequence number is zero-padded to 4 digits and simply widens past 9999.
func NextItemCode(prefix string, codes []string) string {
	re := regexp.MustCompile("^" + regexp.QuoteMeta(prefix) + "-([0-9]+)$")

	maxNum := 0
	for _, c := range codes {
		m := re.FindStringSubmatch(strings.ToUpper(strings.TrimSpace(c)))
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err == nil && n > maxNum {
			maxNum = n
		}
	}

	return fmt.Sprintf("%s-%04d", prefix, maxNum+1)
}
