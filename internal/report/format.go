package report

import (
	"fmt"
	"strings"
)

// FormatMembers joins rank-sorted soldiers as "rank name", printing the
// rank only when it differs from the previous entry's:
// "병장 A, B, 상병 C".
func FormatMembers(soldiers []*Soldier) string {
	if len(soldiers) == 0 {
		return ""
	}
	parts := make([]string, 0, len(soldiers))
	prevRank := Rank("")
	for i, s := range soldiers {
		if i > 0 && s.Rank == prevRank {
			parts = append(parts, s.Name)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s %s", s.Rank, s.Name))
		prevRank = s.Rank
	}
	return strings.Join(parts, ", ")
}

// HasFinalConsonant reports whether the Korean reading of n ends in a
// final consonant (받침): 일, 삼, 육, 칠, 팔 and every bare multiple of ten (십).
func HasFinalConsonant(n int) bool {
	if n < 0 {
		n = -n
	}
	lastDigit := n % 10
	if n >= 10 && lastDigit == 0 {
		return true
	}
	switch lastDigit {
	case 1, 3, 6, 7, 8:
		return true
	}
	return false
}

// ObjectParticle returns 을 or 를 to follow the number n.
func ObjectParticle(n int) string {
	if HasFinalConsonant(n) {
		return "을"
	}
	return "를"
}

// memberLine is the shared "<members> 희망합니다." sentence.
func memberLine(soldiers []*Soldier) string {
	return FormatMembers(soldiers) + " 희망합니다."
}

// unitLabel prints "<battery>포대 <room>생활관 ". Headquarters ("본부")
// follows the same rule and reads 본부포대.
func unitLabel(battery, room string) string {
	return fmt.Sprintf("%s포대 %s생활관 ", battery, room)
}
