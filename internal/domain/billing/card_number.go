package billing

import "strings"

// NormalizeNumber strips spaces and dashes from a card number.
func NormalizeNumber(number string) string {
	r := strings.NewReplacer(" ", "", "-", "")
	return r.Replace(strings.TrimSpace(number))
}

// BrandOf guesses the network from the number prefix.
func BrandOf(number string) string {
	n := NormalizeNumber(number)
	switch {
	case strings.HasPrefix(n, "4"):
		return "VISA"
	case len(n) >= 2 && n[0] == '5' && n[1] >= '1' && n[1] <= '5':
		return "MASTER"
	case strings.HasPrefix(n, "34"), strings.HasPrefix(n, "37"):
		return "AMEX"
	case strings.HasPrefix(n, "6011"), strings.HasPrefix(n, "65"):
		return "DISCOVER"
	default:
		return "OTHER"
	}
}

// LastFour returns the trailing four digits of a normalized number.
func LastFour(number string) string {
	n := NormalizeNumber(number)
	if len(n) <= 4 {
		return n
	}
	return n[len(n)-4:]
}
