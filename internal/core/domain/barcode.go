package domain

const (
	DefaultMinBarcodeLen = 6
	DefaultMaxBarcodeLen = 50
)

// ValidBarcode reports whether s has a length within [minLen, maxLen] and
// consists only of ASCII letters, digits, hyphen and underscore.
func ValidBarcode(s string, minLen, maxLen int) bool {
	if len(s) == 0 || len(s) < minLen || len(s) > maxLen {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '-' || c == '_':
		default:
			return false
		}
	}
	return true
}
