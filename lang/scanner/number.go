package scanner

import "strconv"

// parseFloat decodes a scanned number lexeme (digits, optionally followed by
// a '.' and more digits) into its double-precision value.
func parseFloat(lit string) (float64, error) {
	return strconv.ParseFloat(lit, 64)
}
