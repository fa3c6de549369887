// Package mask redacts payment identifiers for anything that leaves the
// gateway: responses, logs, stored projections. Raw PANs and account numbers
// must never appear outbound.
package mask

import "strings"

const filler = "#"

// PAN reveals the first six and last four characters of a card number and
// replaces the rest with '#'. Inputs shorter than ten characters are returned
// unmasked; there is no middle segment to hide safely. Never fails.
func PAN(pan string) string {
	if len(pan) < 10 {
		return pan
	}
	return pan[:6] + strings.Repeat(filler, len(pan)-10) + pan[len(pan)-4:]
}

// AccountNumber reveals only the last four characters of an account number.
// Inputs of four characters or fewer are returned unmasked. Never fails.
func AccountNumber(num string) string {
	if len(num) <= 4 {
		return num
	}
	return strings.Repeat(filler, len(num)-4) + num[len(num)-4:]
}
