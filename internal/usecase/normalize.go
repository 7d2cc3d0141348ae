package usecase

// NormalizePhone strips a leading country-code prefix ("+91" or "91") and
// reports whether the remainder is a valid 10-digit mobile number.
func NormalizePhone(raw string) (string, bool) {
	m := phoneRegex.FindStringSubmatch(raw)
	if m == nil {
		return "", false
	}
	return m[2], true
}
