package services

// composeBody builds the canonical byte sequence that a commitment
// is computed over: content bytes first, media bytes after. The
// order is load-bearing; the verifier recomputes with the same rule,
// so any change here silently breaks verification of existing
// commitments.
func composeBody(content string, media []byte) []byte {
	body := make([]byte, 0, len(content)+len(media))
	body = append(body, content...)
	body = append(body, media...)
	return body
}
