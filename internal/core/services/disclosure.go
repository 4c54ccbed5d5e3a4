package services

import (
	"fmt"

	"github.com/Fletch-Industries/immutify/internal/core/domain"
)

// payloadSeparator joins a digest and its disclosed text in a public
// submission: a literal pipe surrounded by single spaces.
const payloadSeparator = " | "

// selectPayload decides what a thought discloses to the ledger.
// Evaluated at submission time only:
//
//  1. private: digest only, content never leaks
//  2. public with media and content: digest plus the readable
//     "title: content" text; media bytes stay off the ledger
//  3. public with media only: digest only
//  4. public with content only: the plaintext "title: content"
//     itself (the caller then records that plaintext as the
//     thought's proof so ledger entry and display agree)
func selectPayload(t domain.Thought) string {
	if t.Private {
		return t.Commitment
	}

	disclosed := fmt.Sprintf("%s: %s", t.Title, t.Content)

	switch {
	case t.HasMedia() && t.HasContent():
		return t.Commitment + payloadSeparator + disclosed
	case t.HasContent():
		return disclosed
	default:
		// Media-only (or empty) public thoughts stay hashed-only.
		return t.Commitment
	}
}

// disclosesPlaintextOnly reports whether the thought falls in the
// public text-only branch, where the stored commitment is replaced
// by the disclosed plaintext after a successful submission.
func disclosesPlaintextOnly(t domain.Thought) bool {
	return !t.Private && t.HasContent() && !t.HasMedia()
}
