package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"

	"github.com/Fletch-Industries/immutify/internal/core/domain"
	"github.com/Fletch-Industries/immutify/internal/core/ports/driving"
)

// Ensure CommitmentService implements the interface.
var _ driving.CommitmentService = (*CommitmentService)(nil)

// CommitmentService computes keyed-hash commitments over thought
// material. The digest is an HMAC-SHA256 with the title as key and
// the composed content+media bytes as message, hex-encoded in
// lowercase. The computation takes no clock or randomness input, so
// the same material always reproduces the same digest.
type CommitmentService struct{}

// NewCommitmentService creates a new commitment service.
func NewCommitmentService() *CommitmentService {
	return &CommitmentService{}
}

// Commit derives the commitment digest for the given material.
func (s *CommitmentService) Commit(title, content string, media []byte) (string, error) {
	if title == "" {
		return "", domain.ErrEmptyTitle
	}

	mac := hmac.New(sha256.New, []byte(title))
	mac.Write(composeBody(content, media))
	return hex.EncodeToString(mac.Sum(nil)), nil
}

// Verify recomputes the digest for the supplied material and compares
// it to the expected digest. The comparison is exact and
// case-sensitive; callers trim surrounding whitespace from
// user-entered digests first. The computed digest is returned in
// either case so callers can display a diff.
func (s *CommitmentService) Verify(title, content string, media []byte, expected string) (domain.Verification, error) {
	if title == "" {
		return domain.Verification{}, domain.ErrEmptyTitle
	}
	if content == "" && len(media) == 0 {
		return domain.Verification{}, domain.ErrMissingInput
	}

	computed, err := s.Commit(title, content, media)
	if err != nil {
		return domain.Verification{}, err
	}

	return domain.Verification{
		Matched:  computed == expected,
		Computed: computed,
	}, nil
}
