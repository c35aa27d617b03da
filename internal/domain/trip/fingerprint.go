package trip

import (
	"encoding/hex"
	"strings"
	"time"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

const fingerprintVersion = "v1"

// Fingerprint is the pool lookup key derived from a Criteria.
type Fingerprint string

func (f Fingerprint) String() string { return string(f) }

func ParseFingerprint(s string) (Fingerprint, error) {
	if len(s) != hex.EncodedLen(blake2b.Size256) {
		return "", ErrInvalidFingerprint
	}
	if _, err := hex.DecodeString(s); err != nil {
		return "", ErrInvalidFingerprint
	}
	return Fingerprint(s), nil
}

// ComputeFingerprint hashes the four criteria fields. Destination and
// interest are normalized first so "Lisbon " and "lisbon" land in the same pool.
func ComputeFingerprint(start, end time.Time, destination, interest string) Fingerprint {
	parts := []string{
		fingerprintVersion,
		truncateDate(start).Format(DateLayout),
		truncateDate(end).Format(DateLayout),
		NormalizeText(destination),
		NormalizeText(interest),
	}
	sum := blake2b.Sum256([]byte(strings.Join(parts, "\x00")))
	return Fingerprint(hex.EncodeToString(sum[:]))
}

// NormalizeText applies NFC, Unicode case folding and whitespace collapsing.
func NormalizeText(s string) string {
	// cases.Caser is stateful; one per call
	folded := cases.Fold().String(norm.NFC.String(s))
	return strings.Join(strings.Fields(folded), " ")
}
