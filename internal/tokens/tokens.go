// Package tokens produces and checks the authentication tag that binds a
// flight id, a price and an expiration into an unforgeable offer. The tag is
// an HMAC-SHA256 over a fixed byte encoding of the three fields, so any
// instance holding the same secret can verify a tag produced by any other.
package tokens

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"time"

	"google.golang.org/genproto/googleapis/type/money"
)

var (
	ErrInvalidSignature = errors.New("invalid offer signature")
	ErrExpired          = errors.New("offer is expired")
)

// TagManager signs and verifies offer claims with a process-wide secret.
// It is immutable after construction and safe for concurrent use.
type TagManager struct {
	secret []byte
}

func NewTagManager(secret []byte) *TagManager {
	return &TagManager{secret: secret}
}

// buildMAC feeds the claims into the MAC in a fixed order with fixed integer
// widths (little-endian). The verifier reconstructs the exact same byte
// stream, so the order and widths must never change.
func (m *TagManager) buildMAC(flightID string, price *money.Money, expiration int64) []byte {
	mac := hmac.New(sha256.New, m.secret)

	mac.Write([]byte(flightID))
	mac.Write(binary.LittleEndian.AppendUint64(nil, uint64(expiration)))
	mac.Write([]byte(price.GetCurrencyCode()))
	mac.Write(binary.LittleEndian.AppendUint64(nil, uint64(price.GetUnits())))
	mac.Write(binary.LittleEndian.AppendUint32(nil, uint32(price.GetNanos())))

	return mac.Sum(nil)
}

// GenerateTag returns the authentication tag for the given claims.
func (m *TagManager) GenerateTag(flightID string, price *money.Money, expiration int64) []byte {
	return m.buildMAC(flightID, price, expiration)
}

// VerifyOffer checks the tag against the claims and then checks freshness.
// The signature is always checked first: an unauthenticated forgery must not
// learn anything from the expiration check, and the two failures stay
// distinguishable server-side. Comparison is constant-time.
func (m *TagManager) VerifyOffer(flightID string, price *money.Money, expiration int64, tag []byte) error {
	expected := m.buildMAC(flightID, price, expiration)
	if !hmac.Equal(expected, tag) {
		return ErrInvalidSignature
	}
	if expiration < time.Now().Unix() {
		return ErrExpired
	}
	return nil
}
