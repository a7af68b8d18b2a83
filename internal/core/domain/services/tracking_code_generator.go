package services

import (
	"crypto/rand"
	"fmt"
)

// trackingCodePrefix marks every tracking code as belonging to this system.
const trackingCodePrefix = "PT-"

// trackingCodeLength is the number of random characters after the prefix.
const trackingCodeLength = 10

// trackingCodeAlphabet excludes lowercase to keep codes easy to read aloud.
const trackingCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// TrackingCodeGenerator is a domain service producing customer-facing parcel
// tracking codes of the form "PT-" followed by ten random uppercase
// alphanumeric characters, e.g. "PT-7K2M9QX4AB".
//
// Codes are random rather than sequential so that one customer cannot
// enumerate another customer's parcels. Uniqueness is not guaranteed by the
// generator itself; callers rely on the storage unique constraint and
// regenerate on collision.
type TrackingCodeGenerator struct{}

// NewTrackingCodeGenerator creates a new TrackingCodeGenerator instance.
func NewTrackingCodeGenerator() TrackingCodeGenerator {
	return TrackingCodeGenerator{}
}

// Generate returns a fresh tracking code from a cryptographic random source.
func (g TrackingCodeGenerator) Generate() (string, error) {
	buf := make([]byte, trackingCodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}

	for i, b := range buf {
		buf[i] = trackingCodeAlphabet[int(b)%len(trackingCodeAlphabet)]
	}

	return trackingCodePrefix + string(buf), nil
}
