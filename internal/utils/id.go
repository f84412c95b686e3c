package utils

import (
	"strings"

	"github.com/google/uuid"
)

const (
	dnaIDPrefix = "DNA-"
	dnaIDLength = 6
	base36      = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// NewDNAID returns a record identifier of the form DNA-XXXXXX where X is an
// upper-case base-36 digit. Entropy comes from a random (v4) UUID.
func NewDNAID() string {
	random := uuid.New()

	var b strings.Builder
	b.Grow(len(dnaIDPrefix) + dnaIDLength)
	b.WriteString(dnaIDPrefix)
	for i := 0; i < dnaIDLength; i++ {
		b.WriteByte(base36[int(random[i])%len(base36)])
	}
	return b.String()
}

// NewTraceID returns a time-ordered (v7) UUID string used to correlate log
// lines of one request. Falls back to a random UUID.
func NewTraceID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
