package model

import (
	"crypto/rand"
	"strconv"
	"strings"
	"time"
)

const (
	referencePrefix      = "HTL"
	referenceSuffixLen   = 5
	referenceSuffixChars = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// NewReference returns a fresh human-readable booking token, for example
// HTL-LXK2M9QW-A7F2C. The timestamp part keeps references sortable, the
// random suffix keeps concurrent requests apart.
func NewReference() string {
	timestamp := strings.ToUpper(strconv.FormatInt(time.Now().UnixMilli(), 36))

	buf := make([]byte, referenceSuffixLen)
	_, _ = rand.Read(buf)

	suffix := make([]byte, referenceSuffixLen)
	for i, b := range buf {
		suffix[i] = referenceSuffixChars[int(b)%len(referenceSuffixChars)]
	}

	return referencePrefix + "-" + timestamp + "-" + string(suffix)
}
