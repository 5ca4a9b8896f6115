// Package phone normalises customer mobile numbers before a quote is sent.
package phone

import (
	"errors"
	"strings"

	"github.com/ttacon/libphonenumber"
)

var ErrInvalidNumber = errors.New("phone number is not valid")

// Normalizer formats numbers as E.164, reading national numbers in its default region.
type Normalizer struct {
	region string
}

func NewNormalizer(defaultRegion string) *Normalizer {
	return &Normalizer{region: strings.ToUpper(strings.TrimSpace(defaultRegion))}
}

func (n *Normalizer) Normalize(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrInvalidNumber
	}
	p, err := libphonenumber.Parse(raw, n.region)
	if err != nil {
		return "", errors.Join(ErrInvalidNumber, err)
	}
	if !libphonenumber.IsValidNumber(p) {
		return "", ErrInvalidNumber
	}
	return libphonenumber.Format(p, libphonenumber.E164), nil
}
