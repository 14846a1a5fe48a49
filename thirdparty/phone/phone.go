package phone

import (
	"errors"
	"strconv"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

var ErrInvalidPhone = errors.New("invalid phone number")

// Normalizer turns an ISD prefix and a local number into E.164.
type Normalizer interface {
	Normalize(isd, raw string) (string, error)
}

type libphonenumber struct{}

func NewNormalizer() Normalizer {
	return &libphonenumber{}
}

func (l *libphonenumber) Normalize(isd, raw string) (string, error) {
	isd = strings.TrimSpace(isd)
	raw = strings.TrimSpace(raw)
	if isd == "" || raw == "" {
		return "", ErrInvalidPhone
	}
	if !strings.HasPrefix(isd, "+") {
		isd = "+" + isd
	}

	// a number already carrying the country code is accepted as is
	number := isd + strings.TrimLeft(raw, "0")
	if strings.HasPrefix(raw, "+") {
		number = raw
	}

	parsed, err := phonenumbers.Parse(number, "")
	if err != nil {
		return "", ErrInvalidPhone
	}
	if !phonenumbers.IsValidNumber(parsed) {
		return "", ErrInvalidPhone
	}
	return phonenumbers.Format(parsed, phonenumbers.E164), nil
}

// CountryCode returns the "+<code>" prefix of a normalized number.
func CountryCode(e164 string) (string, error) {
	parsed, err := phonenumbers.Parse(e164, "")
	if err != nil {
		return "", ErrInvalidPhone
	}
	return "+" + strconv.Itoa(int(parsed.GetCountryCode())), nil
}
