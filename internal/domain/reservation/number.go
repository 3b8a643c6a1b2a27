package reservation

import (
	"math/rand"
	"regexp"

	"github.com/BruksfildServices01/store-reservations/internal/httperr"
)

const (
	NumberPrefix = "RES-"
	numberLength = 6
	numberDigits = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

	maxNumberAttempts = 32
)

var numberPattern = regexp.MustCompile(`^RES-[0-9A-Z]{6}$`)

// NumberGenerator produces candidate claim-ticket codes.
type NumberGenerator func() string

// RandomNumber returns RES- followed by six uppercase base-36 characters.
func RandomNumber() string {
	b := make([]byte, numberLength)
	for i := range b {
		b[i] = numberDigits[rand.Intn(len(numberDigits))]
	}
	return NumberPrefix + string(b)
}

func IsValidNumber(s string) bool {
	return numberPattern.MatchString(s)
}

// UniqueNumber re-rolls gen until it yields a code for which taken is false.
func UniqueNumber(gen NumberGenerator, taken func(string) bool) (string, error) {
	for i := 0; i < maxNumberAttempts; i++ {
		n := gen()
		if !taken(n) {
			return n, nil
		}
	}
	return "", httperr.ErrBusiness(httperr.CodeNumberExhausted)
}
