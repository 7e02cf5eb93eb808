package otpcode

import (
	"crypto/rand"
	"crypto/subtle"
	"math/big"
	"strconv"

	"github.com/muhammadheryan/food-storefront/constant"
)

var span = big.NewInt(constant.OTPMax - constant.OTPMin + 1)

// Generate returns a uniformly random 6-digit code in [100000, 999999].
func Generate() (string, error) {
	n, err := rand.Int(rand.Reader, span)
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n.Int64()+constant.OTPMin, 10), nil
}

// Equal compares two codes in constant time.
func Equal(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
