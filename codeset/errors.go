package codeset

import "errors"

// ErrInvalidDigit is returned by FromDigits when a digit is outside 1..=5.
var ErrInvalidDigit = errors.New("digit must be in 1..=5")
