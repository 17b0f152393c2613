package utils

import "errors"

// ErrEmptyPassword is returned by [HashPassword] when the supplied
// plaintext password is empty.
var ErrEmptyPassword = errors.New("empty password provided")
