package service

import "errors"

// ErrInvalidCredentials covers both an unknown username and a wrong
// password; callers are given no way to tell the two apart.
var ErrInvalidCredentials = errors.New("invalid username or password")

var ErrStudentNotFound = errors.New("student not found")
