package customsize

import "errors"

var (
	ErrFormNotFound    = errors.New("custom size form not found")
	ErrAlreadyApproved = errors.New("form is already approved")
	ErrClientNotFound  = errors.New("client profile not found")
)
