package client

import "errors"

var ErrProfileNotFound = errors.New("client profile not found")
