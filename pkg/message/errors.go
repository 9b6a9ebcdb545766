package message

import "errors"

var ErrInvalidCatalog = errors.New("message: invalid catalog")
