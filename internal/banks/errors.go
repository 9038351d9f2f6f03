package banks

import "errors"

var (
	ErrEmptyBankList = errors.New("bank list is empty")
	ErrInvalidBank   = errors.New("invalid bank entry")
)
