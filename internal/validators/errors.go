package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyBankCode   = errors.New("bank code is required")
	ErrUnknownBankCode = errors.New("unknown bank code")
)
