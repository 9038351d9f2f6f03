package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-account-checker/internal/banks"
	"github.com/MKhiriev/go-account-checker/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldBankCode targets the bank of a lookup request.
	FieldBankCode = "bank_code"

	// FieldAccountNumbers targets the raw account number input. Any text is
	// accepted: blank lines are dropped by the parser.
	FieldAccountNumbers = "account_numbers"
)

var allLookupRequestFields = []string{FieldBankCode, FieldAccountNumbers}

type LookupRequestValidator struct {
	banks *banks.List
}

// NewLookupRequestValidator returns a [Validator] for [models.LookupRequest]
// that accepts only bank codes present in bankList.
func NewLookupRequestValidator(bankList *banks.List) Validator {
	return &LookupRequestValidator{banks: bankList}
}

func (v *LookupRequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.LookupRequest:
		return v.validateLookupRequest(ctx, value, fields...)
	case *models.LookupRequest:
		if value == nil {
			return fmt.Errorf("%w: nil %T", ErrUnsupportedType, obj)
		}
		return v.validateLookupRequest(ctx, *value, fields...)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *LookupRequestValidator) validateLookupRequest(_ context.Context, req models.LookupRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = allLookupRequestFields
	}

	for _, field := range fields {
		switch field {
		case FieldBankCode:
			if strings.TrimSpace(req.BankCode) == "" {
				return ErrEmptyBankCode
			}
			if _, ok := v.banks.Find(req.BankCode); !ok {
				return fmt.Errorf("%w: %q", ErrUnknownBankCode, req.BankCode)
			}
		case FieldAccountNumbers:
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}
