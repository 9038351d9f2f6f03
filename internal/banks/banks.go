// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package banks holds the ordered list of banks offered by the lookup form.
//
// Codes follow the namespace of the remote lookup API. The list is fixed at
// start-up: either the built-in [Default] list or one loaded with [LoadFile].
package banks

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/MKhiriev/go-account-checker/models"
)

var defaultBanks = []models.Bank{
	{Code: "bca", Name: "Bank Central Asia (BCA)"},
	{Code: "mandiri", Name: "Bank Mandiri"},
	{Code: "bni", Name: "Bank Negara Indonesia (BNI)"},
	{Code: "bri", Name: "Bank Rakyat Indonesia (BRI)"},
	{Code: "bsm", Name: "Bank Syariah Indonesia (BSI)"},
	{Code: "cimb", Name: "CIMB Niaga"},
	{Code: "danamon", Name: "Bank Danamon"},
	{Code: "permata", Name: "Bank Permata"},
	{Code: "btn", Name: "Bank Tabungan Negara (BTN)"},
	{Code: "bjb", Name: "Bank BJB"},
	{Code: "ocbc", Name: "OCBC NISP"},
	{Code: "panin", Name: "Panin Bank"},
	{Code: "maybank", Name: "Maybank Indonesia"},
	{Code: "mega", Name: "Bank Mega"},
	{Code: "jago", Name: "Bank Jago"},
	{Code: "seabank", Name: "SeaBank"},
}

// List is an immutable, ordered set of banks.
type List struct {
	banks []models.Bank
}

// Default returns the built-in bank list.
func Default() *List {
	return newList(defaultBanks)
}

// LoadFile reads a JSON array of {"code","name"} objects. Entries with an
// empty code are rejected, as are duplicate codes.
func LoadFile(path string) (*List, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading bank list: %w", err)
	}

	var banks []models.Bank
	if err = json.Unmarshal(data, &banks); err != nil {
		return nil, fmt.Errorf("error decoding bank list: %w", err)
	}
	if len(banks) == 0 {
		return nil, ErrEmptyBankList
	}

	seen := make(map[string]struct{}, len(banks))
	for _, b := range banks {
		code := strings.ToLower(strings.TrimSpace(b.Code))
		if code == "" {
			return nil, fmt.Errorf("%w: bank %q has no code", ErrInvalidBank, b.Name)
		}
		if _, dup := seen[code]; dup {
			return nil, fmt.Errorf("%w: duplicate code %q", ErrInvalidBank, b.Code)
		}
		seen[code] = struct{}{}
	}

	return newList(banks), nil
}

// Load returns the list from path, or the default list when path is empty.
func Load(path string) (*List, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

func newList(banks []models.Bank) *List {
	cp := make([]models.Bank, len(banks))
	copy(cp, banks)
	return &List{banks: cp}
}

// All returns a copy of the banks in display order.
func (l *List) All() []models.Bank {
	cp := make([]models.Bank, len(l.banks))
	copy(cp, l.banks)
	return cp
}

// Find returns the bank with the given code, compared case-insensitively.
func (l *List) Find(code string) (models.Bank, bool) {
	code = strings.TrimSpace(code)
	for _, b := range l.banks {
		if strings.EqualFold(b.Code, code) {
			return b, true
		}
	}
	return models.Bank{}, false
}

// Len returns the number of banks.
func (l *List) Len() int {
	return len(l.banks)
}
