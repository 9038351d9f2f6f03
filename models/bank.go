// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Bank is a selectable bank in the lookup form.
//
// Code is the identifier understood by the remote lookup API (e.g. "bca"),
// Name is the label shown to the user. Values are static reference data and
// are never mutated after start-up.
type Bank struct {
	Code string `json:"code"`
	Name string `json:"name"`
}
