package models

// LookupRequest is the body of POST /api/lookup.
type LookupRequest struct {
	// BankCode selects the bank namespace for every account number.
	BankCode string `json:"bank_code"`

	// AccountNumbers is the raw multi-line input, one account number per line.
	// It is parsed exactly like the form textarea.
	AccountNumbers string `json:"account_numbers"`
}

// LookupResponse is returned by POST /api/lookup on a fully successful batch.
// Results are ordered like the non-empty input lines.
type LookupResponse struct {
	Results []LookupResult `json:"results"`
}

// ErrorResponse is the JSON body written for failed API requests.
type ErrorResponse struct {
	Error string `json:"error"`
}
