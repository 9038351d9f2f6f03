// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-account-checker/internal/app"
	"github.com/MKhiriev/go-account-checker/internal/logger"
	"github.com/MKhiriev/go-account-checker/internal/service"
	"github.com/MKhiriev/go-account-checker/models"
	"github.com/google/uuid"
)

const (
	sessionCookieName = "session_id"

	formFieldAccountNumbers = "account_numbers"
	formFieldBankCode       = "bank_code"
)

// formPage is the data rendered by templates/form.html.
type formPage struct {
	State            models.FormState
	Banks            []models.Bank
	SelectedBankCode string
	Version          string
}

// sessionID returns the form session of the caller, issuing a new session
// cookie when the request carries none or a malformed one.
func sessionID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(sessionCookieName); err == nil {
		if _, err = uuid.Parse(c.Value); err == nil {
			return c.Value
		}
	}

	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

func (h *Handler) showForm(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	state := h.services.QueryClient.State(sessionID(w, r))

	banks := h.services.Banks.All()
	selected := state.SelectedBankCode
	if selected == "" && len(banks) > 0 {
		selected = banks[0].Code
	}

	page := formPage{
		State:            state,
		Banks:            banks,
		SelectedBankCode: selected,
		Version:          h.services.AppInfoService.GetAppVersion(r.Context()),
	}

	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, "form.html", page); err != nil {
		log.Err(err).Str("func", "*Handler.showForm").Msg("error rendering form")
		http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// submitForm runs the batch lookup of the submitted form and redirects back
// to the form, which renders the new state of the session.
func (h *Handler) submitForm(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Str("func", "*Handler.submitForm").Msg(app.MsgInvalidForm)
		http.Error(w, app.MsgInvalidForm, http.StatusBadRequest)
		return
	}

	id := sessionID(w, r)
	raw := r.PostFormValue(formFieldAccountNumbers)
	bankCode := r.PostFormValue(formFieldBankCode)

	_, err := h.services.QueryClient.Submit(r.Context(), id, raw, bankCode)
	switch {
	case errors.Is(err, service.ErrSubmissionInProgress):
		log.Debug().Str("session_id", id).Msg("submission ignored while a batch is pending")
	case err != nil:
		// the failure is recorded in the session state and rendered by the form
		log.Debug().Str("session_id", id).Msg("form submission failed")
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
