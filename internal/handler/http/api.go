package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-account-checker/internal/app"
	"github.com/MKhiriev/go-account-checker/internal/logger"
	"github.com/MKhiriev/go-account-checker/internal/service"
	"github.com/MKhiriev/go-account-checker/internal/utils"
	"github.com/MKhiriev/go-account-checker/models"
)

func (h *Handler) listBanks(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if _, err := utils.WriteJSON(w, h.services.Banks.All(), http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.listBanks").Msg("error writing bank list")
	}
}

// lookup resolves a batch without touching any form session.
func (h *Handler) lookup(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.LookupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.lookup").Msg(app.MsgInvalidJSON)
		h.writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	if err := h.services.LookupRequestValidator.Validate(r.Context(), req); err != nil {
		log.Debug().Err(err).Str("func", "*Handler.lookup").Msg("invalid lookup request")
		h.writeError(w, r, err)
		return
	}
	bank, _ := h.services.Banks.Find(req.BankCode)

	accountNumbers := service.ParseAccountNumbers(req.AccountNumbers)
	results, err := h.services.LookupService.Lookup(r.Context(), bank.Code, accountNumbers)
	if err != nil {
		log.Err(err).Str("func", "*Handler.lookup").
			Str("bank_code", bank.Code).
			Int("accounts", len(accountNumbers)).
			Msg(app.MsgErrorFetchingData)
		h.writeError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, models.LookupResponse{Results: results}, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.lookup").Msg("error writing lookup response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	if _, werr := utils.WriteJSONError(w, err.Error(), statusFromError(err)); werr != nil {
		logger.FromRequest(r).Err(werr).Msg("error writing error response")
	}
}
