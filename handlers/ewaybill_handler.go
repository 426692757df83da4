package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"transportreports/ewaybill"
	"transportreports/service"
)

type EwayBillHandler struct {
	Service *service.ReportService
	Logger  zerolog.Logger
}

// GetErrors describes a comma separated list of error codes, e.g. "312,238".
func (h *EwayBillHandler) GetErrors(w http.ResponseWriter, r *http.Request) {
	errs := ewaybill.Describe(chi.URLParam(r, "code"))
	if len(errs) == 0 {
		writeFail(w, http.StatusBadRequest, "no error codes given")
		return
	}
	writeData(w, http.StatusOK, errs)
}

func (h *EwayBillHandler) GetConsolidated(w http.ResponseWriter, r *http.Request) {
	ldmNo := r.URL.Query().Get("ldm_no")
	if ldmNo == "" {
		writeFail(w, http.StatusBadRequest, "missing ldm_no")
		return
	}
	req, err := h.Service.Consolidated(r.Context(), ldmNo)
	if err != nil {
		writeError(w, h.Logger, r, err)
		return
	}
	writeData(w, http.StatusOK, req)
}
