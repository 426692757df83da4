package handlers

import (
	"encoding/json"
	"net/http"

	"transportreports/models"
	"transportreports/report"
	"transportreports/utils"
)

type MemoHandler struct{}

type cashMemoResponse struct {
	report.CashMemoTotals
	Words string `json:"words"`
}

type hireSlipResponse struct {
	report.HireSlipBreakdown
	Words string `json:"words"`
}

func (h *MemoHandler) CashMemoTotals(w http.ResponseWriter, r *http.Request) {
	var memo models.CashMemo
	if err := json.NewDecoder(r.Body).Decode(&memo); err != nil {
		writeFail(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := validate.Struct(memo); err != nil {
		writeFail(w, http.StatusBadRequest, err.Error())
		return
	}

	// A discount above the freight is returned as computed.
	totals := report.CashMemoTotal(memo)
	writeData(w, http.StatusOK, cashMemoResponse{CashMemoTotals: totals, Words: utils.SignedAmountInWords(totals.Total)})
}

func (h *MemoHandler) HireSlipTotals(w http.ResponseWriter, r *http.Request) {
	var slip models.HireSlip
	if err := json.NewDecoder(r.Body).Decode(&slip); err != nil {
		writeFail(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := validate.Struct(slip); err != nil {
		writeFail(w, http.StatusBadRequest, err.Error())
		return
	}

	// An advance above the hire leaves a negative balance, recovered from the owner.
	totals := report.HireSlipTotals(slip)
	writeData(w, http.StatusOK, hireSlipResponse{HireSlipBreakdown: totals, Words: utils.SignedAmountInWords(totals.Balance)})
}
