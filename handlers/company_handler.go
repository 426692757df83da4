package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"transportreports/models"
	"transportreports/repository"
)

type CompanyHandler struct {
	Repo   repository.CompanyRepository
	Logger zerolog.Logger
}

func (h *CompanyHandler) SaveCompany(w http.ResponseWriter, r *http.Request) {
	var company models.Company
	if err := json.NewDecoder(r.Body).Decode(&company); err != nil {
		writeFail(w, http.StatusBadRequest, err.Error())
		return
	}
	if company.Name == "" {
		writeFail(w, http.StatusBadRequest, "name is required")
		return
	}

	if err := h.Repo.SaveCompany(r.Context(), &company); err != nil {
		writeError(w, h.Logger, r, err)
		return
	}
	writeData(w, http.StatusCreated, company)
}

func (h *CompanyHandler) GetCompany(w http.ResponseWriter, r *http.Request) {
	company, err := h.Repo.GetCompany(r.Context())
	if err != nil {
		writeError(w, h.Logger, r, err)
		return
	}
	if company == nil {
		writeFail(w, http.StatusNotFound, "company details not found")
		return
	}
	writeData(w, http.StatusOK, company)
}
