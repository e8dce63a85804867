package handlers

import (
	"net/http"

	"github.com/coog-esports/admin-api/services"
)

type OfficerHandler struct {
	officerService services.OfficerService
}

func NewOfficerHandler(os services.OfficerService) *OfficerHandler {
	return &OfficerHandler{officerService: os}
}

func (h *OfficerHandler) CreateOfficer(w http.ResponseWriter, r *http.Request) {
	var input services.CreateOfficerInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	officer, err := h.officerService.CreateOfficer(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"officer": officer}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *OfficerHandler) GetOfficerByID(w http.ResponseWriter, r *http.Request) {
	officerID, err := getIDFromURL(r, "officerID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	officer, err := h.officerService.GetOfficerByID(r.Context(), officerID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"officer": officer}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *OfficerHandler) ListOfficers(w http.ResponseWriter, r *http.Request) {
	skip, limit, err := parsePagination(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	officers, err := h.officerService.ListOfficers(r.Context(), skip, limit)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"officers": officers}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *OfficerHandler) ListOfficersByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := getIDFromURL(r, "userID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	skip, limit, err := parsePagination(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	officers, err := h.officerService.ListOfficersByUser(r.Context(), userID, skip, limit)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"officers": officers}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *OfficerHandler) UpdateOfficer(w http.ResponseWriter, r *http.Request) {
	officerID, err := getIDFromURL(r, "officerID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.UpdateOfficerInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	officer, err := h.officerService.UpdateOfficer(r.Context(), officerID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"officer": officer}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *OfficerHandler) DeleteOfficer(w http.ResponseWriter, r *http.Request) {
	officerID, err := getIDFromURL(r, "officerID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	officer, err := h.officerService.DeleteOfficer(r.Context(), officerID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"officer": officer}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *OfficerHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	officerID, err := getIDFromURL(r, "officerID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	file, contentType, err := readUploadedFile(r, "image")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	defer file.Close()

	officer, err := h.officerService.UploadImage(r.Context(), officerID, contentType, file)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"officer": officer}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
