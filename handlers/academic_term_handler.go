package handlers

import (
	"net/http"

	"github.com/coog-esports/admin-api/services"
)

type AcademicTermHandler struct {
	termService services.AcademicTermService
}

func NewAcademicTermHandler(ts services.AcademicTermService) *AcademicTermHandler {
	return &AcademicTermHandler{termService: ts}
}

func (h *AcademicTermHandler) CreateAcademicTerm(w http.ResponseWriter, r *http.Request) {
	var input services.CreateAcademicTermInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	term, err := h.termService.CreateAcademicTerm(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"academic_term": term}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *AcademicTermHandler) GetAcademicTermByID(w http.ResponseWriter, r *http.Request) {
	termID, err := getIDFromURL(r, "termID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	term, err := h.termService.GetAcademicTermByID(r.Context(), termID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"academic_term": term}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *AcademicTermHandler) ListAcademicTerms(w http.ResponseWriter, r *http.Request) {
	skip, limit, err := parsePagination(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	terms, err := h.termService.ListAcademicTerms(r.Context(), skip, limit)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"academic_terms": terms}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *AcademicTermHandler) UpdateAcademicTerm(w http.ResponseWriter, r *http.Request) {
	termID, err := getIDFromURL(r, "termID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.UpdateAcademicTermInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	term, err := h.termService.UpdateAcademicTerm(r.Context(), termID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"academic_term": term}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *AcademicTermHandler) DeleteAcademicTerm(w http.ResponseWriter, r *http.Request) {
	termID, err := getIDFromURL(r, "termID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	term, err := h.termService.DeleteAcademicTerm(r.Context(), termID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"academic_term": term}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
