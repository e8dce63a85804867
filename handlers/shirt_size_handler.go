package handlers

import (
	"net/http"

	"github.com/coog-esports/admin-api/services"
)

type ShirtSizeHandler struct {
	shirtSizeService services.ShirtSizeService
}

func NewShirtSizeHandler(ss services.ShirtSizeService) *ShirtSizeHandler {
	return &ShirtSizeHandler{shirtSizeService: ss}
}

func (h *ShirtSizeHandler) CreateShirtSize(w http.ResponseWriter, r *http.Request) {
	var input services.CreateShirtSizeInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	size, err := h.shirtSizeService.CreateShirtSize(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"shirt_size": size}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ShirtSizeHandler) GetShirtSizeByID(w http.ResponseWriter, r *http.Request) {
	sizeID, err := getIDFromURL(r, "sizeID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	size, err := h.shirtSizeService.GetShirtSizeByID(r.Context(), sizeID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"shirt_size": size}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ShirtSizeHandler) ListShirtSizes(w http.ResponseWriter, r *http.Request) {
	skip, limit, err := parsePagination(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	sizes, err := h.shirtSizeService.ListShirtSizes(r.Context(), skip, limit)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"shirt_sizes": sizes}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ShirtSizeHandler) UpdateShirtSize(w http.ResponseWriter, r *http.Request) {
	sizeID, err := getIDFromURL(r, "sizeID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.UpdateShirtSizeInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	size, err := h.shirtSizeService.UpdateShirtSize(r.Context(), sizeID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"shirt_size": size}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ShirtSizeHandler) DeleteShirtSize(w http.ResponseWriter, r *http.Request) {
	sizeID, err := getIDFromURL(r, "sizeID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	size, err := h.shirtSizeService.DeleteShirtSize(r.Context(), sizeID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"shirt_size": size}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
