package handlers

import (
	"net/http"

	"github.com/coog-esports/admin-api/services"
)

type MediaHandler struct {
	mediaService services.MediaService
}

func NewMediaHandler(ms services.MediaService) *MediaHandler {
	return &MediaHandler{mediaService: ms}
}

func (h *MediaHandler) CreateMedia(w http.ResponseWriter, r *http.Request) {
	var input services.CreateMediaInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	media, err := h.mediaService.CreateMedia(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"media": media}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *MediaHandler) GetMediaByID(w http.ResponseWriter, r *http.Request) {
	mediaID, err := getIDFromURL(r, "mediaID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	media, err := h.mediaService.GetMediaByID(r.Context(), mediaID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"media": media}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *MediaHandler) ListMedia(w http.ResponseWriter, r *http.Request) {
	skip, limit, err := parsePagination(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	media, err := h.mediaService.ListMedia(r.Context(), skip, limit)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"media": media}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *MediaHandler) ListMediaByTerm(w http.ResponseWriter, r *http.Request) {
	termID, err := getIDFromURL(r, "termID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	skip, limit, err := parsePagination(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	media, err := h.mediaService.ListMediaByTerm(r.Context(), termID, skip, limit)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"media": media}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *MediaHandler) UpdateMedia(w http.ResponseWriter, r *http.Request) {
	mediaID, err := getIDFromURL(r, "mediaID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.UpdateMediaInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	media, err := h.mediaService.UpdateMedia(r.Context(), mediaID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"media": media}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *MediaHandler) DeleteMedia(w http.ResponseWriter, r *http.Request) {
	mediaID, err := getIDFromURL(r, "mediaID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	media, err := h.mediaService.DeleteMedia(r.Context(), mediaID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"media": media}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *MediaHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	mediaID, err := getIDFromURL(r, "mediaID")
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

	media, err := h.mediaService.UploadImage(r.Context(), mediaID, contentType, file)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"media": media}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
