package handlers

import (
	"net/http"

	"github.com/coog-esports/admin-api/services"
)

type SponsorHandler struct {
	sponsorService services.SponsorService
}

func NewSponsorHandler(ss services.SponsorService) *SponsorHandler {
	return &SponsorHandler{sponsorService: ss}
}

func (h *SponsorHandler) CreateSponsor(w http.ResponseWriter, r *http.Request) {
	var input services.CreateSponsorInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	sponsor, err := h.sponsorService.CreateSponsor(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"sponsor": sponsor}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *SponsorHandler) GetSponsorByID(w http.ResponseWriter, r *http.Request) {
	sponsorID, err := getIDFromURL(r, "sponsorID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	sponsor, err := h.sponsorService.GetSponsorByID(r.Context(), sponsorID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"sponsor": sponsor}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *SponsorHandler) ListSponsors(w http.ResponseWriter, r *http.Request) {
	skip, limit, err := parsePagination(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	sponsors, err := h.sponsorService.ListSponsors(r.Context(), skip, limit)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"sponsors": sponsors}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *SponsorHandler) ListActiveSponsors(w http.ResponseWriter, r *http.Request) {
	skip, limit, err := parsePagination(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	sponsors, err := h.sponsorService.ListActiveSponsors(r.Context(), skip, limit)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"sponsors": sponsors}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *SponsorHandler) UpdateSponsor(w http.ResponseWriter, r *http.Request) {
	sponsorID, err := getIDFromURL(r, "sponsorID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.UpdateSponsorInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	sponsor, err := h.sponsorService.UpdateSponsor(r.Context(), sponsorID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"sponsor": sponsor}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *SponsorHandler) DeleteSponsor(w http.ResponseWriter, r *http.Request) {
	sponsorID, err := getIDFromURL(r, "sponsorID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	sponsor, err := h.sponsorService.DeleteSponsor(r.Context(), sponsorID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"sponsor": sponsor}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *SponsorHandler) UploadLogo(w http.ResponseWriter, r *http.Request) {
	sponsorID, err := getIDFromURL(r, "sponsorID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	file, contentType, err := readUploadedFile(r, "logo")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	defer file.Close()

	sponsor, err := h.sponsorService.UploadLogo(r.Context(), sponsorID, contentType, file)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"sponsor": sponsor}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
