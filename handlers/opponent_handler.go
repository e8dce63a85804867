package handlers

import (
	"net/http"

	"github.com/coog-esports/admin-api/services"
)

type OpponentHandler struct {
	opponentService services.OpponentService
}

func NewOpponentHandler(os services.OpponentService) *OpponentHandler {
	return &OpponentHandler{opponentService: os}
}

func (h *OpponentHandler) CreateOpponent(w http.ResponseWriter, r *http.Request) {
	var input services.CreateOpponentInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	opponent, err := h.opponentService.CreateOpponent(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"opponent": opponent}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *OpponentHandler) GetOpponentByID(w http.ResponseWriter, r *http.Request) {
	opponentID, err := getIDFromURL(r, "opponentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	opponent, err := h.opponentService.GetOpponentByID(r.Context(), opponentID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"opponent": opponent}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *OpponentHandler) ListOpponents(w http.ResponseWriter, r *http.Request) {
	skip, limit, err := parsePagination(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	opponents, err := h.opponentService.ListOpponents(r.Context(), skip, limit)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"opponents": opponents}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *OpponentHandler) ListOpponentsByGame(w http.ResponseWriter, r *http.Request) {
	gameID, err := getIDFromURL(r, "gameID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	skip, limit, err := parsePagination(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	opponents, err := h.opponentService.ListOpponentsByGame(r.Context(), gameID, skip, limit)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"opponents": opponents}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *OpponentHandler) UpdateOpponent(w http.ResponseWriter, r *http.Request) {
	opponentID, err := getIDFromURL(r, "opponentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.UpdateOpponentInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	opponent, err := h.opponentService.UpdateOpponent(r.Context(), opponentID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"opponent": opponent}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *OpponentHandler) DeleteOpponent(w http.ResponseWriter, r *http.Request) {
	opponentID, err := getIDFromURL(r, "opponentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	opponent, err := h.opponentService.DeleteOpponent(r.Context(), opponentID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"opponent": opponent}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *OpponentHandler) UploadLogo(w http.ResponseWriter, r *http.Request) {
	opponentID, err := getIDFromURL(r, "opponentID")
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

	opponent, err := h.opponentService.UploadLogo(r.Context(), opponentID, contentType, file)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"opponent": opponent}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
