package handlers

import (
	"net/http"

	"github.com/coog-esports/admin-api/services"
)

type CoordinatorHandler struct {
	coordinatorService services.CoordinatorService
}

func NewCoordinatorHandler(cs services.CoordinatorService) *CoordinatorHandler {
	return &CoordinatorHandler{coordinatorService: cs}
}

func (h *CoordinatorHandler) CreateCoordinator(w http.ResponseWriter, r *http.Request) {
	var input services.CreateCoordinatorInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	coordinator, err := h.coordinatorService.CreateCoordinator(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"coordinator": coordinator}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *CoordinatorHandler) GetCoordinatorByID(w http.ResponseWriter, r *http.Request) {
	coordinatorID, err := getIDFromURL(r, "coordinatorID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	coordinator, err := h.coordinatorService.GetCoordinatorByID(r.Context(), coordinatorID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"coordinator": coordinator}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *CoordinatorHandler) ListCoordinators(w http.ResponseWriter, r *http.Request) {
	skip, limit, err := parsePagination(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	coordinators, err := h.coordinatorService.ListCoordinators(r.Context(), skip, limit)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"coordinators": coordinators}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *CoordinatorHandler) ListCoordinatorsByGame(w http.ResponseWriter, r *http.Request) {
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

	coordinators, err := h.coordinatorService.ListCoordinatorsByGame(r.Context(), gameID, skip, limit)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"coordinators": coordinators}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *CoordinatorHandler) UpdateCoordinator(w http.ResponseWriter, r *http.Request) {
	coordinatorID, err := getIDFromURL(r, "coordinatorID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.UpdateCoordinatorInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	coordinator, err := h.coordinatorService.UpdateCoordinator(r.Context(), coordinatorID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"coordinator": coordinator}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *CoordinatorHandler) DeleteCoordinator(w http.ResponseWriter, r *http.Request) {
	coordinatorID, err := getIDFromURL(r, "coordinatorID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	coordinator, err := h.coordinatorService.DeleteCoordinator(r.Context(), coordinatorID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"coordinator": coordinator}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
