package handlers

import (
	"net/http"

	"github.com/coog-esports/admin-api/services"
)

type MembershipHandler struct {
	membershipService services.MembershipService
}

func NewMembershipHandler(ms services.MembershipService) *MembershipHandler {
	return &MembershipHandler{membershipService: ms}
}

func (h *MembershipHandler) CreateMembership(w http.ResponseWriter, r *http.Request) {
	var input services.CreateMembershipInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	membership, err := h.membershipService.CreateMembership(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"membership": membership}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *MembershipHandler) GetMembershipByID(w http.ResponseWriter, r *http.Request) {
	membershipID, err := getIDFromURL(r, "membershipID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	membership, err := h.membershipService.GetMembershipByID(r.Context(), membershipID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"membership": membership}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *MembershipHandler) ListMemberships(w http.ResponseWriter, r *http.Request) {
	skip, limit, err := parsePagination(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	memberships, err := h.membershipService.ListMemberships(r.Context(), skip, limit)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"memberships": memberships}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *MembershipHandler) ListMembershipsByUser(w http.ResponseWriter, r *http.Request) {
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

	memberships, err := h.membershipService.ListMembershipsByUser(r.Context(), userID, skip, limit)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"memberships": memberships}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *MembershipHandler) UpdateMembership(w http.ResponseWriter, r *http.Request) {
	membershipID, err := getIDFromURL(r, "membershipID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.UpdateMembershipInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	membership, err := h.membershipService.UpdateMembership(r.Context(), membershipID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"membership": membership}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *MembershipHandler) DeleteMembership(w http.ResponseWriter, r *http.Request) {
	membershipID, err := getIDFromURL(r, "membershipID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	membership, err := h.membershipService.DeleteMembership(r.Context(), membershipID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"membership": membership}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
