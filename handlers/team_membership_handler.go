package handlers

import (
	"net/http"

	"github.com/coog-esports/admin-api/services"
)

type TeamMembershipHandler struct {
	teamMembershipService services.TeamMembershipService
}

func NewTeamMembershipHandler(ts services.TeamMembershipService) *TeamMembershipHandler {
	return &TeamMembershipHandler{teamMembershipService: ts}
}

func (h *TeamMembershipHandler) CreateTeamMembership(w http.ResponseWriter, r *http.Request) {
	var input services.CreateTeamMembershipInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	teamMembership, err := h.teamMembershipService.CreateTeamMembership(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"team_membership": teamMembership}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *TeamMembershipHandler) GetTeamMembership(w http.ResponseWriter, r *http.Request) {
	teamID, err := getIDFromURL(r, "teamID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	membershipID, err := getIDFromURL(r, "membershipID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	teamMembership, err := h.teamMembershipService.GetTeamMembership(r.Context(), teamID, membershipID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"team_membership": teamMembership}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *TeamMembershipHandler) ListTeamMemberships(w http.ResponseWriter, r *http.Request) {
	skip, limit, err := parsePagination(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	teamMemberships, err := h.teamMembershipService.ListTeamMemberships(r.Context(), skip, limit)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"team_memberships": teamMemberships}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *TeamMembershipHandler) ListTeamMembershipsByTeam(w http.ResponseWriter, r *http.Request) {
	teamID, err := getIDFromURL(r, "teamID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	skip, limit, err := parsePagination(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	teamMemberships, err := h.teamMembershipService.ListTeamMembershipsByTeam(r.Context(), teamID, skip, limit)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"team_memberships": teamMemberships}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *TeamMembershipHandler) UpdateTeamMembership(w http.ResponseWriter, r *http.Request) {
	teamID, err := getIDFromURL(r, "teamID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	membershipID, err := getIDFromURL(r, "membershipID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.UpdateTeamMembershipInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	teamMembership, err := h.teamMembershipService.UpdateTeamMembership(r.Context(), teamID, membershipID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"team_membership": teamMembership}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *TeamMembershipHandler) DeleteTeamMembership(w http.ResponseWriter, r *http.Request) {
	teamID, err := getIDFromURL(r, "teamID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	membershipID, err := getIDFromURL(r, "membershipID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	membership, err := h.teamMembershipService.DeleteTeamMembership(r.Context(), teamID, membershipID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"team_membership": membership}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
