package handlers

import (
	"net/http"

	"github.com/coog-esports/admin-api/services"
)

type RoleHandler struct {
	roleService services.RoleService
}

func NewRoleHandler(rs services.RoleService) *RoleHandler {
	return &RoleHandler{roleService: rs}
}

func (h *RoleHandler) CreateRole(w http.ResponseWriter, r *http.Request) {
	var input services.CreateRoleInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	role, err := h.roleService.CreateRole(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"role": role}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *RoleHandler) GetRoleByID(w http.ResponseWriter, r *http.Request) {
	roleID, err := getIDFromURL(r, "roleID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	role, err := h.roleService.GetRoleByID(r.Context(), roleID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"role": role}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *RoleHandler) ListRoles(w http.ResponseWriter, r *http.Request) {
	skip, limit, err := parsePagination(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	roles, err := h.roleService.ListRoles(r.Context(), skip, limit)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"roles": roles}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *RoleHandler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	roleID, err := getIDFromURL(r, "roleID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.UpdateRoleInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	role, err := h.roleService.UpdateRole(r.Context(), roleID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"role": role}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *RoleHandler) DeleteRole(w http.ResponseWriter, r *http.Request) {
	roleID, err := getIDFromURL(r, "roleID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	role, err := h.roleService.DeleteRole(r.Context(), roleID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"role": role}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
