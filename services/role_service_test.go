package services

import (
	"context"
	"testing"

	"github.com/coog-esports/admin-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRoleNameRequired(t *testing.T) {
	svc := NewRoleService(&fakeRoleRepo{}, nil)

	_, err := svc.CreateRole(context.Background(), CreateRoleInput{RoleName: "   "})
	assert.ErrorIs(t, err, ErrRoleNameRequired)
}

func TestCreateRoleNameConflict(t *testing.T) {
	svc := NewRoleService(&fakeRoleRepo{nameTaken: true}, nil)

	_, err := svc.CreateRole(context.Background(), CreateRoleInput{RoleName: "President"})
	assert.ErrorIs(t, err, ErrRoleNameConflict)
}

func TestCreateRoleTrimsName(t *testing.T) {
	roleRepo := &fakeRoleRepo{}
	svc := NewRoleService(roleRepo, nil)

	created, err := svc.CreateRole(context.Background(), CreateRoleInput{RoleName: "  Treasurer  "})
	require.NoError(t, err)
	assert.Equal(t, "Treasurer", created.RoleName)
}

func TestDeleteRoleWithOfficers(t *testing.T) {
	roleRepo := &fakeRoleRepo{roles: map[int]*models.Role{3: {ID: 3, RoleName: "Treasurer"}}}
	svc := NewRoleService(roleRepo, &fakeOfficerRepo{existsByRole: true})

	_, err := svc.DeleteRole(context.Background(), 3)
	assert.ErrorIs(t, err, ErrRoleHasOfficers)
	assert.Zero(t, roleRepo.deletedID)
}

func TestDeleteRoleWithoutOfficers(t *testing.T) {
	roleRepo := &fakeRoleRepo{roles: map[int]*models.Role{3: {ID: 3, RoleName: "Treasurer"}}}
	svc := NewRoleService(roleRepo, &fakeOfficerRepo{})

	deleted, err := svc.DeleteRole(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, 3, roleRepo.deletedID)
	assert.Equal(t, "Treasurer", deleted.RoleName)
}

func TestDeleteRoleNotFound(t *testing.T) {
	svc := NewRoleService(&fakeRoleRepo{}, &fakeOfficerRepo{existsByRole: true})

	// A missing role reports 404 before the officer guard gets a say.
	_, err := svc.DeleteRole(context.Background(), 42)
	assert.ErrorIs(t, err, ErrRoleNotFound)
}
