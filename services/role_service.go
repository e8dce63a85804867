package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/coog-esports/admin-api/models"
	"github.com/coog-esports/admin-api/repositories"
)

var ErrRoleNameRequired = errors.New("role name is required")

type RoleService interface {
	CreateRole(ctx context.Context, input CreateRoleInput) (*models.Role, error)
	GetRoleByID(ctx context.Context, id int) (*models.Role, error)
	ListRoles(ctx context.Context, skip, limit int) ([]models.Role, error)
	UpdateRole(ctx context.Context, id int, input UpdateRoleInput) (*models.Role, error)
	DeleteRole(ctx context.Context, id int) (*models.Role, error)
}

type CreateRoleInput struct {
	RoleName string `json:"role_name"`
}

type UpdateRoleInput struct {
	RoleName *string `json:"role_name"`
}

type roleService struct {
	roleRepo    repositories.RoleRepository
	officerRepo repositories.OfficerRepository
}

func NewRoleService(roleRepo repositories.RoleRepository, officerRepo repositories.OfficerRepository) RoleService {
	return &roleService{
		roleRepo:    roleRepo,
		officerRepo: officerRepo,
	}
}

func (s *roleService) CreateRole(ctx context.Context, input CreateRoleInput) (*models.Role, error) {
	name := trimmed(input.RoleName)
	if name == "" {
		return nil, ErrRoleNameRequired
	}

	taken, err := s.roleRepo.NameTaken(ctx, name, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to check role name uniqueness: %w", err)
	}
	if taken {
		return nil, ErrRoleNameConflict
	}

	role := &models.Role{RoleName: name}
	if err := s.roleRepo.Create(ctx, role); err != nil {
		if errors.Is(err, repositories.ErrRoleNameConflict) {
			return nil, ErrRoleNameConflict
		}
		return nil, fmt.Errorf("failed to create role: %w", err)
	}
	return role, nil
}

func (s *roleService) GetRoleByID(ctx context.Context, id int) (*models.Role, error) {
	role, err := s.roleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrRoleNotFound) {
			return nil, ErrRoleNotFound
		}
		return nil, fmt.Errorf("failed to get role %d: %w", id, err)
	}
	return role, nil
}

func (s *roleService) ListRoles(ctx context.Context, skip, limit int) ([]models.Role, error) {
	roles, err := s.roleRepo.List(ctx, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}
	if roles == nil {
		return []models.Role{}, nil
	}
	return roles, nil
}

func (s *roleService) UpdateRole(ctx context.Context, id int, input UpdateRoleInput) (*models.Role, error) {
	role, err := s.GetRoleByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.RoleName != nil {
		name := trimmed(*input.RoleName)
		if name == "" {
			return nil, ErrRoleNameRequired
		}
		if name != role.RoleName {
			taken, err := s.roleRepo.NameTaken(ctx, name, id)
			if err != nil {
				return nil, fmt.Errorf("failed to check role name uniqueness: %w", err)
			}
			if taken {
				return nil, ErrRoleNameConflict
			}
		}
		role.RoleName = name
	}

	if err := s.roleRepo.Update(ctx, role); err != nil {
		switch {
		case errors.Is(err, repositories.ErrRoleNotFound):
			return nil, ErrRoleNotFound
		case errors.Is(err, repositories.ErrRoleNameConflict):
			return nil, ErrRoleNameConflict
		default:
			return nil, fmt.Errorf("failed to update role %d: %w", id, err)
		}
	}
	return role, nil
}

func (s *roleService) DeleteRole(ctx context.Context, id int) (*models.Role, error) {
	role, err := s.GetRoleByID(ctx, id)
	if err != nil {
		return nil, err
	}

	inUse, err := s.officerRepo.ExistsByRoleID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to check role usage: %w", err)
	}
	if inUse {
		return nil, ErrRoleHasOfficers
	}

	if err := s.roleRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrRoleNotFound) {
			return nil, ErrRoleNotFound
		}
		return nil, fmt.Errorf("failed to delete role %d: %w", id, err)
	}
	return role, nil
}
