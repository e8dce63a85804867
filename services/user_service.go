package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/coog-esports/admin-api/models"
	"github.com/coog-esports/admin-api/repositories"
	"github.com/coog-esports/admin-api/utils"
)

var (
	ErrUserEmailRequired    = errors.New("email is required")
	ErrUserPasswordRequired = errors.New("password is required")
	ErrUserNameRequired     = errors.New("first and last name are required")
)

type UserService interface {
	CreateUser(ctx context.Context, input CreateUserInput) (*models.User, error)
	GetUserByID(ctx context.Context, id int) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	ListUsers(ctx context.Context, skip, limit int) ([]models.User, error)
	UpdateUser(ctx context.Context, id int, input UpdateUserInput) (*models.User, error)
	DeleteUser(ctx context.Context, id int) (*models.User, error)
}

type CreateUserInput struct {
	Email      string     `json:"email"`
	Password   string     `json:"password"`
	FirstName  string     `json:"first_name"`
	LastName   string     `json:"last_name"`
	SignupDate *time.Time `json:"signup_date"`
}

type UpdateUserInput struct {
	Email      *string    `json:"email"`
	Password   *string    `json:"password"`
	FirstName  *string    `json:"first_name"`
	LastName   *string    `json:"last_name"`
	SignupDate *time.Time `json:"signup_date"`
}

type userService struct {
	userRepo       repositories.UserRepository
	membershipRepo repositories.MembershipRepository
	officerRepo    repositories.OfficerRepository
}

func NewUserService(
	userRepo repositories.UserRepository,
	membershipRepo repositories.MembershipRepository,
	officerRepo repositories.OfficerRepository,
) UserService {
	return &userService{
		userRepo:       userRepo,
		membershipRepo: membershipRepo,
		officerRepo:    officerRepo,
	}
}

func (s *userService) CreateUser(ctx context.Context, input CreateUserInput) (*models.User, error) {
	email := trimmed(input.Email)
	if email == "" {
		return nil, ErrUserEmailRequired
	}
	if input.Password == "" {
		return nil, ErrUserPasswordRequired
	}
	firstName := trimmed(input.FirstName)
	lastName := trimmed(input.LastName)
	if firstName == "" || lastName == "" {
		return nil, ErrUserNameRequired
	}

	taken, err := s.userRepo.EmailTaken(ctx, email, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to check email uniqueness: %w", err)
	}
	if taken {
		return nil, ErrEmailRegistered
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	signupDate := time.Now().UTC()
	if input.SignupDate != nil {
		signupDate = *input.SignupDate
	}

	user := &models.User{
		Email:        email,
		PasswordHash: hash,
		FirstName:    firstName,
		LastName:     lastName,
		SignupDate:   signupDate,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrUserEmailConflict) {
			return nil, ErrEmailRegistered
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

func (s *userService) GetUserByID(ctx context.Context, id int) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user %d: %w", id, err)
	}
	return user, nil
}

func (s *userService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, trimmed(email))
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context, skip, limit int) ([]models.User, error) {
	users, err := s.userRepo.List(ctx, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	if users == nil {
		return []models.User{}, nil
	}
	return users, nil
}

func (s *userService) UpdateUser(ctx context.Context, id int, input UpdateUserInput) (*models.User, error) {
	user, err := s.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Email != nil {
		email := trimmed(*input.Email)
		if email == "" {
			return nil, ErrUserEmailRequired
		}
		if email != user.Email {
			taken, err := s.userRepo.EmailTaken(ctx, email, id)
			if err != nil {
				return nil, fmt.Errorf("failed to check email uniqueness: %w", err)
			}
			if taken {
				return nil, ErrEmailRegistered
			}
		}
		user.Email = email
	}
	if input.Password != nil {
		if *input.Password == "" {
			return nil, ErrUserPasswordRequired
		}
		hash, err := utils.HashPassword(*input.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = hash
	}
	if input.FirstName != nil {
		name := trimmed(*input.FirstName)
		if name == "" {
			return nil, ErrUserNameRequired
		}
		user.FirstName = name
	}
	if input.LastName != nil {
		name := trimmed(*input.LastName)
		if name == "" {
			return nil, ErrUserNameRequired
		}
		user.LastName = name
	}
	if input.SignupDate != nil {
		user.SignupDate = *input.SignupDate
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		switch {
		case errors.Is(err, repositories.ErrUserNotFound):
			return nil, ErrUserNotFound
		case errors.Is(err, repositories.ErrUserEmailConflict):
			return nil, ErrEmailRegistered
		default:
			return nil, fmt.Errorf("failed to update user %d: %w", id, err)
		}
	}
	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, id int) (*models.User, error) {
	user, err := s.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	hasMemberships, err := s.membershipRepo.ExistsByUserID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to check user memberships: %w", err)
	}
	hasOfficerRoles, err := s.officerRepo.ExistsByUserID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to check user officer roles: %w", err)
	}
	if hasMemberships || hasOfficerRoles {
		return nil, ErrUserHasDependents
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to delete user %d: %w", id, err)
	}
	return user, nil
}
