package services

import (
	"context"
	"testing"
	"time"

	"github.com/coog-esports/admin-api/models"
	"github.com/coog-esports/admin-api/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserServiceForTest(userRepo *fakeUserRepo, membershipRepo *fakeMembershipRepo, officerRepo *fakeOfficerRepo) UserService {
	if userRepo == nil {
		userRepo = &fakeUserRepo{users: map[int]*models.User{}}
	}
	if membershipRepo == nil {
		membershipRepo = &fakeMembershipRepo{}
	}
	if officerRepo == nil {
		officerRepo = &fakeOfficerRepo{}
	}
	return NewUserService(userRepo, membershipRepo, officerRepo)
}

func TestCreateUserRequiredFields(t *testing.T) {
	svc := newUserServiceForTest(nil, nil, nil)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, CreateUserInput{Password: "pw", FirstName: "Sam", LastName: "Cruz"})
	assert.ErrorIs(t, err, ErrUserEmailRequired)

	_, err = svc.CreateUser(ctx, CreateUserInput{Email: "sam@uh.edu", FirstName: "Sam", LastName: "Cruz"})
	assert.ErrorIs(t, err, ErrUserPasswordRequired)

	_, err = svc.CreateUser(ctx, CreateUserInput{Email: "sam@uh.edu", Password: "pw", LastName: "Cruz"})
	assert.ErrorIs(t, err, ErrUserNameRequired)

	_, err = svc.CreateUser(ctx, CreateUserInput{Email: "  ", Password: "pw", FirstName: "Sam", LastName: "Cruz"})
	assert.ErrorIs(t, err, ErrUserEmailRequired)
}

func TestCreateUserEmailTaken(t *testing.T) {
	userRepo := &fakeUserRepo{users: map[int]*models.User{}, emailTaken: true}
	svc := newUserServiceForTest(userRepo, nil, nil)

	_, err := svc.CreateUser(context.Background(), CreateUserInput{
		Email:     "sam@uh.edu",
		Password:  "pw",
		FirstName: "Sam",
		LastName:  "Cruz",
	})
	assert.ErrorIs(t, err, ErrEmailRegistered)
}

func TestCreateUserHashesPasswordAndDefaultsSignupDate(t *testing.T) {
	userRepo := &fakeUserRepo{users: map[int]*models.User{}}
	svc := newUserServiceForTest(userRepo, nil, nil)

	before := time.Now().UTC()
	user, err := svc.CreateUser(context.Background(), CreateUserInput{
		Email:     " sam@uh.edu ",
		Password:  "secret",
		FirstName: "Sam",
		LastName:  "Cruz",
	})
	require.NoError(t, err)

	assert.Equal(t, "sam@uh.edu", user.Email)
	assert.NotEqual(t, "secret", user.PasswordHash)
	assert.True(t, utils.CheckPasswordHash("secret", user.PasswordHash))
	assert.False(t, user.SignupDate.Before(before))
	require.NotNil(t, userRepo.created)
}

func TestUpdateUserEmailConflict(t *testing.T) {
	userRepo := &fakeUserRepo{
		users:      map[int]*models.User{1: {ID: 1, Email: "sam@uh.edu", FirstName: "Sam", LastName: "Cruz"}},
		emailTaken: true,
	}
	svc := newUserServiceForTest(userRepo, nil, nil)
	ctx := context.Background()

	other := "taken@uh.edu"
	_, err := svc.UpdateUser(ctx, 1, UpdateUserInput{Email: &other})
	assert.ErrorIs(t, err, ErrEmailRegistered)

	// Re-submitting the user's own email must not trip the uniqueness check.
	same := "sam@uh.edu"
	updated, err := svc.UpdateUser(ctx, 1, UpdateUserInput{Email: &same})
	require.NoError(t, err)
	assert.Equal(t, "sam@uh.edu", updated.Email)
}

func TestGetUserByIDNotFound(t *testing.T) {
	svc := newUserServiceForTest(nil, nil, nil)

	_, err := svc.GetUserByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestDeleteUserWithDependents(t *testing.T) {
	userRepo := &fakeUserRepo{users: map[int]*models.User{1: {ID: 1, Email: "sam@uh.edu"}}}

	_, err := newUserServiceForTest(userRepo, &fakeMembershipRepo{existsByUser: true}, nil).
		DeleteUser(context.Background(), 1)
	assert.ErrorIs(t, err, ErrUserHasDependents)

	_, err = newUserServiceForTest(userRepo, nil, &fakeOfficerRepo{existsByUser: true}).
		DeleteUser(context.Background(), 1)
	assert.ErrorIs(t, err, ErrUserHasDependents)

	deleted, err := newUserServiceForTest(userRepo, nil, nil).DeleteUser(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, userRepo.deletedID)
	assert.Equal(t, "sam@uh.edu", deleted.Email)
}
