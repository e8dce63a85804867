package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/coog-esports/admin-api/models"
	"github.com/coog-esports/admin-api/services"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserService struct {
	createFn func(ctx context.Context, input services.CreateUserInput) (*models.User, error)
	getFn    func(ctx context.Context, id int) (*models.User, error)
	listFn   func(ctx context.Context, skip, limit int) ([]models.User, error)
	deleteFn func(ctx context.Context, id int) (*models.User, error)
}

func (f *fakeUserService) CreateUser(ctx context.Context, input services.CreateUserInput) (*models.User, error) {
	return f.createFn(ctx, input)
}

func (f *fakeUserService) GetUserByID(ctx context.Context, id int) (*models.User, error) {
	return f.getFn(ctx, id)
}

func (f *fakeUserService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	panic("not expected")
}

func (f *fakeUserService) ListUsers(ctx context.Context, skip, limit int) ([]models.User, error) {
	return f.listFn(ctx, skip, limit)
}

func (f *fakeUserService) UpdateUser(ctx context.Context, id int, input services.UpdateUserInput) (*models.User, error) {
	panic("not expected")
}

func (f *fakeUserService) DeleteUser(ctx context.Context, id int) (*models.User, error) {
	return f.deleteFn(ctx, id)
}

func newUserRouter(svc services.UserService) *chi.Mux {
	h := NewUserHandler(svc)
	router := chi.NewRouter()
	router.Post("/users", h.CreateUser)
	router.Get("/users", h.ListUsers)
	router.Get("/users/{userID}", h.GetUserByID)
	router.Delete("/users/{userID}", h.DeleteUser)
	return router
}

func TestCreateUserHandler(t *testing.T) {
	svc := &fakeUserService{
		createFn: func(ctx context.Context, input services.CreateUserInput) (*models.User, error) {
			return &models.User{ID: 1, Email: input.Email, FirstName: input.FirstName, LastName: input.LastName}, nil
		},
	}
	router := newUserRouter(svc)

	body := `{"email":"sam@uh.edu","password":"secret","first_name":"Sam","last_name":"Cruz"}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var envelope struct {
		User models.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, 1, envelope.User.ID)
	assert.Equal(t, "sam@uh.edu", envelope.User.Email)
}

func TestCreateUserHandlerConflict(t *testing.T) {
	svc := &fakeUserService{
		createFn: func(ctx context.Context, input services.CreateUserInput) (*models.User, error) {
			return nil, services.ErrEmailRegistered
		},
	}
	router := newUserRouter(svc)

	body := `{"email":"sam@uh.edu","password":"secret","first_name":"Sam","last_name":"Cruz"}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body)))

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var envelope struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, services.ErrEmailRegistered.Error(), envelope.Error)
}

func TestCreateUserHandlerUnknownField(t *testing.T) {
	router := newUserRouter(&fakeUserService{})

	body := `{"email":"sam@uh.edu","password":"secret","nickname":"sammy"}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetUserHandlerNotFound(t *testing.T) {
	svc := &fakeUserService{
		getFn: func(ctx context.Context, id int) (*models.User, error) {
			return nil, services.ErrUserNotFound
		},
	}
	router := newUserRouter(svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users/42", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)

	var envelope struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "User not found", envelope.Error)
}

func TestGetUserHandlerInvalidID(t *testing.T) {
	router := newUserRouter(&fakeUserService{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users/abc", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListUsersHandlerPassesPagination(t *testing.T) {
	var gotSkip, gotLimit int
	svc := &fakeUserService{
		listFn: func(ctx context.Context, skip, limit int) ([]models.User, error) {
			gotSkip, gotLimit = skip, limit
			return []models.User{}, nil
		},
	}
	router := newUserRouter(svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users?skip=10&limit=25", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 10, gotSkip)
	assert.Equal(t, 25, gotLimit)
}

func TestDeleteUserHandler(t *testing.T) {
	svc := &fakeUserService{
		deleteFn: func(ctx context.Context, id int) (*models.User, error) {
			return &models.User{ID: id, Email: "sam@uh.edu"}, nil
		},
	}
	router := newUserRouter(svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/users/1", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		User models.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, 1, envelope.User.ID)

	svc.deleteFn = func(ctx context.Context, id int) (*models.User, error) {
		return nil, services.ErrUserHasDependents
	}
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/users/1", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
