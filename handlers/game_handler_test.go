package handlers

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/coog-esports/admin-api/models"
	"github.com/coog-esports/admin-api/services"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGameService struct {
	uploadFn func(ctx context.Context, id int, contentType string, file io.Reader) (*models.Game, error)
}

func (f *fakeGameService) CreateGame(ctx context.Context, input services.CreateGameInput) (*models.Game, error) {
	panic("not expected")
}

func (f *fakeGameService) GetGameByID(ctx context.Context, id int) (*models.Game, error) {
	panic("not expected")
}

func (f *fakeGameService) ListGames(ctx context.Context, skip, limit int) ([]models.Game, error) {
	panic("not expected")
}

func (f *fakeGameService) UpdateGame(ctx context.Context, id int, input services.UpdateGameInput) (*models.Game, error) {
	panic("not expected")
}

func (f *fakeGameService) DeleteGame(ctx context.Context, id int) (*models.Game, error) {
	panic("not expected")
}

func (f *fakeGameService) UploadBackground(ctx context.Context, id int, contentType string, file io.Reader) (*models.Game, error) {
	return f.uploadFn(ctx, id, contentType, file)
}

func uploadRequest(t *testing.T, url, field, contentType string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="`+field+`"; filename="image.png"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write([]byte("fake image bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	r := httptest.NewRequest(http.MethodPost, url, &buf)
	r.Header.Set("Content-Type", writer.FormDataContentType())
	return r
}

func newGameRouter(svc services.GameService) *chi.Mux {
	h := NewGameHandler(svc)
	router := chi.NewRouter()
	router.Post("/games/{gameID}/background", h.UploadBackground)
	return router
}

func TestUploadBackgroundHandler(t *testing.T) {
	var gotContentType string
	svc := &fakeGameService{
		uploadFn: func(ctx context.Context, id int, contentType string, file io.Reader) (*models.Game, error) {
			gotContentType = contentType
			url := "https://cdn.example.com/games/3/background.png"
			return &models.Game{ID: id, GameName: "Valorant", BgImageURL: &url}, nil
		},
	}
	router := newGameRouter(svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, uploadRequest(t, "/games/3/background", "background", "image/png"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", gotContentType)
}

func TestUploadBackgroundHandlerUploadsDisabled(t *testing.T) {
	svc := &fakeGameService{
		uploadFn: func(ctx context.Context, id int, contentType string, file io.Reader) (*models.Game, error) {
			return nil, services.ErrUploadsDisabled
		},
	}
	router := newGameRouter(svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, uploadRequest(t, "/games/3/background", "background", "image/png"))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestUploadBackgroundHandlerMissingField(t *testing.T) {
	router := newGameRouter(&fakeGameService{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, uploadRequest(t, "/games/3/background", "wrong_field", "image/png"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUploadBackgroundHandlerUnsupportedType(t *testing.T) {
	svc := &fakeGameService{
		uploadFn: func(ctx context.Context, id int, contentType string, file io.Reader) (*models.Game, error) {
			return nil, services.ErrUnsupportedImageType
		},
	}
	router := newGameRouter(svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, uploadRequest(t, "/games/3/background", "background", "application/pdf"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
