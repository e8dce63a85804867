package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/coog-esports/admin-api/services"
)

type jsonResponse map[string]interface{}

const (
	defaultListLimit = 100
	maxListLimit     = 500
	maxUploadSize    = 32 << 20
)

func readJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	maxBytes := 1_048_576 // 1MB
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	err := dec.Decode(dst)
	if err != nil {
		var syntaxError *json.SyntaxError
		var unmarshalTypeError *json.UnmarshalTypeError
		var invalidUnmarshalError *json.InvalidUnmarshalError

		switch {
		case errors.As(err, &syntaxError):
			return fmt.Errorf("body contains badly-formed JSON (at character %d)", syntaxError.Offset)
		case errors.Is(err, io.ErrUnexpectedEOF):
			return errors.New("body contains badly-formed JSON")
		case errors.As(err, &unmarshalTypeError):
			if unmarshalTypeError.Field != "" {
				return fmt.Errorf("body contains incorrect JSON type for field %q", unmarshalTypeError.Field)
			}
			return fmt.Errorf("body contains incorrect JSON type (at character %d)", unmarshalTypeError.Offset)
		case errors.Is(err, io.EOF):
			return errors.New("body must not be empty")
		case strings.HasPrefix(err.Error(), "json: unknown field "):
			fieldName := strings.TrimPrefix(err.Error(), "json: unknown field ")
			return fmt.Errorf("body contains unknown key %s", fieldName)
		case err.Error() == "http: request body too large":
			return fmt.Errorf("body must not be larger than %d bytes", maxBytes)
		case errors.As(err, &invalidUnmarshalError):
			panic(err)
		default:
			return err
		}
	}

	err = dec.Decode(&struct{}{})
	if !errors.Is(err, io.EOF) {
		return errors.New("body must only contain a single JSON value")
	}

	return nil
}

func writeJSON(w http.ResponseWriter, status int, data interface{}, headers http.Header) error {
	js, err := json.MarshalIndent(data, "", "\t")
	if err != nil {
		return err
	}
	js = append(js, '\n')

	for key, value := range headers {
		w.Header()[key] = value
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(js)
	if err != nil {
		return err
	}

	return nil
}

func errorResponse(w http.ResponseWriter, r *http.Request, status int, message interface{}) {
	env := jsonResponse{"error": message}
	if err := writeJSON(w, status, env, nil); err != nil {
		slog.Error("failed to write error response", "error", err, "path", r.URL.Path)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	slog.Error("internal server error", "error", err, "method", r.Method, "path", r.URL.Path)
	message := "the server encountered a problem and could not process your request"
	errorResponse(w, r, http.StatusInternalServerError, message)
}

func badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	errorResponse(w, r, http.StatusBadRequest, err.Error())
}

func notFoundResponse(w http.ResponseWriter, r *http.Request, err error) {
	errorResponse(w, r, http.StatusNotFound, err.Error())
}

// getIDFromURL parses a positive integer path parameter.
func getIDFromURL(r *http.Request, param string) (int, error) {
	raw := chi.URLParam(r, param)
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid %s parameter", param)
	}
	return id, nil
}

// parsePagination reads skip/limit query parameters, defaulting to
// skip=0 limit=100. Oversized limits are clamped to 500 rather than
// rejected.
func parsePagination(r *http.Request) (int, int, error) {
	skip, limit := 0, defaultListLimit
	q := r.URL.Query()

	if raw := q.Get("skip"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			return 0, 0, errors.New("invalid skip parameter")
		}
		skip = v
	}
	if raw := q.Get("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 {
			return 0, 0, errors.New("invalid limit parameter")
		}
		if v > maxListLimit {
			v = maxListLimit
		}
		limit = v
	}
	return skip, limit, nil
}

// readUploadedFile extracts a file from a multipart form. The caller owns
// closing the returned file.
func readUploadedFile(r *http.Request, field string) (multipart.File, string, error) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return nil, "", fmt.Errorf("failed to parse multipart form: %w", err)
	}
	file, header, err := r.FormFile(field)
	if err != nil {
		return nil, "", fmt.Errorf("missing %q file field", field)
	}
	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		file.Close()
		return nil, "", errors.New("uploaded file must declare a content type")
	}
	return file, contentType, nil
}

// mapServiceErrorToHTTP translates service-layer errors into HTTP
// responses. Validation failures, conflicts, and delete guards all
// surface as 400 so the client gets the rule text verbatim.
func mapServiceErrorToHTTP(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrRoleNotFound),
		errors.Is(err, services.ErrShirtSizeNotFound),
		errors.Is(err, services.ErrGameNotFound),
		errors.Is(err, services.ErrSponsorNotFound),
		errors.Is(err, services.ErrAcademicTermNotFound),
		errors.Is(err, services.ErrOfficerNotFound),
		errors.Is(err, services.ErrCoordinatorNotFound),
		errors.Is(err, services.ErrMembershipNotFound),
		errors.Is(err, services.ErrTeamMembershipNotFound),
		errors.Is(err, services.ErrTeamNotFound),
		errors.Is(err, services.ErrOpponentNotFound),
		errors.Is(err, services.ErrMatchNotFound),
		errors.Is(err, services.ErrEventNotFound),
		errors.Is(err, services.ErrEventAttendeeNotFound),
		errors.Is(err, services.ErrMediaNotFound):
		notFoundResponse(w, r, err)

	case errors.Is(err, services.ErrEmailRegistered),
		errors.Is(err, services.ErrRoleNameConflict),
		errors.Is(err, services.ErrShirtSizeNameConflict),
		errors.Is(err, services.ErrGameNameConflict),
		errors.Is(err, services.ErrSponsorNameConflict),
		errors.Is(err, services.ErrTeamNameConflict),
		errors.Is(err, services.ErrOpponentNameConflict),
		errors.Is(err, services.ErrEventTitleConflict),
		errors.Is(err, services.ErrEventAttendeeConflict),
		errors.Is(err, services.ErrTeamMembershipConflict),
		errors.Is(err, services.ErrOfficerOverlap),
		errors.Is(err, services.ErrCoordinatorOverlap),
		errors.Is(err, services.ErrMembershipOverlap),
		errors.Is(err, services.ErrAcademicTermOverlap),
		errors.Is(err, services.ErrUserHasDependents),
		errors.Is(err, services.ErrRoleHasOfficers),
		errors.Is(err, services.ErrShirtSizeHasMemberships),
		errors.Is(err, services.ErrGameHasDependents),
		errors.Is(err, services.ErrCoordinatorHasTeams),
		errors.Is(err, services.ErrMembershipHasTeamMemberships),
		errors.Is(err, services.ErrAcademicTermHasMedia),
		errors.Is(err, services.ErrOpponentHasMatches),
		errors.Is(err, services.ErrTeamHasDependents),
		errors.Is(err, services.ErrOfficerHasDependents),
		errors.Is(err, services.ErrMatchTeamGameMismatch),
		errors.Is(err, services.ErrMatchOpponentGameMismatch),
		errors.Is(err, services.ErrEventTimesInvalid),
		errors.Is(err, services.ErrPeriodInvalid),
		errors.Is(err, services.ErrAttendanceNegative),
		errors.Is(err, services.ErrWinsLossesNegative),
		errors.Is(err, services.ErrShirtSizeNameInvalid),
		errors.Is(err, services.ErrUserEmailRequired),
		errors.Is(err, services.ErrUserPasswordRequired),
		errors.Is(err, services.ErrUserNameRequired),
		errors.Is(err, services.ErrRoleNameRequired),
		errors.Is(err, services.ErrGameNameRequired),
		errors.Is(err, services.ErrSponsorNameRequired),
		errors.Is(err, services.ErrAcademicTermSemesterRequired),
		errors.Is(err, services.ErrTeamNameRequired),
		errors.Is(err, services.ErrOpponentNameRequired),
		errors.Is(err, services.ErrEventTitleRequired),
		errors.Is(err, services.ErrUnsupportedImageType):
		badRequestResponse(w, r, err)

	case errors.Is(err, services.ErrUploadsDisabled):
		errorResponse(w, r, http.StatusServiceUnavailable, err.Error())

	default:
		serverErrorResponse(w, r, err)
	}
}
