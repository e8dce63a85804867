package handlers

import (
	"net/http"

	"github.com/coog-esports/admin-api/services"
)

type EventAttendeeHandler struct {
	attendeeService services.EventAttendeeService
}

func NewEventAttendeeHandler(as services.EventAttendeeService) *EventAttendeeHandler {
	return &EventAttendeeHandler{attendeeService: as}
}

func (h *EventAttendeeHandler) CreateEventAttendee(w http.ResponseWriter, r *http.Request) {
	var input services.CreateEventAttendeeInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	attendee, err := h.attendeeService.CreateEventAttendee(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"event_attendee": attendee}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *EventAttendeeHandler) GetEventAttendee(w http.ResponseWriter, r *http.Request) {
	eventID, err := getIDFromURL(r, "eventID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	userID, err := getIDFromURL(r, "userID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	attendee, err := h.attendeeService.GetEventAttendee(r.Context(), eventID, userID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"event_attendee": attendee}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *EventAttendeeHandler) ListEventAttendees(w http.ResponseWriter, r *http.Request) {
	skip, limit, err := parsePagination(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	attendees, err := h.attendeeService.ListEventAttendees(r.Context(), skip, limit)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"event_attendees": attendees}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *EventAttendeeHandler) ListAttendeesByEvent(w http.ResponseWriter, r *http.Request) {
	eventID, err := getIDFromURL(r, "eventID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	skip, limit, err := parsePagination(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	attendees, err := h.attendeeService.ListAttendeesByEvent(r.Context(), eventID, skip, limit)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"event_attendees": attendees}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *EventAttendeeHandler) DeleteEventAttendee(w http.ResponseWriter, r *http.Request) {
	eventID, err := getIDFromURL(r, "eventID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	userID, err := getIDFromURL(r, "userID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	attendee, err := h.attendeeService.DeleteEventAttendee(r.Context(), eventID, userID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"event_attendee": attendee}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
