package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/coog-esports/admin-api/models"
	"github.com/coog-esports/admin-api/repositories"
)

var ErrEventTitleRequired = errors.New("event title is required")

type EventService interface {
	CreateEvent(ctx context.Context, input CreateEventInput) (*models.Event, error)
	GetEventByID(ctx context.Context, id int) (*models.Event, error)
	ListEvents(ctx context.Context, skip, limit int) ([]models.Event, error)
	ListEventsByOfficer(ctx context.Context, officerID, skip, limit int) ([]models.Event, error)
	ListUpcomingEvents(ctx context.Context, skip, limit int) ([]models.Event, error)
	ListPastEvents(ctx context.Context, skip, limit int) ([]models.Event, error)
	UpdateEvent(ctx context.Context, id int, input UpdateEventInput) (*models.Event, error)
	DeleteEvent(ctx context.Context, id int) (*models.Event, error)
}

type CreateEventInput struct {
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	Location           string    `json:"location"`
	DateTime           time.Time `json:"date_time"`
	EndTime            time.Time `json:"end_time"`
	Attendance         *int      `json:"attendance"`
	CreatedByOfficerID int       `json:"created_by_officer_id"`
}

type UpdateEventInput struct {
	Title              *string    `json:"title"`
	Description        *string    `json:"description"`
	Location           *string    `json:"location"`
	DateTime           *time.Time `json:"date_time"`
	EndTime            *time.Time `json:"end_time"`
	Attendance         *int       `json:"attendance"`
	CreatedByOfficerID *int       `json:"created_by_officer_id"`
}

type eventService struct {
	eventRepo   repositories.EventRepository
	officerRepo repositories.OfficerRepository
}

func NewEventService(eventRepo repositories.EventRepository, officerRepo repositories.OfficerRepository) EventService {
	return &eventService{
		eventRepo:   eventRepo,
		officerRepo: officerRepo,
	}
}

func (s *eventService) CreateEvent(ctx context.Context, input CreateEventInput) (*models.Event, error) {
	title := trimmed(input.Title)
	if title == "" {
		return nil, ErrEventTitleRequired
	}
	if !input.EndTime.After(input.DateTime) {
		return nil, ErrEventTimesInvalid
	}
	if input.Attendance != nil && *input.Attendance < 0 {
		return nil, ErrAttendanceNegative
	}
	if _, err := s.officerRepo.GetByID(ctx, input.CreatedByOfficerID); err != nil {
		if errors.Is(err, repositories.ErrOfficerNotFound) {
			return nil, ErrOfficerNotFound
		}
		return nil, fmt.Errorf("failed to get officer %d: %w", input.CreatedByOfficerID, err)
	}

	taken, err := s.eventRepo.TitleTaken(ctx, title, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to check event title uniqueness: %w", err)
	}
	if taken {
		return nil, ErrEventTitleConflict
	}

	event := &models.Event{
		Title:              title,
		Description:        input.Description,
		Location:           input.Location,
		DateTime:           input.DateTime,
		EndTime:            input.EndTime,
		Attendance:         input.Attendance,
		CreatedByOfficerID: input.CreatedByOfficerID,
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		switch {
		case errors.Is(err, repositories.ErrEventTitleConflict):
			return nil, ErrEventTitleConflict
		case errors.Is(err, repositories.ErrEventOfficerInvalid):
			return nil, ErrOfficerNotFound
		default:
			return nil, fmt.Errorf("failed to create event: %w", err)
		}
	}
	return event, nil
}

func (s *eventService) GetEventByID(ctx context.Context, id int) (*models.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrEventNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event %d: %w", id, err)
	}
	return event, nil
}

func (s *eventService) ListEvents(ctx context.Context, skip, limit int) ([]models.Event, error) {
	events, err := s.eventRepo.List(ctx, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return nonNilEvents(events), nil
}

func (s *eventService) ListEventsByOfficer(ctx context.Context, officerID, skip, limit int) ([]models.Event, error) {
	if _, err := s.officerRepo.GetByID(ctx, officerID); err != nil {
		if errors.Is(err, repositories.ErrOfficerNotFound) {
			return nil, ErrOfficerNotFound
		}
		return nil, fmt.Errorf("failed to get officer %d: %w", officerID, err)
	}

	events, err := s.eventRepo.ListByOfficer(ctx, officerID, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list events for officer %d: %w", officerID, err)
	}
	return nonNilEvents(events), nil
}

func (s *eventService) ListUpcomingEvents(ctx context.Context, skip, limit int) ([]models.Event, error) {
	events, err := s.eventRepo.ListUpcoming(ctx, time.Now().UTC(), skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list upcoming events: %w", err)
	}
	return nonNilEvents(events), nil
}

func (s *eventService) ListPastEvents(ctx context.Context, skip, limit int) ([]models.Event, error) {
	events, err := s.eventRepo.ListPast(ctx, time.Now().UTC(), skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list past events: %w", err)
	}
	return nonNilEvents(events), nil
}

func (s *eventService) UpdateEvent(ctx context.Context, id int, input UpdateEventInput) (*models.Event, error) {
	event, err := s.GetEventByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		title := trimmed(*input.Title)
		if title == "" {
			return nil, ErrEventTitleRequired
		}
		if title != event.Title {
			taken, err := s.eventRepo.TitleTaken(ctx, title, id)
			if err != nil {
				return nil, fmt.Errorf("failed to check event title uniqueness: %w", err)
			}
			if taken {
				return nil, ErrEventTitleConflict
			}
		}
		event.Title = title
	}
	if input.Description != nil {
		event.Description = *input.Description
	}
	if input.Location != nil {
		event.Location = *input.Location
	}
	if input.DateTime != nil {
		event.DateTime = *input.DateTime
	}
	if input.EndTime != nil {
		event.EndTime = *input.EndTime
	}
	if input.Attendance != nil {
		if *input.Attendance < 0 {
			return nil, ErrAttendanceNegative
		}
		event.Attendance = input.Attendance
	}
	if input.CreatedByOfficerID != nil {
		if _, err := s.officerRepo.GetByID(ctx, *input.CreatedByOfficerID); err != nil {
			if errors.Is(err, repositories.ErrOfficerNotFound) {
				return nil, ErrOfficerNotFound
			}
			return nil, fmt.Errorf("failed to get officer %d: %w", *input.CreatedByOfficerID, err)
		}
		event.CreatedByOfficerID = *input.CreatedByOfficerID
	}

	if !event.EndTime.After(event.DateTime) {
		return nil, ErrEventTimesInvalid
	}

	if err := s.eventRepo.Update(ctx, event); err != nil {
		switch {
		case errors.Is(err, repositories.ErrEventNotFound):
			return nil, ErrEventNotFound
		case errors.Is(err, repositories.ErrEventTitleConflict):
			return nil, ErrEventTitleConflict
		case errors.Is(err, repositories.ErrEventOfficerInvalid):
			return nil, ErrOfficerNotFound
		default:
			return nil, fmt.Errorf("failed to update event %d: %w", id, err)
		}
	}
	return event, nil
}

func (s *eventService) DeleteEvent(ctx context.Context, id int) (*models.Event, error) {
	event, err := s.GetEventByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Attendee rows are removed together with the event.
	if err := s.eventRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrEventNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to delete event %d: %w", id, err)
	}
	return event, nil
}

func nonNilEvents(events []models.Event) []models.Event {
	if events == nil {
		return []models.Event{}
	}
	return events
}
