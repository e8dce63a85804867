package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/coog-esports/admin-api/models"
	"github.com/coog-esports/admin-api/repositories"
)

type EventAttendeeService interface {
	CreateEventAttendee(ctx context.Context, input CreateEventAttendeeInput) (*models.EventAttendee, error)
	GetEventAttendee(ctx context.Context, eventID, userID int) (*models.EventAttendee, error)
	ListEventAttendees(ctx context.Context, skip, limit int) ([]models.EventAttendee, error)
	ListAttendeesByEvent(ctx context.Context, eventID, skip, limit int) ([]models.EventAttendee, error)
	DeleteEventAttendee(ctx context.Context, eventID, userID int) (*models.EventAttendee, error)
}

type CreateEventAttendeeInput struct {
	EventID int `json:"event_id"`
	UserID  int `json:"user_id"`
}

type eventAttendeeService struct {
	attendeeRepo repositories.EventAttendeeRepository
	eventRepo    repositories.EventRepository
	userRepo     repositories.UserRepository
}

func NewEventAttendeeService(
	attendeeRepo repositories.EventAttendeeRepository,
	eventRepo repositories.EventRepository,
	userRepo repositories.UserRepository,
) EventAttendeeService {
	return &eventAttendeeService{
		attendeeRepo: attendeeRepo,
		eventRepo:    eventRepo,
		userRepo:     userRepo,
	}
}

func (s *eventAttendeeService) CreateEventAttendee(ctx context.Context, input CreateEventAttendeeInput) (*models.EventAttendee, error) {
	if _, err := s.eventRepo.GetByID(ctx, input.EventID); err != nil {
		if errors.Is(err, repositories.ErrEventNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event %d: %w", input.EventID, err)
	}
	if _, err := s.userRepo.GetByID(ctx, input.UserID); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user %d: %w", input.UserID, err)
	}

	exists, err := s.attendeeRepo.Exists(ctx, input.EventID, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to check event attendee: %w", err)
	}
	if exists {
		return nil, ErrEventAttendeeConflict
	}

	attendee := &models.EventAttendee{
		EventID: input.EventID,
		UserID:  input.UserID,
	}
	if err := s.attendeeRepo.Create(ctx, attendee); err != nil {
		switch {
		case errors.Is(err, repositories.ErrEventAttendeeConflict):
			return nil, ErrEventAttendeeConflict
		case errors.Is(err, repositories.ErrEventAttendeeEventInvalid):
			return nil, ErrEventNotFound
		case errors.Is(err, repositories.ErrEventAttendeeUserInvalid):
			return nil, ErrUserNotFound
		default:
			return nil, fmt.Errorf("failed to create event attendee: %w", err)
		}
	}
	return attendee, nil
}

func (s *eventAttendeeService) GetEventAttendee(ctx context.Context, eventID, userID int) (*models.EventAttendee, error) {
	attendee, err := s.attendeeRepo.Get(ctx, eventID, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrEventAttendeeNotFound) {
			return nil, ErrEventAttendeeNotFound
		}
		return nil, fmt.Errorf("failed to get event attendee (%d, %d): %w", eventID, userID, err)
	}
	return attendee, nil
}

func (s *eventAttendeeService) ListEventAttendees(ctx context.Context, skip, limit int) ([]models.EventAttendee, error) {
	attendees, err := s.attendeeRepo.List(ctx, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list event attendees: %w", err)
	}
	if attendees == nil {
		return []models.EventAttendee{}, nil
	}
	return attendees, nil
}

func (s *eventAttendeeService) ListAttendeesByEvent(ctx context.Context, eventID, skip, limit int) ([]models.EventAttendee, error) {
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		if errors.Is(err, repositories.ErrEventNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event %d: %w", eventID, err)
	}

	attendees, err := s.attendeeRepo.ListByEvent(ctx, eventID, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendees for event %d: %w", eventID, err)
	}
	if attendees == nil {
		return []models.EventAttendee{}, nil
	}
	return attendees, nil
}

func (s *eventAttendeeService) DeleteEventAttendee(ctx context.Context, eventID, userID int) (*models.EventAttendee, error) {
	attendee, err := s.GetEventAttendee(ctx, eventID, userID)
	if err != nil {
		return nil, err
	}

	if err := s.attendeeRepo.Delete(ctx, eventID, userID); err != nil {
		if errors.Is(err, repositories.ErrEventAttendeeNotFound) {
			return nil, ErrEventAttendeeNotFound
		}
		return nil, fmt.Errorf("failed to delete event attendee (%d, %d): %w", eventID, userID, err)
	}
	return attendee, nil
}
