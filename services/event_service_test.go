package services

import (
	"context"
	"testing"

	"github.com/coog-esports/admin-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEventServiceForTest(eventRepo *fakeEventRepo) EventService {
	if eventRepo == nil {
		eventRepo = &fakeEventRepo{events: map[int]*models.Event{}}
	}
	officerRepo := &fakeOfficerRepo{officers: map[int]*models.Officer{2: {ID: 2, UserID: 1, RoleID: 1}}}
	return NewEventService(eventRepo, officerRepo)
}

func TestCreateEventTimesInvalid(t *testing.T) {
	svc := newEventServiceForTest(nil)
	ctx := context.Background()

	_, err := svc.CreateEvent(ctx, CreateEventInput{
		Title:              "Fall Kickoff",
		DateTime:           ts("2025-09-01"),
		EndTime:            ts("2025-08-31"),
		CreatedByOfficerID: 2,
	})
	assert.ErrorIs(t, err, ErrEventTimesInvalid)

	_, err = svc.CreateEvent(ctx, CreateEventInput{
		Title:              "Fall Kickoff",
		DateTime:           ts("2025-09-01"),
		EndTime:            ts("2025-09-01"),
		CreatedByOfficerID: 2,
	})
	assert.ErrorIs(t, err, ErrEventTimesInvalid)
}

func TestCreateEventTitleConflict(t *testing.T) {
	svc := newEventServiceForTest(&fakeEventRepo{events: map[int]*models.Event{}, titleTaken: true})

	_, err := svc.CreateEvent(context.Background(), CreateEventInput{
		Title:              "Fall Kickoff",
		DateTime:           ts("2025-09-01"),
		EndTime:            ts("2025-09-02"),
		CreatedByOfficerID: 2,
	})
	assert.ErrorIs(t, err, ErrEventTitleConflict)
}

func TestCreateEventNegativeAttendance(t *testing.T) {
	svc := newEventServiceForTest(nil)

	attendance := -5
	_, err := svc.CreateEvent(context.Background(), CreateEventInput{
		Title:              "Fall Kickoff",
		DateTime:           ts("2025-09-01"),
		EndTime:            ts("2025-09-02"),
		Attendance:         &attendance,
		CreatedByOfficerID: 2,
	})
	assert.ErrorIs(t, err, ErrAttendanceNegative)
}

func TestCreateEventOfficerNotFound(t *testing.T) {
	svc := newEventServiceForTest(nil)

	_, err := svc.CreateEvent(context.Background(), CreateEventInput{
		Title:              "Fall Kickoff",
		DateTime:           ts("2025-09-01"),
		EndTime:            ts("2025-09-02"),
		CreatedByOfficerID: 99,
	})
	assert.ErrorIs(t, err, ErrOfficerNotFound)
}

func TestCreateEventTrimsTitle(t *testing.T) {
	eventRepo := &fakeEventRepo{events: map[int]*models.Event{}}
	svc := newEventServiceForTest(eventRepo)

	event, err := svc.CreateEvent(context.Background(), CreateEventInput{
		Title:              "  Fall Kickoff  ",
		Location:           "Student Center",
		DateTime:           ts("2025-09-01"),
		EndTime:            ts("2025-09-02"),
		CreatedByOfficerID: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, "Fall Kickoff", event.Title)
	require.NotNil(t, eventRepo.created)
}
