package services

import "errors"

// Errors shared across services and the HTTP mapping.
var (
	// Resource lookups
	ErrUserNotFound           = errors.New("User not found")
	ErrRoleNotFound           = errors.New("Role not found")
	ErrShirtSizeNotFound      = errors.New("Shirt size not found")
	ErrGameNotFound           = errors.New("Game not found")
	ErrSponsorNotFound        = errors.New("Sponsor not found")
	ErrAcademicTermNotFound   = errors.New("Academic term not found")
	ErrOfficerNotFound        = errors.New("Officer not found")
	ErrCoordinatorNotFound    = errors.New("Coordinator not found")
	ErrMembershipNotFound     = errors.New("Membership not found")
	ErrTeamMembershipNotFound = errors.New("Team membership not found")
	ErrTeamNotFound           = errors.New("Team not found")
	ErrOpponentNotFound       = errors.New("Opponent not found")
	ErrMatchNotFound          = errors.New("Match not found")
	ErrEventNotFound          = errors.New("Event not found")
	ErrEventAttendeeNotFound  = errors.New("Event attendee not found")
	ErrMediaNotFound          = errors.New("Media not found")

	// Natural-key conflicts
	ErrEmailRegistered        = errors.New("Email already registered")
	ErrRoleNameConflict       = errors.New("Role with this name already exists")
	ErrShirtSizeNameConflict  = errors.New("Shirt size with this name already exists")
	ErrGameNameConflict       = errors.New("Game already registered")
	ErrSponsorNameConflict    = errors.New("Sponsor with this name already exists")
	ErrTeamNameConflict       = errors.New("Team with this name already exists")
	ErrOpponentNameConflict   = errors.New("Opponent with this name already exists for this game")
	ErrEventTitleConflict     = errors.New("Event with this title already exists")
	ErrEventAttendeeConflict  = errors.New("User is already recorded as an attendee of this event")
	ErrTeamMembershipConflict = errors.New("Membership is already assigned to this team")

	// Temporal overlaps
	ErrOfficerOverlap      = errors.New("User already holds an officer position during this period")
	ErrCoordinatorOverlap  = errors.New("User is already a coordinator for this game during the specified period")
	ErrMembershipOverlap   = errors.New("User already has an active membership during this period")
	ErrAcademicTermOverlap = errors.New("Academic term overlaps an existing term")

	// Delete guards
	ErrUserHasDependents            = errors.New("Cannot delete user with associated memberships or officer roles")
	ErrRoleHasOfficers              = errors.New("Cannot delete role with associated officers")
	ErrShirtSizeHasMemberships      = errors.New("Cannot delete shirt size with associated memberships")
	ErrGameHasDependents            = errors.New("Cannot delete game with associated teams or opponents")
	ErrCoordinatorHasTeams          = errors.New("Cannot delete coordinator with associated teams")
	ErrMembershipHasTeamMemberships = errors.New("Cannot delete membership with associated team memberships")
	ErrAcademicTermHasMedia         = errors.New("Cannot delete academic term with associated media")
	ErrOpponentHasMatches           = errors.New("Cannot delete opponent with associated matches")
	ErrTeamHasDependents            = errors.New("Cannot delete team with associated matches or team memberships")
	ErrOfficerHasDependents         = errors.New("Cannot delete officer with associated events or media")

	// Cross-field and input validation
	ErrMatchTeamGameMismatch     = errors.New("Team's game does not match the specified game")
	ErrMatchOpponentGameMismatch = errors.New("Opponent's game does not match the specified game")
	ErrEventTimesInvalid         = errors.New("End time must be after start time")
	ErrPeriodInvalid             = errors.New("End date must be after start date")
	ErrAttendanceNegative        = errors.New("Attendance must be zero or positive")
	ErrWinsLossesNegative        = errors.New("Wins and losses must be zero or positive")
	ErrShirtSizeNameInvalid      = errors.New("Shirt size must be one of XS, S, M, L, XL, XXL")

	// Image uploads
	ErrUploadsDisabled      = errors.New("image uploads are not configured")
	ErrUnsupportedImageType = errors.New("unsupported image content type")
)
