package services

import (
	"context"
	"time"

	"github.com/coog-esports/admin-api/models"
	"github.com/coog-esports/admin-api/repositories"
)

// Hand-written fakes. Each embeds the repository interface so only the
// methods a test exercises need an implementation; calling anything else
// panics, which is exactly what we want from an unexpected call.

type fakeUserRepo struct {
	repositories.UserRepository
	users      map[int]*models.User
	emailTaken bool
	created    *models.User
	updated    *models.User
	deletedID  int
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	user.ID = len(f.users) + 1
	f.created = user
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (f *fakeUserRepo) List(ctx context.Context, skip, limit int) ([]models.User, error) {
	var users []models.User
	for _, user := range f.users {
		users = append(users, *user)
	}
	return users, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *models.User) error {
	if _, ok := f.users[user.ID]; !ok {
		return repositories.ErrUserNotFound
	}
	f.updated = user
	return nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id int) error {
	if _, ok := f.users[id]; !ok {
		return repositories.ErrUserNotFound
	}
	f.deletedID = id
	return nil
}

func (f *fakeUserRepo) EmailTaken(ctx context.Context, email string, excludeID int) (bool, error) {
	return f.emailTaken, nil
}

type fakeMembershipRepo struct {
	repositories.MembershipRepository
	memberships   map[int]*models.Membership
	hasOverlap    bool
	existsByUser  bool
	existsBySize  bool
	created       *models.Membership
	updated       *models.Membership
	deletedID     int
	overlapCalled bool
}

func (f *fakeMembershipRepo) Create(ctx context.Context, membership *models.Membership) error {
	membership.ID = len(f.memberships) + 1
	f.created = membership
	return nil
}

func (f *fakeMembershipRepo) GetByID(ctx context.Context, id int) (*models.Membership, error) {
	membership, ok := f.memberships[id]
	if !ok {
		return nil, repositories.ErrMembershipNotFound
	}
	copied := *membership
	return &copied, nil
}

func (f *fakeMembershipRepo) Update(ctx context.Context, membership *models.Membership) error {
	if _, ok := f.memberships[membership.ID]; !ok {
		return repositories.ErrMembershipNotFound
	}
	f.updated = membership
	return nil
}

func (f *fakeMembershipRepo) Delete(ctx context.Context, id int) error {
	if _, ok := f.memberships[id]; !ok {
		return repositories.ErrMembershipNotFound
	}
	f.deletedID = id
	return nil
}

func (f *fakeMembershipRepo) HasOverlap(ctx context.Context, userID int, start, end time.Time, excludeID int) (bool, error) {
	f.overlapCalled = true
	return f.hasOverlap, nil
}

func (f *fakeMembershipRepo) ExistsByUserID(ctx context.Context, userID int) (bool, error) {
	return f.existsByUser, nil
}

func (f *fakeMembershipRepo) ExistsByShirtSizeID(ctx context.Context, shirtSizeID int) (bool, error) {
	return f.existsBySize, nil
}

type fakeOfficerRepo struct {
	repositories.OfficerRepository
	officers     map[int]*models.Officer
	existsByUser bool
	existsByRole bool
	created      *models.Officer
}

func (f *fakeOfficerRepo) Create(ctx context.Context, officer *models.Officer) error {
	officer.ID = len(f.officers) + 1
	f.created = officer
	return nil
}

func (f *fakeOfficerRepo) GetByID(ctx context.Context, id int) (*models.Officer, error) {
	officer, ok := f.officers[id]
	if !ok {
		return nil, repositories.ErrOfficerNotFound
	}
	copied := *officer
	return &copied, nil
}

func (f *fakeOfficerRepo) HasOverlap(ctx context.Context, userID int, start time.Time, end *time.Time, excludeID int) (bool, error) {
	for _, officer := range f.officers {
		if officer.UserID == userID && officer.ID != excludeID &&
			periodsOverlap(officer.StartDate, officer.EndDate, start, end) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeOfficerRepo) ExistsByUserID(ctx context.Context, userID int) (bool, error) {
	return f.existsByUser, nil
}

func (f *fakeOfficerRepo) ExistsByRoleID(ctx context.Context, roleID int) (bool, error) {
	return f.existsByRole, nil
}

type fakeShirtSizeRepo struct {
	repositories.ShirtSizeRepository
	sizes map[int]*models.ShirtSize
}

func (f *fakeShirtSizeRepo) GetByID(ctx context.Context, id int) (*models.ShirtSize, error) {
	size, ok := f.sizes[id]
	if !ok {
		return nil, repositories.ErrShirtSizeNotFound
	}
	copied := *size
	return &copied, nil
}

type fakeRoleRepo struct {
	repositories.RoleRepository
	roles     map[int]*models.Role
	nameTaken bool
	created   *models.Role
	deletedID int
}

func (f *fakeRoleRepo) Create(ctx context.Context, role *models.Role) error {
	role.ID = len(f.roles) + 1
	f.created = role
	return nil
}

func (f *fakeRoleRepo) GetByID(ctx context.Context, id int) (*models.Role, error) {
	role, ok := f.roles[id]
	if !ok {
		return nil, repositories.ErrRoleNotFound
	}
	copied := *role
	return &copied, nil
}

func (f *fakeRoleRepo) Delete(ctx context.Context, id int) error {
	if _, ok := f.roles[id]; !ok {
		return repositories.ErrRoleNotFound
	}
	f.deletedID = id
	return nil
}

func (f *fakeRoleRepo) NameTaken(ctx context.Context, name string, excludeID int) (bool, error) {
	return f.nameTaken, nil
}

type fakeCoordinatorRepo struct {
	repositories.CoordinatorRepository
	coordinators map[int]*models.Coordinator
	created      *models.Coordinator
	updated      *models.Coordinator
}

func (f *fakeCoordinatorRepo) Create(ctx context.Context, coordinator *models.Coordinator) error {
	coordinator.ID = len(f.coordinators) + 1
	f.created = coordinator
	return nil
}

func (f *fakeCoordinatorRepo) GetByID(ctx context.Context, id int) (*models.Coordinator, error) {
	coordinator, ok := f.coordinators[id]
	if !ok {
		return nil, repositories.ErrCoordinatorNotFound
	}
	copied := *coordinator
	return &copied, nil
}

func (f *fakeCoordinatorRepo) Update(ctx context.Context, coordinator *models.Coordinator) error {
	if _, ok := f.coordinators[coordinator.ID]; !ok {
		return repositories.ErrCoordinatorNotFound
	}
	f.updated = coordinator
	return nil
}

func (f *fakeCoordinatorRepo) HasOverlap(ctx context.Context, userID, gameID int, start time.Time, end *time.Time, excludeID int) (bool, error) {
	for _, coordinator := range f.coordinators {
		if coordinator.UserID == userID && coordinator.GameID == gameID && coordinator.ID != excludeID &&
			periodsOverlap(coordinator.StartDate, coordinator.EndDate, start, end) {
			return true, nil
		}
	}
	return false, nil
}

type fakeTeamRepo struct {
	repositories.TeamRepository
	teams               map[int]*models.Team
	existsByCoordinator bool
}

func (f *fakeTeamRepo) GetByID(ctx context.Context, id int) (*models.Team, error) {
	team, ok := f.teams[id]
	if !ok {
		return nil, repositories.ErrTeamNotFound
	}
	copied := *team
	return &copied, nil
}

func (f *fakeTeamRepo) ExistsByCoordinatorID(ctx context.Context, coordinatorID int) (bool, error) {
	return f.existsByCoordinator, nil
}

type fakeOpponentRepo struct {
	repositories.OpponentRepository
	opponents map[int]*models.Opponent
	created   *models.Opponent
	updated   *models.Opponent
	deletedID int
}

func (f *fakeOpponentRepo) Create(ctx context.Context, opponent *models.Opponent) error {
	opponent.ID = len(f.opponents) + 1
	f.created = opponent
	return nil
}

func (f *fakeOpponentRepo) GetByID(ctx context.Context, id int) (*models.Opponent, error) {
	opponent, ok := f.opponents[id]
	if !ok {
		return nil, repositories.ErrOpponentNotFound
	}
	copied := *opponent
	return &copied, nil
}

func (f *fakeOpponentRepo) Update(ctx context.Context, opponent *models.Opponent) error {
	if _, ok := f.opponents[opponent.ID]; !ok {
		return repositories.ErrOpponentNotFound
	}
	f.updated = opponent
	return nil
}

func (f *fakeOpponentRepo) Delete(ctx context.Context, id int) error {
	if _, ok := f.opponents[id]; !ok {
		return repositories.ErrOpponentNotFound
	}
	f.deletedID = id
	return nil
}

func (f *fakeOpponentRepo) NameTakenForGame(ctx context.Context, gameID int, name string, excludeID int) (bool, error) {
	for _, opponent := range f.opponents {
		if opponent.GameID == gameID && opponent.OpponentName == name && opponent.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

type fakeGameRepo struct {
	repositories.GameRepository
	games map[int]*models.Game
}

func (f *fakeGameRepo) GetByID(ctx context.Context, id int) (*models.Game, error) {
	game, ok := f.games[id]
	if !ok {
		return nil, repositories.ErrGameNotFound
	}
	copied := *game
	return &copied, nil
}

type fakeMatchRepo struct {
	repositories.MatchRepository
	matches          map[int]*models.Match
	created          *models.Match
	existsByOpponent bool
}

func (f *fakeMatchRepo) ExistsByOpponentID(ctx context.Context, opponentID int) (bool, error) {
	return f.existsByOpponent, nil
}

func (f *fakeMatchRepo) Create(ctx context.Context, match *models.Match) error {
	match.ID = len(f.matches) + 1
	f.created = match
	return nil
}

func (f *fakeMatchRepo) GetByID(ctx context.Context, id int) (*models.Match, error) {
	match, ok := f.matches[id]
	if !ok {
		return nil, repositories.ErrMatchNotFound
	}
	copied := *match
	return &copied, nil
}

type fakeTeamMembershipRepo struct {
	repositories.TeamMembershipRepository
	exists             bool
	existsByMembership bool
	created            *models.TeamMembership
}

func (f *fakeTeamMembershipRepo) Create(ctx context.Context, teamMembership *models.TeamMembership) error {
	f.created = teamMembership
	return nil
}

func (f *fakeTeamMembershipRepo) Exists(ctx context.Context, teamID, membershipID int) (bool, error) {
	return f.exists, nil
}

func (f *fakeTeamMembershipRepo) ExistsByMembershipID(ctx context.Context, membershipID int) (bool, error) {
	return f.existsByMembership, nil
}

type fakeAcademicTermRepo struct {
	repositories.AcademicTermRepository
	terms      map[int]*models.AcademicTerm
	hasOverlap bool
	created    *models.AcademicTerm
	updated    *models.AcademicTerm
}

func (f *fakeAcademicTermRepo) Create(ctx context.Context, term *models.AcademicTerm) error {
	term.ID = len(f.terms) + 1
	f.created = term
	return nil
}

func (f *fakeAcademicTermRepo) GetByID(ctx context.Context, id int) (*models.AcademicTerm, error) {
	term, ok := f.terms[id]
	if !ok {
		return nil, repositories.ErrAcademicTermNotFound
	}
	copied := *term
	return &copied, nil
}

func (f *fakeAcademicTermRepo) Update(ctx context.Context, term *models.AcademicTerm) error {
	if _, ok := f.terms[term.ID]; !ok {
		return repositories.ErrAcademicTermNotFound
	}
	f.updated = term
	return nil
}

func (f *fakeAcademicTermRepo) HasOverlap(ctx context.Context, start, end time.Time, excludeID int) (bool, error) {
	return f.hasOverlap, nil
}

type fakeMediaRepo struct {
	repositories.MediaRepository
	existsByTerm    bool
	existsByOfficer bool
}

func (f *fakeMediaRepo) ExistsByTermID(ctx context.Context, termID int) (bool, error) {
	return f.existsByTerm, nil
}

func (f *fakeMediaRepo) ExistsByUploadedByOfficerID(ctx context.Context, officerID int) (bool, error) {
	return f.existsByOfficer, nil
}

type fakeEventRepo struct {
	repositories.EventRepository
	events     map[int]*models.Event
	titleTaken bool
	created    *models.Event
}

func (f *fakeEventRepo) Create(ctx context.Context, event *models.Event) error {
	event.ID = len(f.events) + 1
	f.created = event
	return nil
}

func (f *fakeEventRepo) GetByID(ctx context.Context, id int) (*models.Event, error) {
	event, ok := f.events[id]
	if !ok {
		return nil, repositories.ErrEventNotFound
	}
	copied := *event
	return &copied, nil
}

func (f *fakeEventRepo) TitleTaken(ctx context.Context, title string, excludeID int) (bool, error) {
	return f.titleTaken, nil
}
