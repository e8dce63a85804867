package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/coog-esports/admin-api/models"
)

var (
	ErrTeamMembershipNotFound          = errors.New("team membership not found")
	ErrTeamMembershipTeamInvalid       = errors.New("team membership team conflict or invalid")
	ErrTeamMembershipMembershipInvalid = errors.New("team membership membership conflict or invalid")
)

type TeamMembershipRepository interface {
	Create(ctx context.Context, teamMembership *models.TeamMembership) error
	Get(ctx context.Context, teamID, membershipID int) (*models.TeamMembership, error)
	List(ctx context.Context, skip, limit int) ([]models.TeamMembership, error)
	ListByTeam(ctx context.Context, teamID, skip, limit int) ([]models.TeamMembership, error)
	Update(ctx context.Context, teamMembership *models.TeamMembership) error
	Delete(ctx context.Context, teamID, membershipID int) error
	Exists(ctx context.Context, teamID, membershipID int) (bool, error)
	ExistsByTeamID(ctx context.Context, teamID int) (bool, error)
	ExistsByMembershipID(ctx context.Context, membershipID int) (bool, error)
}

type postgresTeamMembershipRepository struct {
	crud crudQueries[models.TeamMembership]
}

func NewPostgresTeamMembershipRepository(db *sql.DB) TeamMembershipRepository {
	return &postgresTeamMembershipRepository{
		crud: crudQueries[models.TeamMembership]{
			db: db,
			spec: tableSpec[models.TeamMembership]{
				table: "team_memberships",
				// Composite primary key, the generic id helpers do not
				// apply. Ordering below keeps pagination stable anyway.
				idColumn: "team_id, membership_id",
				columns:  "team_id, membership_id, start_date, end_date",
				scanRow: func(row rowScanner, teamMembership *models.TeamMembership) error {
					return row.Scan(
						&teamMembership.TeamID,
						&teamMembership.MembershipID,
						&teamMembership.StartDate,
						&teamMembership.EndDate,
					)
				},
			},
			notFound: ErrTeamMembershipNotFound,
		},
	}
}

func (r *postgresTeamMembershipRepository) Create(ctx context.Context, teamMembership *models.TeamMembership) error {
	query := `
		INSERT INTO team_memberships (team_id, membership_id, start_date, end_date)
		VALUES ($1, $2, $3, $4)`

	_, err := r.crud.db.ExecContext(ctx, query,
		teamMembership.TeamID,
		teamMembership.MembershipID,
		teamMembership.StartDate,
		teamMembership.EndDate,
	)
	if err != nil {
		return mapConstraintError(err, map[string]error{
			"team_memberships_team_id_fkey":       ErrTeamMembershipTeamInvalid,
			"team_memberships_membership_id_fkey": ErrTeamMembershipMembershipInvalid,
		})
	}
	return nil
}

func (r *postgresTeamMembershipRepository) Get(ctx context.Context, teamID, membershipID int) (*models.TeamMembership, error) {
	query := `
		SELECT team_id, membership_id, start_date, end_date
		FROM team_memberships
		WHERE team_id = $1 AND membership_id = $2`

	teamMembership := &models.TeamMembership{}
	err := r.crud.spec.scanRow(r.crud.db.QueryRowContext(ctx, query, teamID, membershipID), teamMembership)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTeamMembershipNotFound
		}
		return nil, err
	}
	return teamMembership, nil
}

func (r *postgresTeamMembershipRepository) List(ctx context.Context, skip, limit int) ([]models.TeamMembership, error) {
	return r.crud.list(ctx, skip, limit)
}

func (r *postgresTeamMembershipRepository) ListByTeam(ctx context.Context, teamID, skip, limit int) ([]models.TeamMembership, error) {
	return r.crud.listWhere(ctx, "team_id = $1", []interface{}{teamID}, "start_date ASC", skip, limit)
}

func (r *postgresTeamMembershipRepository) Update(ctx context.Context, teamMembership *models.TeamMembership) error {
	query := `
		UPDATE team_memberships SET
			start_date = $1,
			end_date = $2
		WHERE team_id = $3 AND membership_id = $4`

	result, err := r.crud.db.ExecContext(ctx, query,
		teamMembership.StartDate,
		teamMembership.EndDate,
		teamMembership.TeamID,
		teamMembership.MembershipID,
	)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrTeamMembershipNotFound)
}

func (r *postgresTeamMembershipRepository) Delete(ctx context.Context, teamID, membershipID int) error {
	query := `DELETE FROM team_memberships WHERE team_id = $1 AND membership_id = $2`

	result, err := r.crud.db.ExecContext(ctx, query, teamID, membershipID)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrTeamMembershipNotFound)
}

func (r *postgresTeamMembershipRepository) Exists(ctx context.Context, teamID, membershipID int) (bool, error) {
	return r.crud.exists(ctx, "team_id = $1 AND membership_id = $2", teamID, membershipID)
}

func (r *postgresTeamMembershipRepository) ExistsByTeamID(ctx context.Context, teamID int) (bool, error) {
	return r.crud.exists(ctx, "team_id = $1", teamID)
}

func (r *postgresTeamMembershipRepository) ExistsByMembershipID(ctx context.Context, membershipID int) (bool, error) {
	return r.crud.exists(ctx, "membership_id = $1", membershipID)
}
