package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/coog-esports/admin-api/models"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserEmailConflict = errors.New("user email conflict")
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context, skip, limit int) ([]models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id int) error
	EmailTaken(ctx context.Context, email string, excludeID int) (bool, error)
}

type postgresUserRepository struct {
	crud crudQueries[models.User]
}

func NewPostgresUserRepository(db *sql.DB) UserRepository {
	return &postgresUserRepository{
		crud: crudQueries[models.User]{
			db: db,
			spec: tableSpec[models.User]{
				table:    "users",
				idColumn: "user_id",
				columns:  "user_id, email, password_hash, first_name, last_name, signup_date",
				scanRow: func(row rowScanner, user *models.User) error {
					return row.Scan(
						&user.ID,
						&user.Email,
						&user.PasswordHash,
						&user.FirstName,
						&user.LastName,
						&user.SignupDate,
					)
				},
			},
			notFound: ErrUserNotFound,
		},
	}
}

func (r *postgresUserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (email, password_hash, first_name, last_name, signup_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING user_id`

	err := r.crud.db.QueryRowContext(ctx, query,
		user.Email,
		user.PasswordHash,
		user.FirstName,
		user.LastName,
		user.SignupDate,
	).Scan(&user.ID)

	if err != nil {
		return mapConstraintError(err, map[string]error{
			"users_email_key": ErrUserEmailConflict,
		})
	}
	return nil
}

func (r *postgresUserRepository) GetByID(ctx context.Context, id int) (*models.User, error) {
	return r.crud.getByID(ctx, id)
}

func (r *postgresUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT user_id, email, password_hash, first_name, last_name, signup_date
		FROM users
		WHERE email = $1`

	user := &models.User{}
	err := r.crud.spec.scanRow(r.crud.db.QueryRowContext(ctx, query, email), user)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (r *postgresUserRepository) List(ctx context.Context, skip, limit int) ([]models.User, error) {
	return r.crud.list(ctx, skip, limit)
}

func (r *postgresUserRepository) Update(ctx context.Context, user *models.User) error {
	query := `
		UPDATE users SET
			email = $1,
			password_hash = $2,
			first_name = $3,
			last_name = $4,
			signup_date = $5
		WHERE user_id = $6`

	result, err := r.crud.db.ExecContext(ctx, query,
		user.Email,
		user.PasswordHash,
		user.FirstName,
		user.LastName,
		user.SignupDate,
		user.ID,
	)
	if err != nil {
		return mapConstraintError(err, map[string]error{
			"users_email_key": ErrUserEmailConflict,
		})
	}
	return checkAffectedRows(result, ErrUserNotFound)
}

func (r *postgresUserRepository) Delete(ctx context.Context, id int) error {
	return r.crud.deleteByID(ctx, id)
}

func (r *postgresUserRepository) EmailTaken(ctx context.Context, email string, excludeID int) (bool, error) {
	return r.crud.exists(ctx, "email = $1 AND user_id <> $2", email, excludeID)
}
