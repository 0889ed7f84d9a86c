package repository

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog"

	"github.com/muhdsahal/tailwebs-task/internal/models"
)

type TeacherRepository interface {
	GetByUsername(ctx context.Context, username string) (*models.Teacher, error)
	EnsureExists(ctx context.Context, teacher *models.Teacher) error
}

type teacherRepository struct {
	*PostgresRepository
}

func NewTeacherRepository(db *sql.DB, logger zerolog.Logger) TeacherRepository {
	return &teacherRepository{
		PostgresRepository: NewPostgresRepository(db, logger),
	}
}

func (r *teacherRepository) GetByUsername(ctx context.Context, username string) (*models.Teacher, error) {
	query := `
		SELECT id, username, password_hash, name, created_at
		FROM teachers
		WHERE username = $1
	`

	teacher := &models.Teacher{}
	err := r.db.QueryRowContext(ctx, query, username).Scan(
		&teacher.ID,
		&teacher.Username,
		&teacher.PasswordHash,
		&teacher.Name,
		&teacher.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	return teacher, err
}

// EnsureExists inserts the teacher unless an account with the same
// username is already present. Usernames are immutable, so an existing
// row is left untouched.
func (r *teacherRepository) EnsureExists(ctx context.Context, teacher *models.Teacher) error {
	query := `
		INSERT INTO teachers (id, username, password_hash, name, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (username) DO NOTHING
	`

	_, err := r.db.ExecContext(ctx, query,
		teacher.ID,
		teacher.Username,
		teacher.PasswordHash,
		teacher.Name,
		teacher.CreatedAt,
	)

	return err
}
