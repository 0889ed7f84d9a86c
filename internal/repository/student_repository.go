package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/muhdsahal/tailwebs-task/internal/models"
)

type StudentRepository interface {
	ListByTeacher(ctx context.Context, teacherID string) ([]models.Student, error)
	Upsert(ctx context.Context, name, subject string, marks int, teacherID string) (string, models.UpsertOutcome, error)
	GetByID(ctx context.Context, id string) (*models.Student, error)
	Update(ctx context.Context, id, name, subject string, marks int) error
	Delete(ctx context.Context, id string) error
}

type studentRepository struct {
	*PostgresRepository
}

func NewStudentRepository(db *sql.DB, logger zerolog.Logger) StudentRepository {
	return &studentRepository{
		PostgresRepository: NewPostgresRepository(db, logger),
	}
}

func (r *studentRepository) ListByTeacher(ctx context.Context, teacherID string) ([]models.Student, error) {
	query := `
		SELECT id, name, subject, marks, teacher_id, created_at, updated_at
		FROM students
		WHERE teacher_id = $1
		ORDER BY name, subject
	`

	rows, err := r.db.QueryContext(ctx, query, teacherID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	students := make([]models.Student, 0)
	for rows.Next() {
		var student models.Student
		err := rows.Scan(
			&student.ID,
			&student.Name,
			&student.Subject,
			&student.Marks,
			&student.TeacherID,
			&student.CreatedAt,
			&student.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		students = append(students, student)
	}

	return students, rows.Err()
}

// Upsert merges by normalized identity: a record whose trimmed,
// case-folded name and subject match the input gets only its marks
// overwritten; otherwise a new record is inserted with title-cased
// display strings. The conditional insert rides the unique index on
// (name_key, subject_key, teacher_id), so a racing pair of upserts for
// the same key still yields a single row.
func (r *studentRepository) Upsert(ctx context.Context, name, subject string, marks int, teacherID string) (string, models.UpsertOutcome, error) {
	query := `
		INSERT INTO students (id, name, subject, marks, name_key, subject_key, teacher_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
		ON CONFLICT (name_key, subject_key, teacher_id)
		DO UPDATE SET marks = EXCLUDED.marks, updated_at = EXCLUDED.updated_at
		RETURNING id, (xmax = 0) AS inserted
	`

	var (
		id       string
		inserted bool
	)
	err := r.db.QueryRowContext(ctx, query,
		uuid.New().String(),
		displayForm(name),
		displayForm(subject),
		marks,
		matchKey(name),
		matchKey(subject),
		teacherID,
		time.Now(),
	).Scan(&id, &inserted)
	if err != nil {
		return "", models.UpsertCreated, err
	}

	if inserted {
		return id, models.UpsertCreated, nil
	}
	return id, models.UpsertUpdated, nil
}

func (r *studentRepository) GetByID(ctx context.Context, id string) (*models.Student, error) {
	query := `
		SELECT id, name, subject, marks, teacher_id, created_at, updated_at
		FROM students
		WHERE id = $1
	`

	student := &models.Student{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&student.ID,
		&student.Name,
		&student.Subject,
		&student.Marks,
		&student.TeacherID,
		&student.CreatedAt,
		&student.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	return student, err
}

// Update overwrites name, subject, and marks exactly as given. Display
// strings are not re-normalized; the identity keys are refreshed so the
// unique index keeps guarding upserts, and a direct edit that collides
// with another record surfaces as a constraint violation.
func (r *studentRepository) Update(ctx context.Context, id, name, subject string, marks int) error {
	query := `
		UPDATE students
		SET name = $1, subject = $2, marks = $3, name_key = $4, subject_key = $5, updated_at = $6
		WHERE id = $7
	`

	_, err := r.db.ExecContext(ctx, query,
		name,
		subject,
		marks,
		matchKey(name),
		matchKey(subject),
		time.Now(),
		id,
	)

	return err
}

// Delete is idempotent: removing an id that is already gone is not an
// error.
func (r *studentRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM students WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}
