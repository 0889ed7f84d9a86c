package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/muhdsahal/tailwebs-task/internal/models"
	"github.com/muhdsahal/tailwebs-task/internal/repository"
	"github.com/muhdsahal/tailwebs-task/internal/service/integration"
)

type StudentService interface {
	ListStudents(ctx context.Context, teacherID string) ([]models.Student, error)
	SaveStudent(ctx context.Context, name, subject string, marks int, teacherID string) (models.UpsertOutcome, error)
	UpdateStudent(ctx context.Context, id, name, subject string, marks int) error
	DeleteStudent(ctx context.Context, id string) error
}

type studentService struct {
	studentRepo repository.StudentRepository
	events      integration.EventPublisher
	logger      zerolog.Logger
}

// events may be nil; mutation events are best-effort and the portal runs
// without a broker.
func NewStudentService(studentRepo repository.StudentRepository, events integration.EventPublisher, logger zerolog.Logger) StudentService {
	return &studentService{
		studentRepo: studentRepo,
		events:      events,
		logger:      logger,
	}
}

func (s *studentService) ListStudents(ctx context.Context, teacherID string) ([]models.Student, error) {
	students, err := s.studentRepo.ListByTeacher(ctx, teacherID)
	if err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}

	return students, nil
}

func (s *studentService) SaveStudent(ctx context.Context, name, subject string, marks int, teacherID string) (models.UpsertOutcome, error) {
	id, outcome, err := s.studentRepo.Upsert(ctx, name, subject, marks, teacherID)
	if err != nil {
		return outcome, fmt.Errorf("failed to save student: %w", err)
	}

	s.logger.Info().
		Str("student_id", id).
		Str("teacher_id", teacherID).
		Str("outcome", outcome.String()).
		Msg("Student saved")

	s.publishSaved(ctx, id, teacherID, outcome.String())

	return outcome, nil
}

func (s *studentService) UpdateStudent(ctx context.Context, id, name, subject string, marks int) error {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get student: %w", err)
	}
	if student == nil {
		return ErrStudentNotFound
	}

	if err := s.studentRepo.Update(ctx, id, name, subject, marks); err != nil {
		return fmt.Errorf("failed to update student: %w", err)
	}

	s.logger.Info().
		Str("student_id", id).
		Msg("Student updated")

	s.publishSaved(ctx, id, student.TeacherID, "updated")

	return nil
}

func (s *studentService) DeleteStudent(ctx context.Context, id string) error {
	if err := s.studentRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete student: %w", err)
	}

	s.logger.Info().
		Str("student_id", id).
		Msg("Student deleted")

	if s.events != nil {
		event := &models.StudentDeletedEvent{
			StudentID: id,
			Timestamp: time.Now().Unix(),
		}
		if err := s.events.PublishStudentDeleted(ctx, event); err != nil {
			s.logger.Error().Err(err).Msg("Failed to publish student deleted event")
		}
	}

	return nil
}

func (s *studentService) publishSaved(ctx context.Context, studentID, teacherID, action string) {
	if s.events == nil {
		return
	}

	event := &models.StudentSavedEvent{
		StudentID: studentID,
		TeacherID: teacherID,
		Action:    action,
		Timestamp: time.Now().Unix(),
	}
	if err := s.events.PublishStudentSaved(ctx, event); err != nil {
		s.logger.Error().Err(err).Msg("Failed to publish student saved event")
	}
}
