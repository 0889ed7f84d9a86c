package service

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/muhdsahal/tailwebs-task/internal/models"
	"github.com/muhdsahal/tailwebs-task/internal/repository"
)

type AuthService interface {
	Login(ctx context.Context, username, password string) (*models.Teacher, error)
	EnsureDefaultTeacher(ctx context.Context, username, password, name string) error
}

type authService struct {
	teacherRepo repository.TeacherRepository
	logger      zerolog.Logger
}

func NewAuthService(teacherRepo repository.TeacherRepository, logger zerolog.Logger) AuthService {
	return &authService{
		teacherRepo: teacherRepo,
		logger:      logger,
	}
}

// hashPassword is an unsalted sha256 hex digest, kept for parity with
// the portal's existing credential store. Swapping in bcrypt would
// invalidate every stored credential, so it stays a migration decision.
func hashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

func (s *authService) Login(ctx context.Context, username, password string) (*models.Teacher, error) {
	teacher, err := s.teacherRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to look up teacher: %w", err)
	}
	if teacher == nil {
		return nil, ErrInvalidCredentials
	}

	digest := hashPassword(password)
	if subtle.ConstantTimeCompare([]byte(teacher.PasswordHash), []byte(digest)) != 1 {
		return nil, ErrInvalidCredentials
	}

	s.logger.Info().
		Str("teacher_id", teacher.ID).
		Str("username", teacher.Username).
		Msg("Teacher logged in")

	teacher.PasswordHash = ""
	return teacher, nil
}

func (s *authService) EnsureDefaultTeacher(ctx context.Context, username, password, name string) error {
	teacher := &models.Teacher{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: hashPassword(password),
		Name:         name,
		CreatedAt:    time.Now(),
	}

	if err := s.teacherRepo.EnsureExists(ctx, teacher); err != nil {
		return fmt.Errorf("failed to seed default teacher: %w", err)
	}

	s.logger.Info().
		Str("username", username).
		Msg("Default teacher account ensured")

	return nil
}
