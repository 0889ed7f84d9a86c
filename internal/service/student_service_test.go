package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/muhdsahal/tailwebs-task/internal/models"
)

type fakeStudentRepo struct {
	students []models.Student
	listErr  error

	upsertID      string
	upsertOutcome models.UpsertOutcome
	upsertErr     error

	byID   *models.Student
	getErr error

	updateErr error
	deleteErr error

	deletedID string
}

func (f *fakeStudentRepo) ListByTeacher(ctx context.Context, teacherID string) ([]models.Student, error) {
	return f.students, f.listErr
}

func (f *fakeStudentRepo) Upsert(ctx context.Context, name, subject string, marks int, teacherID string) (string, models.UpsertOutcome, error) {
	return f.upsertID, f.upsertOutcome, f.upsertErr
}

func (f *fakeStudentRepo) GetByID(ctx context.Context, id string) (*models.Student, error) {
	return f.byID, f.getErr
}

func (f *fakeStudentRepo) Update(ctx context.Context, id, name, subject string, marks int) error {
	return f.updateErr
}

func (f *fakeStudentRepo) Delete(ctx context.Context, id string) error {
	f.deletedID = id
	return f.deleteErr
}

type fakePublisher struct {
	saved   []*models.StudentSavedEvent
	deleted []*models.StudentDeletedEvent
	err     error
}

func (f *fakePublisher) PublishStudentSaved(ctx context.Context, event *models.StudentSavedEvent) error {
	f.saved = append(f.saved, event)
	return f.err
}

func (f *fakePublisher) PublishStudentDeleted(ctx context.Context, event *models.StudentDeletedEvent) error {
	f.deleted = append(f.deleted, event)
	return f.err
}

func (f *fakePublisher) Close() error { return nil }

func TestSaveStudent_PublishesOutcome(t *testing.T) {
	repo := &fakeStudentRepo{upsertID: "s-1", upsertOutcome: models.UpsertCreated}
	events := &fakePublisher{}
	svc := NewStudentService(repo, events, zerolog.Nop())

	outcome, err := svc.SaveStudent(context.Background(), "John", "Math", 80, "t-1")
	if err != nil {
		t.Fatalf("SaveStudent error: %v", err)
	}
	if outcome != models.UpsertCreated {
		t.Errorf("outcome = %v, want UpsertCreated", outcome)
	}
	if len(events.saved) != 1 {
		t.Fatalf("expected 1 saved event, got %d", len(events.saved))
	}
	if events.saved[0].StudentID != "s-1" || events.saved[0].Action != "created" {
		t.Errorf("unexpected event: %+v", events.saved[0])
	}
}

func TestSaveStudent_PublisherFailureDoesNotFailSave(t *testing.T) {
	repo := &fakeStudentRepo{upsertID: "s-1", upsertOutcome: models.UpsertUpdated}
	events := &fakePublisher{err: errors.New("broker down")}
	svc := NewStudentService(repo, events, zerolog.Nop())

	outcome, err := svc.SaveStudent(context.Background(), "John", "Math", 95, "t-1")
	if err != nil {
		t.Fatalf("SaveStudent error: %v", err)
	}
	if outcome != models.UpsertUpdated {
		t.Errorf("outcome = %v, want UpsertUpdated", outcome)
	}
}

func TestSaveStudent_WorksWithoutPublisher(t *testing.T) {
	repo := &fakeStudentRepo{upsertID: "s-1", upsertOutcome: models.UpsertCreated}
	svc := NewStudentService(repo, nil, zerolog.Nop())

	if _, err := svc.SaveStudent(context.Background(), "John", "Math", 80, "t-1"); err != nil {
		t.Fatalf("SaveStudent error: %v", err)
	}
}

func TestUpdateStudent_UnknownID(t *testing.T) {
	repo := &fakeStudentRepo{byID: nil}
	svc := NewStudentService(repo, nil, zerolog.Nop())

	err := svc.UpdateStudent(context.Background(), "missing", "John", "Math", 50)
	if !errors.Is(err, ErrStudentNotFound) {
		t.Fatalf("got %v, want ErrStudentNotFound", err)
	}
}

func TestUpdateStudent_Success(t *testing.T) {
	repo := &fakeStudentRepo{byID: &models.Student{ID: "s-1", TeacherID: "t-1"}}
	events := &fakePublisher{}
	svc := NewStudentService(repo, events, zerolog.Nop())

	if err := svc.UpdateStudent(context.Background(), "s-1", "New Name", "New Subject", 42); err != nil {
		t.Fatalf("UpdateStudent error: %v", err)
	}
	if len(events.saved) != 1 || events.saved[0].Action != "updated" {
		t.Fatalf("expected an updated event, got %+v", events.saved)
	}
}

func TestDeleteStudent_Idempotent(t *testing.T) {
	repo := &fakeStudentRepo{}
	events := &fakePublisher{}
	svc := NewStudentService(repo, events, zerolog.Nop())

	if err := svc.DeleteStudent(context.Background(), "already-gone"); err != nil {
		t.Fatalf("DeleteStudent error: %v", err)
	}
	if repo.deletedID != "already-gone" {
		t.Errorf("delete was not forwarded to repository")
	}
	if len(events.deleted) != 1 {
		t.Fatalf("expected 1 deleted event, got %d", len(events.deleted))
	}
}

func TestListStudents_PassesThrough(t *testing.T) {
	repo := &fakeStudentRepo{students: []models.Student{{ID: "s-1", Marks: 90}}}
	svc := NewStudentService(repo, nil, zerolog.Nop())

	students, err := svc.ListStudents(context.Background(), "t-1")
	if err != nil {
		t.Fatalf("ListStudents error: %v", err)
	}
	if len(students) != 1 || students[0].Marks != 90 {
		t.Fatalf("unexpected students: %+v", students)
	}
}
