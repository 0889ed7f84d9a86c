package models

type StudentSavedEvent struct {
	StudentID string `json:"student_id"`
	TeacherID string `json:"teacher_id"`
	Action    string `json:"action"`
	Timestamp int64  `json:"timestamp"`
}

type StudentDeletedEvent struct {
	StudentID string `json:"student_id"`
	Timestamp int64  `json:"timestamp"`
}
