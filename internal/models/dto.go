package models

import "encoding/json"

// Data Transfer Objects

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type ListStudentsRequest struct {
	TeacherID string `json:"teacher_id"`
}

// Marks arrives as json.Number so the handler can coerce it the way the
// dashboard submits it (number or numeric string is up to the client).
type SaveStudentRequest struct {
	Name      string      `json:"name"`
	Subject   string      `json:"subject"`
	Marks     json.Number `json:"marks"`
	TeacherID string      `json:"teacher_id"`
}

type UpdateStudentRequest struct {
	StudentID string      `json:"student_id"`
	Name      string      `json:"name"`
	Subject   string      `json:"subject"`
	Marks     json.Number `json:"marks"`
}

type DeleteStudentRequest struct {
	StudentID string `json:"student_id"`
}

type TeacherResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
