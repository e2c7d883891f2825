package models

import (
	"time"
)

// Student defines the single student entity based on the 'students' table.
// It carries the full registration profile and, when enrolled, the sole
// reference to the student's class batch.
type Student struct {
	ID            int64       `json:"id" db:"id"`
	UserID        *int64      `json:"userId,omitempty" db:"user_id"` // optional link to a login account
	FirstName     string      `json:"firstName" db:"first_name"`
	MiddleName    *string     `json:"middleName,omitempty" db:"middle_name"`
	LastName      string      `json:"lastName" db:"last_name"`
	FatherName    *string     `json:"fatherName,omitempty" db:"father_name"`
	MotherName    *string     `json:"motherName,omitempty" db:"mother_name"`
	FatherMobile  *string     `json:"fatherMobile,omitempty" db:"father_mobile"`
	MotherMobile  *string     `json:"motherMobile,omitempty" db:"mother_mobile"`
	Mobile        string      `json:"mobile" db:"mobile"`
	Email         string      `json:"email" db:"email"`
	Address       *string     `json:"address,omitempty" db:"address"`
	State         *string     `json:"state,omitempty" db:"state"`
	City          *string     `json:"city,omitempty" db:"city"`
	School        *string     `json:"school,omitempty" db:"school"`
	Gender        string      `json:"gender" db:"gender"`
	Standard      string      `json:"standard" db:"standard"`
	CourseType    string      `json:"courseType" db:"course_type"`
	RollNumber    *string     `json:"rollNumber,omitempty" db:"roll_number"`
	BirthDate     time.Time   `json:"birthDate" db:"birth_date"`
	JoinDate      time.Time   `json:"joinDate" db:"join_date"`
	ClassBatchID  *int64      `json:"classBatchId,omitempty" db:"class_batch_id"`
	ClassBatch    *ClassBatch `json:"classBatch,omitempty"` // relation, no db tag
	CreatedAt     time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time   `json:"updatedAt" db:"updated_at"`
}

// FullName returns the student's display name.
func (s *Student) FullName() string {
	if s.MiddleName != nil && *s.MiddleName != "" {
		return s.FirstName + " " + *s.MiddleName + " " + s.LastName
	}
	return s.FirstName + " " + s.LastName
}
