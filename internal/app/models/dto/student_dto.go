package dto

// CreateStudentRequest represents a student registration payload
type CreateStudentRequest struct {
	FirstName    string  `json:"firstName" binding:"required"`
	MiddleName   *string `json:"middleName,omitempty"`
	LastName     string  `json:"lastName" binding:"required"`
	FatherName   *string `json:"fatherName,omitempty"`
	MotherName   *string `json:"motherName,omitempty"`
	FatherMobile *string `json:"fatherMobile,omitempty"`
	MotherMobile *string `json:"motherMobile,omitempty"`
	Mobile       string  `json:"mobile" binding:"required"`
	Email        string  `json:"email" binding:"required,email"`
	Address      *string `json:"address,omitempty"`
	State        *string `json:"state,omitempty"`
	City         *string `json:"city,omitempty"`
	School       *string `json:"school,omitempty"`
	Gender       string  `json:"gender" binding:"required"`
	Standard     string  `json:"standard" binding:"required"`
	CourseType   string  `json:"courseType" binding:"required"`
	RollNumber   *string `json:"rollNumber,omitempty"`
	BirthDate    string  `json:"birthDate" binding:"required"` // YYYY-MM-DD
	JoinDate     string  `json:"joinDate" binding:"required"`  // YYYY-MM-DD
}

// UpdateStudentRequest represents a student profile update payload.
// Batch membership is managed through the roster endpoints, not here.
type UpdateStudentRequest = CreateStudentRequest

// AssignStudentRequest assigns a student to a class batch
type AssignStudentRequest struct {
	StudentID int64 `json:"studentId" binding:"required,min=1"`
}
