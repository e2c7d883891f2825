package authz

import (
	"github.com/digiclass/backend/internal/app/models"
)

// Capability names a protected operation group. Route handlers declare the
// capability they need; the role decides whether the caller holds it.
type Capability string

const (
	ManageUsers      Capability = "manage_users"
	ManageBatches    Capability = "manage_batches"
	ManageStudents   Capability = "manage_students"
	ManageCatalog    Capability = "manage_catalog"
	RecordAttendance Capability = "record_attendance"
	ManageExams      Capability = "manage_exams"
	ManageFees       Capability = "manage_fees"
	ManageLedger     Capability = "manage_ledger"
	ManageInquiries  Capability = "manage_inquiries"
	ViewReports      Capability = "view_reports"
)

// roleCapabilities maps each role to the capabilities it holds. Admin holds
// everything; Teacher holds the day-to-day classroom operations; Student
// holds nothing beyond its own authenticated profile routes.
var roleCapabilities = map[models.RoleType]map[Capability]bool{
	models.RoleAdmin: {
		ManageUsers:      true,
		ManageBatches:    true,
		ManageStudents:   true,
		ManageCatalog:    true,
		RecordAttendance: true,
		ManageExams:      true,
		ManageFees:       true,
		ManageLedger:     true,
		ManageInquiries:  true,
		ViewReports:      true,
	},
	models.RoleTeacher: {
		ManageStudents:   true,
		RecordAttendance: true,
		ManageExams:      true,
		ViewReports:      true,
	},
	models.RoleStudent: {},
}

// Allowed reports whether the role holds the capability. Unknown roles hold
// nothing.
func Allowed(role models.RoleType, cap Capability) bool {
	caps, ok := roleCapabilities[role]
	if !ok {
		return false
	}
	return caps[cap]
}

// CapabilitiesFor returns the capabilities held by a role.
func CapabilitiesFor(role models.RoleType) []Capability {
	caps := roleCapabilities[role]
	out := make([]Capability, 0, len(caps))
	for c, held := range caps {
		if held {
			out = append(out, c)
		}
	}
	return out
}
