package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/digiclass/backend/internal/app/models"
)

func TestAllowed(t *testing.T) {
	tests := []struct {
		name string
		role models.RoleType
		cap  Capability
		want bool
	}{
		{"admin manages users", models.RoleAdmin, ManageUsers, true},
		{"admin manages ledger", models.RoleAdmin, ManageLedger, true},
		{"teacher records attendance", models.RoleTeacher, RecordAttendance, true},
		{"teacher manages students", models.RoleTeacher, ManageStudents, true},
		{"teacher cannot manage fees", models.RoleTeacher, ManageFees, false},
		{"teacher cannot manage batches", models.RoleTeacher, ManageBatches, false},
		{"teacher cannot manage users", models.RoleTeacher, ManageUsers, false},
		{"student holds nothing", models.RoleStudent, RecordAttendance, false},
		{"unknown role holds nothing", models.RoleType("Janitor"), ManageUsers, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Allowed(tt.role, tt.cap))
		})
	}
}

func TestAdminHoldsEveryCapability(t *testing.T) {
	all := []Capability{
		ManageUsers, ManageBatches, ManageStudents, ManageCatalog,
		RecordAttendance, ManageExams, ManageFees, ManageLedger,
		ManageInquiries, ViewReports,
	}
	for _, cap := range all {
		assert.True(t, Allowed(models.RoleAdmin, cap), string(cap))
	}
}

func TestCapabilitiesFor(t *testing.T) {
	assert.Len(t, CapabilitiesFor(models.RoleAdmin), 10)
	assert.Len(t, CapabilitiesFor(models.RoleTeacher), 4)
	assert.Empty(t, CapabilitiesFor(models.RoleStudent))
}
