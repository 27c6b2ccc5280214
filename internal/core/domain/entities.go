package domain

// Role represents user role in the system
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
)

// Valid reports whether r is one of the known roles
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleEmployee:
		return true
	}
	return false
}

// Employee positions
var EmployeePositions = []string{
	"Gangboss",
	"Dock Checker",
	"Delivery Checker",
	"Stevedor",
	"Arrastre",
	"Forklift Optr",
	"Signalman",
}

// Employee statuses
const (
	EmployeeActive     = "Active"
	EmployeeOnLeave    = "On Leave"
	EmployeeTerminated = "Terminated"
)

var EmployeeStatuses = []string{EmployeeActive, EmployeeOnLeave, EmployeeTerminated}

// Vessel statuses and types
const (
	VesselActive      = "Active"
	VesselMaintenance = "Maintenance"
	VesselRetired     = "Retired"
)

var VesselStatuses = []string{VesselActive, VesselMaintenance, VesselRetired}

var VesselTypes = []string{"Cargo", "Container", "Tanker", "Bulk Carrier", "Other"}

// Attendance statuses
var AttendanceStatuses = []string{"Present", "Absent", "Late", "On Leave"}

// Payroll statuses
const (
	PayrollPending   = "Pending"
	PayrollProcessed = "Processed"
	PayrollPaid      = "Paid"
)

var PayrollStatuses = []string{PayrollPending, PayrollProcessed, PayrollPaid}

// OneOf reports whether value is in allowed
func OneOf(value string, allowed []string) bool {
	for _, a := range allowed {
		if a == value {
			return true
		}
	}
	return false
}
