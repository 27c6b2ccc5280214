package models

import (
	"time"

	"valiant-hris/internal/core/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func assignID(id *string) {
	if *id == "" {
		*id = uuid.NewString()
	}
}

// ============================================================
// Accounts
// ============================================================

// User represents users table
type User struct {
	ID        string      `gorm:"primaryKey;size:36" json:"id"`
	Name      string      `gorm:"size:100;not null" json:"name"`
	Email     string      `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password  string      `gorm:"size:255;not null" json:"-"`
	Role      domain.Role `gorm:"size:20;not null;default:employee" json:"role"`
	CreatedAt time.Time   `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time   `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	assignID(&u.ID)
	return nil
}

// ============================================================
// Organisation
// ============================================================

// Address of an employee
type Address struct {
	Street  string `gorm:"size:255" json:"street"`
	City    string `gorm:"size:100" json:"city"`
	State   string `gorm:"size:100" json:"state"`
	ZipCode string `gorm:"size:20" json:"zipCode"`
	Country string `gorm:"size:100" json:"country"`
}

// EmergencyContact of an employee
type EmergencyContact struct {
	Name         string `gorm:"size:100" json:"name"`
	Relationship string `gorm:"size:50" json:"relationship"`
	Phone        string `gorm:"size:30" json:"phone"`
}

// Employee represents employees table
type Employee struct {
	ID               string           `gorm:"primaryKey;size:36" json:"id"`
	EmployeeCode     string           `gorm:"uniqueIndex;size:20;not null" json:"employeeId"`
	FirstName        string           `gorm:"size:100;not null" json:"firstName"`
	LastName         string           `gorm:"size:100;not null" json:"lastName"`
	Email            string           `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Phone            string           `gorm:"size:30;not null" json:"phone"`
	DepartmentID     string           `gorm:"size:36;index;not null" json:"departmentId"`
	Department       *Department      `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
	Position         string           `gorm:"size:50;not null;index" json:"position"`
	HireDate         time.Time        `gorm:"not null" json:"hireDate"`
	Salary           float64          `gorm:"not null" json:"salary"`
	Status           string           `gorm:"size:20;not null;default:Active;index" json:"status"`
	Address          Address          `gorm:"embedded;embeddedPrefix:address_" json:"address"`
	EmergencyContact EmergencyContact `gorm:"embedded;embeddedPrefix:emergency_" json:"emergencyContact"`
	CreatedAt        time.Time        `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt        time.Time        `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Employee) TableName() string {
	return "employees"
}

func (e *Employee) BeforeCreate(tx *gorm.DB) error {
	assignID(&e.ID)
	return nil
}

// FullName returns first and last name
func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// Department represents departments table
type Department struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Name        string    `gorm:"uniqueIndex;size:100;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	ManagerID   *string   `gorm:"size:36" json:"managerId"`
	Manager     *Employee `gorm:"foreignKey:ManagerID" json:"manager,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Department) TableName() string {
	return "departments"
}

func (d *Department) BeforeCreate(tx *gorm.DB) error {
	assignID(&d.ID)
	return nil
}

// ============================================================
// Fleet
// ============================================================

// Vessel represents vessels table
type Vessel struct {
	ID                string     `gorm:"primaryKey;size:36" json:"id"`
	VesselCode        string     `gorm:"uniqueIndex;size:20;not null" json:"vesselId"`
	VesselName        string     `gorm:"size:100;not null" json:"vesselName"`
	IMO               string     `gorm:"column:imo;uniqueIndex;size:20;not null" json:"imo"`
	DeliveryDate      time.Time  `gorm:"not null" json:"deliveryDate"`
	RegistrationDate  time.Time  `gorm:"not null" json:"registrationDate"`
	Status            string     `gorm:"size:20;not null;default:Active;index" json:"status"`
	Capacity          float64    `gorm:"not null" json:"capacity"`
	Type              string     `gorm:"size:30;not null" json:"type"`
	Flag              string     `gorm:"size:50;not null" json:"flag"`
	AssignedEmployees []Employee `gorm:"many2many:vessel_employees" json:"assignedEmployees"`
	CreatedAt         time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt         time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Vessel) TableName() string {
	return "vessels"
}

func (v *Vessel) BeforeCreate(tx *gorm.DB) error {
	assignID(&v.ID)
	return nil
}

// ============================================================
// Time keeping and pay
// ============================================================

// Attendance represents attendance table. One record per employee per day.
type Attendance struct {
	ID         string     `gorm:"primaryKey;size:36" json:"id"`
	EmployeeID string     `gorm:"size:36;not null;uniqueIndex:idx_attendance_employee_date,priority:1" json:"employeeId"`
	Employee   *Employee  `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
	VesselID   *string    `gorm:"size:36;index" json:"vesselId"`
	Vessel     *Vessel    `gorm:"foreignKey:VesselID" json:"vessel,omitempty"`
	Date       time.Time  `gorm:"not null;uniqueIndex:idx_attendance_employee_date,priority:2" json:"date"`
	Status     string     `gorm:"size:20;not null" json:"status"`
	TimeIn     *time.Time `json:"timeIn"`
	TimeOut    *time.Time `json:"timeOut"`
	Day        bool       `gorm:"not null;default:false" json:"day"`
	Night      bool       `gorm:"not null;default:false" json:"night"`
	OTDay      bool       `gorm:"column:ot_day;not null;default:false" json:"otDay"`
	OTNight    bool       `gorm:"column:ot_night;not null;default:false" json:"otNight"`
	NP         bool       `gorm:"column:np;not null;default:false" json:"np"`
	Remarks    string     `gorm:"type:text" json:"remarks"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Attendance) TableName() string {
	return "attendance"
}

func (a *Attendance) BeforeCreate(tx *gorm.DB) error {
	assignID(&a.ID)
	return nil
}

// PayPeriod bounds a payroll record
type PayPeriod struct {
	StartDate time.Time `gorm:"not null;uniqueIndex:idx_payroll_employee_period,priority:2" json:"startDate"`
	EndDate   time.Time `gorm:"not null;uniqueIndex:idx_payroll_employee_period,priority:3" json:"endDate"`
}

// Deductions withheld from gross pay
type Deductions struct {
	SSS        float64 `gorm:"column:sss;not null;default:0" json:"sss"`
	PhilHealth float64 `gorm:"column:philhealth;not null;default:0" json:"philhealth"`
	PagIBIG    float64 `gorm:"column:pagibig;not null;default:0" json:"pagibig"`
	Tax        float64 `gorm:"column:tax;not null;default:0" json:"tax"`
	Other      float64 `gorm:"column:other;not null;default:0" json:"other"`
}

// Payroll represents payrolls table. One record per employee per pay period.
type Payroll struct {
	ID                     string     `gorm:"primaryKey;size:36" json:"id"`
	EmployeeID             string     `gorm:"size:36;not null;uniqueIndex:idx_payroll_employee_period,priority:1" json:"employeeId"`
	Employee               *Employee  `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
	VesselID               *string    `gorm:"size:36;index" json:"vesselId"`
	Vessel                 *Vessel    `gorm:"foreignKey:VesselID" json:"vessel,omitempty"`
	PayPeriod              PayPeriod  `gorm:"embedded;embeddedPrefix:period_" json:"payPeriod"`
	RegularHours           float64    `gorm:"not null;default:0" json:"regularHours"`
	OvertimeHours          float64    `gorm:"not null;default:0" json:"overtimeHours"`
	NightDifferentialHours float64    `gorm:"not null;default:0" json:"nightDifferentialHours"`
	SundayHours            float64    `gorm:"not null;default:0" json:"sundayHours"`
	SundayOvertimeHours    float64    `gorm:"not null;default:0" json:"sundayOvertimeHours"`
	HolidayHours           float64    `gorm:"not null;default:0" json:"holidayHours"`
	HolidayOvertimeHours   float64    `gorm:"not null;default:0" json:"holidayOvertimeHours"`
	Rate                   float64    `gorm:"not null" json:"rate"`
	GrossPay               float64    `gorm:"not null" json:"grossPay"`
	Deductions             Deductions `gorm:"embedded;embeddedPrefix:deduction_" json:"deductions"`
	NetPay                 float64    `gorm:"not null" json:"netPay"`
	Status                 string     `gorm:"size:20;not null;default:Pending;index" json:"status"`
	PaymentDate            *time.Time `gorm:"index" json:"paymentDate"`
	Remarks                string     `gorm:"type:text" json:"remarks"`
	CreatedAt              time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt              time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Payroll) TableName() string {
	return "payrolls"
}

func (p *Payroll) BeforeCreate(tx *gorm.DB) error {
	assignID(&p.ID)
	return nil
}

// AutoMigrate runs auto migration for all models
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Department{},
		&Employee{},
		&Vessel{},
		&Attendance{},
		&Payroll{},
	)
}
