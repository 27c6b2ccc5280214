package config

import (
	"context"
	"log"
	"strings"
	"time"

	"valiant-hris/internal/adapters/persistence/models"
	"valiant-hris/internal/adapters/persistence/repositories"
	"valiant-hris/internal/core/domain"
	"valiant-hris/internal/pkg/password"

	"gorm.io/gorm"
)

// Seeder handles database seeding
type Seeder struct {
	cfg            *Config
	hasher         *password.Hasher
	userRepo       repositories.UserRepository
	departmentRepo repositories.DepartmentRepository
	vesselRepo     repositories.VesselRepository
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB, cfg *Config, hasher *password.Hasher) *Seeder {
	return &Seeder{
		cfg:            cfg,
		hasher:         hasher,
		userRepo:       repositories.NewUserRepository(db),
		departmentRepo: repositories.NewDepartmentRepository(db),
		vesselRepo:     repositories.NewVesselRepository(db),
	}
}

// Run executes all seeders. Failures are logged and do not stop startup.
func (s *Seeder) Run(ctx context.Context) error {
	log.Println("🌱 Running database seeders...")

	if err := s.seedAdminUser(ctx); err != nil {
		log.Printf("⚠️ Admin seeder skipped: %v", err)
	}

	if s.cfg.SeedSampleData {
		if err := s.seedDepartments(ctx); err != nil {
			log.Printf("⚠️ Department seeder skipped: %v", err)
		}
		if err := s.seedVessels(ctx); err != nil {
			log.Printf("⚠️ Vessel seeder skipped: %v", err)
		}
	}

	log.Println("✅ Database seeding completed")
	return nil
}

// seedAdminUser creates the configured admin when no admin exists
func (s *Seeder) seedAdminUser(ctx context.Context) error {
	count, err := s.userRepo.CountByRole(ctx, domain.RoleAdmin)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	email := strings.ToLower(strings.TrimSpace(s.cfg.Admin.Email))
	if email == "" || s.cfg.Admin.Password == "" {
		log.Println("⚠️ No admin user exists and ADMIN_EMAIL/ADMIN_PASSWORD are not set")
		log.Println("   Create one with: go run ./cmd/admin create-user -role admin")
		return nil
	}

	if err := password.ValidateStrength(s.cfg.Admin.Password); err != nil {
		return err
	}
	hash, err := s.hasher.Hash(s.cfg.Admin.Password)
	if err != nil {
		return err
	}

	admin := &models.User{
		Name:     s.cfg.Admin.Name,
		Email:    email,
		Password: hash,
		Role:     domain.RoleAdmin,
	}
	if err := s.userRepo.Create(ctx, admin); err != nil {
		return err
	}

	log.Printf("✅ Admin user created: %s", admin.Email)
	return nil
}

// sampleDepartments are installed on an empty database
var sampleDepartments = []models.Department{
	{Name: "Operations", Description: "Port and vessel operations"},
	{Name: "Logistics", Description: "Cargo handling and delivery"},
	{Name: "HR", Description: "Human resources"},
	{Name: "Finance", Description: "Payroll and accounting"},
	{Name: "IT", Description: "Information technology"},
}

func (s *Seeder) seedDepartments(ctx context.Context) error {
	count, err := s.departmentRepo.Count(ctx)
	if err != nil || count > 0 {
		return err
	}

	departments := make([]*models.Department, len(sampleDepartments))
	for i := range sampleDepartments {
		d := sampleDepartments[i]
		departments[i] = &d
	}
	if err := s.departmentRepo.ReplaceAll(ctx, departments); err != nil {
		return err
	}

	log.Printf("✅ Sample departments created: %d", len(departments))
	return nil
}

func sampleVessels() []*models.Vessel {
	date := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
	return []*models.Vessel{
		{
			VesselCode: "VSL-001", VesselName: "Valiant", IMO: "IMO9000001",
			DeliveryDate: date(2018, 3, 12), RegistrationDate: date(2018, 4, 2),
			Status: domain.VesselActive, Capacity: 25000, Type: "Cargo", Flag: "Philippines",
		},
		{
			VesselCode: "VSL-002", VesselName: "Voyager", IMO: "IMO9000002",
			DeliveryDate: date(2019, 7, 8), RegistrationDate: date(2019, 8, 1),
			Status: domain.VesselActive, Capacity: 40000, Type: "Container", Flag: "Philippines",
		},
		{
			VesselCode: "VSL-003", VesselName: "Victory", IMO: "IMO9000003",
			DeliveryDate: date(2015, 1, 20), RegistrationDate: date(2015, 2, 15),
			Status: domain.VesselMaintenance, Capacity: 60000, Type: "Bulk Carrier", Flag: "Panama",
		},
	}
}

func (s *Seeder) seedVessels(ctx context.Context) error {
	count, err := s.vesselRepo.Count(ctx)
	if err != nil || count > 0 {
		return err
	}

	vessels := sampleVessels()
	for _, v := range vessels {
		if err := s.vesselRepo.Create(ctx, v); err != nil {
			return err
		}
	}

	log.Printf("✅ Sample vessels created: %d", len(vessels))
	return nil
}
