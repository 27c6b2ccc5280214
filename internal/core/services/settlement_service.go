package services

import (
	"context"
	"log"
	"time"

	"valiant-hris/internal/adapters/persistence/repositories"

	"github.com/robfig/cron/v3"
)

// DefaultSettlementSchedule runs settlement daily at 00:30
const DefaultSettlementSchedule = "30 0 * * *"

const settlementTimeout = time.Minute

// SettlementService marks processed payroll as paid once its payment date passes
type SettlementService struct {
	payrollRepo repositories.PayrollRepository
	schedule    string
	cron        *cron.Cron
	now         func() time.Time
}

// NewSettlementService creates a settlement job for the cron schedule
func NewSettlementService(payrollRepo repositories.PayrollRepository, schedule string) *SettlementService {
	if schedule == "" {
		schedule = DefaultSettlementSchedule
	}
	return &SettlementService{
		payrollRepo: payrollRepo,
		schedule:    schedule,
		cron: cron.New(
			cron.WithLocation(time.UTC),
			cron.WithChain(cron.Recover(cron.DefaultLogger)),
		),
		now: time.Now,
	}
}

// Start registers the job and starts the scheduler
func (s *SettlementService) Start() error {
	_, err := s.cron.AddFunc(s.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), settlementTimeout)
		defer cancel()

		if _, err := s.RunOnce(ctx); err != nil {
			log.Printf("❌ Payroll settlement failed: %v", err)
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	log.Printf("🚀 Payroll settlement scheduled [%s UTC]", s.schedule)
	return nil
}

// Stop stops the scheduler and waits for a running job to finish
func (s *SettlementService) Stop() {
	<-s.cron.Stop().Done()
	log.Println("🛑 Payroll settlement stopped")
}

// RunOnce settles every due record and returns how many were marked paid
func (s *SettlementService) RunOnce(ctx context.Context) (int64, error) {
	n, err := s.payrollRepo.MarkPaidDue(ctx, s.now().UTC())
	if err != nil {
		return 0, err
	}
	log.Printf("✅ Payroll settlement: %d record(s) marked Paid", n)
	return n, nil
}
