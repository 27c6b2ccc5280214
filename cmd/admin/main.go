// Command admin runs operator tasks against the HRIS database.
//
//	admin create-user -name "Jane Admin" -email jane@valiant.ph -password secret123 -role admin
//	admin reset-password -email jane@valiant.ph -password newsecret1
//	admin settle-payroll
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"valiant-hris/internal/adapters/persistence/models"
	"valiant-hris/internal/adapters/persistence/repositories"
	"valiant-hris/internal/config"
	"valiant-hris/internal/core/domain"
	"valiant-hris/internal/core/services"
	"valiant-hris/internal/pkg/password"

	"gorm.io/gorm"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer config.CloseDatabase(db)

	if err := models.AutoMigrate(db); err != nil {
		log.Fatalf("❌ Failed to auto migrate: %v", err)
	}

	if err := run(context.Background(), db, cfg, os.Args[1], os.Args[2:]); err != nil {
		log.Printf("❌ %s: %v", os.Args[1], err)
		os.Exit(1)
	}
}

func run(ctx context.Context, db *gorm.DB, cfg *config.Config, command string, args []string) error {
	users := services.NewUserService(repositories.NewUserRepository(db), password.NewHasher(cfg.BcryptCost))

	switch command {
	case "create-user":
		fs := flag.NewFlagSet(command, flag.ExitOnError)
		name := fs.String("name", "", "display name")
		email := fs.String("email", "", "login email")
		pass := fs.String("password", "", "password (8-72 bytes)")
		role := fs.String("role", string(domain.RoleEmployee), "admin, manager or employee")
		_ = fs.Parse(args)

		user, err := users.Create(ctx, &services.CreateUserInput{
			Name:     *name,
			Email:    *email,
			Password: *pass,
			Role:     domain.Role(*role),
		})
		if err != nil {
			return err
		}
		fmt.Printf("created %s (%s) id=%s\n", user.Email, user.Role, user.ID)

	case "reset-password":
		fs := flag.NewFlagSet(command, flag.ExitOnError)
		email := fs.String("email", "", "login email")
		pass := fs.String("password", "", "new password (8-72 bytes)")
		_ = fs.Parse(args)

		if err := users.ResetPasswordByEmail(ctx, *email, *pass); err != nil {
			return err
		}
		fmt.Printf("password reset for %s\n", *email)

	case "settle-payroll":
		settlement := services.NewSettlementService(repositories.NewPayrollRepository(db), cfg.SettleSchedule)
		n, err := settlement.RunOnce(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("%d payroll record(s) marked Paid\n", n)

	default:
		usage()
		return fmt.Errorf("unknown command %q", command)
	}
	return nil
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: admin <create-user|reset-password|settle-payroll> [flags]")
}
