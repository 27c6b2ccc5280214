package routes

import (
	"valiant-hris/internal/adapters/http/handlers"
	"valiant-hris/internal/adapters/http/middleware"
	"valiant-hris/internal/adapters/persistence/repositories"
	"valiant-hris/internal/config"
	"valiant-hris/internal/core/services"
	"valiant-hris/internal/pkg/jwt"
	"valiant-hris/internal/pkg/password"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config, store fiber.Storage) {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	employeeRepo := repositories.NewEmployeeRepository(db)
	departmentRepo := repositories.NewDepartmentRepository(db)
	vesselRepo := repositories.NewVesselRepository(db)
	attendanceRepo := repositories.NewAttendanceRepository(db)
	payrollRepo := repositories.NewPayrollRepository(db)

	hasher := password.NewHasher(cfg.BcryptCost)
	issuer := jwt.NewIssuer(jwt.Config{
		Secret: cfg.JWT.Secret,
		Expiry: cfg.JWT.Expiry,
		Issuer: cfg.JWT.Issuer,
	})

	// Initialize services
	authService := services.NewAuthService(userRepo, hasher, issuer)
	userService := services.NewUserService(userRepo, hasher)
	employeeService := services.NewEmployeeService(employeeRepo, departmentRepo)
	departmentService := services.NewDepartmentService(departmentRepo, employeeRepo)
	vesselService := services.NewVesselService(vesselRepo, employeeRepo)
	attendanceService := services.NewAttendanceService(attendanceRepo, employeeRepo, vesselRepo)
	payrollService := services.NewPayrollService(payrollRepo, employeeRepo, vesselRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, cfg.AppMode)
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	employeeHandler := handlers.NewEmployeeHandler(employeeService)
	departmentHandler := handlers.NewDepartmentHandler(departmentService)
	vesselHandler := handlers.NewVesselHandler(vesselService)
	attendanceHandler := handlers.NewAttendanceHandler(attendanceService)
	payrollHandler := handlers.NewPayrollHandler(payrollService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)
	app.Get("/metrics", middleware.MetricsHandler())

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	auth := middleware.AuthMiddleware(issuer)
	authLimiter := middleware.AuthRateLimiter(store)

	api := app.Group("/api")

	setupAuthRoutes(api.Group("/auth"), authHandler, auth, authLimiter)

	// Public registration is matched before the authenticated users group
	api.Post("/users/register", authLimiter, authHandler.Register)
	setupUserRoutes(api.Group("/users", auth), userHandler)

	setupEmployeeRoutes(api.Group("/employees", auth), employeeHandler)
	setupDepartmentRoutes(api.Group("/departments", auth), departmentHandler)
	setupVesselRoutes(api.Group("/vessels", auth), vesselHandler)
	setupAttendanceRoutes(api.Group("/attendance", auth), attendanceHandler)
	setupPayrollRoutes(api.Group("/payroll", auth), payrollHandler)
}

// setupAuthRoutes configures authentication routes
func setupAuthRoutes(router fiber.Router, handler *handlers.AuthHandler, auth, limiter fiber.Handler) {
	router.Post("/login", limiter, handler.Login)

	// Protected routes
	router.Get("/me", auth, handler.Me)
	router.Put("/password", auth, handler.ChangePassword)
}

// setupUserRoutes configures user management routes (Admin only)
func setupUserRoutes(router fiber.Router, handler *handlers.UserHandler) {
	router.Use(middleware.AdminOnly())

	router.Get("/", handler.ListUsers)
	router.Get("/:id", handler.GetUser)
	router.Post("/", handler.CreateUser)
	router.Put("/:id/password", handler.ResetPassword)
	router.Delete("/:id", handler.DeleteUser)
}

func setupEmployeeRoutes(router fiber.Router, handler *handlers.EmployeeHandler) {
	router.Get("/", handler.ListEmployees)
	router.Get("/:id", handler.GetEmployee)
	router.Post("/", middleware.ManagerOrAdmin(), handler.CreateEmployee)
	router.Put("/:id", middleware.ManagerOrAdmin(), handler.UpdateEmployee)
	router.Delete("/:id", middleware.AdminOnly(), handler.DeleteEmployee)
}

func setupDepartmentRoutes(router fiber.Router, handler *handlers.DepartmentHandler) {
	router.Get("/", handler.ListDepartments)
	router.Post("/initialize", middleware.AdminOnly(), handler.InitializeDepartments)
	router.Get("/:id", handler.GetDepartment)
	router.Post("/", middleware.AdminOnly(), handler.CreateDepartment)
	router.Put("/:id", middleware.AdminOnly(), handler.UpdateDepartment)
	router.Delete("/:id", middleware.AdminOnly(), handler.DeleteDepartment)
}

func setupVesselRoutes(router fiber.Router, handler *handlers.VesselHandler) {
	router.Get("/", handler.ListVessels)
	router.Get("/:id", handler.GetVessel)
	router.Post("/", middleware.ManagerOrAdmin(), handler.CreateVessel)
	router.Put("/:id", middleware.ManagerOrAdmin(), handler.UpdateVessel)
	router.Delete("/:id", middleware.AdminOnly(), handler.DeleteVessel)

	// Crew assignment
	router.Post("/:id/employees", middleware.ManagerOrAdmin(), handler.AssignEmployee)
	router.Delete("/:id/employees/:employeeId", middleware.ManagerOrAdmin(), handler.RemoveEmployee)
}

func setupAttendanceRoutes(router fiber.Router, handler *handlers.AttendanceHandler) {
	router.Get("/", handler.ListAttendance)
	router.Post("/bulk", middleware.ManagerOrAdmin(), handler.BulkCreateAttendance)
	router.Get("/:id", handler.GetAttendance)
	router.Post("/", middleware.ManagerOrAdmin(), handler.CreateAttendance)
	router.Put("/:id", middleware.ManagerOrAdmin(), handler.UpdateAttendance)
	router.Delete("/:id", middleware.AdminOnly(), handler.DeleteAttendance)
}

func setupPayrollRoutes(router fiber.Router, handler *handlers.PayrollHandler) {
	router.Get("/", handler.ListPayroll)
	router.Get("/vessel/:vesselId", handler.ListVesselPayroll)
	router.Post("/bulk", middleware.ManagerOrAdmin(), handler.BulkCreatePayroll)
	router.Get("/:id", handler.GetPayroll)
	router.Post("/", middleware.ManagerOrAdmin(), handler.CreatePayroll)
	router.Put("/:id", middleware.ManagerOrAdmin(), handler.UpdatePayroll)
	router.Delete("/:id", middleware.AdminOnly(), handler.DeletePayroll)
}
