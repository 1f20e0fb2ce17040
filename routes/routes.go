package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/mouizahmed/ratethatclass-sub000/config"
	"github.com/mouizahmed/ratethatclass-sub000/controllers"
	"github.com/mouizahmed/ratethatclass-sub000/middleware"
	"github.com/mouizahmed/ratethatclass-sub000/repositories"
	"github.com/mouizahmed/ratethatclass-sub000/services"
	"github.com/mouizahmed/ratethatclass-sub000/utils"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Repositories
	universityRepo := repositories.NewUniversityRepository(db)
	departmentRepo := repositories.NewDepartmentRepository(db)
	courseRepo := repositories.NewCourseRepository(db)
	professorRepo := repositories.NewProfessorRepository(db)
	reviewRepo := repositories.NewReviewRepository(db)
	userRepo := repositories.NewUserRepository(db)
	reportRepo := repositories.NewReportRepository(db)
	adminRepo := repositories.NewAdminRepository(db)

	// Services
	universityService := services.NewUniversityService(universityRepo)
	departmentService := services.NewDepartmentService(departmentRepo)
	courseService := services.NewCourseService(courseRepo)
	professorService := services.NewProfessorService(professorRepo)
	reviewService := services.NewReviewService(reviewRepo)
	userService := services.NewUserService(userRepo, cfg)
	reportService := services.NewReportService(reportRepo)
	adminService := services.NewAdminService(adminRepo, reportRepo)

	// Middleware
	requireUser := middleware.RequireUser(cfg, userRepo)
	optionalUser := middleware.OptionalUser(cfg)
	requireAdmin := middleware.RequireAdmin(cfg)

	app.Get("/health", func(c *fiber.Ctx) error {
		return utils.Success(c, fiber.StatusOK, "OK", nil, nil)
	})

	// University routes
	universityController := controllers.NewUniversityController(universityService)
	university := app.Group("/university")
	university.Get("/", universityController.GetPaginated)
	university.Get("/domains", universityController.GetDomains)
	university.Get("/requests", universityController.GetRequests)
	university.Post("/requests", universityController.CreateRequest)
	university.Put("/requests/:id/vote", universityController.VoteRequest)
	university.Get("/by-name/:name", universityController.GetByName)
	university.Get("/by-id/:id", universityController.GetByID)

	// Department routes
	departmentController := controllers.NewDepartmentController(departmentService)
	department := app.Group("/department")
	department.Get("/", departmentController.GetPaginated)
	department.Get("/by-university-id/:id", departmentController.GetByUniversityID)
	department.Get("/by-id/:id", departmentController.GetByID)
	department.Post("/", requireUser, departmentController.Create)

	// Course routes
	courseController := controllers.NewCourseController(courseService)
	course := app.Group("/course")
	course.Get("/", courseController.GetPaginated)
	course.Get("/by-university-id/:id/by-tag/:tag", courseController.GetByTag)
	course.Get("/by-university-id/:id", courseController.GetByUniversityID)
	course.Get("/by-department-id/:id", courseController.GetByDepartmentID)
	course.Get("/by-id/:id", courseController.GetByID)
	course.Post("/", requireUser, courseController.Create)

	// Professor routes
	professorController := controllers.NewProfessorController(professorService)
	professor := app.Group("/professor")
	professor.Get("/", professorController.GetPaginated)
	professor.Get("/by-university-id/:id", professorController.GetByUniversityID)
	professor.Get("/by-course-id/:id", professorController.GetByCourseID)

	// Review routes
	reviewController := controllers.NewReviewController(reviewService)
	review := app.Group("/review")
	review.Get("/", reviewController.GetPaginated)
	review.Get("/votes", requireUser, reviewController.GetVotes)
	review.Get("/by-course-id/:courseId", optionalUser, reviewController.GetByCourseID)
	review.Post("/vote", requireUser, reviewController.Vote)
	review.Post("/", requireUser, reviewController.Create)
	review.Delete("/:reviewId", requireUser, reviewController.Delete)

	// User routes
	userController := controllers.NewUserController(userService, reviewService)
	user := app.Group("/user")
	user.Post("/register", userController.Register)
	user.Post("/login", userController.Login)
	user.Get("/reviews", requireUser, userController.GetReviews)
	user.Get("/upvoted-reviews", requireUser, userController.GetUpvotedReviews)
	user.Get("/downvoted-reviews", requireUser, userController.GetDownvotedReviews)

	// Report routes
	reportController := controllers.NewReportController(reportService)
	app.Post("/report/create", requireUser, reportController.Create)

	// Admin routes
	adminController := controllers.NewAdminController(adminService)
	admin := app.Group("/admin", requireAdmin)
	admin.Get("/reports", adminController.GetReports)
	admin.Patch("/reports/:reportId/dismiss", adminController.DismissReport)
	admin.Delete("/reports/:reportId/reviews", adminController.DeleteReportedReview)
	admin.Delete("/reports/:reportId/professors", adminController.DeleteReportedProfessor)
	admin.Delete("/reports/:reportId/departments", adminController.DeleteReportedDepartment)
	admin.Delete("/reports/:reportId/courses", adminController.DeleteReportedCourse)
	admin.Post("/users/:userId/ban", adminController.BanUser)
	admin.Patch("/users/:userId/unban", adminController.UnbanUser)
	admin.Get("/users/banned", adminController.GetBannedUsers)
}
