package routes

import (
	"elearn/config"
	"elearn/controllers"
	"elearn/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	authRequired := middleware.AuthRequired(db, cfg)
	superadminRequired := middleware.SuperadminRequired()

	// Auth routes
	authController := controllers.NewAuthController(db, cfg)
	auth := app.Group("/auth")
	auth.Post("/signup", authController.Signup)
	auth.Post("/signin", authController.Signin)
	auth.Post("/signout", authController.Signout)

	// Course routes (mutations are superadmin-only)
	courseController := controllers.NewCourseController(db, cfg)
	course := app.Group("/course")
	course.Get("/", courseController.List)
	course.Post("/", authRequired, superadminRequired, courseController.Create)
	course.Get("/:id", courseController.GetByID)
	course.Put("/:id", authRequired, superadminRequired, courseController.Update)
	course.Delete("/:id", authRequired, superadminRequired, courseController.Delete)

	// Enrollment routes
	enrollmentController := controllers.NewEnrollmentController(db, cfg)
	enroll := app.Group("/enroll", authRequired)
	enroll.Get("/", enrollmentController.ListMine)
	enroll.Post("/:courseId", enrollmentController.Enroll)

	// User routes
	userController := controllers.NewUserController(db, cfg)
	app.Get("/user/:id", userController.GetUser)
	app.Put("/user/:id", authRequired, userController.UpdateUser)
	app.Put("/user/:id/password", authRequired, userController.UpdatePassword)
	app.Delete("/user/:id", authRequired, userController.DeleteUser)
}
