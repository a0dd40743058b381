package controllers

import (
	"strconv"

	"elearn/config"
	"elearn/middleware"
	"elearn/models"
	"elearn/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type EnrollmentController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewEnrollmentController(db *gorm.DB, cfg *config.Config) *EnrollmentController {
	return &EnrollmentController{DB: db, Cfg: cfg}
}

// Enroll links the authenticated user to a course. The course is resolved
// before the write so the notification path never has to look anything up
// after the enrollment is committed.
func (ec *EnrollmentController) Enroll(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	courseID, err := strconv.ParseUint(c.Params("courseId"), 10, 32)
	if err != nil {
		return utils.NotFound(c, "Course not found")
	}

	var course models.Course
	if err := ec.DB.First(&course, courseID).Error; err != nil {
		return utils.NotFound(c, "Course not found")
	}

	var existing models.Enrollment
	if err := ec.DB.Where("user_id = ? AND course_id = ?", user.ID, courseID).First(&existing).Error; err == nil {
		return utils.BadRequest(c, "You are already enrolled in this course")
	}

	enrollment := models.Enrollment{
		UserID:   user.ID,
		CourseID: uint(courseID),
	}

	err = ec.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&enrollment).Error; err != nil {
			return err
		}
		return tx.Model(&course).Update("popularity", gorm.Expr("popularity + 1")).Error
	})
	if err != nil {
		// Two concurrent enrolls can both pass the pre-check; the unique
		// index on (user_id, course_id) rejects the loser here.
		if lookupErr := ec.DB.Where("user_id = ? AND course_id = ?", user.ID, courseID).First(&existing).Error; lookupErr == nil {
			return utils.BadRequest(c, "You are already enrolled in this course")
		}
		return utils.InternalServerError(c, "Failed to enroll in course")
	}

	utils.SendEnrollmentEmail(ec.Cfg, user.Email, user.Name, course.Title)

	return utils.Message(c, fiber.StatusCreated, "Enrolled in the course successfully")
}

// ListMine returns the courses the authenticated user is enrolled in,
// joined through the enrollments table.
func (ec *EnrollmentController) ListMine(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var enrollments []models.Enrollment
	if err := ec.DB.Where("user_id = ?", user.ID).Preload("Course").Find(&enrollments).Error; err != nil {
		return utils.InternalServerError(c, "Failed to fetch enrollments")
	}

	courses := make([]models.Course, 0, len(enrollments))
	for _, enrollment := range enrollments {
		courses = append(courses, enrollment.Course)
	}

	return utils.Success(c, fiber.StatusOK, courses)
}
