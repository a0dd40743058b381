package controllers

import (
	"strconv"
	"strings"

	"elearn/config"
	"elearn/models"
	"elearn/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CourseController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewCourseController(db *gorm.DB, cfg *config.Config) *CourseController {
	return &CourseController{DB: db, Cfg: cfg}
}

type CreateCourseRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Level       string `json:"level"`
}

type UpdateCourseRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Level       string `json:"level"`
}

// List returns courses matching the optional category/level filters.
// Invalid or missing page/limit values are coerced to page=1, limit=10.
func (cc *CourseController) List(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	query := cc.DB.Model(&models.Course{})
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if level := c.Query("level"); level != "" {
		query = query.Where("level = ?", level)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return utils.InternalServerError(c, "Failed to fetch courses")
	}

	var courses []models.Course
	if err := query.Offset(offset).Limit(limit).Find(&courses).Error; err != nil {
		return utils.InternalServerError(c, "Failed to fetch courses")
	}

	return utils.Paginate(c, courses, total, page, limit)
}

func validateCourseFields(input *CreateCourseRequest, partial bool) map[string]string {
	fieldErrors := make(map[string]string)

	if strings.TrimSpace(input.Title) == "" && !partial {
		fieldErrors["title"] = "Title is required"
	}
	if strings.TrimSpace(input.Description) == "" && !partial {
		fieldErrors["description"] = "Description is required"
	}
	if strings.TrimSpace(input.Category) == "" && !partial {
		fieldErrors["category"] = "Category is required"
	}
	if input.Level == "" {
		if !partial {
			fieldErrors["level"] = "Level is required"
		}
	} else if !models.CourseLevel(input.Level).Valid() {
		fieldErrors["level"] = "Level must be one of beginner, intermediate, advanced"
	}

	return fieldErrors
}

func (cc *CourseController) Create(c *fiber.Ctx) error {
	var input CreateCourseRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	if fieldErrors := validateCourseFields(&input, false); len(fieldErrors) > 0 {
		return utils.BadRequest(c, "Validation failed", fieldErrors)
	}

	course := models.Course{
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		Level:       models.CourseLevel(input.Level),
	}

	if err := cc.DB.Create(&course).Error; err != nil {
		return utils.BadRequest(c, "Failed to create course")
	}

	return utils.Created(c, course)
}

func (cc *CourseController) GetByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.NotFound(c, "Course not found")
	}

	var course models.Course
	if err := cc.DB.First(&course, id).Error; err != nil {
		return utils.NotFound(c, "Course not found")
	}

	return utils.Success(c, fiber.StatusOK, course)
}

// Update applies the supplied fields, re-running the level validator on
// whatever is present.
func (cc *CourseController) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.NotFound(c, "Course not found")
	}

	var course models.Course
	if err := cc.DB.First(&course, id).Error; err != nil {
		return utils.NotFound(c, "Course not found")
	}

	var input UpdateCourseRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	if fieldErrors := validateCourseFields((*CreateCourseRequest)(&input), true); len(fieldErrors) > 0 {
		return utils.BadRequest(c, "Validation failed", fieldErrors)
	}

	if input.Title != "" {
		course.Title = input.Title
	}
	if input.Description != "" {
		course.Description = input.Description
	}
	if input.Category != "" {
		course.Category = input.Category
	}
	if input.Level != "" {
		course.Level = models.CourseLevel(input.Level)
	}

	if err := cc.DB.Save(&course).Error; err != nil {
		return utils.BadRequest(c, "Failed to update course")
	}

	return utils.Success(c, fiber.StatusOK, course)
}

func (cc *CourseController) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.NotFound(c, "Course not found")
	}

	var course models.Course
	if err := cc.DB.First(&course, id).Error; err != nil {
		return utils.NotFound(c, "Course not found")
	}

	if err := cc.DB.Unscoped().Delete(&course).Error; err != nil {
		return utils.InternalServerError(c, "Failed to delete course")
	}

	return utils.Message(c, fiber.StatusOK, "Course deleted successfully")
}
