package controllers

import (
	"strconv"

	"elearn/config"
	"elearn/middleware"
	"elearn/models"
	"elearn/utils"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewUserController(db *gorm.DB, cfg *config.Config) *UserController {
	return &UserController{DB: db, Cfg: cfg}
}

type UpdateUserRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar"`
}

type UpdatePasswordRequest struct {
	Password string `json:"password"`
}

func parseIDParam(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	return uint(id), err
}

func (uc *UserController) GetUser(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.NotFound(c, "User not found")
	}

	var user models.User
	if err := uc.DB.First(&user, id).Error; err != nil {
		return utils.NotFound(c, "User not found")
	}

	return utils.Success(c, fiber.StatusOK, user)
}

func (uc *UserController) UpdateUser(c *fiber.Ctx) error {
	actor := middleware.CurrentUser(c)
	id, err := parseIDParam(c)
	if err != nil || actor.ID != id {
		return utils.Forbidden(c, "You can update only your own account")
	}

	var input UpdateUserRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	var user models.User
	if err := uc.DB.First(&user, id).Error; err != nil {
		return utils.NotFound(c, "User not found")
	}

	if input.Email != "" && input.Email != user.Email {
		var existing models.User
		if err := uc.DB.Where("email = ?", input.Email).First(&existing).Error; err == nil {
			return utils.Conflict(c, "Email is already registered")
		}
		user.Email = input.Email
	}
	if input.Name != "" {
		user.Name = input.Name
	}
	if input.Avatar != "" {
		user.Avatar = input.Avatar
	}

	if err := uc.DB.Save(&user).Error; err != nil {
		return utils.InternalServerError(c, "Could not update user")
	}

	return utils.Success(c, fiber.StatusOK, user)
}

func (uc *UserController) UpdatePassword(c *fiber.Ctx) error {
	actor := middleware.CurrentUser(c)
	id, err := parseIDParam(c)
	if err != nil || actor.ID != id {
		return utils.Forbidden(c, "You can update only your own password")
	}

	var input UpdatePasswordRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.Password == "" {
		return utils.BadRequest(c, "Password is required")
	}

	var user models.User
	if err := uc.DB.First(&user, id).Error; err != nil {
		return utils.NotFound(c, "User not found")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), uc.Cfg.SaltRounds)
	if err != nil {
		return utils.InternalServerError(c, "Could not hash password")
	}
	user.Password = string(hashedPassword)

	if err := uc.DB.Save(&user).Error; err != nil {
		return utils.InternalServerError(c, "Could not update password")
	}

	utils.SendPasswordChangedEmail(uc.Cfg, user.Email, user.Name)

	return utils.Message(c, fiber.StatusOK, "Password updated successfully")
}

// DeleteUser removes the account and every enrollment referencing it in one
// transaction, so no orphaned enrollments can remain.
func (uc *UserController) DeleteUser(c *fiber.Ctx) error {
	actor := middleware.CurrentUser(c)
	id, err := parseIDParam(c)
	if err != nil || actor.ID != id {
		return utils.Forbidden(c, "You can delete only your own account")
	}

	err = uc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("user_id = ?", id).Delete(&models.Enrollment{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&models.User{}, id).Error
	})
	if err != nil {
		return utils.InternalServerError(c, "Could not delete user")
	}

	utils.ClearSessionCookie(c)
	return utils.Message(c, fiber.StatusOK, "User has been deleted")
}
