package controllers

import (
	"errors"
	"strings"

	"elearn/config"
	"elearn/models"
	"elearn/utils"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewAuthController(db *gorm.DB, cfg *config.Config) *AuthController {
	return &AuthController{DB: db, Cfg: cfg}
}

type SignupRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	Avatar       string `json:"avatar"`
	IsSuperadmin bool   `json:"isSuperadmin"`
}

type SigninRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (ac *AuthController) Signup(c *fiber.Ctx) error {
	var input SignupRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	fieldErrors := make(map[string]string)
	if strings.TrimSpace(input.Name) == "" {
		fieldErrors["name"] = "Name is required"
	}
	if strings.TrimSpace(input.Email) == "" {
		fieldErrors["email"] = "Email is required"
	}
	if input.Password == "" {
		fieldErrors["password"] = "Password is required"
	}
	if len(fieldErrors) > 0 {
		return utils.BadRequest(c, "Validation failed", fieldErrors)
	}

	var existing models.User
	if err := ac.DB.Where("email = ?", input.Email).First(&existing).Error; err == nil {
		return utils.Conflict(c, "Email is already registered")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), ac.Cfg.SaltRounds)
	if err != nil {
		return utils.InternalServerError(c, "Could not hash password")
	}

	user := models.User{
		Name:         input.Name,
		Email:        input.Email,
		Password:     string(hashedPassword),
		Avatar:       input.Avatar,
		IsSuperadmin: input.IsSuperadmin,
	}

	if err := ac.DB.Create(&user).Error; err != nil {
		return utils.InternalServerError(c, "Could not create user")
	}

	utils.SendRegistrationEmail(ac.Cfg, user.Email, user.Name)

	return utils.Message(c, fiber.StatusCreated, "User created successfully")
}

// Signin deliberately answers 404 for both an unknown email and a wrong
// password so the status code does not reveal which one held.
func (ac *AuthController) Signin(c *fiber.Ctx) error {
	var input SigninRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	var user models.User
	if err := ac.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "User not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return utils.NotFound(c, "Wrong credentials")
	}

	token, err := utils.GenerateJWTToken(user.ID, ac.Cfg)
	if err != nil {
		return utils.InternalServerError(c, "Could not generate token")
	}

	utils.SetSessionCookie(c, token)
	return utils.Success(c, fiber.StatusOK, user)
}

func (ac *AuthController) Signout(c *fiber.Ctx) error {
	utils.ClearSessionCookie(c)
	return utils.Message(c, fiber.StatusOK, "User has been signed out")
}
