package middleware

import (
	"elearn/config"
	"elearn/models"
	"elearn/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// UserKey is the locals key under which AuthRequired stores the resolved user.
const UserKey = "user"

// AuthRequired resolves the session cookie to a user record. Missing token
// is 401, any verification failure is 403, a token whose user no longer
// exists is 404.
func AuthRequired(db *gorm.DB, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Cookies(utils.AccessTokenCookie)
		if tokenString == "" {
			return utils.Unauthorized(c, "Not authorized")
		}

		userID, err := utils.ParseJWTToken(tokenString, cfg)
		if err != nil {
			return utils.Forbidden(c, "Forbidden")
		}

		var user models.User
		if err := db.First(&user, userID).Error; err != nil {
			return utils.NotFound(c, "User not found")
		}

		c.Locals(UserKey, &user)
		return c.Next()
	}
}

// SuperadminRequired must run after AuthRequired.
func SuperadminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := c.Locals(UserKey).(*models.User)
		if !ok || !user.IsSuperadmin {
			return utils.Forbidden(c, "Forbidden: Not a superadmin")
		}
		return c.Next()
	}
}

// CurrentUser returns the user attached by AuthRequired, or nil on
// unprotected routes.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(UserKey).(*models.User)
	return user
}
