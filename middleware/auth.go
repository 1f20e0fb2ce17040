package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mouizahmed/ratethatclass-sub000/config"
	"github.com/mouizahmed/ratethatclass-sub000/repositories"
	"github.com/mouizahmed/ratethatclass-sub000/utils"
)

const claimsKey = "claims"

// Claims returns the verified token claims set by the auth middleware, or
// nil when the request was anonymous.
func Claims(c *fiber.Ctx) *utils.TokenClaims {
	claims, _ := c.Locals(claimsKey).(*utils.TokenClaims)
	return claims
}

func verify(c *fiber.Ctx, cfg *config.Config) (*utils.TokenClaims, error) {
	tokenString := c.Get("id_token")
	if tokenString == "" {
		return nil, utils.NewUnauthorizedError("no token provided")
	}
	claims, err := utils.VerifyToken(tokenString, cfg)
	if err != nil {
		return nil, utils.NewUnauthorizedError("invalid or expired token")
	}
	return claims, nil
}

// RequireUser admits regular signed-in users. Admin and owner tokens are
// rejected here so staff accounts cannot post or vote as users, and banned
// accounts fail every write.
func RequireUser(cfg *config.Config, users *repositories.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := verify(c, cfg)
		if err != nil {
			return utils.Error(c, err)
		}
		if claims.Admin || claims.Owner {
			return utils.Error(c, utils.NewForbiddenError("this action is for regular user accounts"))
		}

		banned, err := users.IsBanned(claims.UserID)
		if err != nil {
			return utils.Error(c, err)
		}
		if banned {
			return utils.Error(c, utils.NewForbiddenError("your account has been banned"))
		}

		c.Locals(claimsKey, claims)
		return c.Next()
	}
}

// OptionalUser verifies a token when present but lets anonymous requests
// through with no claims.
func OptionalUser(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Get("id_token") != "" {
			if claims, err := verify(c, cfg); err == nil {
				c.Locals(claimsKey, claims)
			}
		}
		return c.Next()
	}
}

// RequireAdmin admits admin and owner tokens.
func RequireAdmin(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := verify(c, cfg)
		if err != nil {
			return utils.Error(c, err)
		}
		if !claims.Admin && !claims.Owner {
			return utils.Error(c, utils.NewForbiddenError("admin access required"))
		}
		c.Locals(claimsKey, claims)
		return c.Next()
	}
}

// RequireOwner admits owner tokens only.
func RequireOwner(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := verify(c, cfg)
		if err != nil {
			return utils.Error(c, err)
		}
		if !claims.Owner {
			return utils.Error(c, utils.NewForbiddenError("owner access required"))
		}
		c.Locals(claimsKey, claims)
		return c.Next()
	}
}
