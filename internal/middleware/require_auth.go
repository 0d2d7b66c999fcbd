package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// RequireAuth checks if request has a user_id in Locals.
// If not -> return 401 Unauthorized.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if v := c.Locals("user_id"); v == nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		} else if uid, ok := v.(string); !ok || strings.TrimSpace(uid) == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}
		return c.Next()
	}
}

// UIDFromLocals returns the user_id the JWT middleware stored, if any.
func UIDFromLocals(c *fiber.Ctx) (string, bool) {
	uid, _ := c.Locals("user_id").(string)
	if strings.TrimSpace(uid) == "" {
		return "", false
	}
	return uid, true
}

// UIDObjectID returns the caller identity as a bson.ObjectID.
func UIDObjectID(c *fiber.Ctx) (bson.ObjectID, bool) {
	uid, ok := UIDFromLocals(c)
	if !ok {
		return bson.NilObjectID, false
	}
	oid, err := bson.ObjectIDFromHex(uid)
	if err != nil {
		return bson.NilObjectID, false
	}
	return oid, true
}
