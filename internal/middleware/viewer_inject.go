package middleware

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/rutamk/dsr-final/internal/models"
	"github.com/rutamk/dsr-final/internal/repository"
)

// InjectViewer re-reads the authenticated user from the store on every
// request, so role and scope edits apply without a re-login. The token only
// carries the id.
func InjectViewer(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uidHex, err := UIDFromLocals(c)
		if err != nil {
			return err
		}

		uid, err := bson.ObjectIDFromHex(uidHex)
		if err != nil {
			return fiber.ErrUnauthorized
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		viewer, err := repository.FindUserByID(ctx, db, uid)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return fiber.ErrUnauthorized
			}
			return err
		}
		c.Locals("viewer", viewer)
		return c.Next()
	}
}

// ViewerFromLocals returns the user InjectViewer stored for this request.
func ViewerFromLocals(c *fiber.Ctx) (models.User, bool) {
	viewer, ok := c.Locals("viewer").(models.User)
	return viewer, ok
}
