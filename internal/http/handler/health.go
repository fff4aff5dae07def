package handler

import (
	"github.com/gofiber/fiber/v2"
)

// LivenessProbe is a simple liveness endpoint.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// HealthCheck reports overall readiness. With only in-memory state there is
// no dependency to ping; the payload notes whether object storage is wired.
func HealthCheck(storageEnabled bool) fiber.Handler {
	storageState := "disabled"
	if storageEnabled {
		storageState = "configured"
	}
	return func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "healthy",
			"storage": storageState,
		})
	}
}
