package routers

import (
	"Packed/cmd"

	"github.com/gofiber/fiber/v2"
)

func SetupJanitorRouter(app *fiber.App, server *cmd.Server) {
	janitor := server.JanitorService
	app.Post("/janitor/clean", func(ctx *fiber.Ctx) error {
		err := janitor.ForceStartCleanCycle()
		if err != nil {
			return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return ctx.Status(fiber.StatusAccepted).JSON(fiber.Map{})
	})
	app.Get("/janitor/status", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{"cleaning": janitor.IsCleaning()})
	})
}
