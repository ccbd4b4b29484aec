package routers

import (
	"Packed/cmd"

	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(app *fiber.App, server *cmd.Server) {
	SetupListRouter(app, server)
	SetupItemRouter(app, server)
	SetupContainerRouter(app, server)
	SetupPlacementRouter(app, server)
	SetupJanitorRouter(app, server)
}
