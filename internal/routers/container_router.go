package routers

import (
	"Packed/cmd"

	"github.com/gofiber/fiber/v2"
)

func SetupContainerRouter(app *fiber.App, server *cmd.Server) {
	containerHandler := server.ContainerHandler
	app.Get("/lists/:listId/containers", containerHandler.ListContainers)
	app.Post("/lists/:listId/containers", containerHandler.CreateContainer)
	app.Get("/lists/:listId/containers/:containerId", containerHandler.GetContainerByID)
	app.Put("/lists/:listId/containers/:containerId", containerHandler.UpdateContainer)
	app.Delete("/lists/:listId/containers/:containerId", containerHandler.DeleteContainer)
}
