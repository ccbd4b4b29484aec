package routers

import (
	"Packed/cmd"

	"github.com/gofiber/fiber/v2"
)

func SetupPlacementRouter(app *fiber.App, server *cmd.Server) {
	placementHandler := server.PlacementHandler
	app.Get("/lists/:listId/items/:itemId/placements", placementHandler.ListPlacements)
	app.Post("/lists/:listId/items/:itemId/placements", placementHandler.CreatePlacement)
	app.Get("/lists/:listId/items/:itemId/placements/:placementId", placementHandler.GetPlacementByID)
	app.Delete("/lists/:listId/items/:itemId/placements/:placementId", placementHandler.DeletePlacement)
}
