package handlers

import (
	"Packed/internal/mapper"
	"Packed/internal/problem"
	"Packed/internal/services"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type PlacementHandler struct {
	service services.PlacementService
}

func NewPlacementHandler(service services.PlacementService) *PlacementHandler {
	return &PlacementHandler{service: service}
}

func (h *PlacementHandler) ListPlacements(c *fiber.Ctx) error {
	listID, err := strconv.ParseUint(c.Params("listId"), 10, 32)
	if err != nil {
		return problem.BadRequest(c, "invalid list ID")
	}
	itemID, err := strconv.ParseUint(c.Params("itemId"), 10, 32)
	if err != nil {
		return problem.BadRequest(c, "invalid item ID")
	}

	placements, err := h.service.GetPlacements(uint(listID), uint(itemID))
	if err != nil {
		return problem.Render(c, err)
	}
	return c.JSON(mapper.ToPlacementGetDTOs(placements))
}

func (h *PlacementHandler) CreatePlacement(c *fiber.Ctx) error {
	listID, err := strconv.ParseUint(c.Params("listId"), 10, 32)
	if err != nil {
		return problem.BadRequest(c, "invalid list ID")
	}
	itemID, err := strconv.ParseUint(c.Params("itemId"), 10, 32)
	if err != nil {
		return problem.BadRequest(c, "invalid item ID")
	}

	var req struct {
		ContainerID uint `json:"containerId"`
	}
	if err := c.BodyParser(&req); err != nil {
		return problem.BadRequest(c, "invalid request body")
	}
	if req.ContainerID == 0 {
		return problem.BadRequest(c, "containerId is required")
	}

	placement, err := h.service.CreatePlacement(uint(listID), uint(itemID), req.ContainerID)
	if err != nil {
		return problem.Render(c, err)
	}

	c.Location(fmt.Sprintf("/lists/%d/items/%d/placements/%d", listID, itemID, placement.ID))
	return c.Status(http.StatusCreated).JSON(mapper.ToPlacementGetDTO(placement))
}

func (h *PlacementHandler) GetPlacementByID(c *fiber.Ctx) error {
	listID, err := strconv.ParseUint(c.Params("listId"), 10, 32)
	if err != nil {
		return problem.BadRequest(c, "invalid list ID")
	}
	itemID, err := strconv.ParseUint(c.Params("itemId"), 10, 32)
	if err != nil {
		return problem.BadRequest(c, "invalid item ID")
	}
	placementID, err := strconv.ParseUint(c.Params("placementId"), 10, 32)
	if err != nil {
		return problem.BadRequest(c, "invalid placement ID")
	}

	placement, err := h.service.GetPlacementByID(uint(listID), uint(itemID), uint(placementID))
	if err != nil {
		return problem.Render(c, err)
	}
	return c.JSON(mapper.ToPlacementGetDTO(placement))
}

func (h *PlacementHandler) DeletePlacement(c *fiber.Ctx) error {
	listID, err := strconv.ParseUint(c.Params("listId"), 10, 32)
	if err != nil {
		return problem.BadRequest(c, "invalid list ID")
	}
	itemID, err := strconv.ParseUint(c.Params("itemId"), 10, 32)
	if err != nil {
		return problem.BadRequest(c, "invalid item ID")
	}
	placementID, err := strconv.ParseUint(c.Params("placementId"), 10, 32)
	if err != nil {
		return problem.BadRequest(c, "invalid placement ID")
	}

	if err := h.service.DeletePlacement(uint(listID), uint(itemID), uint(placementID)); err != nil {
		return problem.Render(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}
