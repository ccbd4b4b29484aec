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

type ContainerHandler struct {
	service services.ContainerService
}

func NewContainerHandler(service services.ContainerService) *ContainerHandler {
	return &ContainerHandler{service: service}
}

func (h *ContainerHandler) ListContainers(c *fiber.Ctx) error {
	listID, err := strconv.ParseUint(c.Params("listId"), 10, 32)
	if err != nil {
		return problem.BadRequest(c, "invalid list ID")
	}

	containers, err := h.service.GetContainers(uint(listID))
	if err != nil {
		return problem.Render(c, err)
	}
	return c.JSON(mapper.ToContainerGetDTOs(containers))
}

func (h *ContainerHandler) CreateContainer(c *fiber.Ctx) error {
	listID, err := strconv.ParseUint(c.Params("listId"), 10, 32)
	if err != nil {
		return problem.BadRequest(c, "invalid list ID")
	}

	var req struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return problem.BadRequest(c, "invalid request body")
	}
	if req.Name == "" {
		return problem.BadRequest(c, "name is required")
	}

	container, err := h.service.CreateContainer(uint(listID), req.Name)
	if err != nil {
		return problem.Render(c, err)
	}

	c.Location(fmt.Sprintf("/lists/%d/containers/%d", listID, container.ID))
	return c.Status(http.StatusCreated).JSON(mapper.ToContainerGetDTO(container))
}

func (h *ContainerHandler) GetContainerByID(c *fiber.Ctx) error {
	listID, err := strconv.ParseUint(c.Params("listId"), 10, 32)
	if err != nil {
		return problem.BadRequest(c, "invalid list ID")
	}
	containerID, err := strconv.ParseUint(c.Params("containerId"), 10, 32)
	if err != nil {
		return problem.BadRequest(c, "invalid container ID")
	}

	container, err := h.service.GetContainerByID(uint(listID), uint(containerID))
	if err != nil {
		return problem.Render(c, err)
	}
	return c.JSON(mapper.ToContainerGetDTO(container))
}

func (h *ContainerHandler) UpdateContainer(c *fiber.Ctx) error {
	listID, err := strconv.ParseUint(c.Params("listId"), 10, 32)
	if err != nil {
		return problem.BadRequest(c, "invalid list ID")
	}
	containerID, err := strconv.ParseUint(c.Params("containerId"), 10, 32)
	if err != nil {
		return problem.BadRequest(c, "invalid container ID")
	}

	var req struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return problem.BadRequest(c, "invalid request body")
	}
	if req.Name == "" {
		return problem.BadRequest(c, "name is required")
	}

	container, err := h.service.UpdateContainer(uint(listID), uint(containerID), req.Name)
	if err != nil {
		return problem.Render(c, err)
	}
	return c.JSON(mapper.ToContainerGetDTO(container))
}

func (h *ContainerHandler) DeleteContainer(c *fiber.Ctx) error {
	listID, err := strconv.ParseUint(c.Params("listId"), 10, 32)
	if err != nil {
		return problem.BadRequest(c, "invalid list ID")
	}
	containerID, err := strconv.ParseUint(c.Params("containerId"), 10, 32)
	if err != nil {
		return problem.BadRequest(c, "invalid container ID")
	}

	if err := h.service.DeleteContainer(uint(listID), uint(containerID)); err != nil {
		return problem.Render(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}
