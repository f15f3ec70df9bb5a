package handler

import (
	"errors"

	"go-warehouse-sheets/internal/model"
	"go-warehouse-sheets/internal/service"

	"github.com/gofiber/fiber/v2"
)

type InventoryHandler struct {
	service service.InventoryService
}

func NewInventoryHandler(s service.InventoryService) *InventoryHandler {
	return &InventoryHandler{service: s}
}

// statusForError maps the service error taxonomy to an HTTP status. The error
// message itself is surfaced verbatim; no retries, no structured codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, model.ErrNotFound):
		return 404
	case errors.Is(err, model.ErrDuplicateCode):
		return 409
	case errors.Is(err, model.ErrMissingRequiredField),
		errors.Is(err, model.ErrInvalidDepartment):
		return 400
	case errors.Is(err, model.ErrSchemaMissing):
		return 500
	case errors.Is(err, model.ErrStoreUnavailable):
		return 503
	default:
		return 500
	}
}

// GetDepartments handles GET /api/v1/departments
func (h *InventoryHandler) GetDepartments(c *fiber.Ctx) error {
	departments, err := h.service.ListDepartments()
	if err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(departments)
}

// GetDepartmentItems handles GET /api/v1/departments/:name/items
func (h *InventoryHandler) GetDepartmentItems(c *fiber.Ctx) error {
	items, err := h.service.ListItems(c.Params("name"))
	if err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(items)
}

// CreateItem handles POST /api/v1/items. A blank code asks the service to
// auto-generate one; the final code goes back to the caller either way.
func (h *InventoryHandler) CreateItem(c *fiber.Ctx) error {
	var item model.Item
	if err := c.BodyParser(&item); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	code, err := h.service.AddItem(&item)
	if err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"success": true, "code": code})
}

// UpdateItem handles PUT /api/v1/items/:code where :code is the stored code
// of the row to rewrite; the body carries the new values.
func (h *InventoryHandler) UpdateItem(c *fiber.Ctx) error {
	var item model.Item
	if err := c.BodyParser(&item); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.UpdateItem(c.Params("code"), &item); err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"success": true})
}

// DeleteItem handles DELETE /api/v1/items/:code?department=...
func (h *InventoryHandler) DeleteItem(c *fiber.Ctx) error {
	if err := h.service.DeleteItem(c.Params("code"), c.Query("department")); err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"success": true})
}
