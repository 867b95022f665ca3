package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/arleti/materials-system/internal/core/ports"
)

// MaterialHandler handles HTTP requests for inventory materials.
type MaterialHandler struct {
	service ports.MaterialService
}

func NewMaterialHandler(service ports.MaterialService) *MaterialHandler {
	return &MaterialHandler{service: service}
}

// List returns all materials.
//
// @Summary      List materials
// @Tags         materials
// @Produce      json
// @Security     BasicAuth
// @Success      200  {array}   materialResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/materials [get]
func (h *MaterialHandler) List(c echo.Context) error {
	materials, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]materialResponse, 0, len(materials))
	for _, m := range materials {
		resp = append(resp, toMaterialResponse(m))
	}
	return c.JSON(http.StatusOK, resp)
}

// Get returns a single material by id.
//
// @Summary      Get a material
// @Tags         materials
// @Produce      json
// @Security     BasicAuth
// @Param        id   path      string  true  "Material id"
// @Success      200  {object}  materialResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/materials/{id} [get]
func (h *MaterialHandler) Get(c echo.Context) error {
	material, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toMaterialResponse(material))
}

// Create adds a new material.
//
// @Summary      Create a material
// @Tags         materials
// @Accept       json
// @Produce      json
// @Security     BasicAuth
// @Param        body  body      materialRequest  true  "Material fields"
// @Success      201   {object}  materialResponse
// @Failure      400   {object}  errorResponse
// @Router       /api/materials [post]
func (h *MaterialHandler) Create(c echo.Context) error {
	var req materialRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	material, err := h.service.Create(c.Request().Context(), toMaterialInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toMaterialResponse(material))
}

// Update replaces all fields of a material.
//
// @Summary      Update a material
// @Tags         materials
// @Accept       json
// @Produce      json
// @Security     BasicAuth
// @Param        id    path      string           true  "Material id"
// @Param        body  body      materialRequest  true  "Material fields"
// @Success      200   {object}  materialResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/materials/{id} [put]
func (h *MaterialHandler) Update(c echo.Context) error {
	var req materialRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	material, err := h.service.Update(c.Request().Context(), c.Param("id"), toMaterialInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toMaterialResponse(material))
}

// Delete removes a material.
//
// @Summary      Delete a material
// @Tags         materials
// @Security     BasicAuth
// @Param        id  path  string  true  "Material id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /api/materials/{id} [delete]
func (h *MaterialHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func toMaterialInput(req materialRequest) ports.MaterialInput {
	return ports.MaterialInput{
		Name:     req.Name,
		Category: req.Category,
		Quantity: req.Quantity,
		Unit:     req.Unit,
		Price:    req.Price,
	}
}
