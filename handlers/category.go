package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ISHAsolanki/property-final/models"
	"github.com/ISHAsolanki/property-final/store"
)

type CategoryGateway interface {
	EnsureDefaults(ctx context.Context) error
	List(ctx context.Context) ([]models.Category, error)
	Create(ctx context.Context, name string) (models.Category, error)
}

type CategoryController struct {
	store CategoryGateway
}

func NewCategoryController() *CategoryController {
	return &CategoryController{store: store.NewCategoryStore()}
}

func NewCategoryControllerWith(gw CategoryGateway) *CategoryController {
	return &CategoryController{store: gw}
}

func (cc *CategoryController) ListCategories(c echo.Context) error {
	ctx := c.Request().Context()
	if err := cc.store.EnsureDefaults(ctx); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"success": false, "message": "Internal server error",
		})
	}
	categories, err := cc.store.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"success": false, "message": "Internal server error",
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "categories": categories})
}

func (cc *CategoryController) CreateCategory(c echo.Context) error {
	var req models.CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"success": false, "message": "Invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"success": false, "message": "Name is required",
		})
	}

	category, err := cc.store.Create(c.Request().Context(), req.Name)
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return c.JSON(http.StatusBadRequest, echo.Map{
				"success": false, "message": "Category already exists",
			})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"success": false, "message": "Internal server error",
		})
	}
	return c.JSON(http.StatusCreated, echo.Map{"success": true, "category": category})
}
