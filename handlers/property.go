package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ISHAsolanki/property-final/form"
	"github.com/ISHAsolanki/property-final/listing"
	"github.com/ISHAsolanki/property-final/models"
	"github.com/ISHAsolanki/property-final/store"
	"github.com/ISHAsolanki/property-final/utils"
)

const trendingLimit = 10

// PropertyGateway is what the controller needs from persistence; the Mongo
// store satisfies it, handler tests use fakes.
type PropertyGateway interface {
	form.Gateway
	List(ctx context.Context) ([]models.Property, error)
	Get(ctx context.Context, id string) (models.Property, error)
	Delete(ctx context.Context, id string) error
}

// ListCache is the listing cache as the controller sees it. The Redis-backed
// utils.PropertyListCache satisfies it in production, handler tests use fakes.
type ListCache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}) error
	Invalidate(ctx context.Context)
}

type PropertyController struct {
	store PropertyGateway
	cache ListCache
}

func NewPropertyController() *PropertyController {
	return &PropertyController{
		store: store.NewPropertyStore(),
		cache: utils.NewPropertyListCache(),
	}
}

func NewPropertyControllerWith(gw PropertyGateway, cache ListCache) *PropertyController {
	return &PropertyController{store: gw, cache: cache}
}

func (pc *PropertyController) ListProperties(c echo.Context) error {
	ctx := c.Request().Context()
	params := map[string]string{
		"search":   c.QueryParam("search"),
		"type":     c.QueryParam("type"),
		"status":   c.QueryParam("status"),
		"location": c.QueryParam("location"),
		"sort":     c.QueryParam("sort"),
	}

	key := utils.PropertyListKey(params)
	var properties []models.Property
	if ok, err := pc.cache.Get(ctx, key, &properties); ok && err == nil {
		return c.JSON(http.StatusOK, echo.Map{"success": true, "properties": properties})
	}

	properties, err := pc.store.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"success": false, "message": "Internal server error",
		})
	}

	properties = listing.Search(properties, params["search"])
	properties = listing.FilterByType(properties, params["type"])
	properties = listing.FilterByStatus(properties, params["status"])
	properties = listing.FilterByLocation(properties, params["location"])
	switch params["sort"] {
	case "price_asc":
		properties = listing.SortByPrice(properties, true)
	case "price_desc":
		properties = listing.SortByPrice(properties, false)
	case "trending":
		properties = listing.SortByTrending(properties)
	}

	if err := pc.cache.Set(ctx, key, properties); err != nil {
		log.Printf("cache set failed: %v", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "properties": properties})
}

func (pc *PropertyController) TrendingProperties(c echo.Context) error {
	properties, err := pc.store.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"success": false, "message": "Internal server error",
		})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success":    true,
		"properties": listing.Trending(properties, trendingLimit),
	})
}

func (pc *PropertyController) GetProperty(c echo.Context) error {
	property, err := pc.store.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{
				"success": false, "message": "Property not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"success": false, "message": "Internal server error",
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "property": property})
}

func (pc *PropertyController) CreateProperty(c echo.Context) error {
	var property models.Property
	if err := c.Bind(&property); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"success": false, "message": "Invalid request body",
		})
	}
	property.ID = primitive.NilObjectID

	return pc.submitDraft(c, property)
}

func (pc *PropertyController) UpdateProperty(c echo.Context) error {
	oid, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"success": false, "message": "Invalid property ID",
		})
	}

	var property models.Property
	if err := c.Bind(&property); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"success": false, "message": "Invalid request body",
		})
	}
	property.ID = oid

	return pc.submitDraft(c, property)
}

// submitDraft runs the bound payload through the form rules (validation plus
// submit cleaning) so the API enforces exactly what the admin form does.
func (pc *PropertyController) submitDraft(c echo.Context, property models.Property) error {
	ctx := c.Request().Context()
	property.Normalize()
	isCreate := property.ID.IsZero()

	draft := form.Edit(property)
	saved, err := draft.Submit(ctx, pc.store)
	if err != nil {
		var verr *form.ValidationError
		if errors.As(err, &verr) {
			return c.JSON(http.StatusBadRequest, echo.Map{
				"success": false, "message": verr.Error(),
			})
		}
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{
				"success": false, "message": "Property not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"success": false, "message": "Internal server error",
		})
	}

	pc.cache.Invalidate(ctx)
	status := http.StatusOK
	if isCreate {
		status = http.StatusCreated
	}
	return c.JSON(status, echo.Map{"success": true, "property": saved})
}

func (pc *PropertyController) DeleteProperty(c echo.Context) error {
	ctx := c.Request().Context()
	if err := pc.store.Delete(ctx, c.Param("id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{
				"success": false, "message": "Property not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"success": false, "message": "Internal server error",
		})
	}
	pc.cache.Invalidate(ctx)
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
