package handlers

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ISHAsolanki/property-final/models"
	"github.com/ISHAsolanki/property-final/store"
)

type InquiryGateway interface {
	Create(ctx context.Context, inquiry models.Inquiry) (models.Inquiry, error)
	List(ctx context.Context) ([]models.Inquiry, error)
}

type InquiryController struct {
	store InquiryGateway
}

func NewInquiryController() *InquiryController {
	return &InquiryController{store: store.NewInquiryStore()}
}

func NewInquiryControllerWith(gw InquiryGateway) *InquiryController {
	return &InquiryController{store: gw}
}

// CreateInquiry is the one write the public site performs.
func (ic *InquiryController) CreateInquiry(c echo.Context) error {
	var inquiry models.Inquiry
	if err := c.Bind(&inquiry); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"success": false, "message": "Invalid request body",
		})
	}
	if err := c.Validate(&inquiry); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"success": false, "message": "Full name and a valid email are required",
		})
	}

	created, err := ic.store.Create(c.Request().Context(), inquiry)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"success": false, "message": "Internal server error",
		})
	}
	return c.JSON(http.StatusCreated, echo.Map{"success": true, "inquiry": created})
}

func (ic *InquiryController) ListInquiries(c echo.Context) error {
	inquiries, err := ic.store.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"success": false, "message": "Internal server error",
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "inquiries": inquiries})
}
