package controller

import (
	"github.com/alimikegami/point-of-sales/store-admin/internal/service"
	pkgdto "github.com/alimikegami/point-of-sales/store-admin/pkg/dto"
	"github.com/alimikegami/point-of-sales/store-admin/pkg/errs"
	"github.com/alimikegami/point-of-sales/store-admin/pkg/response"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	catalogService service.CatalogService
	orderService   service.OrderService
	reviewService  service.ReviewService
	userService    service.UserService
}

func CreateAdminController(g *echo.Group, catalogService service.CatalogService, orderService service.OrderService, reviewService service.ReviewService, userService service.UserService, isLoggedIn echo.MiddlewareFunc) {
	c := Controller{
		catalogService: catalogService,
		orderService:   orderService,
		reviewService:  reviewService,
		userService:    userService,
	}

	g.GET("/catalog/audit", c.AuditCategories, isLoggedIn)
	g.GET("/catalog/products/:id", c.InspectProduct, isLoggedIn)
	g.GET("/orders/:id", c.GetOrder, isLoggedIn)
	g.GET("/users/:id", c.GetUserProfile, isLoggedIn)
	g.GET("/users/:id/orders", c.GetUserOrders, isLoggedIn)
	g.GET("/users/:id/reviews", c.GetUserReviews, isLoggedIn)
	g.GET("/users/:id/reviewable-products", c.GetReviewableProducts, isLoggedIn)
}

func (c *Controller) AuditCategories(e echo.Context) error {
	var filter pkgdto.Filter
	if err := e.Bind(&filter); err != nil || filter.Limit < 0 || filter.Page < 0 {
		return response.WriteErrorResponse(e, errs.ErrClient, "limit and page must be non-negative integers")
	}

	audit, err := c.catalogService.AuditCategories(e.Request().Context(), filter)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", audit)
}

func (c *Controller) InspectProduct(e echo.Context) error {
	inspection, err := c.catalogService.InspectProduct(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", inspection)
}

func (c *Controller) GetOrder(e echo.Context) error {
	order, err := c.orderService.GetOrder(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", order)
}

func (c *Controller) GetUserProfile(e echo.Context) error {
	profile, err := c.userService.GetUserProfile(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", profile)
}

func (c *Controller) GetUserOrders(e echo.Context) error {
	orders, err := c.orderService.ListUserOrders(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteListResponse(e, orders)
}

func (c *Controller) GetUserReviews(e echo.Context) error {
	reviews, err := c.reviewService.ListUserReviews(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteListResponse(e, reviews)
}

func (c *Controller) GetReviewableProducts(e echo.Context) error {
	items, err := c.reviewService.ReviewableProducts(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteListResponse(e, items)
}
