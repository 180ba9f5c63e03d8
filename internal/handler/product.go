package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/codeop/store/internal/domain"
)

type productRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Price       string `json:"price" validate:"required"`
	Currency    string `json:"currency" validate:"required"`
	ImageURL    string `json:"image_url"`
}

func (r productRequest) toParams() (domain.ProductParams, error) {
	price, err := decimal.NewFromString(r.Price)
	if err != nil {
		return domain.ProductParams{}, domain.Invalid("product.parse", "price must be a decimal string")
	}
	return domain.ProductParams{
		Name:        r.Name,
		Description: r.Description,
		Price:       price,
		Currency:    r.Currency,
		ImageURL:    r.ImageURL,
	}, nil
}

func (h *Handler) ListProducts(c echo.Context) error {
	products, err := h.products.ListProducts(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]productResponse, 0, len(products))
	for i := range products {
		resp = append(resp, toProductResponse(&products[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetProduct(c echo.Context) error {
	product, err := h.products.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProductResponse(product))
}

func (h *Handler) CreateProduct(c echo.Context) error {
	var req productRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	params, err := req.toParams()
	if err != nil {
		return err
	}

	product, err := h.products.CreateProduct(c.Request().Context(), params)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toProductResponse(product))
}

func (h *Handler) UpdateProduct(c echo.Context) error {
	var req productRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	params, err := req.toParams()
	if err != nil {
		return err
	}

	product, err := h.products.UpdateProduct(c.Request().Context(), c.Param("id"), params)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProductResponse(product))
}

func (h *Handler) DeleteProduct(c echo.Context) error {
	if err := h.products.DeleteProduct(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
