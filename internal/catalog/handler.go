package catalog

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type productResponse struct {
	Product
	ImageURL        string `json:"image_url"`
	OnSale          bool   `json:"on_sale"`
	DiscountPercent int64  `json:"discount_percent,omitempty"`
}

func (h *Handler) toResponse(p Product) productResponse {
	return productResponse{
		Product:         p,
		ImageURL:        h.service.ImageURL(p),
		OnSale:          p.OnSale(),
		DiscountPercent: p.DiscountPercent(),
	}
}

// --------------------------------------------------
// GET /api/products?q=&category=
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	products := h.service.Filter(c.Query("q"), c.Query("category"))

	out := make([]productResponse, 0, len(products))
	for _, p := range products {
		out = append(out, h.toResponse(p))
	}

	c.JSON(http.StatusOK, gin.H{
		"products": out,
		"count":    len(out),
	})
}

// --------------------------------------------------
// GET /api/products/:id
// --------------------------------------------------
func (h *Handler) Get(c *gin.Context) {
	p, err := h.service.Get(c.Param("id"))
	if errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.toResponse(p))
}

// --------------------------------------------------
// GET /api/categories
// --------------------------------------------------
func (h *Handler) Categories(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Categories())
}
