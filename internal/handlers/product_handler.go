package handlers

import (
	"errors"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"katalog/internal/apperrors"
	"katalog/internal/models"
	"katalog/internal/services"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service *services.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service: service,
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Get("/:productId", h.HandleGetProductByID)
	productRoutes.Post("/", h.HandleSaveProduct)
}

// HandleGetProducts retrieves the full product list.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts()
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(products)
}

// HandleGetProductByID retrieves a single product by its ID.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	productID, err := strconv.ParseInt(c.Params("productId"), 10, 64)
	if err != nil {
		// A non-numeric id is the same client mistake as a
		// non-positive one.
		return h.errorResponse(c, apperrors.NewInvalidValue("id"))
	}

	product, err := h.service.GetProductByID(productID)
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(product)
}

// HandleSaveProduct validates and persists a product. The response
// carries no body; the Location of the resource is implied by the id
// the client supplied.
func (h *ProductHandler) HandleSaveProduct(c *fiber.Ctx) error {
	var dto models.ProductDTO
	if err := c.BodyParser(&dto); err != nil {
		log.Printf("Error parsing product request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.service.SaveProduct(&dto); err != nil {
		return h.errorResponse(c, err)
	}
	// SendStatus would fill the body with the status text; the
	// success contract is an empty body.
	return c.Status(fiber.StatusCreated).Send(nil)
}

// errorResponse maps service errors to HTTP responses: invalid value
// to 400, not found to 404, anything else to 500.
func (h *ProductHandler) errorResponse(c *fiber.Ctx, err error) error {
	var invalidErr *apperrors.InvalidValueError
	if errors.As(err, &invalidErr) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": invalidErr.Error(),
			"field":   invalidErr.Field,
		})
	}

	var notFoundErr *apperrors.NotFoundError
	if errors.As(err, &notFoundErr) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": notFoundErr.Error(),
		})
	}

	log.Printf("Unexpected error handling product request: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": "Could not process request",
		"error":   err.Error(),
	})
}
