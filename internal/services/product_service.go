package services

import (
	"encoding/json"
	"errors"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"katalog/internal/apperrors"
	"katalog/internal/models"
	"katalog/internal/repositories"
)

// Product names are alphanumeric plus spaces and must contain at
// least one letter, so a bare number is not a name. Both patterns are
// compiled once here and never mutated.
var (
	productNamePattern = regexp.MustCompile(`^[0-9A-Za-z ]+$`)
	letterPattern      = regexp.MustCompile(`[A-Za-z]`)
)

// EventPublisher publishes catalog events to the message broker.
// Implemented by pkg/rabbitmq.Client; may be nil when no broker is
// configured.
type EventPublisher interface {
	Publish(routingKey string, body []byte) error
}

// ProductService handles business logic related to products. Every
// call is a validate-then-delegate sequence with no state between
// requests.
type ProductService struct {
	repo   repositories.ProductRepository
	events EventPublisher
}

// NewProductService creates a new ProductService. events may be nil,
// in which case no events are published after writes.
func NewProductService(repo repositories.ProductRepository, events EventPublisher) *ProductService {
	return &ProductService{
		repo:   repo,
		events: events,
	}
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id int64) (*models.ProductDTO, error) {
	if id <= 0 {
		return nil, apperrors.NewInvalidValue("id")
	}
	product, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewNotFound(id)
		}
		return nil, err
	}
	dto := product.ToDTO()
	return &dto, nil
}

// GetAllProducts retrieves all products in the order the store
// returns them. An empty store is a not-found condition.
func (s *ProductService) GetAllProducts() ([]models.ProductDTO, error) {
	products, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, apperrors.NewNotFoundAll()
	}
	dtos := make([]models.ProductDTO, 0, len(products))
	for i := range products {
		dtos = append(dtos, products[i].ToDTO())
	}
	return dtos, nil
}

// SaveProduct validates the product and writes it through the
// repository, then announces the write on the event bus. Validation
// stops at the first failing field: id, then name, then price.
func (s *ProductService) SaveProduct(dto *models.ProductDTO) error {
	if dto.ID <= 0 {
		return apperrors.NewInvalidValue("id")
	}
	if !validProductName(dto.Name) {
		return apperrors.NewInvalidValue("name")
	}
	if !dto.Price.IsPositive() {
		return apperrors.NewInvalidValue("price")
	}

	product := dto.ToProduct()
	if err := s.repo.Upsert(&product); err != nil {
		return err
	}

	s.publishProductSaved(&product)
	return nil
}

// validProductName reports whether name is non-blank, matches the
// allowed character set, and contains at least one letter.
func validProductName(name string) bool {
	if strings.TrimSpace(name) == "" {
		return false
	}
	return productNamePattern.MatchString(name) && letterPattern.MatchString(name)
}

// publishProductSaved emits a product.saved event. A publish failure
// never fails the request that caused it; the write already happened.
func (s *ProductService) publishProductSaved(product *models.Product) {
	if s.events == nil {
		return
	}

	event := map[string]interface{}{
		"event_id":   uuid.New().String(),
		"product_id": product.ID,
		"name":       product.Name,
		"price":      product.Price,
		"occurred":   time.Now().UTC().Format(time.RFC3339),
	}
	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal product.saved event for product %d: %v", product.ID, err)
		return
	}
	if err := s.events.Publish("product.saved", body); err != nil {
		log.Printf("Warning: failed to publish product.saved event for product %d: %v", product.ID, err)
	}
}
