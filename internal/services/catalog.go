package services

import (
	"errors"
	"fmt"
	"mime/multipart"
	"time"

	"hunthub/internal/models"
	"hunthub/internal/store"
	"hunthub/internal/utils"
)

var (
	// ErrFieldsMissing means at least one required creation field was empty.
	ErrFieldsMissing = errors.New("all fields are required")
	// ErrInvalidURL means the submitted URL failed syntax validation.
	ErrInvalidURL = errors.New("url is not valid")
)

// CreateProductInput carries the raw submission of the creation form.
type CreateProductInput struct {
	Title string
	Body  string
	URL   string
	Icon  *multipart.FileHeader
	Image *multipart.FileHeader
}

// CatalogService owns product records: creation, retrieval.
type CatalogService struct {
	products store.ProductRepository
	media    MediaStore
}

func NewCatalogService(products store.ProductRepository, media MediaStore) *CatalogService {
	return &CatalogService{products: products, media: media}
}

// Create validates the submission, normalizes the URL, stores both uploads
// and persists the product with the hunter's implicit vote already counted.
func (s *CatalogService) Create(hunterID uint, in CreateProductInput) (*models.Product, error) {
	if in.Title == "" || in.Body == "" || in.URL == "" || in.Icon == nil || in.Image == nil {
		return nil, ErrFieldsMissing
	}

	normalized := utils.NormalizeURL(in.URL)
	if !utils.IsValidHTTPURL(normalized) {
		return nil, ErrInvalidURL
	}

	iconPath, err := s.media.Save(in.Icon)
	if err != nil {
		return nil, fmt.Errorf("store icon: %w", err)
	}
	imagePath, err := s.media.Save(in.Image)
	if err != nil {
		return nil, fmt.Errorf("store image: %w", err)
	}

	product := models.Product{
		HunterID:   hunterID,
		Title:      in.Title,
		Body:       in.Body,
		URL:        normalized,
		IconPath:   iconPath,
		ImagePath:  imagePath,
		VotesTotal: 1, // the hunter's own support
		PubDate:    time.Now(),
	}
	if err := s.products.Create(&product); err != nil {
		return nil, fmt.Errorf("persist product: %w", err)
	}
	return &product, nil
}

func (s *CatalogService) Get(id uint) (*models.Product, error) {
	return s.products.ByID(id)
}
