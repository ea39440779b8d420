package services

import (
	"math"

	"hunthub/internal/models"
	"hunthub/internal/store"
	"hunthub/internal/utils"
)

// HomePageSize is the number of products per home-feed page.
const HomePageSize = 5

// FeedPage is one page of the ranked feed plus the data the template needs
// to render pagination controls.
type FeedPage struct {
	Products    []models.Product
	CurrentPage int
	TotalPages  int
}

// HasPages reports whether pagination controls should render at all.
func (p FeedPage) HasPages() bool {
	return p.TotalPages > 1
}

// FeedService orders the catalog for display and paginates it. Ranking is
// re-derived on every read: votes_total DESC, then pub_date DESC.
type FeedService struct {
	products store.ProductRepository
}

func NewFeedService(products store.ProductRepository) *FeedService {
	return &FeedService{products: products}
}

// Page returns the requested 1-indexed page. A missing, non-numeric or
// out-of-range page parameter falls back to page 1.
func (s *FeedService) Page(pageParam string) (FeedPage, error) {
	total, err := s.products.Count()
	if err != nil {
		return FeedPage{}, err
	}

	totalPages := int(math.Ceil(float64(total) / float64(HomePageSize)))
	if totalPages == 0 {
		totalPages = 1
	}

	page := 1
	if n := utils.StringToInt(pageParam); n >= 1 && n <= totalPages {
		page = n
	}

	products, err := s.products.Page((page-1)*HomePageSize, HomePageSize)
	if err != nil {
		return FeedPage{}, err
	}

	return FeedPage{
		Products:    products,
		CurrentPage: page,
		TotalPages:  totalPages,
	}, nil
}
