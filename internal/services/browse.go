package services

import (
	"fmt"
	"log"
	"time"

	"catalog-browser-api/internal/catalog"
	"catalog-browser-api/internal/models"
	"catalog-browser-api/internal/query"
	"catalog-browser-api/pkg/cache"
)

// BrowseService is the stateless read path over the catalog: it turns
// a raw URL query string into a page of products via the filter →
// sort → paginate pipeline, with a Redis read-through cache in front.
type BrowseService struct {
	store *catalog.Store
	cache *cache.RedisCache
}

func NewBrowseService(store *catalog.Store, redisCache *cache.RedisCache) *BrowseService {
	return &BrowseService{
		store: store,
		cache: redisCache,
	}
}

func (s *BrowseService) Store() *catalog.Store {
	return s.store
}

// Browse runs the pipeline for the given raw query string. Malformed
// parameters never fail; each falls back to its default.
func (s *BrowseService) Browse(rawQuery string) *models.BrowseResponse {
	startTime := time.Now()

	filters, sortID, page := query.Deserialize(rawQuery)
	sortOption := s.store.ResolveSortOption(sortID)

	// The canonical re-serialized form keys the cache, so equivalent
	// requests share an entry regardless of parameter order.
	canonical := query.Serialize(filters, sortOption.ID, page)

	cacheKey := ""
	if s.cache.IsAvailable() {
		cacheKey = s.cache.GenerateBrowseKey(canonical)
		if cached, err := s.cache.GetBrowseResults(cacheKey); err == nil && cached != nil {
			cached.Duration = fmt.Sprintf("%s (cached)", time.Since(startTime).String())
			log.Printf("Cache HIT for key: %s", cacheKey)
			return cached
		}
		log.Printf("Cache MISS for key: %s", cacheKey)
	}

	filtered := query.Filter(s.store.Products(), filters)
	sorted := query.Sort(filtered, sortOption)
	pageSlice, totalPages := query.Paginate(sorted, page, query.ItemsPerPage)

	response := &models.BrowseResponse{
		Products:   pageSlice,
		Total:      len(filtered),
		Page:       page,
		Limit:      query.ItemsPerPage,
		TotalPages: totalPages,
		Filters:    &filters,
		Sort:       &sortOption,
		Query:      canonical,
		Duration:   time.Since(startTime).String(),
	}

	if s.cache.IsAvailable() && cacheKey != "" {
		if err := s.cache.SetBrowseResults(cacheKey, response); err != nil {
			log.Printf("Failed to cache results: %v", err)
		} else {
			log.Printf("Cached results for key: %s", cacheKey)
		}
	}

	return response
}

// GetProduct looks a product up by id.
func (s *BrowseService) GetProduct(id string) (models.Product, error) {
	product, ok := s.store.ProductByID(id)
	if !ok {
		return models.Product{}, fmt.Errorf("product not found: %s", id)
	}
	return product, nil
}
