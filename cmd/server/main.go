package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"golang.org/x/time/rate"

	"catalog-browser-api/internal/catalog"
	"catalog-browser-api/internal/models"
	"catalog-browser-api/internal/services"
	"catalog-browser-api/internal/session"
	"catalog-browser-api/pkg/cache"
	"catalog-browser-api/pkg/utils"
)

var (
	rateLimiters = make(map[string]*rate.Limiter)
	rateMutex    = &sync.RWMutex{}
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8085"
	}

	store := catalog.Default()
	redisCache := cache.NewRedisCache()
	browseService := services.NewBrowseService(store, redisCache)
	sessions := session.NewManager(store)

	r := gin.Default()

	// Add CORS middleware
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	// Add request ID middleware
	r.Use(func(c *gin.Context) {
		requestID := fmt.Sprintf("%d", time.Now().UnixNano())
		c.Header("X-Request-ID", requestID)
		start := time.Now()
		c.Next()
		log.Printf("[%s] %s %s - %v - %d",
			requestID, c.Request.Method, c.Request.URL.Path,
			time.Since(start), c.Writer.Status())
	})

	// Add rate limiting middleware
	r.Use(rateLimitMiddleware())

	// Health check with cache status
	r.GET("/health", func(c *gin.Context) {
		health := gin.H{
			"status":  "healthy",
			"service": "catalog-browser-api",
			"version": "1.0.0",
		}

		if redisCache != nil && redisCache.IsAvailable() {
			health["cache"] = "redis connected"
		} else {
			health["cache"] = "redis unavailable"
		}

		c.JSON(http.StatusOK, health)
	})

	// Browse endpoint: the full filter/sort/paginate pipeline driven
	// by URL query parameters
	r.GET("/products", func(c *gin.Context) {
		response := browseService.Browse(c.Request.URL.RawQuery)
		c.JSON(http.StatusOK, response)
	})

	r.GET("/products/:id", func(c *gin.Context) {
		product, err := browseService.GetProduct(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error:   "product_not_found",
				Code:    http.StatusNotFound,
				Message: err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"product":       product,
			"display_price": utils.FormatPrice(product.EffectivePrice()),
		})
	})

	r.GET("/categories", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"categories": store.Categories()})
	})

	r.GET("/colors", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"colors": store.Colors()})
	})

	r.GET("/sort-options", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"sort_options": store.SortOptions()})
	})

	// Session endpoints: a stateful browse controller per session,
	// exercised by the storefront UI
	r.POST("/sessions", func(c *gin.Context) {
		ctrl := sessions.Create(c.Query("q"))
		c.JSON(http.StatusCreated, ctrl.Snapshot())
	})

	r.GET("/sessions/:id", func(c *gin.Context) {
		ctrl, ok := sessions.Get(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, sessionNotFound(c.Param("id")))
			return
		}
		c.JSON(http.StatusOK, ctrl.Snapshot())
	})

	r.DELETE("/sessions/:id", func(c *gin.Context) {
		if !sessions.Delete(c.Param("id")) {
			c.JSON(http.StatusNotFound, sessionNotFound(c.Param("id")))
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": c.Param("id")})
	})

	mutate := func(c *gin.Context, apply func(*session.Controller)) {
		ctrl, ok := sessions.Get(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, sessionNotFound(c.Param("id")))
			return
		}
		apply(ctrl)
		c.JSON(http.StatusOK, ctrl.Snapshot())
	}

	r.POST("/sessions/:id/categories/toggle", func(c *gin.Context) {
		mutate(c, func(ctrl *session.Controller) {
			ctrl.ToggleCategory(c.Query("id"))
		})
	})

	r.POST("/sessions/:id/colors/toggle", func(c *gin.Context) {
		mutate(c, func(ctrl *session.Controller) {
			ctrl.ToggleColorFilter(c.Query("id"))
		})
	})

	r.POST("/sessions/:id/price", func(c *gin.Context) {
		mutate(c, func(ctrl *session.Controller) {
			min := utils.ParseFloatOr(c.Query("min"), models.DefaultMinPrice)
			max := utils.ParseFloatOr(c.Query("max"), models.DefaultMaxPrice)
			ctrl.SetPriceRange(min, max)
		})
	})

	r.POST("/sessions/:id/rating", func(c *gin.Context) {
		mutate(c, func(ctrl *session.Controller) {
			ctrl.SetRating(utils.ParseFloatOr(c.Query("value"), 0))
		})
	})

	r.POST("/sessions/:id/stock/toggle", func(c *gin.Context) {
		mutate(c, func(ctrl *session.Controller) {
			ctrl.ToggleInStock()
		})
	})

	r.POST("/sessions/:id/sort", func(c *gin.Context) {
		mutate(c, func(ctrl *session.Controller) {
			ctrl.UpdateSort(c.Query("id"))
		})
	})

	r.POST("/sessions/:id/page", func(c *gin.Context) {
		mutate(c, func(ctrl *session.Controller) {
			ctrl.GoToPage(utils.ParseIntOr(c.Query("n"), 1))
		})
	})

	r.POST("/sessions/:id/page/next", func(c *gin.Context) {
		mutate(c, func(ctrl *session.Controller) {
			ctrl.NextPage()
		})
	})

	r.POST("/sessions/:id/page/previous", func(c *gin.Context) {
		mutate(c, func(ctrl *session.Controller) {
			ctrl.PreviousPage()
		})
	})

	r.POST("/sessions/:id/clear", func(c *gin.Context) {
		mutate(c, func(ctrl *session.Controller) {
			ctrl.ClearFilters()
		})
	})

	r.POST("/sessions/:id/preview", func(c *gin.Context) {
		mutate(c, func(ctrl *session.Controller) {
			ctrl.SelectColorForPreview(c.Query("id"))
		})
	})

	// Rate limit status endpoint
	r.GET("/rate-limit/status", func(c *gin.Context) {
		ip := c.ClientIP()
		limiter := getRateLimiter(ip)

		c.JSON(http.StatusOK, gin.H{
			"ip":               ip,
			"limit_per_second": limiter.Limit(),
			"burst_capacity":   limiter.Burst(),
			"tokens_available": limiter.Tokens(),
			"next_token_at":    time.Now().Add(time.Second / time.Duration(limiter.Limit())),
		})
	})

	// Cache stats endpoint
	r.GET("/cache/stats", func(c *gin.Context) {
		if redisCache == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "cache not available",
			})
			return
		}

		c.JSON(http.StatusOK, redisCache.GetStats())
	})

	// Cache debug endpoint
	r.GET("/cache/debug", func(c *gin.Context) {
		if redisCache == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "cache not available",
			})
			return
		}

		keys := redisCache.GetAllKeys()

		keyDetails := make([]gin.H, 0, len(keys))
		for _, key := range keys {
			ttl := redisCache.GetKeyTTL(key)
			keyDetails = append(keyDetails, gin.H{
				"key":         key,
				"ttl_seconds": int(ttl.Seconds()),
				"expires_in":  ttl.String(),
			})
		}

		c.JSON(http.StatusOK, gin.H{
			"total_keys":  len(keys),
			"cache_keys":  keyDetails,
			"cache_stats": redisCache.GetStats(),
			"debug_info": gin.H{
				"redis_available": redisCache.IsAvailable(),
				"timestamp":       time.Now().Format(time.RFC3339),
			},
		})
	})

	// Cache flush endpoint (for testing)
	r.DELETE("/cache/flush", func(c *gin.Context) {
		if redisCache == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "cache not available",
			})
			return
		}

		if err := redisCache.FlushCache(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "failed to flush cache",
				"details": err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message":   "cache flushed successfully",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	// API info endpoint
	r.GET("/api/info", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":        "Catalog Browser API",
			"version":     "1.0.0",
			"description": "Storefront catalog browsing with filtering, sorting and pagination",
			"features":    []string{"Category and color filters", "Price range and rating filters", "Stable sorting", "Pagination", "Shareable filter URLs", "Browse sessions", "Redis caching"},
			"endpoints": map[string]string{
				"GET /products":     "Browse the catalog with filters, sort and pagination",
				"GET /products/:id": "Single product",
				"GET /categories":   "Category tree with counts",
				"GET /colors":       "Color swatches",
				"GET /sort-options": "Sort dropdown entries",
				"POST /sessions":    "Open a browse session",
				"GET /health":       "Health check",
				"GET /cache/stats":  "Cache statistics",
				"GET /api/info":     "API information",
			},
		})
	})

	log.Printf("Starting catalog server on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

func sessionNotFound(id string) models.ErrorResponse {
	return models.ErrorResponse{
		Error:   "session_not_found",
		Code:    http.StatusNotFound,
		Message: fmt.Sprintf("no session with id %s", id),
	}
}

func getRateLimiter(ip string) *rate.Limiter {
	rateMutex.RLock()
	limiter, exists := rateLimiters[ip]
	rateMutex.RUnlock()

	if !exists {
		rateMutex.Lock()
		limiter = rate.NewLimiter(rate.Limit(10), 20) // 10 req/sec, burst 20
		rateLimiters[ip] = limiter
		rateMutex.Unlock()
	}

	return limiter
}

func rateLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		limiter := getRateLimiter(ip)

		if !limiter.Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       "rate_limit_exceeded",
				"message":     "Too many requests from your IP",
				"retry_after": "1 second",
				"ip":          ip,
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
