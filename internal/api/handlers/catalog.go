package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jafarshop/storefront/internal/service"
)

// HandleListProducts handles GET /api/products?query=&sortKey=&reverse=
func HandleListProducts(sf service.Storefront, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := c.Query("query")
		sortKey := c.Query("sortKey")
		reverse, _ := strconv.ParseBool(c.Query("reverse"))

		products, err := sf.GetProducts(c.Request.Context(), query, sortKey, reverse)
		if err != nil {
			logger.Error("Error listing products", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list products"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"products": products})
	}
}

// HandleGetProduct handles GET /api/products/:handle
func HandleGetProduct(sf service.Storefront, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		handle := c.Param("handle")

		product, err := sf.GetProduct(c.Request.Context(), handle)
		if err != nil {
			logger.Error("Error getting product", zap.Error(err), zap.String("handle", handle))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get product"})
			return
		}
		if product == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"product": product})
	}
}

// HandleListCollections handles GET /api/collections
func HandleListCollections(sf service.Storefront, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		collections, err := sf.GetCollections(c.Request.Context())
		if err != nil {
			logger.Error("Error listing collections", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list collections"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"collections": collections})
	}
}

// HandleGetCollection handles GET /api/collections/:handle
func HandleGetCollection(sf service.Storefront, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		handle := c.Param("handle")

		collection, err := sf.GetCollection(c.Request.Context(), handle)
		if err != nil {
			logger.Error("Error getting collection", zap.Error(err), zap.String("handle", handle))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get collection"})
			return
		}
		if collection == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Collection not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"collection": collection})
	}
}

// HandleListCollectionProducts handles GET /api/collections/:handle/products.
// An unresolved collection yields an empty product list, not a 404.
func HandleListCollectionProducts(sf service.Storefront, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		handle := c.Param("handle")
		sortKey := c.Query("sortKey")
		reverse, _ := strconv.ParseBool(c.Query("reverse"))

		products, err := sf.GetCollectionProducts(c.Request.Context(), handle, sortKey, reverse)
		if err != nil {
			logger.Error("Error listing collection products", zap.Error(err), zap.String("handle", handle))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list collection products"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"products": products})
	}
}
