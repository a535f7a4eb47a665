package controllers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tienda-backend/config"
	"tienda-backend/models"
	"tienda-backend/services"
)

const productListCacheKey = "products_list"
const productListCacheTTL = 5 * time.Minute

type ProductController struct {
	products *services.ProductService
}

func NewProductController(products *services.ProductService) *ProductController {
	return &ProductController{products: products}
}

func invalidateProductCache() {
	if config.RedisClient == nil {
		return
	}
	config.RedisClient.Del(context.Background(), productListCacheKey)
}

// @Summary List products
// @Description Get all products (public)
// @Tags Products
// @Produce json
// @Success 200 {array} models.Product
// @Router /api/products [get]
func (ctrl *ProductController) GetAllProducts(c *gin.Context) {
	ctx := c.Request.Context()

	if config.RedisClient != nil {
		cached, err := config.RedisClient.Get(ctx, productListCacheKey).Result()
		if err == nil {
			c.Data(http.StatusOK, "application/json", []byte(cached))
			return
		}
	}

	products, err := ctrl.products.List(ctx)
	if err != nil {
		log.Printf("Get products error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			OK:      false,
			Message: "Server error",
		})
		return
	}

	if config.RedisClient != nil {
		if payload, err := json.Marshal(products); err == nil {
			config.RedisClient.Set(ctx, productListCacheKey, payload, productListCacheTTL)
		}
	}

	c.JSON(http.StatusOK, products)
}

// @Summary Get product
// @Description Get a single product by id (public)
// @Tags Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Product
// @Failure 404 {object} models.ErrorResponse
// @Router /api/products/{id} [get]
func (ctrl *ProductController) GetProductByID(c *gin.Context) {
	product, err := ctrl.products.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		log.Printf("Get product error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			OK:      false,
			Message: "Server error",
		})
		return
	}
	if product == nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			OK:      false,
			Message: "Product not found",
		})
		return
	}

	c.JSON(http.StatusOK, product)
}

// @Summary Create product
// @Description Create a product (admin only)
// @Tags Products
// @Accept json
// @Produce json
// @Param product body models.ProductRequest true "Product"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} models.ValidationErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /api/products [post]
func (ctrl *ProductController) CreateProduct(c *gin.Context) {
	var req models.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse{
			OK:      false,
			Message: "Invalid input",
			Errors:  models.ValidationErrors(err),
		})
		return
	}

	product, err := ctrl.products.Create(c.Request.Context(), req)
	if err != nil {
		log.Printf("Create product error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			OK:      false,
			Message: "Server error",
		})
		return
	}

	invalidateProductCache()
	c.JSON(http.StatusCreated, gin.H{"ok": true, "product": product})
}

// @Summary Update product
// @Description Replace all fields of a product (admin only)
// @Tags Products
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param product body models.ProductRequest true "Product"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.ValidationErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/products/{id} [put]
func (ctrl *ProductController) UpdateProduct(c *gin.Context) {
	var req models.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse{
			OK:      false,
			Message: "Invalid input",
			Errors:  models.ValidationErrors(err),
		})
		return
	}

	product, err := ctrl.products.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		log.Printf("Update product error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			OK:      false,
			Message: "Server error",
		})
		return
	}
	if product == nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			OK:      false,
			Message: "Product not found",
		})
		return
	}

	invalidateProductCache()
	c.JSON(http.StatusOK, gin.H{"ok": true, "product": product})
}

// @Summary Delete product
// @Description Delete a product (admin only)
// @Tags Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/products/{id} [delete]
func (ctrl *ProductController) DeleteProduct(c *gin.Context) {
	deleted, err := ctrl.products.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		log.Printf("Delete product error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			OK:      false,
			Message: "Server error",
		})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			OK:      false,
			Message: "Product not found",
		})
		return
	}

	invalidateProductCache()
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
