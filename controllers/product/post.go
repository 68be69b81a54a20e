package productcontroller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/OMPRAKASHKARRI/project-fruit-ordering-platform/models"
	"github.com/OMPRAKASHKARRI/project-fruit-ordering-platform/repository"
)

type CreateProductInput struct {
	Name        string          `json:"name" binding:"required"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	ImageURL    string          `json:"image_url" binding:"required,url"`
	Description string          `json:"description"`
}

// CreateProduct adds a new product to the catalog. IDs are generated here,
// not by the database.
func CreateProduct(products repository.ProductRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.Price.IsNegative() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Price must not be negative"})
			return
		}

		newProduct := models.Product{
			ID:          uuid.NewString(),
			Name:        input.Name,
			Price:       input.Price,
			ImageURL:    input.ImageURL,
			Description: input.Description,
			CreatedAt:   time.Now(),
		}

		if err := products.Create(c.Request.Context(), &newProduct); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}
		c.JSON(http.StatusCreated, newProduct)
	}
}
