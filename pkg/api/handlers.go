package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"shopify-relay/pkg/models"
	"shopify-relay/pkg/services"
)

// Handlers contains all HTTP handlers for the API
type Handlers struct {
	signupService services.SignupService
}

// NewHandlers creates a new Handlers instance
func NewHandlers(signupService services.SignupService) *Handlers {
	return &Handlers{
		signupService: signupService,
	}
}

// HealthCheck handler for monitoring
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// HandleAddToShopify validates an incoming signup and relays it to the
// Shopify customers API, answering with the upstream outcome.
func (h *Handlers) HandleAddToShopify(c *gin.Context) {
	var signup models.SignupRequest

	// Bind and validate before anything touches the network
	if err := c.ShouldBindJSON(&signup); err != nil {
		log.Printf("Rejected signup request: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": models.ValidationMessage(err)})
		return
	}

	result, err := h.signupService.AddCustomer(signup)
	if err != nil {
		log.Printf("Error adding customer to Shopify: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to add customer to Shopify",
			"error":   err.Error(),
		})
		return
	}

	// Non-2xx upstream answers pass through with their own status code
	if !result.Success() {
		c.JSON(result.StatusCode, gin.H{"error": result.Errors})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Customer added to Shopify successfully",
		"data":    result.Customer,
	})
}
