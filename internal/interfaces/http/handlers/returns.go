// internal/interfaces/http/handlers/returns.go
package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-backend/internal/domain/returns"
	"github.com/your-org/storefront-backend/internal/pkg/pdf"
)

// ReturnsHandler handles return workflow HTTP requests
type ReturnsHandler struct {
	returnsService *returns.Service
	pdfService     *pdf.Service
	logger         *logrus.Logger
}

// NewReturnsHandler creates a new returns handler
func NewReturnsHandler(returnsService *returns.Service, pdfService *pdf.Service, logger *logrus.Logger) *ReturnsHandler {
	return &ReturnsHandler{
		returnsService: returnsService,
		pdfService:     pdfService,
		logger:         logger,
	}
}

// SubmitReturn handles POST /returns
func (h *ReturnsHandler) SubmitReturn(c *gin.Context) {
	var req returns.SubmitReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	ret, err := h.returnsService.SubmitReturn(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.logger, err, "Failed to submit return request")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Return request submitted",
		"data":    ret,
	})
}

// GetReturns handles GET /admin/returns
func (h *ReturnsHandler) GetReturns(c *gin.Context) {
	var req returns.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid query parameters",
			"details": err.Error(),
		})
		return
	}

	response, err := h.returnsService.GetReturns(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.logger, err, "Failed to retrieve returns")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": response,
	})
}

// GetReturn handles GET /admin/returns/:id
func (h *ReturnsHandler) GetReturn(c *gin.Context) {
	ret, err := h.returnsService.GetReturn(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err, "Failed to retrieve return")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": ret,
	})
}

// UpdateStatusRequest represents a return status change
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateStatus handles PUT /admin/returns/:id/status
func (h *ReturnsHandler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	ret, err := h.returnsService.UpdateReturnStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		respondError(c, h.logger, err, "Failed to update return status")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Return status updated",
		"data":    ret,
	})
}

// UpdateCustomerInfoRequest represents an admin edit of return customer info
type UpdateCustomerInfoRequest struct {
	CustomerEmail string `json:"customer_email" binding:"required,email"`
}

// UpdateCustomerInfo handles PUT /admin/returns/:id/customer
func (h *ReturnsHandler) UpdateCustomerInfo(c *gin.Context) {
	var req UpdateCustomerInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	ret, err := h.returnsService.UpdateReturnCustomerInfo(c.Request.Context(), c.Param("id"), req.CustomerEmail)
	if err != nil {
		respondError(c, h.logger, err, "Failed to update customer info")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Customer info updated",
		"data":    ret,
	})
}

// UpdateProductInfo handles PUT /admin/return-items/:itemId
func (h *ReturnsHandler) UpdateProductInfo(c *gin.Context) {
	var req returns.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	item, err := h.returnsService.UpdateReturnProductInfo(c.Request.Context(), c.Param("itemId"), &req)
	if err != nil {
		respondError(c, h.logger, err, "Failed to update return item")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Return item updated",
		"data":    item,
	})
}

// DownloadSlip handles GET /admin/returns/:id/slip
func (h *ReturnsHandler) DownloadSlip(c *gin.Context) {
	ret, err := h.returnsService.GetReturn(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err, "Failed to retrieve return")
		return
	}

	buf, err := h.pdfService.GenerateReturnSlip(ret)
	if err != nil {
		respondError(c, h.logger, err, "Failed to generate return slip")
		return
	}

	filename := fmt.Sprintf("return-slip-%s.pdf", ret.OrderNumber)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
