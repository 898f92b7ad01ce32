package handlers

import (
	"net/http"

	"aamer/services/request"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (h *HandlerBundle) PostRequestHandler(c *gin.Context) {
	logger := getLogger(c)

	var in request.CreateRequestInput
	if err := c.ShouldBindJSON(&in); err != nil {
		logger.Error("Invalid request posting", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request: " + err.Error()})
		return
	}

	req, err := h.RequestSvc.Create(c.Request.Context(), in)
	if err != nil {
		respondMessageError(c, logger, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "✅ Request posted successfully", "request": req})
}

// GetRequestsHandler lists requests, optionally filtered by ?status=.
func (h *HandlerBundle) GetRequestsHandler(c *gin.Context) {
	logger := getLogger(c)

	requests, err := h.RequestSvc.GetAll(c.Request.Context(), c.Query("status"))
	if err != nil {
		respondMessageError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, requests)
}

func (h *HandlerBundle) GetUserRequestsHandler(c *gin.Context) {
	logger := getLogger(c)

	requests, err := h.RequestSvc.GetByUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondMessageError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, requests)
}

func (h *HandlerBundle) UpdateRequestStatusHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid status update", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request: " + err.Error()})
		return
	}

	if err := h.RequestSvc.UpdateStatus(c.Request.Context(), c.Param("requestId"), req.Status); err != nil {
		respondMessageError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "✅ Request status updated successfully"})
}

// GetRequestHandler returns the request, or a null body when it does not
// exist.
func (h *HandlerBundle) GetRequestHandler(c *gin.Context) {
	logger := getLogger(c)

	req, err := h.RequestSvc.GetByID(c.Request.Context(), c.Param("requestId"))
	if err != nil {
		respondMessageError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, req)
}
