package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"loanhub/api/internal/service"
)

type eligibilityRequest struct {
	Income           string `json:"income"`
	CreditScore      string `json:"creditScore"`
	EmploymentStatus string `json:"employmentStatus"`
	LoanAmount       string `json:"loanAmount"`
}

func (h HandlerSet) Eligibility(c *gin.Context) {
	var req eligibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	result, err := h.eligibility.Assess(c.Request.Context(), service.AssessInput{
		Income:           req.Income,
		CreditScore:      req.CreditScore,
		EmploymentStatus: req.EmploymentStatus,
		LoanAmount:       req.LoanAmount,
	})
	if err != nil {
		if errors.Is(err, service.ErrMissingFields) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
			return
		}
		h.serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}
