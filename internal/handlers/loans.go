package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"loanhub/api/internal/middleware"
	"loanhub/api/internal/models"
	"loanhub/api/internal/repository"
	"loanhub/api/internal/service"
)

type loanResponse struct {
	ID          string    `json:"id"`
	ApplicantID string    `json:"applicantId"`
	Amount      string    `json:"amount"`
	Tenure      string    `json:"tenure"`
	Income      string    `json:"income"`
	Purpose     string    `json:"purpose"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toLoanResponse(loan models.Loan) loanResponse {
	return loanResponse{
		ID:          loan.ID,
		ApplicantID: loan.ApplicantID,
		Amount:      loan.Amount,
		Tenure:      loan.Tenure,
		Income:      loan.Income,
		Purpose:     loan.Purpose,
		Status:      string(loan.Status),
		CreatedAt:   loan.CreatedAt,
		UpdatedAt:   loan.UpdatedAt,
	}
}

type applyLoanRequest struct {
	Amount  string `json:"amount"`
	Tenure  string `json:"tenure"`
	Income  string `json:"income"`
	Purpose string `json:"purpose"`
}

func (h HandlerSet) ApplyLoan(c *gin.Context) {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req applyLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	loan, err := h.loans.Apply(c.Request.Context(), service.ApplyInput{
		ApplicantID: claims.UserID,
		Amount:      req.Amount,
		Tenure:      req.Tenure,
		Income:      req.Income,
		Purpose:     req.Purpose,
	})
	if err != nil {
		if errors.Is(err, service.ErrMissingFields) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
			return
		}
		h.serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Loan application submitted",
		"loan":    toLoanResponse(loan),
	})
}

func (h HandlerSet) LoanStatus(c *gin.Context) {
	loans, err := h.loans.List(c.Request.Context())
	if err != nil {
		h.serverError(c, err)
		return
	}

	resp := make([]loanResponse, 0, len(loans))
	for _, loan := range loans {
		resp = append(resp, toLoanResponse(loan))
	}

	c.JSON(http.StatusOK, gin.H{"loans": resp})
}

type loanActionRequest struct {
	Action string `json:"action"`
}

func (h HandlerSet) LoanAction(c *gin.Context) {
	var req loanActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	loan, err := h.loans.Decide(c.Request.Context(), c.Param("id"), req.Action)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidAction):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid action. Use approve or reject"})
		case errors.Is(err, service.ErrInvalidLoanID):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid loan id"})
		case errors.Is(err, repository.ErrLoanNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Loan not found"})
		default:
			h.serverError(c, err)
		}
		return
	}

	message := "Loan approved successfully"
	if loan.Status == models.LoanStatusRejected {
		message = "Loan rejected successfully"
	}

	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"loan":    toLoanResponse(loan),
	})
}

type documentResponse struct {
	ID          string    `json:"id"`
	LoanID      string    `json:"loanId"`
	FileName    string    `json:"fileName"`
	ContentType string    `json:"contentType"`
	SizeBytes   int64     `json:"sizeBytes"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (h HandlerSet) UploadLoanDocument(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	defer file.Close()

	doc, err := h.loans.AttachDocument(c.Request.Context(), c.Param("id"), service.DocumentUpload{
		File:   file,
		Header: header,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		case errors.Is(err, service.ErrInvalidLoanID):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid loan id"})
		case errors.Is(err, service.ErrUnsupportedDocument):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Only pdf, jpeg and png documents are accepted"})
		case errors.Is(err, repository.ErrLoanNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Loan not found"})
		default:
			h.serverError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Document uploaded",
		"document": documentResponse{
			ID:          doc.ID,
			LoanID:      doc.LoanID,
			FileName:    doc.FileName,
			ContentType: doc.ContentType,
			SizeBytes:   doc.SizeBytes,
			CreatedAt:   doc.CreatedAt,
		},
	})
}
