package handlers

import (
	"errors"
	"net/http"

	"kenyalegal-backend/service"
	"kenyalegal-backend/tools"

	"github.com/gin-gonic/gin"
)

// ResearchHandler handles HTTP requests for legal research
type ResearchHandler struct {
	researchService *service.ResearchService
}

// NewResearchHandler creates a new research handler
func NewResearchHandler(researchService *service.ResearchService) *ResearchHandler {
	return &ResearchHandler{
		researchService: researchService,
	}
}

// ChatRequest represents the request body for a chat query
type ChatRequest struct {
	Query        string `json:"query" binding:"required"`
	Mode         string `json:"mode"`
	DocumentType string `json:"document_type"`
	Court        string `json:"court"`
}

// Chat handles POST /api/chat
func (h *ResearchHandler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_REQUEST",
				"message": err.Error(),
			},
		})
		return
	}

	result, err := h.researchService.Answer(c.Request.Context(), service.AnswerRequest{
		Query:        req.Query,
		Mode:         req.Mode,
		DocumentType: req.DocumentType,
		Court:        req.Court,
	})
	if err != nil {
		status := http.StatusInternalServerError
		code := "GENERATION_FAILED"
		if errors.Is(err, service.ErrEmptyQuery) {
			status = http.StatusBadRequest
			code = "INVALID_REQUEST"
		}
		c.JSON(status, gin.H{
			"success": false,
			"error": gin.H{
				"code":    code,
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result,
	})
}

// SearchRequest represents the request body for a retrieval-only search
type SearchRequest struct {
	Query        string `json:"query" binding:"required"`
	DocumentType string `json:"document_type"`
	Court        string `json:"court"`
	TopK         int    `json:"top_k"`
	RerankK      int    `json:"rerank_k"`
}

// Search handles POST /api/search
func (h *ResearchHandler) Search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_REQUEST",
				"message": err.Error(),
			},
		})
		return
	}

	result, err := h.researchService.Search(c.Request.Context(), service.SearchRequest{
		Query:        req.Query,
		DocumentType: req.DocumentType,
		Court:        req.Court,
		TopK:         req.TopK,
		RerankK:      req.RerankK,
	})
	if err != nil {
		status := http.StatusInternalServerError
		code := "SEARCH_FAILED"
		if errors.Is(err, service.ErrEmptyQuery) {
			status = http.StatusBadRequest
			code = "INVALID_REQUEST"
		}
		c.JSON(status, gin.H{
			"success": false,
			"error": gin.H{
				"code":    code,
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"results": result.Results,
			"count":   len(result.Results),
		},
	})
}

// Limitations handles GET /api/limitations. With a ?query= parameter it
// looks up matching limitation periods; without one it returns the full
// reference table.
func (h *ResearchHandler) Limitations(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data": gin.H{
				"periods": tools.AllLimitationPeriods(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    tools.CheckLimitation(query),
	})
}

// Status handles GET /api/status
func (h *ResearchHandler) Status(c *gin.Context) {
	result, err := h.researchService.Status(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "STATUS_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result,
	})
}
