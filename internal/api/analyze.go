package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"secutag/internal/analysis"
	"secutag/internal/model"
)

// AnalyzeRequest 分析请求
type AnalyzeRequest struct {
	Requirement string `json:"requirement"`
	TaxonomyID  string `json:"taxonomyId"` // 为空时使用当前分类
}

// AnalyzeResponse 分析结果（展示）
type AnalyzeResponse struct {
	Requirement string            `json:"requirement"`
	TaxonomyID  string            `json:"taxonomyId"`
	Rows        []model.ResultRow `json:"rows"`
	Message     string            `json:"message"`
}

// Analyze 对需求进行分类
// POST /api/analyze
func (h *Handler) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Requête invalide : " + err.Error()})
		return
	}
	if err := analysis.ValidateRequirement(req.Requirement); err != nil {
		writeError(c, err)
		return
	}

	t, err := h.store.Get(req.TaxonomyID)
	if err != nil {
		writeError(c, err)
		return
	}

	a, err := analysis.Run(c.Request.Context(), h.scorer, t, req.Requirement)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, AnalyzeResponse{
		Requirement: a.Requirement,
		TaxonomyID:  t.ID,
		Rows:        a.Rows,
		Message:     a.Message(),
	})
}
