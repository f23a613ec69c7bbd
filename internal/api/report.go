package api

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"secutag/internal/analysis"
	"secutag/internal/exporter"
	"secutag/internal/model"
)

// Report 生成报告并直接写入响应（服务端不保留文件）
// POST /api/report
//
//	multipart: file + requirement（导出变体：随请求上传分类）
//	JSON:      {requirement, taxonomyId?}（使用已加载分类）
func (h *Handler) Report(c *gin.Context) {
	requirement, t, err := h.reportInput(c)
	if err != nil {
		writeError(c, err)
		return
	}

	a, err := analysis.Run(c.Request.Context(), h.scorer, t, requirement)
	if err != nil {
		writeError(c, err)
		return
	}

	// 先完整生成工作簿，失败时仍可返回 JSON 错误
	f, err := exporter.Build(a)
	if err != nil {
		writeError(c, err)
		return
	}
	defer f.Close()

	c.Header("Content-Disposition", exporter.ContentDisposition(h.reportFilename))
	c.Header("Content-Type", exporter.ContentType)
	c.Status(http.StatusOK)
	if _, err := f.WriteTo(c.Writer); err != nil {
		log.Printf("write report failed: %v", err)
	}
}

func (h *Handler) reportInput(c *gin.Context) (string, *model.Taxonomy, error) {
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		h.limitBody(c)
		requirement := c.PostForm("requirement")
		if err := analysis.ValidateRequirement(requirement); err != nil {
			return "", nil, err
		}
		fh, err := h.formFile(c)
		if err != nil {
			return "", nil, err
		}
		t, err := h.loadUploaded(fh)
		if err != nil {
			return "", nil, err
		}
		return requirement, t, nil
	}

	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return "", nil, &model.ValidationError{Field: "requirement", Message: "Requête invalide : " + err.Error()}
	}
	if err := analysis.ValidateRequirement(req.Requirement); err != nil {
		return "", nil, err
	}
	t, err := h.store.Get(req.TaxonomyID)
	if err != nil {
		return "", nil, err
	}
	return req.Requirement, t, nil
}
