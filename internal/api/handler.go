package api

import (
	"github.com/gin-gonic/gin"

	"secutag/internal/exporter"
	"secutag/internal/scorer"
	"secutag/internal/store"
	"secutag/internal/taxonomy"
)

// Handler API 处理器
type Handler struct {
	store          *store.MemoryStore
	loader         *taxonomy.Loader
	scorer         scorer.Scorer
	reportFilename string
	maxUploadBytes int64
}

// Options 处理器选项
type Options struct {
	ReportFilename string
	MaxUploadMB    int
}

// NewHandler 创建 API 处理器
func NewHandler(st *store.MemoryStore, loader *taxonomy.Loader, s scorer.Scorer, opts Options) *Handler {
	if opts.ReportFilename == "" {
		opts.ReportFilename = exporter.DefaultFilename
	}
	if opts.MaxUploadMB <= 0 {
		opts.MaxUploadMB = 20
	}
	return &Handler{
		store:          st,
		loader:         loader,
		scorer:         s,
		reportFilename: opts.ReportFilename,
		maxUploadBytes: int64(opts.MaxUploadMB) << 20,
	}
}

// RegisterRoutes 注册 API 路由
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// 系统状态
	router.GET("/status", h.GetStatus)

	// 分类表
	router.GET("/taxonomy", h.GetTaxonomy)
	router.POST("/taxonomy", h.UploadTaxonomy)

	// 分析（展示）
	router.POST("/analyze", h.Analyze)

	// 报告导出
	router.POST("/report", h.Report)
}
