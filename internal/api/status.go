package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"secutag/internal/model"
)

// StatusResponse 系统状态响应
type StatusResponse struct {
	Loaded     bool   `json:"loaded"`     // 是否已加载分类
	TaxonomyID string `json:"taxonomyId"` // 当前分类 ID
	Source     string `json:"source"`     // 来源文件名
	TagCount   int    `json:"tagCount"`   // 标签数量
	LoadedAt   string `json:"loadedAt"`   // 加载时间
	Scorer     string `json:"scorer"`     // 评分器
	Message    string `json:"message"`
}

// TaxonomyResponse 分类预览
type TaxonomyResponse struct {
	TaxonomyID string           `json:"taxonomyId"`
	Source     string           `json:"source"`
	Total      int              `json:"total"`
	Tags       []model.TagEntry `json:"tags"`
	Message    string           `json:"message"`
}

// LoadedMessage 加载成功提示
func LoadedMessage(t *model.Taxonomy) string {
	return fmt.Sprintf("%d tags de sécurité chargés et prêts à l’analyse", t.Len())
}

// GetStatus 获取系统状态
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	resp := StatusResponse{Scorer: h.scorer.Name()}

	t, ok := h.store.Current()
	if !ok {
		resp.Message = msgNoTaxonomy
		c.JSON(http.StatusOK, resp)
		return
	}

	resp.Loaded = true
	resp.TaxonomyID = t.ID
	resp.Source = t.Source
	resp.TagCount = t.Len()
	resp.LoadedAt = t.LoadedAt.Format(time.RFC3339)
	resp.Message = LoadedMessage(t)
	c.JSON(http.StatusOK, resp)
}

// GetTaxonomy 预览已加载的标签
// GET /api/taxonomy?id=&limit=
func (h *Handler) GetTaxonomy(c *gin.Context) {
	t, err := h.store.Get(c.Query("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	tags := t.Tags
	if limit, err := strconv.Atoi(c.Query("limit")); err == nil && limit >= 0 && limit < len(tags) {
		tags = tags[:limit]
	}

	c.JSON(http.StatusOK, TaxonomyResponse{
		TaxonomyID: t.ID,
		Source:     t.Source,
		Total:      t.Len(),
		Tags:       tags,
		Message:    LoadedMessage(t),
	})
}
