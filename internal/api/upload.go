package api

import (
	"errors"
	"log"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"secutag/internal/model"
)

const (
	msgMissingFile  = "Merci de charger le fichier de taxonomie."
	msgFileTooLarge = "Fichier de taxonomie trop volumineux."
)

// UploadTaxonomy 上传分类文件，解析成功后设为当前分类
// POST /api/taxonomy (multipart: file)
func (h *Handler) UploadTaxonomy(c *gin.Context) {
	h.limitBody(c)
	fh, err := h.formFile(c)
	if err != nil {
		writeError(c, err)
		return
	}

	t, err := h.loadUploaded(fh)
	if err != nil {
		writeError(c, err)
		return
	}

	h.store.Put(t)
	log.Printf("taxonomy %s loaded from %s: %d tags", t.ID, t.Source, t.Len())

	c.JSON(http.StatusOK, StatusResponse{
		Loaded:     true,
		TaxonomyID: t.ID,
		Source:     t.Source,
		TagCount:   t.Len(),
		Scorer:     h.scorer.Name(),
		Message:    LoadedMessage(t),
	})
}

// limitBody 限制上传大小，须在解析表单前调用
func (h *Handler) limitBody(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)
}

// formFile 读取上传文件字段；缺失时返回校验错误
func (h *Handler) formFile(c *gin.Context) (*multipart.FileHeader, error) {
	fh, err := c.FormFile("file")
	if err != nil || fh == nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, &model.ValidationError{Field: "file", Message: msgFileTooLarge}
		}
		return nil, &model.ValidationError{Field: "file", Message: msgMissingFile}
	}
	return fh, nil
}

// loadUploaded 直接从上传内容解析，不落盘
func (h *Handler) loadUploaded(fh *multipart.FileHeader) (*model.Taxonomy, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, &model.LoadError{Source: fh.Filename, Err: err}
	}
	defer f.Close()

	return h.loader.LoadReader(fh.Filename, f)
}
