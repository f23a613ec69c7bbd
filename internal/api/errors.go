package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"secutag/internal/model"
	"secutag/internal/store"
)

const msgNoTaxonomy = "Aucune taxonomie chargée : merci de charger le fichier de tags."

// writeError 将领域错误映射为 HTTP 响应，原样展示给用户
func writeError(c *gin.Context, err error) {
	var (
		ve  *model.ValidationError
		mce *model.MissingColumnError
		le  *model.LoadError
	)
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Error(), "field": ve.Field})
	case errors.As(err, &mce):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": mce.Error(), "missingColumns": mce.Missing})
	case errors.As(err, &le):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": le.Error()})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": msgNoTaxonomy})
	default:
		log.Printf("request %s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
