package model

import (
	"fmt"
	"strings"
)

// LoadError 分类文件无法按表格读取
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("Erreur lors du chargement du fichier de taxonomie %q : %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// MissingColumnError 别名匹配后仍缺少必需的逻辑列
type MissingColumnError struct {
	Missing []string
}

func (e *MissingColumnError) Error() string {
	return "Colonnes obligatoires introuvables dans le fichier : " + strings.Join(e.Missing, ", ")
}

// ValidationError 用户输入不完整（需求为空、未上传文件）
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
