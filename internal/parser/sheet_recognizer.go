package parser

import (
	"secutag/internal/model"
)

// SheetRecognizer 识别工作表是否为分类表
type SheetRecognizer struct {
	mapper *ColumnMapper
}

// NewSheetRecognizer 创建识别器
func NewSheetRecognizer(mapper *ColumnMapper) *SheetRecognizer {
	if mapper == nil {
		mapper = NewColumnMapper(nil)
	}
	return &SheetRecognizer{mapper: mapper}
}

// Recognize 识别表头
func (r *SheetRecognizer) Recognize(sheetName string, headers []string) model.ColumnRecognition {
	columns := r.mapper.Map(headers)
	return model.ColumnRecognition{
		SheetName: sheetName,
		Headers:   NormalizeHeaders(headers),
		Columns:   columns,
		Missing:   Missing(columns),
	}
}

// Check 识别表头，缺列时返回 MissingColumnError
func (r *SheetRecognizer) Check(sheetName string, headers []string) (model.ColumnRecognition, error) {
	rec := r.Recognize(sheetName, headers)
	if len(rec.Missing) > 0 {
		return rec, &model.MissingColumnError{Missing: rec.Missing}
	}
	return rec, nil
}
