package model

// LogicalColumn 分类表的逻辑列
type LogicalColumn string

const (
	ColumnCategory    LogicalColumn = "CATEGORIE"
	ColumnTag         LogicalColumn = "TAG"
	ColumnDescription LogicalColumn = "DESCRIPTION"
	ColumnID          LogicalColumn = "ID" // 可选
)

// RequiredColumns 必需列，顺序即报错顺序
var RequiredColumns = []LogicalColumn{ColumnCategory, ColumnTag, ColumnDescription}

// ColumnRecognition 表头识别结果
type ColumnRecognition struct {
	SheetName string                `json:"sheetName"`
	Headers   []string              `json:"headers"` // 规范化后的表头
	Columns   map[LogicalColumn]int `json:"columns"` // 逻辑列 -> 列索引
	Missing   []string              `json:"missingFields"`
}

// Index 返回逻辑列所在的列索引
func (r *ColumnRecognition) Index(col LogicalColumn) (int, bool) {
	idx, ok := r.Columns[col]
	return idx, ok
}
