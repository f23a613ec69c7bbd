package parser

import (
	"slices"

	"secutag/internal/model"
)

// ColumnMapper 表头到逻辑列的映射器
type ColumnMapper struct {
	aliases map[model.LogicalColumn][]string
}

// NewColumnMapper 创建映射器，aliases 为空时使用默认别名表
func NewColumnMapper(aliases map[model.LogicalColumn][]string) *ColumnMapper {
	if len(aliases) == 0 {
		aliases = ColumnAliases
	}
	normalized := make(map[model.LogicalColumn][]string, len(aliases))
	for col, list := range aliases {
		normalized[col] = NormalizeHeaders(list)
	}
	return &ColumnMapper{aliases: normalized}
}

// Map 为每个逻辑列选出第一个命中别名的表头（按表头从左到右）
//
// 同一列不会被两个逻辑列同时占用。
func (m *ColumnMapper) Map(headers []string) map[model.LogicalColumn]int {
	normalized := NormalizeHeaders(headers)
	mappings := make(map[model.LogicalColumn]int)
	used := make(map[int]bool)

	for _, logical := range detectionOrder {
		aliases, ok := m.aliases[logical]
		if !ok {
			continue
		}
		for idx, col := range normalized {
			if col == "" || used[idx] {
				continue
			}
			if slices.Contains(aliases, col) {
				mappings[logical] = idx
				used[idx] = true
				break
			}
		}
	}

	return mappings
}

// Missing 返回未匹配到的必需列（按规范顺序）
func Missing(mappings map[model.LogicalColumn]int) []string {
	var missing []string
	for _, col := range model.RequiredColumns {
		if _, ok := mappings[col]; !ok {
			missing = append(missing, string(col))
		}
	}
	return missing
}
