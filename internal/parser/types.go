package parser

import "secutag/internal/model"

// ColumnAliases 逻辑列 -> 可接受的表头写法（规范化后比较）
var ColumnAliases = map[model.LogicalColumn][]string{
	model.ColumnCategory:    {"CATEGORIE", "CATEGORY", "DOMAINE"},
	model.ColumnTag:         {"TAG", "LIBELLE", "INTITULE", "EXIGENCE"},
	model.ColumnDescription: {"DESCRIPTION", "DESC", "DETAIL", "COMMENTAIRE"},
	model.ColumnID:          {"ID", "IDENTIFIANT", "ID TAG"},
}

// detectionOrder 识别顺序：必需列在前，可选 ID 列最后
var detectionOrder = []model.LogicalColumn{
	model.ColumnCategory,
	model.ColumnTag,
	model.ColumnDescription,
	model.ColumnID,
}
