package model

// Level 相关度等级
type Level int

const (
	LevelNone     Level = 0 // 无关联
	LevelIndirect Level = 2 // 间接关联（描述词命中）
	LevelStrong   Level = 3 // 强关联（标签词命中）
	LevelDirect   Level = 4 // 直接对应（完整标签命中）
)

// Valid 是否为合法等级
func (l Level) Valid() bool {
	switch l {
	case LevelNone, LevelIndirect, LevelStrong, LevelDirect:
		return true
	}
	return false
}

// MatchResult 一条需求与一个标签的评分结果
type MatchResult struct {
	Tag           TagEntry `json:"tag"`
	Level         Level    `json:"level"`
	Justification string   `json:"justification"`
}

// ResultRow 展示行
type ResultRow struct {
	ID            int    `json:"ID Tag"`
	Category      string `json:"Catégorie"`
	Tag           string `json:"Tag"`
	Level         Level  `json:"Niveau de pertinence"`
	Justification string `json:"Justification"`
}
