package model

import "time"

// TagEntry 安全分类中的一个标签
type TagEntry struct {
	ID          int    `json:"id"`          // 显式 ID 列，缺省时为行序号（从 1 开始）
	Category    string `json:"category"`    // CATEGORIE
	Label       string `json:"label"`       // TAG
	Description string `json:"description"` // DESCRIPTION
}

// Taxonomy 一次加载得到的标签集合，加载后只读
type Taxonomy struct {
	ID       string     `json:"id"`
	Source   string     `json:"source"`
	LoadedAt time.Time  `json:"loadedAt"`
	Tags     []TagEntry `json:"tags"`
}

// Len 标签数量
func (t *Taxonomy) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Tags)
}
