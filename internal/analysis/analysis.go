package analysis

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"secutag/internal/model"
	"secutag/internal/scorer"
)

// 提示文案
const (
	MsgEmptyRequirement = "Merci de saisir une exigence de sécurité."
	MsgNoMatch          = "Aucune correspondance pertinente trouvée."
)

// Analysis 一次分析的完整结果
type Analysis struct {
	Requirement string              `json:"requirement"`
	Tags        []model.TagEntry    `json:"-"`
	Matches     []model.MatchResult `json:"-"`    // 全部标签，按标签顺序
	Rows        []model.ResultRow   `json:"rows"` // 等级 > 0，按等级降序
}

// Empty 没有任何命中
func (a *Analysis) Empty() bool {
	return len(a.Rows) == 0
}

// Message 结果提示
func (a *Analysis) Message() string {
	if a.Empty() {
		return MsgNoMatch
	}
	return fmt.Sprintf("%d tag(s) pertinent(s) sur %d", len(a.Rows), len(a.Matches))
}

// ValidateRequirement 校验需求文本
func ValidateRequirement(requirement string) error {
	if strings.TrimSpace(requirement) == "" {
		return &model.ValidationError{Field: "requirement", Message: MsgEmptyRequirement}
	}
	return nil
}

// Run 对分类中的每个标签评分并汇总；任一评分失败则整体失败
func Run(ctx context.Context, s scorer.Scorer, tx *model.Taxonomy, requirement string) (*Analysis, error) {
	if err := ValidateRequirement(requirement); err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, &model.ValidationError{Field: "file", Message: "Aucune taxonomie chargée."}
	}

	matches := make([]model.MatchResult, 0, len(tx.Tags))
	for _, tag := range tx.Tags {
		level, justification, err := s.Score(ctx, requirement, tag.Label, tag.Description)
		if err != nil {
			return nil, fmt.Errorf("scoring tag %d: %w", tag.ID, err)
		}
		matches = append(matches, model.MatchResult{
			Tag:           tag,
			Level:         level,
			Justification: justification,
		})
	}

	return &Analysis{
		Requirement: requirement,
		Tags:        tx.Tags,
		Matches:     matches,
		Rows:        Aggregate(matches),
	}, nil
}

// Aggregate 过滤等级为 0 的结果并按等级降序排列（同级保持标签顺序）
func Aggregate(matches []model.MatchResult) []model.ResultRow {
	rows := make([]model.ResultRow, 0, len(matches))
	for _, m := range matches {
		if m.Level <= model.LevelNone {
			continue
		}
		rows = append(rows, model.ResultRow{
			ID:            m.Tag.ID,
			Category:      m.Tag.Category,
			Tag:           m.Tag.Label,
			Level:         m.Level,
			Justification: m.Justification,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Level > rows[j].Level
	})
	return rows
}
