package scorer

import (
	"context"
	"strings"

	"secutag/internal/model"
)

// 理由文案，与原型保持一致
const (
	JustificationDirect   = "Correspondance directe : le tag est explicitement mentionné dans l’exigence."
	JustificationStrong   = "Correspondance forte : thématique du tag directement liée à l’exigence."
	JustificationIndirect = "Lien indirect : le tag est pertinent dans le contexte général de l’exigence."
	JustificationNone     = "Aucun lien direct ou indirect identifié avec l’exigence."
)

// Score 基于子串的规则评分，纯函数，大小写不敏感
//
// 规则按优先级匹配：完整标签 > 标签单词 > 描述单词。空词不参与匹配。
func Score(requirement, tagLabel, description string) (model.Level, string) {
	req := strings.ToLower(requirement)
	if strings.TrimSpace(req) == "" {
		return model.LevelNone, JustificationNone
	}

	label := strings.ToLower(strings.TrimSpace(tagLabel))
	if label != "" && strings.Contains(req, label) {
		return model.LevelDirect, JustificationDirect
	}
	if anyWordIn(req, label) {
		return model.LevelStrong, JustificationStrong
	}
	if anyWordIn(req, strings.ToLower(description)) {
		return model.LevelIndirect, JustificationIndirect
	}
	return model.LevelNone, JustificationNone
}

// anyWordIn strings.Fields 不会产生空词
func anyWordIn(text, phrase string) bool {
	for _, word := range strings.Fields(phrase) {
		if strings.Contains(text, word) {
			return true
		}
	}
	return false
}

// JustificationFor 等级对应的默认理由
func JustificationFor(level model.Level) string {
	switch level {
	case model.LevelDirect:
		return JustificationDirect
	case model.LevelStrong:
		return JustificationStrong
	case model.LevelIndirect:
		return JustificationIndirect
	default:
		return JustificationNone
	}
}

// KeywordScorer 规则评分器
type KeywordScorer struct{}

// NewKeywordScorer 创建规则评分器
func NewKeywordScorer() *KeywordScorer {
	return &KeywordScorer{}
}

// Name 评分器名称
func (s *KeywordScorer) Name() string {
	return KindKeyword
}

// Score 实现 Scorer
func (s *KeywordScorer) Score(_ context.Context, requirement, tagLabel, description string) (model.Level, string, error) {
	level, justification := Score(requirement, tagLabel, description)
	return level, justification, nil
}
