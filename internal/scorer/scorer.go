package scorer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"secutag/internal/model"
)

const (
	KindKeyword = "keyword"
	KindOpenAI  = "openai"
)

// Scorer 评分边界：(需求, 标签, 描述) -> (等级, 理由)
//
// 规则评分器与模型评分器可互相替换，调用方不感知实现。
type Scorer interface {
	Name() string
	Score(ctx context.Context, requirement, tagLabel, description string) (model.Level, string, error)
}

// Config 评分器配置
type Config struct {
	Kind    string
	Model   string
	BaseURL string
	APIKey  string
}

// New 按配置创建评分器，缺省为规则评分器
func New(cfg Config) (Scorer, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Kind)) {
	case "", KindKeyword:
		return NewKeywordScorer(), nil
	case KindOpenAI:
		if strings.TrimSpace(cfg.APIKey) == "" {
			return nil, errors.New("scorer openai: OPENAI_API_KEY is not set")
		}
		return NewOpenAIScorer(cfg.APIKey, cfg.BaseURL, cfg.Model), nil
	default:
		return nil, fmt.Errorf("unknown scorer kind: %q", cfg.Kind)
	}
}
