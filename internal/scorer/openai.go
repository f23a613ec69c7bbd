package scorer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"secutag/internal/model"
)

const (
	defaultModel = "gpt-4o-mini"
	maxTokens    = 256
)

// OpenAIScorer 基于 Chat Completions 的评分器
type OpenAIScorer struct {
	client *openai.Client
	model  string
}

// NewOpenAIScorer 创建模型评分器，baseURL 为空时使用官方地址
func NewOpenAIScorer(apiKey, baseURL, model string) *OpenAIScorer {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if model == "" {
		model = defaultModel
	}
	return &OpenAIScorer{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

// Name 评分器名称
func (s *OpenAIScorer) Name() string {
	return KindOpenAI
}

type modelVerdict struct {
	Level         int    `json:"level"`
	Justification string `json:"justification"`
}

// Score 实现 Scorer
func (s *OpenAIScorer) Score(ctx context.Context, requirement, tagLabel, description string) (model.Level, string, error) {
	if strings.TrimSpace(requirement) == "" {
		return model.LevelNone, JustificationNone, nil
	}

	req := openai.ChatCompletionRequest{
		Model: s.model,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt(requirement, tagLabel, description)},
		},
	}
	// 推理模型使用 MaxCompletionTokens
	if strings.HasPrefix(s.model, "o1") || strings.HasPrefix(s.model, "o3") || strings.HasPrefix(s.model, "o4") || strings.HasPrefix(s.model, "gpt-5") {
		req.MaxCompletionTokens = maxTokens
	} else {
		req.MaxTokens = maxTokens
	}

	resp, err := s.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return model.LevelNone, "", fmt.Errorf("failed to create chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return model.LevelNone, "", errors.New("chat completion returned no choices")
	}

	var v modelVerdict
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &v); err != nil {
		return model.LevelNone, "", fmt.Errorf("invalid scorer response: %w", err)
	}

	level := clampLevel(v.Level)
	justification := strings.TrimSpace(v.Justification)
	if justification == "" {
		justification = JustificationFor(level)
	}
	return level, justification, nil
}

// clampLevel 将模型输出收敛到 {0,2,3,4}，1 视为无关联
func clampLevel(n int) model.Level {
	if n >= int(model.LevelDirect) {
		return model.LevelDirect
	}
	if l := model.Level(n); l.Valid() {
		return l
	}
	return model.LevelNone
}
