package mcp

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"secutag/internal/model"
	"secutag/internal/scorer"
	"secutag/internal/store"
)

func newServer(t *testing.T, loaded bool) *MCPServer {
	t.Helper()

	st := store.NewMemoryStore()
	if loaded {
		st.Put(&model.Taxonomy{
			ID:     "t1",
			Source: "tags.xlsx",
			Tags: []model.TagEntry{
				{ID: 1, Category: "Réseau", Label: "pare-feu", Description: "filtrage"},
				{ID: 2, Category: "Accès", Label: "authentification forte", Description: "MFA | OTP"},
			},
		})
	}
	return NewMCPServer(st, scorer.NewKeywordScorer(), "test")
}

func callRequest(name string, args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()

	require.NotNil(t, res)
	require.NotEmpty(t, res.Content)
	tc, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "unexpected content type %T", res.Content[0])
	return tc.Text
}

func TestHandleCategorize(t *testing.T) {
	s := newServer(t, true)

	res, err := s.handleCategorize(context.Background(), callRequest("categorize_requirement", map[string]any{
		"requirement": "Le système doit exiger une authentification forte",
	}))
	require.NoError(t, err)
	assert.False(t, res.IsError)

	text := resultText(t, res)
	assert.Contains(t, text, "| 2 | Accès | authentification forte | 4 |")
	assert.NotContains(t, text, "pare-feu")
}

func TestHandleCategorize_Errors(t *testing.T) {
	s := newServer(t, true)
	res, err := s.handleCategorize(context.Background(), callRequest("categorize_requirement", map[string]any{}))
	require.NoError(t, err)
	assert.True(t, res.IsError)

	s = newServer(t, false)
	res, err = s.handleCategorize(context.Background(), callRequest("categorize_requirement", map[string]any{"requirement": "MFA"}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), msgNoTaxonomy)
}

func TestHandleCategorize_NoMatch(t *testing.T) {
	s := newServer(t, true)
	res, err := s.handleCategorize(context.Background(), callRequest("categorize_requirement", map[string]any{"requirement": "xyz"}))
	require.NoError(t, err)
	assert.Contains(t, resultText(t, res), "Aucune correspondance pertinente trouvée.")
}

func TestHandleListTags(t *testing.T) {
	s := newServer(t, true)
	res, err := s.handleListTags(context.Background(), callRequest("list_tags", map[string]any{"limit": float64(1)}))
	require.NoError(t, err)

	text := resultText(t, res)
	assert.Contains(t, text, "2 tags")
	assert.Contains(t, text, "**1** [Réseau] pare-feu : filtrage")
	assert.NotContains(t, text, "authentification forte")
}

func TestFormatRows_EscapesPipes(t *testing.T) {
	text := formatRows("x", []model.ResultRow{{ID: 1, Category: "a|b", Tag: "t", Level: 2, Justification: "j\nk"}}, "")
	assert.Contains(t, text, `a\|b`)
	assert.Contains(t, text, "j k")
}
