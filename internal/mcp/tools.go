package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"secutag/internal/analysis"
)

const msgNoTaxonomy = "Aucune taxonomie chargée."

// registerTools 注册 MCP 工具
func (m *MCPServer) registerTools() {
	categorizeTool := mcp.NewTool("categorize_requirement",
		mcp.WithDescription("Catégorise une exigence de sécurité selon la taxonomie de tags chargée"),
		mcp.WithString("requirement",
			mcp.Required(),
			mcp.Description("Texte de l'exigence de sécurité"),
		),
	)
	m.mcpServer.AddTool(categorizeTool, m.handleCategorize)

	listTool := mcp.NewTool("list_tags",
		mcp.WithDescription("Liste les tags de la taxonomie chargée"),
		mcp.WithNumber("limit",
			mcp.Description("Nombre maximal de tags (0 = tous)"),
		),
	)
	m.mcpServer.AddTool(listTool, m.handleListTags)
}

func (m *MCPServer) handleCategorize(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	requirement := request.GetString("requirement", "")
	if err := analysis.ValidateRequirement(requirement); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	t, ok := m.store.Current()
	if !ok {
		return mcp.NewToolResultError(msgNoTaxonomy), nil
	}

	a, err := analysis.Run(ctx, m.scorer, t, requirement)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("échec de la catégorisation : %v", err)), nil
	}

	return mcp.NewToolResultText(formatRows(requirement, a.Rows, analysis.MsgNoMatch)), nil
}

func (m *MCPServer) handleListTags(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	t, ok := m.store.Current()
	if !ok {
		return mcp.NewToolResultError(msgNoTaxonomy), nil
	}

	limit := int(request.GetFloat("limit", 0))
	return mcp.NewToolResultText(formatTags(t, limit)), nil
}
