package mcp

import (
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/server"

	"secutag/internal/model"
	"secutag/internal/scorer"
	"secutag/internal/store"
)

// MCPServer 通过 MCP 暴露需求分类能力
type MCPServer struct {
	store     *store.MemoryStore
	scorer    scorer.Scorer
	mcpServer *server.MCPServer
}

// NewMCPServer 创建 MCP 服务
func NewMCPServer(st *store.MemoryStore, s scorer.Scorer, version string) *MCPServer {
	m := &MCPServer{
		store:  st,
		scorer: s,
	}

	m.mcpServer = server.NewMCPServer(
		"secutag",
		version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)
	m.registerTools()

	return m
}

// Server 返回底层 MCP 服务
func (m *MCPServer) Server() *server.MCPServer {
	return m.mcpServer
}

// formatRows 以 markdown 表格输出分类结果
func formatRows(requirement string, rows []model.ResultRow, empty string) string {
	var b strings.Builder
	b.WriteString("# Résultats de la catégorisation\n\n")
	fmt.Fprintf(&b, "Exigence : %s\n\n", requirement)

	if len(rows) == 0 {
		b.WriteString(empty)
		return b.String()
	}

	b.WriteString("| ID Tag | Catégorie | Tag | Niveau de pertinence | Justification |\n")
	b.WriteString("|---|---|---|---|---|\n")
	for _, r := range rows {
		fmt.Fprintf(&b, "| %d | %s | %s | %d | %s |\n", r.ID, escapeCell(r.Category), escapeCell(r.Tag), r.Level, escapeCell(r.Justification))
	}
	return b.String()
}

// formatTags 以 markdown 列表输出标签
func formatTags(t *model.Taxonomy, limit int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Taxonomie %s\n\n", t.Source)
	fmt.Fprintf(&b, "%d tags\n\n", t.Len())

	for i, tag := range t.Tags {
		if limit > 0 && i >= limit {
			fmt.Fprintf(&b, "\n… %d tags non affichés\n", t.Len()-limit)
			break
		}
		fmt.Fprintf(&b, "- **%d** [%s] %s", tag.ID, tag.Category, tag.Label)
		if tag.Description != "" {
			fmt.Fprintf(&b, " : %s", tag.Description)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	return strings.ReplaceAll(s, "\n", " ")
}
