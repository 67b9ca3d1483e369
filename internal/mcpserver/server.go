// Package mcpserver provides an MCP (Model Context Protocol) server that
// exposes the global menu engine to LLM clients via stdio transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/starford/globalmenu/internal/menuservice"
	"github.com/starford/globalmenu/internal/preview"
	"github.com/starford/globalmenu/internal/style"
	"github.com/starford/globalmenu/internal/vault"
)

const referenceURI = "globalmenu://rule-reference"

// Server wraps the MCP server with the menu tools.
type Server struct {
	mcp   *server.MCPServer
	svc   *menuservice.Service
	vault *vault.Vault
}

// New creates a new MCP server with all tools registered. v may be nil, in
// which case list_documents reports an error.
func New(svc *menuservice.Service, v *vault.Vault) *Server {
	s := &Server{svc: svc, vault: v}

	s.mcp = server.NewMCPServer(
		"Global Menu",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("resolve_menu",
		mcp.WithDescription("Resolve which menu a document shows, with its rendered items, position and style."),
		mcp.WithString("path", mcp.Required(), mcp.Description("Vault-relative document path (e.g. projects/plan.md)")),
		mcp.WithBoolean("dark", mcp.Description("Host dark mode; defaults to the tracked host flag")),
	), s.resolveMenu)

	s.mcp.AddTool(mcp.NewTool("preview_menu",
		mcp.WithDescription("Draw the menu a document shows as plain text."),
		mcp.WithString("path", mcp.Required(), mcp.Description("Vault-relative document path")),
		mcp.WithBoolean("dark", mcp.Description("Host dark mode")),
	), s.previewMenu)

	s.mcp.AddTool(mcp.NewTool("list_menus",
		mcp.WithDescription("List all menus with their items."),
	), s.listMenus)

	s.mcp.AddTool(mcp.NewTool("list_rules",
		mcp.WithDescription("List display rules. Rules are returned in stored order, "+
			"or in evaluation order (base rule last) when order is \"evaluation\"."),
		mcp.WithString("order", mcp.Description("\"stored\" (default) or \"evaluation\"")),
	), s.listRules)

	s.mcp.AddTool(mcp.NewTool("get_style",
		mcp.WithDescription("Get the style settings and the style resolved for the host theme, "+
			"including the CSS custom properties a renderer applies."),
		mcp.WithBoolean("dark", mcp.Description("Host dark mode")),
	), s.getStyle)

	s.mcp.AddTool(mcp.NewTool("list_documents",
		mcp.WithDescription("List the Markdown documents of the vault."),
		mcp.WithString("folder", mcp.Description("Optional folder prefix (e.g. projects/)")),
	), s.listDocuments)

	s.mcp.AddTool(mcp.NewTool("get_rule_reference",
		mcp.WithDescription("Explain rule types and how rules are evaluated."),
	), s.getRuleReference)

	s.mcp.AddResource(
		mcp.NewResource(referenceURI, "Rule Reference",
			mcp.WithResourceDescription("Rule types and evaluation order."),
			mcp.WithMIMEType("text/markdown"),
		),
		s.readRuleReference,
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) resolveMenu(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	p, err := s.svc.Resolve(ctx, path, req.GetBool("dark", s.svc.Dark()))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(p)
}

func (s *Server) previewMenu(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	dark := req.GetBool("dark", s.svc.Dark())
	p, err := s.svc.Resolve(ctx, path, dark)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(preview.String(p, preview.Options{Dark: dark})), nil
}

func (s *Server) listMenus(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(s.svc.Menus())
}

func (s *Server) listRules(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	switch order := req.GetString("order", "stored"); order {
	case "stored", "":
		return jsonResult(s.svc.Rules())
	case "evaluation":
		return jsonResult(s.svc.EvaluationOrder())
	default:
		return mcp.NewToolResultError("unknown order: " + order), nil
	}
}

func (s *Server) getStyle(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	resolved := s.svc.ResolvedStyle(req.GetBool("dark", s.svc.Dark()))
	return jsonResult(map[string]any{
		"settings":  s.svc.Style(),
		"resolved":  resolved,
		"className": style.ClassName(resolved.Mode),
		"variables": style.Variables(resolved),
	})
}

func (s *Server) listDocuments(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if s.vault == nil {
		return mcp.NewToolResultError("no vault configured"), nil
	}
	docs, err := s.vault.List()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	folder := strings.TrimPrefix(req.GetString("folder", ""), "/")
	var paths []string
	for _, d := range docs {
		if strings.HasPrefix(d, folder) {
			paths = append(paths, d)
		}
	}
	if len(paths) == 0 {
		return mcp.NewToolResultText("no documents found"), nil
	}
	return mcp.NewToolResultText(strings.Join(paths, "\n")), nil
}

func (s *Server) getRuleReference(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(RuleReference), nil
}

func (s *Server) readRuleReference(_ context.Context, _ mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      referenceURI,
			MIMEType: "text/markdown",
			Text:     RuleReference,
		},
	}, nil
}
