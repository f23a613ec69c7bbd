package server

import (
	"embed"
	"io/fs"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-chi/cors"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"secutag/internal/api"
	"secutag/internal/config"
	"secutag/internal/mcp"
	"secutag/internal/scorer"
	"secutag/internal/store"
	"secutag/internal/taxonomy"
)

//go:embed all:web
var staticFiles embed.FS

// Version 服务版本
const Version = "0.1.0"

// Server HTTP服务器
type Server struct {
	router  *gin.Engine
	handler http.Handler
	api     *api.Handler
	mcp     *mcp.MCPServer
}

// NewServer 创建服务器
func NewServer(cfg *config.AppConfig, st *store.MemoryStore, loader *taxonomy.Loader, s scorer.Scorer) *Server {
	devMode := cfg.Server.DevMode
	if !devMode {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	if devMode {
		router.Use(gin.Logger())
	}

	srv := &Server{
		router: router,
		api: api.NewHandler(st, loader, s, api.Options{
			ReportFilename: cfg.Report.Filename,
			MaxUploadMB:    cfg.Server.MaxUploadMB,
		}),
		mcp: mcp.NewMCPServer(st, s, Version),
	}

	srv.setupRoutes()

	// CORS
	srv.handler = cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Authorization", "Mcp-Session-Id"},
		ExposedHeaders:   []string{"Content-Disposition", "Mcp-Session-Id"},
		AllowCredentials: false,
		MaxAge:           300,
	})(router)

	return srv
}

// setupRoutes 设置路由
func (s *Server) setupRoutes() {
	apiGroup := s.router.Group("/api")
	{
		s.api.RegisterRoutes(apiGroup)
	}

	// MCP streamable HTTP 端点
	mcpHandler := gin.WrapH(mcpserver.NewStreamableHTTPServer(s.mcp.Server()))
	s.router.GET("/mcp", mcpHandler)
	s.router.POST("/mcp", mcpHandler)
	s.router.DELETE("/mcp", mcpHandler)

	// 静态页面
	sub, _ := fs.Sub(staticFiles, "web")
	s.router.GET("/", func(c *gin.Context) {
		data, err := fs.ReadFile(sub, "index.html")
		if err != nil {
			c.Status(http.StatusNotFound)
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", data)
	})
}

// Handler 返回带 CORS 的 http.Handler（用于测试）
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run 启动服务器
func (s *Server) Run(addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	log.Printf("listening on %s", addr)
	return httpServer.ListenAndServe()
}
