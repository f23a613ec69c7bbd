package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"secutag/internal/config"
	"secutag/internal/scorer"
	"secutag/internal/server"
	"secutag/internal/store"
	"secutag/internal/taxonomy"
	"secutag/internal/util"
)

var (
	port     = flag.Int("port", 0, "服务端口 (config.toml 优先；仅当未显式配置 port 时生效)")
	devMode  = flag.Bool("dev", false, "开发模式")
	taxoPath = flag.String("taxonomy", "", "分类文件路径 (覆盖配置文件)")
)

func main() {
	flag.Parse()

	fmt.Println("==========================================")
	fmt.Println("  Secutag - Catégorisation des exigences")
	fmt.Println("==========================================")

	// 加载配置
	cfg, info, err := config.LoadConfigWithInfo()
	if err != nil {
		log.Printf("加载配置失败，使用默认配置: %v", err)
		cfg = config.DefaultConfig()
		info = config.LoadConfigInfo{}
	} else {
		fmt.Printf("配置文件: %s\n", info.Path)
	}

	// 命令行参数覆盖配置
	if *port > 0 && !info.PortSpecified {
		cfg.Server.Port = *port
	}
	if *devMode {
		cfg.Server.DevMode = true
	}
	if *taxoPath != "" {
		cfg.Taxonomy.Path = *taxoPath
	}

	s, err := scorer.New(scorer.Config{
		Kind:    cfg.Scorer.Kind,
		Model:   cfg.Scorer.Model,
		BaseURL: cfg.Scorer.BaseURL,
		APIKey:  cfg.Scorer.APIKey,
	})
	if err != nil {
		log.Fatalf("初始化评分器失败: %v", err)
	}
	fmt.Printf("评分器: %s\n", s.Name())

	st := store.NewMemoryStore()
	aliases, err := cfg.Taxonomy.ColumnAliases()
	if err != nil {
		log.Fatalf("表头别名配置无效: %v", err)
	}
	loader := taxonomy.NewLoader(taxonomy.Options{Sheet: cfg.Taxonomy.Sheet, Aliases: aliases})

	// 预加载分类文件；失败时等待页面上传
	if p := config.ResolvePath(cfg.Taxonomy.Path); p != "" {
		tx, err := loader.LoadFile(p)
		if err != nil {
			log.Printf("预加载分类失败，等待上传: %v", err)
		} else {
			st.Put(tx)
			fmt.Printf("%d tags de sécurité chargés et prêts à l’analyse (%s)\n", tx.Len(), tx.Source)
		}
	}

	srv := server.NewServer(cfg, st, loader, s)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	url := fmt.Sprintf("http://localhost:%d", cfg.Server.Port)

	go func() {
		fmt.Printf("服务启动中，监听端口 %d ...\n", cfg.Server.Port)
		if err := srv.Run(addr); err != nil {
			log.Fatalf("服务启动失败: %v", err)
		}
	}()

	if !cfg.Server.DevMode {
		fmt.Printf("正在打开浏览器: %s\n", url)
		if err := util.OpenBrowserWithFallback(url); err != nil {
			fmt.Printf("无法自动打开浏览器，请手动访问: %s\n", url)
		}
	} else {
		fmt.Printf("开发模式: 请访问 %s\n", url)
	}

	fmt.Println("\n按 Ctrl+C 停止服务...")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("\n正在关闭服务...")
}
