package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"secutag/internal/exporter"
	"secutag/internal/model"
	"secutag/internal/parser"
	"secutag/internal/taxonomy"
)

// AppConfig 应用配置
type AppConfig struct {
	Server   ServerConfig   `toml:"server"`
	Taxonomy TaxonomyConfig `toml:"taxonomy"`
	Report   ReportConfig   `toml:"report"`
	Scorer   ScorerConfig   `toml:"scorer"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Port           int      `toml:"port"`
	DevMode        bool     `toml:"dev_mode"`
	AllowedOrigins []string `toml:"allowed_origins"`
	MaxUploadMB    int      `toml:"max_upload_mb"`
}

// TaxonomyConfig 分类文件配置
type TaxonomyConfig struct {
	Path  string `toml:"path"`  // 启动时预加载；为空或不存在时等待上传
	Sheet string `toml:"sheet"` // 为空时自动识别

	// Aliases 追加的表头别名，键为逻辑列（categorie/tag/description/id）
	Aliases map[string][]string `toml:"aliases"`
}

// ColumnAliases 合并默认别名与配置中追加的别名；未配置时返回 nil
func (c TaxonomyConfig) ColumnAliases() (map[model.LogicalColumn][]string, error) {
	if len(c.Aliases) == 0 {
		return nil, nil
	}

	merged := make(map[model.LogicalColumn][]string, len(parser.ColumnAliases))
	for col, list := range parser.ColumnAliases {
		merged[col] = append([]string(nil), list...)
	}
	for key, extra := range c.Aliases {
		col := model.LogicalColumn(strings.ToUpper(strings.TrimSpace(key)))
		if _, ok := merged[col]; !ok {
			return nil, fmt.Errorf("taxonomy.aliases: unknown column %q", key)
		}
		merged[col] = append(merged[col], extra...)
	}
	return merged, nil
}

// ReportConfig 报告导出配置
type ReportConfig struct {
	Filename string `toml:"filename"`
}

// ScorerConfig 评分器配置
type ScorerConfig struct {
	Kind    string `toml:"kind"` // keyword / openai
	Model   string `toml:"model"`
	BaseURL string `toml:"base_url"`
	APIKey  string `toml:"-"` // 仅从环境变量读取
}

// LoadConfigInfo 配置加载元信息
type LoadConfigInfo struct {
	Path          string
	PortSpecified bool
}

// DefaultConfig 默认配置
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:           20262,
			DevMode:        false,
			AllowedOrigins: []string{"*"},
			MaxUploadMB:    20,
		},
		Taxonomy: TaxonomyConfig{
			Path: taxonomy.DefaultPath,
		},
		Report: ReportConfig{
			Filename: exporter.DefaultFilename,
		},
		Scorer: ScorerConfig{
			Kind: "keyword",
		},
	}
}

func isPortSpecifiedInToml(data []byte) bool {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return false
	}

	serverAny, ok := raw["server"]
	if !ok {
		return false
	}

	serverMap, ok := serverAny.(map[string]any)
	if !ok {
		return false
	}

	_, ok = serverMap["port"]
	return ok
}

// GetExeDir 获取可执行文件所在目录
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// LoadConfigWithInfo 从可执行文件同目录的 config.toml 加载配置
func LoadConfigWithInfo() (*AppConfig, LoadConfigInfo, error) {
	exeDir, err := GetExeDir()
	if err != nil {
		// 无法获取可执行文件目录，使用当前目录
		exeDir = "."
	}
	return LoadFrom(filepath.Join(exeDir, "config.toml"))
}

// LoadFrom 从指定路径加载配置；文件不存在时使用默认配置
func LoadFrom(configPath string) (*AppConfig, LoadConfigInfo, error) {
	info := LoadConfigInfo{Path: configPath}
	config := DefaultConfig()

	// .env 不存在不报错，已有环境变量优先
	_ = godotenv.Load(filepath.Join(filepath.Dir(configPath), ".env"))

	data, err := os.ReadFile(configPath)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, info, err
		}
		// 配置文件不存在，使用默认配置
	} else {
		info.PortSpecified = isPortSpecifiedInToml(data)
		if err := toml.Unmarshal(data, config); err != nil {
			return nil, info, err
		}
	}

	applyEnv(config)
	return config, info, nil
}

// applyEnv 环境变量覆盖
func applyEnv(config *AppConfig) {
	if v := strings.TrimSpace(os.Getenv("SECUTAG_TAXONOMY_PATH")); v != "" {
		config.Taxonomy.Path = v
	}
	if v := strings.TrimSpace(os.Getenv("SECUTAG_SCORER")); v != "" {
		config.Scorer.Kind = v
	}
	if v := strings.TrimSpace(os.Getenv("SECUTAG_SCORER_MODEL")); v != "" {
		config.Scorer.Model = v
	}
	if v := strings.TrimSpace(os.Getenv("OPENAI_BASE_URL")); v != "" && config.Scorer.BaseURL == "" {
		config.Scorer.BaseURL = v
	}
	config.Scorer.APIKey = strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
}

// ResolvePath 相对路径按可执行文件目录解析；该处不存在时保留原路径（相对工作目录）
func ResolvePath(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	exeDir, err := GetExeDir()
	if err != nil {
		return p
	}
	candidate := filepath.Join(exeDir, p)
	if _, err := os.Stat(candidate); err == nil {
		return candidate
	}
	return p
}
