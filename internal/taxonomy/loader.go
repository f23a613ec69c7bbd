package taxonomy

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"secutag/internal/model"
	"secutag/internal/parser"
)

// DefaultPath 默认分类文件
const DefaultPath = "Taxonomie_exigences_securite_ID_Arbo.xlsx"

// Options 加载选项
type Options struct {
	Sheet   string                           // 指定工作表；为空时取第一个可识别的工作表
	Aliases map[model.LogicalColumn][]string // 自定义别名；为空时使用默认别名表
}

// Loader 分类表加载器
type Loader struct {
	opts       Options
	recognizer *parser.SheetRecognizer
}

// NewLoader 创建加载器
func NewLoader(opts Options) *Loader {
	return &Loader{
		opts:       opts,
		recognizer: parser.NewSheetRecognizer(parser.NewColumnMapper(opts.Aliases)),
	}
}

// LoadFile 从文件路径加载（不修改源文件）
func (l *Loader) LoadFile(path string) (*model.Taxonomy, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &model.LoadError{Source: path, Err: err}
	}
	defer f.Close()

	return l.LoadReader(path, f)
}

// LoadReader 从上传内容加载，name 用于判断格式
func (l *Loader) LoadReader(name string, r io.Reader) (*model.Taxonomy, error) {
	sheet, rows, err := l.readRows(name, r)
	if err != nil {
		return nil, &model.LoadError{Source: name, Err: err}
	}
	return l.FromRows(name, sheet, rows)
}

// FromRows 由原始行（首行为表头）构建分类
func (l *Loader) FromRows(source, sheet string, rows [][]string) (*model.Taxonomy, error) {
	if len(rows) == 0 {
		return nil, &model.LoadError{Source: source, Err: errors.New("aucune ligne d'en-tête")}
	}

	rec, err := l.recognizer.Check(sheet, rows[0])
	if err != nil {
		return nil, err
	}

	cell := func(row []string, col model.LogicalColumn) string {
		idx, ok := rec.Index(col)
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	tags := make([]model.TagEntry, 0, len(rows)-1)
	explicitIDs := make([]string, 0, len(rows)-1)
	for i, row := range rows[1:] {
		tag := model.TagEntry{
			ID:          i + 1,
			Category:    cell(row, model.ColumnCategory),
			Label:       cell(row, model.ColumnTag),
			Description: cell(row, model.ColumnDescription),
		}
		if tag.Category == "" && tag.Label == "" && tag.Description == "" {
			continue
		}
		tags = append(tags, tag)
		explicitIDs = append(explicitIDs, cell(row, model.ColumnID))
	}

	if _, ok := rec.Index(model.ColumnID); ok {
		applyExplicitIDs(tags, explicitIDs)
	}

	return &model.Taxonomy{
		ID:       uuid.New().String(),
		Source:   filepath.Base(source),
		LoadedAt: time.Now(),
		Tags:     tags,
	}, nil
}

// applyExplicitIDs 使用 ID 列；任一值无效或重复时整体保留行序号
func applyExplicitIDs(tags []model.TagEntry, raw []string) {
	ids := make([]int, len(tags))
	seen := make(map[int]bool, len(tags))
	for i, v := range raw {
		id, ok := parseID(v)
		if !ok || seen[id] {
			return
		}
		seen[id] = true
		ids[i] = id
	}
	for i := range tags {
		tags[i].ID = ids[i]
	}
}

func parseID(v string) (int, bool) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n, true
	}
	// 数值单元格可能带小数格式，如 "12.0"
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f != math.Trunc(f) {
		return 0, false
	}
	if f >= math.MaxInt || f < math.MinInt {
		return 0, false
	}
	return int(f), true
}

func (l *Loader) readRows(name string, r io.Reader) (string, [][]string, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv":
		rows, err := readCSV(r)
		return "", rows, err
	default:
		return l.readWorkbook(r)
	}
}

// readWorkbook 读取工作簿：指定工作表优先，否则取第一个表头可识别的工作表
func (l *Loader) readWorkbook(r io.Reader) (string, [][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return "", nil, fmt.Errorf("failed to open excel: %w", err)
	}
	defer f.Close()

	if sheet := strings.TrimSpace(l.opts.Sheet); sheet != "" {
		if idx, _ := f.GetSheetIndex(sheet); idx < 0 {
			return "", nil, fmt.Errorf("feuille %q introuvable", sheet)
		}
		rows, err := f.GetRows(sheet)
		if err != nil {
			return "", nil, fmt.Errorf("lecture de la feuille %q: %w", sheet, err)
		}
		return sheet, rows, nil
	}

	var (
		firstSheet string
		firstRows  [][]string
	)
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil || len(rows) == 0 {
			continue
		}
		if firstRows == nil {
			firstSheet, firstRows = sheet, rows
		}
		if rec := l.recognizer.Recognize(sheet, rows[0]); len(rec.Missing) == 0 {
			return sheet, rows, nil
		}
	}
	if firstRows == nil {
		return "", nil, errors.New("classeur vide")
	}
	// 无可识别工作表：交给 FromRows 报告第一个工作表的缺失列
	return firstSheet, firstRows, nil
}

func readCSV(r io.Reader) ([][]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))

	cr := csv.NewReader(bytes.NewReader(data))
	cr.Comma = detectDelimiter(data)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv: %w", err)
	}
	return rows, nil
}

// detectDelimiter 根据表头行判断分隔符（Excel 法语区默认导出 ';'）
func detectDelimiter(data []byte) rune {
	line := data
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		line = data[:i]
	}
	if bytes.Count(line, []byte(";")) > bytes.Count(line, []byte(",")) {
		return ';'
	}
	return ','
}
