package exporter

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"secutag/internal/analysis"
)

const (
	SheetReferences = "REFERENCES"
	SheetCrossing   = "CROISEMENT"

	// DefaultFilename 默认下载文件名
	DefaultFilename = "Base de references test.xlsx"
	// ContentType xlsx MIME
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	notAvailable = "N/A"

	// CROISEMENT 表头所在行，数据从下一行开始
	crossingHeaderRow = 4
)

// ReferencesHeader REFERENCES 表头：4 个固定列 + 每个标签一组（等级, 理由）
func ReferencesHeader(a *analysis.Analysis) []interface{} {
	header := make([]interface{}, 0, 4+2*len(a.Matches))
	header = append(header, "ID", "Référentiel", "ID Exigence", "Exigence")
	for _, m := range a.Matches {
		header = append(header,
			fmt.Sprintf("Niveau Tag %d", m.Tag.ID),
			fmt.Sprintf("Justification Tag %d", m.Tag.ID),
		)
	}
	return header
}

// ReferencesRow REFERENCES 唯一数据行
func ReferencesRow(a *analysis.Analysis) []interface{} {
	row := make([]interface{}, 0, 4+2*len(a.Matches))
	row = append(row, 1, notAvailable, notAvailable, a.Requirement)
	for _, m := range a.Matches {
		row = append(row, int(m.Level), m.Justification)
	}
	return row
}

// Build 生成两张表的报告工作簿
func Build(a *analysis.Analysis) (*excelize.File, error) {
	if a == nil {
		return nil, fmt.Errorf("nil analysis")
	}

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetReferences); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("创建 %s 失败: %w", SheetReferences, err)
	}
	if _, err := f.NewSheet(SheetCrossing); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("创建 %s 失败: %w", SheetCrossing, err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	if err := fillReferences(f, a, bold); err != nil {
		_ = f.Close()
		return nil, err
	}
	if err := fillCrossing(f, a, bold); err != nil {
		_ = f.Close()
		return nil, err
	}

	f.SetActiveSheet(0)
	return f, nil
}

func fillReferences(f *excelize.File, a *analysis.Analysis, bold int) error {
	header := ReferencesHeader(a)
	if err := f.SetSheetRow(SheetReferences, "A1", &header); err != nil {
		return fmt.Errorf("写入 %s 表头失败: %w", SheetReferences, err)
	}
	row := ReferencesRow(a)
	if err := f.SetSheetRow(SheetReferences, "A2", &row); err != nil {
		return fmt.Errorf("写入 %s 数据失败: %w", SheetReferences, err)
	}

	lastCell, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetReferences, "A1", lastCell, bold); err != nil {
		return err
	}
	return f.SetColWidth(SheetReferences, "D", "D", 60)
}

func fillCrossing(f *excelize.File, a *analysis.Analysis, bold int) error {
	if err := setCellValue(f, SheetCrossing, "A1", "Exigence"); err != nil {
		return err
	}
	if err := setCellValue(f, SheetCrossing, "B1", a.Requirement); err != nil {
		return err
	}

	header := []interface{}{"ID", "Tag", "Niveau", "Justification"}
	headerCell := fmt.Sprintf("A%d", crossingHeaderRow)
	if err := f.SetSheetRow(SheetCrossing, headerCell, &header); err != nil {
		return fmt.Errorf("写入 %s 表头失败: %w", SheetCrossing, err)
	}
	if err := f.SetCellStyle(SheetCrossing, "A1", "A1", bold); err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetCrossing, headerCell, fmt.Sprintf("D%d", crossingHeaderRow), bold); err != nil {
		return err
	}

	row := crossingHeaderRow + 1
	for _, m := range a.Matches {
		if m.Level <= 0 {
			continue
		}
		values := []interface{}{m.Tag.ID, m.Tag.Label, int(m.Level), m.Justification}
		if err := f.SetSheetRow(SheetCrossing, fmt.Sprintf("A%d", row), &values); err != nil {
			return fmt.Errorf("写入 %s 第 %d 行失败: %w", SheetCrossing, row, err)
		}
		row++
	}

	if err := f.SetColWidth(SheetCrossing, "B", "B", 40); err != nil {
		return err
	}
	return f.SetColWidth(SheetCrossing, "D", "D", 80)
}

func setCellValue(f *excelize.File, sheet, cell string, value interface{}) error {
	if err := f.SetCellValue(sheet, cell, value); err != nil {
		return fmt.Errorf("写入 %s!%s 失败: %w", sheet, cell, err)
	}
	return nil
}

// Write 生成报告并序列化到 w
func Write(w io.Writer, a *analysis.Analysis) error {
	f, err := Build(a)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("写入报告失败: %w", err)
	}
	return nil
}

// ContentDisposition 附件响应头：ASCII 回退名 + RFC 5987 filename*
func ContentDisposition(filename string) string {
	if strings.TrimSpace(filename) == "" {
		filename = DefaultFilename
	}
	return fmt.Sprintf("attachment; filename=\"%s\"; filename*=UTF-8''%s", asciiFallback(filename), encodeRFC5987(filename))
}

func asciiFallback(name string) string {
	var b strings.Builder
	for _, r := range name {
		if r < 0x20 || r > 0x7e || r == '"' || r == '\\' {
			b.WriteByte('_')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func encodeRFC5987(s string) string {
	const attrChars = "!#$&+-.^_`|~"
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9') || strings.IndexByte(attrChars, c) >= 0 {
			b.WriteByte(c)
			continue
		}
		fmt.Fprintf(&b, "%%%02X", c)
	}
	return b.String()
}
