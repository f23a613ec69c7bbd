package exporter

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"secutag/internal/analysis"
	"secutag/internal/model"
	"secutag/internal/scorer"
)

func runAnalysis(t *testing.T, requirement string, tags ...model.TagEntry) *analysis.Analysis {
	t.Helper()

	a, err := analysis.Run(context.Background(), scorer.NewKeywordScorer(), &model.Taxonomy{Tags: tags}, requirement)
	require.NoError(t, err)
	return a
}

func threeTags() []model.TagEntry {
	return []model.TagEntry{
		{ID: 1, Category: "Réseau", Label: "pare-feu", Description: "filtrage"},
		{ID: 2, Category: "Accès", Label: "authentification forte", Description: "MFA, OTP"},
		{ID: 7, Category: "Chiffrement", Label: "chiffrement au repos", Description: "AES"},
	}
}

func TestBuild_References(t *testing.T) {
	t.Parallel()

	a := runAnalysis(t, "Chiffrement des données et authentification forte", threeTags()...)
	f, err := Build(a)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	assert.Equal(t, []string{SheetReferences, SheetCrossing}, f.GetSheetList())

	rows, err := f.GetRows(SheetReferences)
	require.NoError(t, err)
	require.Len(t, rows, 2, "header + exactly one data row")
	assert.Len(t, rows[0], 4+2*3)
	assert.Equal(t, []string{"ID", "Référentiel", "ID Exigence", "Exigence", "Niveau Tag 1", "Justification Tag 1"}, rows[0][:6])
	assert.Equal(t, "Niveau Tag 7", rows[0][8])

	assert.Equal(t, []string{"1", "N/A", "N/A", "Chiffrement des données et authentification forte"}, rows[1][:4])
	assert.Equal(t, "0", rows[1][4])
	assert.Equal(t, scorer.JustificationNone, rows[1][5])
	assert.Equal(t, "4", rows[1][6])
	assert.Equal(t, "3", rows[1][8])
}

func TestBuild_Crossing(t *testing.T) {
	t.Parallel()

	a := runAnalysis(t, "Chiffrement des données et authentification forte", threeTags()...)
	f, err := Build(a)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	rows, err := f.GetRows(SheetCrossing)
	require.NoError(t, err)
	require.Len(t, rows, crossingHeaderRow+2)

	assert.Equal(t, []string{"Exigence", "Chiffrement des données et authentification forte"}, rows[0])
	assert.Empty(t, rows[1])
	assert.Empty(t, rows[2])
	assert.Equal(t, []string{"ID", "Tag", "Niveau", "Justification"}, rows[3])
	assert.Equal(t, []string{"2", "authentification forte", "4", scorer.JustificationDirect}, rows[4])
	assert.Equal(t, []string{"7", "chiffrement au repos", "3", scorer.JustificationStrong}, rows[5])
}

func TestBuild_NoMatchKeepsHeaders(t *testing.T) {
	t.Parallel()

	a := runAnalysis(t, "xyz", threeTags()...)
	f, err := Build(a)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	rows, err := f.GetRows(SheetCrossing)
	require.NoError(t, err)
	assert.Len(t, rows, crossingHeaderRow)

	refs, err := f.GetRows(SheetReferences)
	require.NoError(t, err)
	assert.Len(t, refs, 2)
}

func TestWrite_RoundTrip(t *testing.T) {
	t.Parallel()

	a := runAnalysis(t, "pare-feu", threeTags()...)
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, a))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	v, err := f.GetCellValue(SheetReferences, "E2")
	require.NoError(t, err)
	assert.Equal(t, "4", v)
}

func TestContentDisposition(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		`attachment; filename="Base de references test.xlsx"; filename*=UTF-8''Base%20de%20references%20test.xlsx`,
		ContentDisposition(""))
	assert.Equal(t,
		`attachment; filename="R_f_rences.xlsx"; filename*=UTF-8''R%C3%A9f%C3%A9rences.xlsx`,
		ContentDisposition("Références.xlsx"))
}
