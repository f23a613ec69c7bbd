package parser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"secutag/internal/model"
)

func TestRecognize_CanonicalHeaders(t *testing.T) {
	t.Parallel()

	r := NewSheetRecognizer(nil)
	rec := r.Recognize("Tags", []string{"Catégorie ", "CATEGORIE", "tag", "Description"})

	assert.Empty(t, rec.Missing)
	idx, ok := rec.Index(model.ColumnCategory)
	require.True(t, ok)
	assert.Equal(t, 1, idx, "accented header is not an alias")
	idx, _ = rec.Index(model.ColumnTag)
	assert.Equal(t, 2, idx)
	idx, _ = rec.Index(model.ColumnDescription)
	assert.Equal(t, 3, idx)
	_, ok = rec.Index(model.ColumnID)
	assert.False(t, ok)
}

func TestRecognize_AliasesAndNewlines(t *testing.T) {
	t.Parallel()

	r := NewSheetRecognizer(nil)
	rec := r.Recognize("Feuil1", []string{"ID\nTag", "Domaine", "Intitulé", "Libelle", "Commentaire"})

	assert.Empty(t, rec.Missing)
	assert.Equal(t, map[model.LogicalColumn]int{
		model.ColumnID:          0,
		model.ColumnCategory:    1,
		model.ColumnTag:         3,
		model.ColumnDescription: 4,
	}, rec.Columns)
}

func TestRecognize_FirstHeaderWins(t *testing.T) {
	t.Parallel()

	r := NewSheetRecognizer(nil)
	rec := r.Recognize("", []string{"DETAIL", "DESCRIPTION", "EXIGENCE", "TAG", "CATEGORY"})

	idx, _ := rec.Index(model.ColumnDescription)
	assert.Equal(t, 0, idx)
	idx, _ = rec.Index(model.ColumnTag)
	assert.Equal(t, 2, idx)
}

func TestCheck_MissingCategory(t *testing.T) {
	t.Parallel()

	r := NewSheetRecognizer(nil)
	_, err := r.Check("Feuil1", []string{"Nom", "Libelle", "Detail"})
	require.Error(t, err)

	var mce *model.MissingColumnError
	require.True(t, errors.As(err, &mce))
	assert.Equal(t, []string{"CATEGORIE"}, mce.Missing)
	assert.Contains(t, err.Error(), "CATEGORIE")
}

func TestCheck_AllMissingInOrder(t *testing.T) {
	t.Parallel()

	r := NewSheetRecognizer(nil)
	rec, err := r.Check("", nil)
	require.Error(t, err)
	assert.Equal(t, []string{"CATEGORIE", "TAG", "DESCRIPTION"}, rec.Missing)
}

func TestColumnMapper_CustomAliases(t *testing.T) {
	t.Parallel()

	m := NewColumnMapper(map[model.LogicalColumn][]string{
		model.ColumnCategory:    {"famille"},
		model.ColumnTag:         {"Tag"},
		model.ColumnDescription: {"Texte"},
	})
	got := m.Map([]string{"FAMILLE", "TAG", "TEXTE", "ID"})
	assert.Len(t, got, 3)
	assert.Empty(t, Missing(got))
}

func TestColumnMapper_ExactAliasOnly(t *testing.T) {
	t.Parallel()

	m := NewColumnMapper(nil)
	got := m.Map([]string{"CATEGORIES", "TAGS", "DESCRIPTIF", "DESC"})
	_, ok := got[model.ColumnCategory]
	assert.False(t, ok)
	_, ok = got[model.ColumnTag]
	assert.False(t, ok)
	assert.Equal(t, 3, got[model.ColumnDescription])
}
