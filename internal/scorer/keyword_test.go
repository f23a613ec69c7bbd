package scorer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"secutag/internal/model"
)

func TestScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		requirement string
		label       string
		description string
		want        model.Level
		wantText    string
	}{
		{
			name:        "full label is a substring",
			requirement: "Le système doit exiger une authentification forte pour les accès administrateurs",
			label:       "authentification forte",
			description: "MFA, OTP",
			want:        model.LevelDirect,
			wantText:    JustificationDirect,
		},
		{
			name:        "case insensitive label",
			requirement: "AUTHENTIFICATION FORTE obligatoire",
			label:       "Authentification Forte",
			want:        model.LevelDirect,
		},
		{
			name:        "one label word overlaps",
			requirement: "Chiffrement des données",
			label:       "chiffrement au repos",
			description: "AES",
			want:        model.LevelStrong,
			wantText:    JustificationStrong,
		},
		{
			name:        "description word overlaps",
			requirement: "Les journaux doivent être conservés un an",
			label:       "traçabilité",
			description: "journaux d'audit",
			want:        model.LevelIndirect,
			wantText:    JustificationIndirect,
		},
		{
			name:        "no relation",
			requirement: "Sauvegarde quotidienne",
			label:       "pare-feu",
			description: "filtrage réseau",
			want:        model.LevelNone,
			wantText:    JustificationNone,
		},
		{
			name:        "empty requirement",
			requirement: "   ",
			label:       "mfa",
			description: "otp",
			want:        model.LevelNone,
		},
		{
			name:        "empty label and description never match",
			requirement: "Le système doit chiffrer",
			label:       "",
			description: "  ",
			want:        model.LevelNone,
		},
		{
			name:        "whitespace-only label is skipped",
			requirement: "Le système doit chiffrer",
			label:       " \t ",
			description: "chiffrer",
			want:        model.LevelIndirect,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, text := Score(tt.requirement, tt.label, tt.description)
			assert.Equal(t, tt.want, got)
			if tt.wantText != "" {
				assert.Equal(t, tt.wantText, text)
			}
		})
	}
}

func TestScore_DirectTakesPrecedence(t *testing.T) {
	t.Parallel()

	// 每个标签词也都命中，但完整标签优先
	got, _ := Score("contrôle d'accès réseau", "accès réseau", "réseau")
	assert.Equal(t, model.LevelDirect, got)
}

func TestJustificationFor(t *testing.T) {
	t.Parallel()

	for _, lvl := range []model.Level{model.LevelNone, model.LevelIndirect, model.LevelStrong, model.LevelDirect} {
		assert.NotEmpty(t, JustificationFor(lvl))
	}
	assert.Equal(t, JustificationNone, JustificationFor(model.Level(1)))
}

func TestKeywordScorer(t *testing.T) {
	t.Parallel()

	s := NewKeywordScorer()
	lvl, text, err := s.Score(context.Background(), "pare-feu obligatoire", "pare-feu", "")
	require.NoError(t, err)
	assert.Equal(t, model.LevelDirect, lvl)
	assert.Equal(t, JustificationDirect, text)
	assert.Equal(t, KindKeyword, s.Name())
}

func TestNew(t *testing.T) {
	t.Parallel()

	s, err := New(Config{})
	require.NoError(t, err)
	assert.Equal(t, KindKeyword, s.Name())

	_, err = New(Config{Kind: "openai"})
	assert.Error(t, err)

	s, err = New(Config{Kind: " OpenAI ", APIKey: "sk-test"})
	require.NoError(t, err)
	assert.Equal(t, KindOpenAI, s.Name())

	_, err = New(Config{Kind: "embedding"})
	assert.Error(t, err)
}
