package model

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/educare/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const numericWidth = 20

// writeArtifacts writes a small model whose decision depends only on the
// score column (index 6) and the gender one-hot columns.
func writeArtifacts(t *testing.T, dir string) {
	t.Helper()

	width := numericWidth + 2
	row := func(score, intercept float64) ([]float64, float64) {
		r := make([]float64, width)
		r[6] = score
		return r, intercept
	}
	dRow, dInt := row(0.1, -7)
	pRow, pInt := row(0, 0)
	fRow, fInt := row(-0.1, 4)
	wRow, wInt := row(0, -10)

	mean := make([]float64, numericWidth)
	scale := make([]float64, numericWidth)
	for i := range scale {
		scale[i] = 1
	}

	writeFile(t, dir, ClassifierFile, Classifier{
		Classes:   []string{"Distinction", "Pass", "Fail", "Withdrawn"},
		Coef:      [][]float64{dRow, pRow, fRow, wRow},
		Intercept: []float64{dInt, pInt, fInt, wInt},
	})
	writeFile(t, dir, ScalerFile, Scaler{Mean: mean, Scale: scale})
	writeFile(t, dir, EncoderFile, Encoder{
		Columns:    []string{"gender"},
		Categories: [][]string{{"F", "M"}},
	})
	writeFile(t, dir, MetadataFile, map[string]any{"model_type": "LogisticRegression"})
}

func writeFile(t *testing.T, dir, name string, v any) {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), data, 0o644))
}

func TestLoad_Complete(t *testing.T) {
	dir := t.TempDir()
	writeArtifacts(t, dir)

	a, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, Components{Classifier: true, Scaler: true, Encoder: true}, a.Components)
	assert.Equal(t, "LogisticRegression", a.Metadata["model_type"])
	assert.Nil(t, a.FeatureNames)
}

func TestLoad_MissingComponent(t *testing.T) {
	dir := t.TempDir()
	writeArtifacts(t, dir)
	require.NoError(t, os.Remove(filepath.Join(dir, EncoderFile)))

	_, err := Load(dir)

	require.ErrorIs(t, err, ErrArtifactLoad)
	assert.Contains(t, err.Error(), EncoderFile)
}

func TestLoad_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	writeArtifacts(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ScalerFile), []byte("{not json"), 0o644))

	_, err := Load(dir)

	require.ErrorIs(t, err, ErrArtifactLoad)
	assert.Contains(t, err.Error(), ScalerFile)
}

func TestLoad_ShapeMismatch(t *testing.T) {
	dir := t.TempDir()
	writeArtifacts(t, dir)
	writeFile(t, dir, FeatureNamesFile, []string{"score"})

	_, err := Load(dir)

	require.ErrorIs(t, err, ErrArtifactLoad)
	assert.Contains(t, err.Error(), "feature_names")
}

func TestLoad_UnknownClass(t *testing.T) {
	dir := t.TempDir()
	writeArtifacts(t, dir)
	writeFile(t, dir, ClassifierFile, Classifier{
		Classes:   []string{"Graduated"},
		Coef:      [][]float64{make([]float64, numericWidth+2)},
		Intercept: []float64{0},
	})

	_, err := Load(dir)

	require.ErrorIs(t, err, ErrArtifactLoad)
	assert.Contains(t, err.Error(), "Graduated")
}

func TestPredictOutcome(t *testing.T) {
	dir := t.TempDir()
	writeArtifacts(t, dir)
	a, err := Load(dir)
	require.NoError(t, err)

	tests := []struct {
		score float64
		want  domain.Outcome
	}{
		{85, domain.OutcomeDistinction},
		{50, domain.OutcomePass},
		{10, domain.OutcomeFail},
	}
	for _, tt := range tests {
		f := domain.Features{AvgScore: tt.score, Categorical: domain.Categorical{Gender: "M"}}

		pred, err := a.PredictOutcome(f)
		require.NoError(t, err)

		assert.Equal(t, tt.want, pred.Outcome, "score=%v", tt.score)
		require.Len(t, pred.Probabilities, 4)
		var total float64
		for _, p := range pred.Probabilities {
			total += p
		}
		assert.InDelta(t, 1.0, total, 1e-9)
		assert.Equal(t, pred.Probabilities[pred.Outcome], pred.Confidence)
	}
}

func TestLoader_LoadsOnce(t *testing.T) {
	dir := t.TempDir()
	writeArtifacts(t, dir)
	loader := NewLoader(dir)

	first, notice := loader.Model()
	require.NotNil(t, first)
	assert.Empty(t, notice)

	require.NoError(t, os.RemoveAll(dir))
	second, notice := loader.Model()

	assert.Same(t, first, second)
	assert.Empty(t, notice)
}

func TestLoader_MissingDirectoryFallsBack(t *testing.T) {
	loader := NewLoader(filepath.Join(t.TempDir(), "absent"))

	m, notice := loader.Model()

	assert.Nil(t, m)
	assert.Contains(t, notice, "using heuristic predictions")
}

func TestLoader_Unconfigured(t *testing.T) {
	m, notice := NewLoader("").Model()

	assert.Nil(t, m)
	assert.Empty(t, notice)
}
