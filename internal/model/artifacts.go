// Package model loads the optional trained classifier and exposes it as a
// predictor.OutcomeModel.
//
// Artifacts are JSON exports of a multinomial logistic regression, a
// standard scaler over the numeric feature vector and a one-hot encoder over
// the categorical attributes.
package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/educare/internal/domain"
	"github.com/alexanderramin/educare/internal/predictor"
)

// ErrArtifactLoad is wrapped by every load failure. Callers treat it as
// non-fatal and fall back to the heuristic.
var ErrArtifactLoad = errors.New("model artifacts unavailable")

const (
	ClassifierFile   = "model.json"
	ScalerFile       = "scaler.json"
	EncoderFile      = "encoder.json"
	FeatureNamesFile = "feature_names.json"
	MetadataFile     = "metadata.json"
)

// Components records which trained components were found in the artifact
// directory. It is resolved once when the artifacts are loaded.
type Components struct {
	Classifier bool `json:"classifier"`
	Scaler     bool `json:"scaler"`
	Encoder    bool `json:"encoder"`
}

// Complete reports whether every component needed for inference is present.
func (c Components) Complete() bool {
	return c.Classifier && c.Scaler && c.Encoder
}

func (c Components) missing() []string {
	var out []string
	if !c.Classifier {
		out = append(out, ClassifierFile)
	}
	if !c.Scaler {
		out = append(out, ScalerFile)
	}
	if !c.Encoder {
		out = append(out, EncoderFile)
	}
	return out
}

// Classifier is a multinomial logistic regression: one coefficient row and
// intercept per class.
type Classifier struct {
	Classes   []string    `json:"classes"`
	Coef      [][]float64 `json:"coef"`
	Intercept []float64   `json:"intercept"`
}

// Scaler standardizes the numeric vector as (x - mean) / scale.
type Scaler struct {
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

// Encoder one-hot encodes the listed categorical columns. Unknown values
// encode as all zeros.
type Encoder struct {
	Columns    []string   `json:"columns"`
	Categories [][]string `json:"categories"`
}

// Artifacts is a loaded, validated artifact set. It is read-only after Load
// and safe for concurrent use.
type Artifacts struct {
	Components   Components
	FeatureNames []string
	Metadata     map[string]any

	classifier Classifier
	scaler     Scaler
	encoder    Encoder
	outcomes   []domain.Outcome
}

// Load reads and validates the artifact set in dir.
func Load(dir string) (*Artifacts, error) {
	a := &Artifacts{}

	found, err := readJSON(dir, ClassifierFile, &a.classifier)
	if err != nil {
		return nil, err
	}
	a.Components.Classifier = found
	if a.Components.Scaler, err = readJSON(dir, ScalerFile, &a.scaler); err != nil {
		return nil, err
	}
	if a.Components.Encoder, err = readJSON(dir, EncoderFile, &a.encoder); err != nil {
		return nil, err
	}
	if !a.Components.Complete() {
		return nil, fmt.Errorf("%w: missing %s in %s", ErrArtifactLoad,
			strings.Join(a.Components.missing(), ", "), dir)
	}
	if _, err := readJSON(dir, FeatureNamesFile, &a.FeatureNames); err != nil {
		return nil, err
	}
	if _, err := readJSON(dir, MetadataFile, &a.Metadata); err != nil {
		return nil, err
	}

	if err := a.check(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrArtifactLoad, err)
	}
	return a, nil
}

// readJSON decodes dir/name into v. A missing file is reported as not found
// rather than as an error.
func readJSON(dir, name string, v any) (bool, error) {
	data, err := os.ReadFile(filepath.Join(dir, name))
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: read %s: %w", ErrArtifactLoad, name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("%w: decode %s: %w", ErrArtifactLoad, name, err)
	}
	return true, nil
}

func (a *Artifacts) check() error {
	numeric := len(domain.Features{}.Vector())
	if len(a.scaler.Mean) != numeric || len(a.scaler.Scale) != numeric {
		return fmt.Errorf("scaler expects %d/%d features, vector has %d",
			len(a.scaler.Mean), len(a.scaler.Scale), numeric)
	}

	if len(a.encoder.Columns) != len(a.encoder.Categories) {
		return fmt.Errorf("encoder has %d columns but %d category lists",
			len(a.encoder.Columns), len(a.encoder.Categories))
	}
	known := domain.Categorical{}.Map()
	width := numeric
	for i, col := range a.encoder.Columns {
		if _, ok := known[col]; !ok {
			return fmt.Errorf("encoder column %q is not a known attribute", col)
		}
		width += len(a.encoder.Categories[i])
	}

	c := a.classifier
	if len(c.Classes) == 0 || len(c.Classes) != len(c.Coef) || len(c.Classes) != len(c.Intercept) {
		return fmt.Errorf("classifier has %d classes, %d coefficient rows, %d intercepts",
			len(c.Classes), len(c.Coef), len(c.Intercept))
	}
	for i, row := range c.Coef {
		if len(row) != width {
			return fmt.Errorf("coefficient row %d has %d weights, want %d", i, len(row), width)
		}
	}
	if a.FeatureNames != nil && len(a.FeatureNames) != width {
		return fmt.Errorf("feature_names lists %d columns, want %d", len(a.FeatureNames), width)
	}

	a.outcomes = make([]domain.Outcome, len(c.Classes))
	for i, name := range c.Classes {
		o := domain.Outcome(strings.ToLower(strings.TrimSpace(name)))
		if o.Rank() >= len(domain.Outcomes) {
			return fmt.Errorf("unknown class %q", name)
		}
		a.outcomes[i] = o
	}
	return nil
}

// encode builds the model input: the standardized numeric vector followed by
// the one-hot categorical columns.
func (a *Artifacts) encode(f domain.Features) []float64 {
	vec := f.Vector()
	x := make([]float64, 0, len(a.classifier.Coef[0]))
	for i, nv := range vec {
		scale := a.scaler.Scale[i]
		if scale == 0 {
			scale = 1
		}
		x = append(x, (nv.Value-a.scaler.Mean[i])/scale)
	}

	attrs := f.Categorical.Map()
	for i, col := range a.encoder.Columns {
		value := attrs[col]
		for _, category := range a.encoder.Categories[i] {
			if category == value {
				x = append(x, 1)
			} else {
				x = append(x, 0)
			}
		}
	}
	return x
}

// PredictOutcome implements predictor.OutcomeModel.
func (a *Artifacts) PredictOutcome(f domain.Features) (predictor.ModelPrediction, error) {
	x := a.encode(f)

	logits := make([]float64, len(a.outcomes))
	best := 0
	for k, row := range a.classifier.Coef {
		z := a.classifier.Intercept[k]
		for j, w := range row {
			z += w * x[j]
		}
		if math.IsNaN(z) || math.IsInf(z, 0) {
			return predictor.ModelPrediction{}, fmt.Errorf("non-finite logit for class %s", a.outcomes[k])
		}
		logits[k] = z
		if z > logits[best] {
			best = k
		}
	}

	// softmax, shifted by the max logit
	var total float64
	for k := range logits {
		logits[k] = math.Exp(logits[k] - logits[best])
		total += logits[k]
	}
	probs := make(domain.Probabilities, len(domain.Outcomes))
	for _, o := range domain.Outcomes {
		probs[o] = 0
	}
	for k, o := range a.outcomes {
		probs[o] += logits[k] / total
	}

	return predictor.ModelPrediction{
		Outcome:       a.outcomes[best],
		Confidence:    probs[a.outcomes[best]],
		Probabilities: probs,
	}, nil
}
