package cli

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode"

	"github.com/alexanderramin/educare/internal/cli/formatter"
	"github.com/alexanderramin/educare/internal/contract"
	"github.com/alexanderramin/educare/internal/domain"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// predictOptions are shared by every predict subcommand.
type predictOptions struct {
	json   bool
	noSave bool
}

func newPredictCmd(app *App) *cobra.Command {
	opts := &predictOptions{}

	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Predict an outcome and generate feedback",
	}
	cmd.PersistentFlags().BoolVar(&opts.json, "json", false, "Print the result as JSON")
	cmd.PersistentFlags().BoolVar(&opts.noSave, "no-save", false, "Do not store the prediction in history")

	cmd.AddCommand(
		newPredictAcademicCmd(app, opts),
		newPredictLearnerCmd(app, opts),
		newPredictFileCmd(app, opts),
	)

	return cmd
}

func newPredictAcademicCmd(app *App, opts *predictOptions) *cobra.Command {
	rec := domain.DefaultAcademicRecord()
	var interactive bool

	cmd := &cobra.Command{
		Use:   "academic",
		Short: "Predict from an LMS-style academic record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if interactive {
				if err := runForm(app, academicForm(rec)); err != nil {
					return err
				}
			}
			return runPredict(cmd, app, opts, contract.NewAcademicRequest(rec))
		},
	}
	bindAcademicFlags(cmd.Flags(), rec)
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Fill in the record with a form")

	return cmd
}

func newPredictLearnerCmd(app *App, opts *predictOptions) *cobra.Command {
	rec := domain.DefaultLearnerRecord()
	var interactive bool

	cmd := &cobra.Command{
		Use:   "learner",
		Short: "Predict from a language-learner profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if interactive {
				if err := runForm(app, learnerForm(rec)); err != nil {
					return err
				}
			}
			return runPredict(cmd, app, opts, contract.NewLearnerRequest(rec))
		},
	}
	bindLearnerFlags(cmd.Flags(), rec)
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Fill in the profile with a form")

	return cmd
}

func newPredictFileCmd(app *App, opts *predictOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "file PATH",
		Short: "Predict every record in a YAML or JSON file (- reads stdin)",
		Long: `Each YAML document in the file is one record. JSON input may instead
hold a sequence of objects or arrays of objects. A "schema" key selects
academic or learner; the remaining keys use the record's field names.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var r io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("opening records: %w", err)
				}
				defer f.Close()
				r = f
			}

			records, err := decodeRecords(r)
			if err != nil {
				return err
			}
			for _, rec := range records {
				req := contract.PredictRequest{Save: true}
				switch v := rec.(type) {
				case *domain.AcademicRecord:
					req.Academic = v
				case *domain.LearnerRecord:
					req.Learner = v
				}
				if err := runPredict(cmd, app, opts, req); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// decodeRecords reads either a stream of YAML documents or, when the input
// starts with '{' or '[', a stream of JSON objects and arrays of objects.
func decodeRecords(r io.Reader) ([]domain.RawInput, error) {
	br := bufio.NewReader(r)
	first, err := firstByte(br)
	if err != nil {
		return nil, err
	}

	var out []domain.RawInput
	if first == '{' || first == '[' {
		out, err = decodeJSONRecords(br)
	} else {
		out, err = decodeYAMLRecords(br)
	}
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no records found")
	}
	return out, nil
}

// firstByte peeks the first non-space byte. Zero means empty input.
func firstByte(br *bufio.Reader) (byte, error) {
	for n := 1; ; n++ {
		buf, err := br.Peek(n)
		if len(buf) == n {
			if c := buf[n-1]; !unicode.IsSpace(rune(c)) {
				return c, nil
			}
			continue
		}
		if errors.Is(err, io.EOF) {
			return 0, nil
		}
		if errors.Is(err, bufio.ErrBufferFull) {
			return 0, fmt.Errorf("reading records: leading whitespace too long")
		}
		return 0, fmt.Errorf("reading records: %w", err)
	}
}

func decodeJSONRecords(r io.Reader) ([]domain.RawInput, error) {
	dec := json.NewDecoder(r)
	var out []domain.RawInput
	add := func(raw json.RawMessage) error {
		var header struct {
			Schema domain.Schema `json:"schema"`
		}
		if err := json.Unmarshal(raw, &header); err != nil {
			return err
		}
		rec, err := newRecord(header.Schema)
		if err != nil {
			return err
		}
		if err := json.Unmarshal(raw, rec); err != nil {
			return err
		}
		out = append(out, rec)
		return nil
	}

	for dec.More() {
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("record %d: %w", len(out)+1, err)
		}
		if bytes.HasPrefix(bytes.TrimSpace(raw), []byte("[")) {
			var items []json.RawMessage
			if err := json.Unmarshal(raw, &items); err != nil {
				return nil, fmt.Errorf("record %d: %w", len(out)+1, err)
			}
			for _, item := range items {
				if err := add(item); err != nil {
					return nil, fmt.Errorf("record %d: %w", len(out)+1, err)
				}
			}
			continue
		}
		if err := add(raw); err != nil {
			return nil, fmt.Errorf("record %d: %w", len(out)+1, err)
		}
	}
	return out, nil
}

func decodeYAMLRecords(r io.Reader) ([]domain.RawInput, error) {
	dec := yaml.NewDecoder(r)
	var out []domain.RawInput
	for i := 1; ; i++ {
		var node yaml.Node
		err := dec.Decode(&node)
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}

		var header struct {
			Schema domain.Schema `yaml:"schema"`
		}
		if err := node.Decode(&header); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		rec, err := newRecord(header.Schema)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		if err := node.Decode(rec); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		out = append(out, rec)
	}
}

func newRecord(schema domain.Schema) (domain.RawInput, error) {
	switch schema {
	case domain.SchemaAcademic:
		return &domain.AcademicRecord{}, nil
	case domain.SchemaLearner:
		return &domain.LearnerRecord{}, nil
	}
	return nil, fmt.Errorf("schema must be academic or learner, got %q", schema)
}

func runForm(app *App, f *recordForm) error {
	if !app.interactive() {
		return fmt.Errorf("--interactive requires a terminal")
	}
	if err := f.form.Run(); err != nil {
		return err
	}
	return f.commit()
}

func runPredict(cmd *cobra.Command, app *App, opts *predictOptions, req contract.PredictRequest) error {
	req.Save = req.Save && !opts.noSave
	resp, err := app.Predictions.Predict(cmd.Context(), req)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.json {
		return writeJSON(out, resp)
	}
	fmt.Fprintln(out, formatter.FormatPrediction(resp))
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
