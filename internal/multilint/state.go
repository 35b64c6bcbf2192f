package multilint

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// ReportStore persists run results as JSON under a base directory,
// typically .multilint/run next to the config file.
type ReportStore struct {
	baseDir string
}

// NewReportStore creates a store rooted at baseDir.
func NewReportStore(baseDir string) *ReportStore {
	return &ReportStore{baseDir: baseDir}
}

// ToolRecord is the persisted result of one tool invocation.
// Written to <baseDir>/tools/<tool>.json.
type ToolRecord struct {
	Tool    string `json:"tool"`
	Outcome string `json:"outcome"`
}

// LastRun is the persisted summary of the most recent run.
// Written to <baseDir>/last-run.json.
type LastRun struct {
	Overall string   `json:"overall"` // "success" or "failure"
	Tools   []string `json:"tools"`   // ordered list of tools run
	Failed  []string `json:"failed"`  // tools that did not succeed
}

func (s *ReportStore) lastRunPath() string {
	return filepath.Join(s.baseDir, "last-run.json")
}

// WriteReport saves each tool's record plus the run summary.
func (s *ReportStore) WriteReport(r *Report) error {
	var tools, failed []string
	for _, t := range r.Tools() {
		outcome, _ := r.Outcome(t)
		tools = append(tools, string(t))

		record := ToolRecord{Tool: string(t), Outcome: string(outcome)}
		path := filepath.Join(s.baseDir, "tools", string(t)+".json")
		if err := writeJSON(path, record); err != nil {
			return fmt.Errorf("writing record for %s: %w", t, err)
		}
	}

	for _, t := range r.Failed() {
		failed = append(failed, string(t))
	}

	last := LastRun{Overall: "success", Tools: tools, Failed: failed}
	if !r.Success() {
		last.Overall = "failure"
	}

	if err := writeJSON(s.lastRunPath(), last); err != nil {
		return fmt.Errorf("writing last run: %w", err)
	}
	return nil
}

// ReadLastRun loads the last run summary. A missing file is a clean
// state, not an error.
func (s *ReportStore) ReadLastRun() (*LastRun, error) {
	f, err := os.Open(s.lastRunPath())
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening last run file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var last LastRun
	if err := json.NewDecoder(f).Decode(&last); err != nil {
		return nil, fmt.Errorf("decoding last run: %w", err)
	}
	return &last, nil
}

// Reset clears all persisted run state.
func (s *ReportStore) Reset() error {
	return os.RemoveAll(s.baseDir)
}

func writeJSON(path string, v any) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		cerr := f.Close()
		if err == nil {
			err = cerr
		}
	}()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
