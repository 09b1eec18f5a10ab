package workflow

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mugiliam/common/apperrors"
	"sigs.k8s.io/yaml"
)

// Filename derives the persisted filename for a workflow from its id.
func Filename(w *Workflow, outputDir string) string {
	return filepath.Join(outputDir, fmt.Sprintf("%s.yaml", w.ID))
}

// Save serializes a workflow to one YAML document at the given path,
// creating parent directories on demand.
func Save(w *Workflow, outputPath string) apperrors.Error {
	data, err := yaml.Marshal(w)
	if err != nil {
		return ErrInvalidWorkflow.Err(err)
	}
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return ErrWorkflowError.Err(err)
	}
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return ErrWorkflowError.Err(err)
	}
	return nil
}
