package templates

import (
	"embed"
	"fmt"
	"os"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/bootstrap-ci/internal/domain/entities"
	"github.com/rios0rios0/bootstrap-ci/internal/domain/repositories"
)

const (
	// DockerfileKey identifies the container build definition.
	DockerfileKey = "dockerfile"
	// WorkflowKey identifies the CI workflow definition.
	WorkflowKey = "workflow"

	DockerfilePath = "Dockerfile"
	WorkflowPath   = ".github/workflows/ci-build-and-push.yml"
)

//go:embed files/Dockerfile files/ci-build-and-push.yml
var embedded embed.FS

// definitions lists the managed files in reconciliation order.
var definitions = []struct { //nolint:gochecknoglobals // immutable table
	file   entities.ManagedFile
	source string
}{
	{
		file: entities.ManagedFile{
			Key:           DockerfileKey,
			Path:          DockerfilePath,
			Label:         "Dockerfile",
			Description:   "Java 17 multi-stage build",
			CommitMessage: "chore: ensure Dockerfile (Java 17)",
		},
		source: "files/Dockerfile",
	},
	{
		file: entities.ManagedFile{
			Key:           WorkflowKey,
			Path:          WorkflowPath,
			Label:         "CI workflow",
			Description:   "build jar with Maven, build/push image to GHCR",
			CommitMessage: "chore: ensure CI workflow (build & push to GHCR)",
		},
		source: "files/ci-build-and-push.yml",
	},
}

// TemplateRepository serves the built-in templates, optionally replaced by local files.
type TemplateRepository struct {
	readFile func(name string) ([]byte, error)
}

var _ repositories.TemplateRepository = (*TemplateRepository)(nil)

// NewTemplateRepository creates a template repository backed by the embedded templates.
func NewTemplateRepository() *TemplateRepository {
	return &TemplateRepository{readFile: os.ReadFile}
}

// ManagedFiles returns the Dockerfile and the CI workflow, in that order.
func (r *TemplateRepository) ManagedFiles(overrides map[string]string) ([]entities.ManagedFile, error) {
	for key := range overrides {
		if !isKnownKey(key) {
			return nil, fmt.Errorf("unknown template %q (expected %q or %q)", key, DockerfileKey, WorkflowKey)
		}
	}

	files := make([]entities.ManagedFile, 0, len(definitions))
	for _, def := range definitions {
		file := def.file

		content, err := embedded.ReadFile(def.source)
		if err != nil {
			return nil, fmt.Errorf("failed to read embedded template %q: %w", def.source, err)
		}

		if overridePath := overrides[file.Key]; overridePath != "" {
			content, err = r.readFile(overridePath)
			if err != nil {
				return nil, fmt.Errorf("failed to read template override %q: %w", overridePath, err)
			}
			logger.Debugf("Using template override %q for %s", overridePath, file.Path)
		}

		file.Template = string(content)
		files = append(files, file)
	}
	return files, nil
}

func isKnownKey(key string) bool {
	for _, def := range definitions {
		if def.file.Key == key {
			return true
		}
	}
	return false
}
