package artifacts

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cs-demo-processor/csdp/internal/configs"
	kerrors "github.com/cs-demo-processor/csdp/internal/errors"
)

// MainConfigName names the main application's config.ini in results.
const MainConfigName = "config.ini"

// Artifact is one file to write.
type Artifact struct {
	// Name is shown to the operator, e.g. "dev settings file".
	Name string
	Path string
	Data []byte

	// CreateParents creates missing parent directories before writing.
	CreateParents bool
}

// Result is the outcome of writing one Artifact.
type Result struct {
	Name string `json:"name"`
	Path string `json:"path"`
	Err  error  `json:"-"`
}

// OK reports whether the artifact was written.
func (r Result) OK() bool {
	return r.Err == nil
}

// Write writes a and reports the outcome. Failures are wrapped with
// ErrArtifactWrite and returned in the Result, never as a panic.
func Write(a Artifact) Result {
	result := Result{Name: a.Name, Path: a.Path}

	if a.CreateParents {
		if err := os.MkdirAll(filepath.Dir(a.Path), 0755); err != nil {
			result.Err = fmt.Errorf("%w: %v", kerrors.ErrArtifactWrite, err)
			return result
		}
	}

	// Written in place: an existing file keeps its mode and symlinks are
	// followed. New files get 0644 minus the umask.
	if err := os.WriteFile(a.Path, a.Data, 0644); err != nil {
		result.Err = fmt.Errorf("%w: %v", kerrors.ErrArtifactWrite, err)
	}
	return result
}

// SettingsTargets returns the developer-mode and production-mode copies of
// the CSDM settings, in write order. Both carry the same bytes.
func SettingsTargets(s *configs.Settings, data []byte) []Artifact {
	return []Artifact{
		{Name: "dev settings file", Path: s.DevSettingsPath(), Data: data, CreateParents: true},
		{Name: "prod settings file", Path: s.ProdSettingsPath(), Data: data, CreateParents: true},
	}
}

// EnvTarget returns the CSDM fork's .env file. The fork checkout is not
// created; writing fails if it is missing.
func EnvTarget(s *configs.Settings, data []byte) Artifact {
	return Artifact{Name: ".env file", Path: s.EnvFilePath(), Data: data}
}

// MainConfigTarget returns the main application's config.ini.
func MainConfigTarget(s *configs.Settings, data []byte) Artifact {
	return Artifact{Name: MainConfigName, Path: s.MainConfigPath(), Data: data}
}
