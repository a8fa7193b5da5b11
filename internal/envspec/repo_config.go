// Where: internal/envspec/repo_config.go
// What: Optional per-repository overrides for the environment table.
// Why: Let a repo pin branches, compose files, or port blocks via ucm.yml.
package envspec

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	yamlv3 "gopkg.in/yaml.v3"
	sigsyaml "sigs.k8s.io/yaml"
)

// RepoConfigName is the override file looked up at the repository root.
const RepoConfigName = "ucm.yml"

// RepoConfig mirrors ucm.yml. Only the listed fields may be overridden;
// the environment set itself is fixed.
type RepoConfig struct {
	Version      int                            `yaml:"version"`
	Environments map[string]EnvironmentOverride `yaml:"environments,omitempty"`
}

// EnvironmentOverride carries optional per-environment settings.
// Branch is a pointer so an explicit empty string can disable checkout.
type EnvironmentOverride struct {
	Branch      *string `yaml:"branch,omitempty"`
	ComposeFile string  `yaml:"compose_file,omitempty"`
	BasePort    int     `yaml:"base_port,omitempty"`
}

const repoConfigSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "properties": {
    "version": {"type": "integer", "minimum": 1},
    "environments": {
      "type": "object",
      "properties": {
        "prod": {"$ref": "#/$defs/override"},
        "staging": {"$ref": "#/$defs/override"},
        "local": {"$ref": "#/$defs/override"}
      },
      "additionalProperties": false
    }
  },
  "additionalProperties": false,
  "$defs": {
    "override": {
      "type": "object",
      "properties": {
        "branch": {"type": "string"},
        "compose_file": {"type": "string", "minLength": 1},
        "base_port": {"type": "integer", "minimum": 1, "maximum": 65535}
      },
      "additionalProperties": false
    }
  }
}`

var (
	schemaOnce     sync.Once
	schemaErr      error
	compiledSchema *jsonschema.Schema
)

func loadSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiledSchema, schemaErr = jsonschema.CompileString("ucm.schema.json", repoConfigSchema)
	})
	return compiledSchema, schemaErr
}

// LoadRepoConfig reads and validates ucm.yml under repoRoot. A missing
// file is not an error; it yields an empty config.
func LoadRepoConfig(repoRoot string) (RepoConfig, error) {
	path := filepath.Join(repoRoot, RepoConfigName)
	payload, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return RepoConfig{}, nil
		}
		return RepoConfig{}, err
	}

	if err := validateRepoConfig(payload); err != nil {
		return RepoConfig{}, fmt.Errorf("%s: %w", RepoConfigName, err)
	}

	var cfg RepoConfig
	if err := yamlv3.Unmarshal(payload, &cfg); err != nil {
		return RepoConfig{}, fmt.Errorf("%s: %w", RepoConfigName, err)
	}
	return cfg, nil
}

// validateRepoConfig checks the raw YAML payload against the embedded
// JSON schema before decoding into typed structs.
func validateRepoConfig(payload []byte) error {
	sch, err := loadSchema()
	if err != nil {
		return err
	}

	jsonData, err := sigsyaml.YAMLToJSON(payload)
	if err != nil {
		return fmt.Errorf("convert yaml to json: %w", err)
	}

	var document any
	if err := json.Unmarshal(jsonData, &document); err != nil {
		return fmt.Errorf("unmarshal json: %w", err)
	}

	return sch.Validate(document)
}

// ResolveFor returns the environment record for name with any ucm.yml
// overrides from repoRoot applied.
func ResolveFor(repoRoot, name string) (Environment, error) {
	env, err := Resolve(name)
	if err != nil {
		return Environment{}, err
	}

	cfg, err := LoadRepoConfig(repoRoot)
	if err != nil {
		return Environment{}, err
	}
	return applyOverride(env, cfg), nil
}

// AllFor returns the full environment table with repo overrides applied.
func AllFor(repoRoot string) ([]Environment, error) {
	cfg, err := LoadRepoConfig(repoRoot)
	if err != nil {
		return nil, err
	}

	envs := Defaults()
	for i, env := range envs {
		envs[i] = applyOverride(env, cfg)
	}
	return envs, nil
}

func applyOverride(env Environment, cfg RepoConfig) Environment {
	override, ok := cfg.Environments[env.Name]
	if !ok {
		return env
	}
	if override.Branch != nil {
		env.Branch = *override.Branch
	}
	if override.ComposeFile != "" {
		env.ComposeFile = override.ComposeFile
	}
	if override.BasePort != 0 {
		env.BasePort = override.BasePort
	}
	return env
}
