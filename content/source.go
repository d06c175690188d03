package content

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrEmptySource is returned when a source yields no templates
var ErrEmptySource = errors.New("template source is empty")

// Source provides threat templates
type Source interface {
	Templates() ([]Template, error)
}

// StaticSource serves an in-memory template list
type StaticSource []Template

func (s StaticSource) Templates() ([]Template, error) {
	if len(s) == 0 {
		return nil, ErrEmptySource
	}
	out := make([]Template, len(s))
	copy(out, s)
	return out, nil
}

// templateFile is the on-disk layout of a template file
type templateFile struct {
	Templates []Template `yaml:"templates"`
}

// FileSource reads templates from a YAML file
type FileSource struct {
	Path string
}

func (s FileSource) Templates() ([]Template, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template file %s: %w", s.Path, err)
	}

	var file templateFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal template file %s: %w", s.Path, err)
	}

	if len(file.Templates) == 0 {
		return nil, fmt.Errorf("template file %s: %w", s.Path, ErrEmptySource)
	}
	return file.Templates, nil
}
