package content

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFileSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "templates.yaml")
	data := `templates:
  - id: "2023-DW"
    name: "2023 DW"
    size_class: small
    hazardous: true
  - id: "433"
    name: "Eros"
    size_class: large
    hazardous: false
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("Failed to write template file: %v", err)
	}

	got, err := FileSource{Path: path}.Templates()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Expected 2 templates, got %d", len(got))
	}
	if got[0].ID != "2023-DW" || !got[0].Hazardous || got[0].SizeClass != SizeSmall {
		t.Errorf("Unexpected first template: %+v", got[0])
	}
	if got[1].Name != "Eros" || got[1].Hazardous {
		t.Errorf("Unexpected second template: %+v", got[1])
	}
}

func TestFileSourceErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := FileSource{Path: filepath.Join(dir, "missing.yaml")}.Templates()
	if err == nil {
		t.Error("Expected error for missing file")
	}

	empty := filepath.Join(dir, "empty.yaml")
	if err := os.WriteFile(empty, []byte("templates: []\n"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}
	_, err = FileSource{Path: empty}.Templates()
	if !errors.Is(err, ErrEmptySource) {
		t.Errorf("Expected ErrEmptySource, got %v", err)
	}

	broken := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(broken, []byte("templates: [unterminated\n"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}
	if _, err = (FileSource{Path: broken}).Templates(); err == nil {
		t.Error("Expected error for malformed YAML")
	}
}

func TestParseSizeClass(t *testing.T) {
	tests := []struct {
		input string
		want  SizeClass
		ok    bool
	}{
		{"small", SizeSmall, true},
		{" Medium ", SizeMedium, true},
		{"L", SizeLarge, true},
		{"huge", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseSizeClass(tt.input)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseSizeClass(%q): expected (%q, %v), got (%q, %v)", tt.input, tt.want, tt.ok, got, ok)
		}
	}
}
