// Where: internal/compose/services_test.go
// What: Tests for declared-service enumeration.
// Why: Service lists drive health probes and the log picker.
package compose

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestDeclaredServicesReturnsSortedNames(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "docker-compose.staging.yml")
	content := `services:
  frontend:
    image: alpine
  cache:
    image: alpine
  backend:
    image: alpine
`
	if err := os.WriteFile(file, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	names, err := DeclaredServices(context.Background(), "ucm-staging", []string{file}, nil)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	want := []string{"backend", "cache", "frontend"}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("expected %v, got %v", want, names)
	}
}

func TestDeclaredServicesRequiresFiles(t *testing.T) {
	if _, err := DeclaredServices(context.Background(), "ucm-prod", nil, nil); err == nil {
		t.Fatal("expected error for empty file set")
	}
}
