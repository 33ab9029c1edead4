package extract

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestResolveInputsSingleFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "PPS001.pdf")
	touch(t, path)

	got, err := ResolveInputs(path)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, []string{path}) {
		t.Fatalf("got %v", got)
	}
}

func TestResolveInputsDirectory(t *testing.T) {
	dir := t.TempDir()
	// created out of order on purpose; listing must come back sorted
	for _, name := range []string{"b.pdf", "a.pdf", "c.PDF", "notas.txt", ".oculto.pdf"} {
		touch(t, filepath.Join(dir, name))
	}
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0755); err != nil {
		t.Fatal(err)
	}

	got, err := ResolveInputs(dir)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		filepath.Join(dir, "a.pdf"),
		filepath.Join(dir, "b.pdf"),
		filepath.Join(dir, "c.PDF"),
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestResolveInputsEmptyDirectory(t *testing.T) {
	got, err := ResolveInputs(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Fatalf("got %v, want empty", got)
	}
}

func TestResolveInputsMissingPath(t *testing.T) {
	if _, err := ResolveInputs(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("missing path did not fail")
	}
}
