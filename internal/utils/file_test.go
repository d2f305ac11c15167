package utils

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func touch(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestIsImageFile(t *testing.T) {
	tests := []struct {
		filename string
		want     bool
	}{
		{"photo.jpg", true},
		{"photo.JPEG", true},
		{"photo.png", true},
		{"photo.webp", true},
		{"photo.bmp", true},
		{"photo.gif", false},
		{"notes.txt", false},
		{"noext", false},
	}

	for _, tt := range tests {
		if got := IsImageFile(tt.filename); got != tt.want {
			t.Errorf("IsImageFile(%q) = %v, want %v", tt.filename, got, tt.want)
		}
	}
}

func TestListImagesSortedAndFiltered(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "b.png")
	touch(t, dir, "a.jpg")
	touch(t, dir, "notes.txt")
	if err := os.Mkdir(filepath.Join(dir, "sub.png"), 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := ListImages(dir)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"a.jpg", "b.png"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ListImages = %v, want %v", got, want)
	}
}

func TestFindOriginalImage(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "carp.jpg")
	touch(t, dir, "carp.png")
	touch(t, dir, "pike.webp")

	// .png comes before .jpg in the preference order
	if got := FindOriginalImage(dir, "carp"); got != "carp.png" {
		t.Errorf("FindOriginalImage(carp) = %q, want carp.png", got)
	}
	if got := FindOriginalImage(dir, "pike"); got != "pike.webp" {
		t.Errorf("FindOriginalImage(pike) = %q, want pike.webp", got)
	}
	if got := FindOriginalImage(dir, "missing"); got != "" {
		t.Errorf("FindOriginalImage(missing) = %q, want empty", got)
	}
}

func TestBaseName(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/tmp/images/carp.png", "carp"},
		{"carp.json", "carp"},
		{"carp", "carp"},
		{"archive.tar.gz", "archive.tar"},
	}

	for _, tt := range tests {
		if got := BaseName(tt.path); got != tt.want {
			t.Errorf("BaseName(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
