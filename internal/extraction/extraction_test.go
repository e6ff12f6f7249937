package extraction

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"
)

func TestExtractArchive_Zip(t *testing.T) {
	archivePath := filepath.Join(t.TempDir(), "shoot.zip")
	f, err := os.Create(archivePath)
	if err != nil {
		t.Fatalf("could not create archive: %v", err)
	}
	w := zip.NewWriter(f)
	for name, content := range map[string]string{
		"one.jpg":        "aaa",
		"nested/two.mp4": "bbb",
	} {
		entry, err := w.Create(name)
		if err != nil {
			t.Fatalf("could not add entry: %v", err)
		}
		if _, err := entry.Write([]byte(content)); err != nil {
			t.Fatalf("could not write entry: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("could not close archive: %v", err)
	}
	f.Close()

	files, destDir, err := ExtractArchive(archivePath)
	if err != nil {
		t.Fatalf("ExtractArchive failed: %v", err)
	}
	defer os.RemoveAll(destDir)

	if len(files) != 2 {
		t.Fatalf("extracted %d files, want 2", len(files))
	}
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			t.Errorf("could not read %s: %v", path, err)
			continue
		}
		if len(data) != 3 {
			t.Errorf("%s has %d bytes, want 3", path, len(data))
		}
	}
}

func TestShouldIgnoreFile(t *testing.T) {
	cases := []struct {
		filename string
		want     bool
	}{
		{"photo.jpg", false},
		{"._photo.jpg", true},
		{".DS_Store", true},
		{".hidden", true},
		{"Thumbs.db", true},
		{"thumbs.db", true},
		{"folder/", true},
		{"clip.mp4", false},
	}
	for _, tc := range cases {
		if got := ShouldIgnoreFile(tc.filename); got != tc.want {
			t.Errorf("ShouldIgnoreFile(%q) = %v, want %v", tc.filename, got, tc.want)
		}
	}
}

func TestIsMediaFile(t *testing.T) {
	cases := []struct {
		ext  string
		want bool
	}{
		{".jpg", true},
		{".JPG", true},
		{".jpeg", true},
		{".png", true},
		{".gif", true},
		{".webp", true},
		{".mp4", true},
		{".mov", true},
		{".webm", true},
		{".txt", false},
		{".pdf", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := IsMediaFile(tc.ext); got != tc.want {
			t.Errorf("IsMediaFile(%q) = %v, want %v", tc.ext, got, tc.want)
		}
	}
}
