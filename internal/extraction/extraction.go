package extraction

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/context"

	"github.com/mholt/archives"
)

// ExtractArchive extracts the contents of a ZIP or RAR archive to a temporary directory.
func ExtractArchive(archivePath string) ([]string, string, error) {
	destDir, err := os.MkdirTemp("", "extract-*")
	if err != nil {
		return nil, "", err
	}

	ctx := context.Background()
	fsys, err := archives.FileSystem(ctx, archivePath, nil)
	if err != nil {
		os.RemoveAll(destDir)
		return nil, "", err
	}

	var files []string
	err = fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		reader, err := fsys.Open(path)
		if err != nil {
			return err
		}
		defer reader.Close()

		destPath := filepath.Join(destDir, path)
		if err := os.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
			return err
		}

		outFile, err := os.Create(destPath)
		if err != nil {
			return err
		}
		defer outFile.Close()

		if _, err := io.Copy(outFile, reader); err != nil {
			return err
		}

		files = append(files, destPath)
		return nil
	})
	if err != nil {
		os.RemoveAll(destDir)
		return nil, "", err
	}

	return files, destDir, nil
}

// ShouldIgnoreFile reports whether an extracted file is archive junk (hidden
// files, macOS resource forks, Thumbs.db) rather than content.
func ShouldIgnoreFile(filename string) bool {
	if strings.HasPrefix(filename, "._") {
		return true
	}
	if strings.HasPrefix(filename, ".") {
		return true
	}
	if filename == ".DS_Store" {
		return true
	}
	if strings.ToLower(filename) == "thumbs.db" {
		return true
	}
	if filename == "" || strings.HasSuffix(filename, "/") {
		return true
	}
	return false
}

// IsMediaFile reports whether an extension belongs to an uploadable image or
// video format.
func IsMediaFile(ext string) bool {
	media := map[string]bool{
		".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true,
		".mp4": true, ".mov": true, ".webm": true,
	}
	return media[strings.ToLower(ext)]
}
