package upload

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Saver writes uploaded photo files under a base directory and hands back the
// public paths the API serves them from.
type Saver struct {
	baseDir   string
	publicURL string
}

func NewSaver(baseDir, publicURL string) *Saver {
	return &Saver{
		baseDir:   baseDir,
		publicURL: strings.TrimRight(publicURL, "/"),
	}
}

// Save stores one uploaded file under a random name, keeping only the
// original extension, and returns its public path.
func (s *Saver) Save(c *gin.Context, file *multipart.FileHeader, subdir string) (string, error) {
	dir := filepath.Join(s.baseDir, subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	name := uuid.NewString() + ext
	if err := c.SaveUploadedFile(file, filepath.Join(dir, name)); err != nil {
		return "", fmt.Errorf("save upload: %w", err)
	}

	return s.publicURL + "/" + subdir + "/" + name, nil
}

// SaveAll stores every file and returns the public paths in order. The first
// failure aborts; already written files are left on disk.
func (s *Saver) SaveAll(c *gin.Context, files []*multipart.FileHeader, subdir string) ([]string, error) {
	paths := make([]string, 0, len(files))
	for _, file := range files {
		path, err := s.Save(c, file, subdir)
		if err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}
