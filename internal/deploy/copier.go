package deploy

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/DiamondLightSource/edm-serial-deploy/internal/logger"
)

// Copier copies screen definition files into a deployment subdirectory.
type Copier struct {
	logger *slog.Logger
}

func NewCopier() *Copier {
	return &Copier{logger: logger.Named("screen_copier")}
}

// CopyScreens copies every *.edl file from sourceDir into targetDir,
// non-recursively, preserving names and contents. It returns the copied
// file names in lexical order. A missing source directory indicates a
// broken repository checkout and is an error; an empty one is not.
func (c *Copier) CopyScreens(sourceDir, targetDir string) ([]string, error) {
	names, err := ListScreens(sourceDir)
	if err != nil {
		return nil, err
	}

	copied := make([]string, 0, len(names))
	for _, name := range names {
		src := filepath.Join(sourceDir, name)
		content, err := os.ReadFile(src)
		if err != nil {
			return nil, fmt.Errorf("failed to read screen %s: %w", src, err)
		}

		dst := filepath.Join(targetDir, name)
		if err := os.WriteFile(dst, content, 0644); err != nil {
			return nil, fmt.Errorf("failed to write screen %s: %w", dst, err)
		}

		copied = append(copied, name)
	}

	c.logger.Debug("screens copied", "source", sourceDir, "target", targetDir, "count", len(copied))

	return copied, nil
}

// ListScreens returns the names of the *.edl files directly inside dir, in
// lexical order. Subdirectories and other file types are ignored.
func ListScreens(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("screen directory %s does not exist", dir)
		}
		return nil, fmt.Errorf("failed to list screen directory %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ScreenSuffix) {
			continue
		}
		names = append(names, entry.Name())
	}

	return names, nil
}
