package deploy

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/DiamondLightSource/edm-serial-deploy/internal/logger"
)

// Rewriter substitutes the placeholder tokens in deployed screen files.
type Rewriter struct {
	logger *slog.Logger
}

func NewRewriter() *Rewriter {
	return &Rewriter{logger: logger.Named("token_rewriter")}
}

// RewriteTokens rewrites the named files inside dir in place, replacing
// every occurrence of EDM_LOCATION with edmPath and every occurrence of
// SCRIPTS_LOCATION with scriptsPath. Whole-file literal substitution; a
// file containing neither token is left untouched.
func (r *Rewriter) RewriteTokens(dir string, names []string, edmPath, scriptsPath string) error {
	for _, name := range names {
		path := filepath.Join(dir, name)

		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read deployed screen %s: %w", path, err)
		}

		rewritten := strings.ReplaceAll(string(content), TokenEDMLocation, edmPath)
		rewritten = strings.ReplaceAll(rewritten, TokenScriptsLocation, scriptsPath)
		if rewritten == string(content) {
			continue
		}

		if err := os.WriteFile(path, []byte(rewritten), 0644); err != nil {
			return fmt.Errorf("failed to write rewritten screen %s: %w", path, err)
		}

		r.logger.Debug("screen rewritten", "path", path)
	}

	return nil
}
