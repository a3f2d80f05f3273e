// Package git provides the git and gh CLI operations behind a publish run.
// This file provides the ignore file written into the presentation directory.
package git

import (
	"fmt"
	"os"
	"path/filepath"

	apperrors "github.com/ghwmelite-dotcom/ea-analysis/internal/errors"
)

// IgnoreFileContent is the fixed .gitignore payload for a presentation
// directory. The content never varies between runs, so rewriting it is
// idempotent.
const IgnoreFileContent = `# OS metadata
.DS_Store
Thumbs.db
desktop.ini

# Editor and IDE files
.vscode/
.idea/
*.swp
*.swo
*~

# Logs
*.log
logs/

# Temporary files
*.tmp
*.temp
.cache/

# Local environment files
.env
.env.local
.env.*.local

# Build output
dist/
build/
out/

# Dependency directories
node_modules/
vendor/

# Backups
*.bak
*.backup
*.old
`

// WriteIgnoreFile writes the standard .gitignore into dir, overwriting
// any existing file. Callers treat failure as non-fatal: a missing
// ignore file only risks committing clutter, it does not block publishing.
func WriteIgnoreFile(dir string) error {
	path := filepath.Join(dir, ".gitignore")
	if err := os.WriteFile(path, []byte(IgnoreFileContent), 0o600); err != nil {
		return fmt.Errorf("%w: %w", apperrors.ErrIgnoreWriteFailed, err)
	}
	return nil
}
