package translator

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"

	"github.com/rshade/pricecook/internal/pricing"
)

// outputFileMode matches what a plain create would leave behind; CreateTemp
// starts at 0600.
const outputFileMode = 0o644

func encodeDocument(doc *pricing.Document, indent bool) ([]byte, error) {
	if indent {
		return json.MarshalIndent(doc, "", "  ")
	}
	return json.Marshal(doc)
}

// tempPattern names the staging file after the output, e.g.
// ".aws-costs.json-123.tmp", so a leftover is easy to trace back.
func tempPattern(outFile string) string {
	return "." + filepath.Base(outFile) + "-*.tmp"
}

// writeFileAtomic stages data next to outFile and renames it into place.
// Readers of outFile see either the previous document or the complete new one.
func writeFileAtomic(data []byte, outFile string) (err error) {
	staged, err := os.CreateTemp(filepath.Dir(outFile), tempPattern(outFile))
	if err != nil {
		return fmt.Errorf("staging %s: %w", outFile, err)
	}
	stagedPath := staged.Name()
	closed := false

	defer func() {
		if err == nil {
			return
		}
		if !closed {
			_ = staged.Close()
		}
		_ = os.Remove(stagedPath)
	}()

	if _, err = staged.Write(data); err != nil {
		return fmt.Errorf("writing %s: %w", stagedPath, err)
	}
	if err = staged.Chmod(outputFileMode); err != nil {
		return fmt.Errorf("setting mode on %s: %w", stagedPath, err)
	}
	closed = true
	if err = staged.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", stagedPath, err)
	}
	if err = os.Rename(stagedPath, outFile); err != nil {
		return fmt.Errorf("replacing %s: %w", outFile, err)
	}
	return nil
}
