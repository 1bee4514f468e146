package asset

import (
	"fmt"
	"os"
	"strings"
)

// LoadShaderSource reads GLSL source from path. An empty path returns fallback.
func LoadShaderSource(path, fallback string) (string, error) {
	if path == "" {
		return fallback, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("load shader: %w", err)
	}

	src := string(b)
	if strings.TrimSpace(src) == "" {
		return "", fmt.Errorf("load shader: %s is empty", path)
	}

	return src, nil
}
