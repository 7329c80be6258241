package assets

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
)

//go:embed shaders/*.vert shaders/*.frag
var shaders embed.FS

// LoadShader reads an embedded GLSL file into a null-terminated string for OpenGL.
func LoadShader(name string) (string, error) {
	b, err := shaders.ReadFile("shaders/" + name)
	if err != nil {
		return "", fmt.Errorf("load shader %q: %w", name, err)
	}
	// Ensure null termination for gl.Str
	if len(b) == 0 || b[len(b)-1] != 0 {
		b = append(b, 0)
	}
	return string(b), nil
}

// FontPath resolves a font reference: absolute paths and paths that exist
// relative to the working directory are used as is, anything else is looked
// up in dir.
func FontPath(dir, name string) string {
	if filepath.IsAbs(name) || dir == "" {
		return name
	}
	if _, err := os.Stat(name); err == nil {
		return name
	}
	return filepath.Join(dir, name)
}

// LoadFont reads a TrueType/OpenType font file.
func LoadFont(dir, name string) ([]byte, error) {
	path := FontPath(dir, name)
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font %q: %w", path, err)
	}
	return b, nil
}
