package text

import (
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/hubastard/winkel/engine/assets"
	"github.com/hubastard/winkel/engine/gfx"
)

// Built-in font names, served from memory instead of the font directory.
const (
	DefaultFont = "go-regular"
	BoldFont    = "go-bold"
	MonoFont    = "go-mono"
)

var builtin = map[string][]byte{
	DefaultFont: goregular.TTF,
	BoldFont:    gobold.TTF,
	MonoFont:    gomono.TTF,
}

type cacheKey struct {
	path string
	size int
}

type cacheEntry struct {
	atlas *FontAtlas
	err   error
}

// Cache loads each (font, pixel size) pair once. Failed loads are remembered
// so a missing font is reported once, not every frame.
type Cache struct {
	dev     gfx.Device
	dir     string
	entries map[cacheKey]cacheEntry
}

// NewCache resolves relative font names against dir.
func NewCache(dev gfx.Device, dir string) *Cache {
	return &Cache{dev: dev, dir: dir, entries: make(map[cacheKey]cacheEntry)}
}

// Font returns the atlas for name at size pixels. An empty name selects
// DefaultFont. The bool reports whether this call did the loading.
func (c *Cache) Font(name string, size int) (*FontAtlas, bool, error) {
	if name == "" {
		name = DefaultFont
	}
	data, isBuiltin := builtin[name]
	key := cacheKey{path: name, size: size}
	if !isBuiltin {
		key.path = assets.FontPath(c.dir, name)
	}
	if e, ok := c.entries[key]; ok {
		return e.atlas, false, e.err
	}
	var e cacheEntry
	var err error
	if !isBuiltin {
		data, err = assets.LoadFont(c.dir, name)
	}
	if err == nil {
		e.atlas, e.err = LoadAtlas(c.dev, data, float32(size))
	} else {
		e.err = err
	}
	c.entries[key] = e
	return e.atlas, true, e.err
}

func (c *Cache) Len() int { return len(c.entries) }

// Close forgets every atlas. Textures are owned by the device.
func (c *Cache) Close() {
	clear(c.entries)
}
