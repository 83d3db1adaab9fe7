package hud

import (
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoding
	_ "image/jpeg" // register JPEG decoding
	_ "image/png"  // register PNG decoding
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	_ "golang.org/x/image/bmp"  // register BMP decoding
	_ "golang.org/x/image/tiff" // register TIFF decoding
	_ "golang.org/x/image/webp" // register WebP decoding
)

// CanvasID names a canvas. Texture registry entries are namespaced by it.
type CanvasID string

// Texture is a decoded image with its pixel dimensions. Image may be nil for
// decoders that only probe sizes.
type Texture struct {
	Name          string
	Width, Height int
	Image         *ebiten.Image
}

// TextureDecoder turns a file into a Texture. Decoding is synchronous.
type TextureDecoder interface {
	DecodeTexture(fsys fs.FS, name string) (*Texture, error)
}

// ImageDecoder decodes PNG, JPEG, GIF, BMP, TIFF and WebP files into
// Ebitengine images.
type ImageDecoder struct{}

// DecodeTexture implements TextureDecoder.
func (ImageDecoder) DecodeTexture(fsys fs.FS, name string) (*Texture, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	b := img.Bounds()
	return &Texture{
		Width:  b.Dx(),
		Height: b.Dy(),
		Image:  ebiten.NewImageFromImage(img),
	}, nil
}

var textureExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".bmp":  true,
	".tif":  true,
	".tiff": true,
	".webp": true,
}

type textureKey struct {
	canvas CanvasID
	name   string
}

// Textures is the texture registry shared by canvases. Entries are keyed by
// canvas and by the file's path relative to the scanned root, without
// extension ("buttons/close"). Not safe for concurrent use.
type Textures struct {
	decoder TextureDecoder
	entries map[textureKey]*Texture
	missed  map[textureKey]struct{}
}

// NewTextures creates an empty registry. A nil decoder uses ImageDecoder.
func NewTextures(decoder TextureDecoder) *Textures {
	if decoder == nil {
		decoder = ImageDecoder{}
	}
	return &Textures{
		decoder: decoder,
		entries: make(map[textureKey]*Texture),
		missed:  make(map[textureKey]struct{}),
	}
}

// Load walks root recursively and registers every image file for canvas.
// Entries that fail to decode are logged and skipped; an unreadable root is
// logged and returned. Textures loaded before a failure stay registered.
// Returns the number of textures added.
func (t *Textures) Load(canvas CanvasID, fsys fs.FS, root string) (int, error) {
	root = path.Clean(root)
	loaded := 0
	err := fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.Warn("hud: texture scan failed", "canvas", canvas, "path", p, "err", err)
			if p == root {
				return err
			}
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() || !textureExts[strings.ToLower(path.Ext(p))] {
			return nil
		}
		tex, err := t.decoder.DecodeTexture(fsys, p)
		if err != nil || tex == nil {
			logger.Warn("hud: texture decode failed", "canvas", canvas, "path", p, "err", err)
			return nil
		}
		key := textureKey{canvas, textureName(root, p)}
		tex.Name = key.name
		t.entries[key] = tex
		delete(t.missed, key)
		loaded++
		return nil
	})
	logger.Debug("hud: textures loaded", "canvas", canvas, "root", root, "count", loaded)
	if err != nil {
		return loaded, fmt.Errorf("hud: load textures for %q: %w", canvas, err)
	}
	return loaded, nil
}

// Reload drops the canvas' textures and miss history, then loads root again.
func (t *Textures) Reload(canvas CanvasID, fsys fs.FS, root string) (int, error) {
	t.Unload(canvas)
	return t.Load(canvas, fsys, root)
}

// Unload drops every texture and miss record of canvas.
func (t *Textures) Unload(canvas CanvasID) {
	for k, tex := range t.entries {
		if k.canvas == canvas {
			if tex.Image != nil {
				tex.Image.Deallocate()
			}
			delete(t.entries, k)
		}
	}
	for k := range t.missed {
		if k.canvas == canvas {
			delete(t.missed, k)
		}
	}
}

// Put registers a texture built at runtime.
func (t *Textures) Put(canvas CanvasID, name string, tex *Texture) {
	key := textureKey{canvas, name}
	tex.Name = name
	t.entries[key] = tex
	delete(t.missed, key)
}

// Get returns the texture registered as name for canvas, or nil. A miss is
// logged once per (canvas, name) pair.
func (t *Textures) Get(canvas CanvasID, name string) *Texture {
	key := textureKey{canvas, name}
	if tex, ok := t.entries[key]; ok {
		return tex
	}
	if _, seen := t.missed[key]; !seen {
		t.missed[key] = struct{}{}
		logger.Warn("hud: texture not found", "canvas", canvas, "name", name)
	}
	return nil
}

// Len returns the number of textures registered for canvas.
func (t *Textures) Len(canvas CanvasID) int {
	n := 0
	for k := range t.entries {
		if k.canvas == canvas {
			n++
		}
	}
	return n
}

// Names returns the sorted texture names registered for canvas.
func (t *Textures) Names(canvas CanvasID) []string {
	var names []string
	for k := range t.entries {
		if k.canvas == canvas {
			names = append(names, k.name)
		}
	}
	sort.Strings(names)
	return names
}

// textureName maps a walked path to its registry name.
func textureName(root, p string) string {
	rel := p
	if root != "." {
		rel = strings.TrimPrefix(p, root+"/")
	}
	return strings.TrimSuffix(rel, path.Ext(rel))
}
