package maestro

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/text/unicode/norm"

	intImage "github.com/gogpu/maestro/internal/image"
)

// LayerKind names a frame layer inside a frame type.
type LayerKind string

// Layer kinds known to the compositor. Catalogs may hold other layers;
// they are loaded but not drawn.
const (
	// LayerColor is the dyeable mask layer. Every usable frame type has one.
	LayerColor LayerKind = "color"
	// LayerStatic is the optional decoration layer drawn without recoloring.
	LayerStatic LayerKind = "static"
)

// DefaultModifier is the file name prefix of layers selected by
// CardRequest.Modifier (for example "kindled-color.png").
const DefaultModifier = "kindled"

// LayerKey returns the catalog key of a layer: "<frameType>-<kind>", or
// "<frameType>-<modifier>-<kind>" when modifier is not empty.
// Keys are NFC-normalised.
func LayerKey(frameType, modifier string, kind LayerKind) string {
	var b strings.Builder
	b.WriteString(frameType)
	b.WriteByte('-')
	if modifier != "" {
		b.WriteString(modifier)
		b.WriteByte('-')
	}
	b.WriteString(string(kind))
	return norm.NFC.String(b.String())
}

// FrameCatalog is the immutable set of decoded frame layers.
//
// A FrameCatalog is built once, by LoadCatalog or NewCatalog, and is safe
// for concurrent use without locking. Layers returned by its methods are
// shared between all requests and must not be modified.
type FrameCatalog struct {
	layers     map[string]*image.NRGBA
	frameTypes []string
}

// NewCatalog builds a catalog from in-memory layers, keyed by frame type and
// then by layer suffix (the file base name, such as "color" or
// "kindled-static"). Layers are copied, so later changes to the inputs do
// not affect the catalog.
func NewCatalog(frames map[string]map[string]image.Image) *FrameCatalog {
	c := &FrameCatalog{layers: make(map[string]*image.NRGBA)}
	for frameType, layers := range frames {
		frameType = norm.NFC.String(frameType)
		c.frameTypes = append(c.frameTypes, frameType)
		for suffix, img := range layers {
			c.layers[catalogKey(frameType, suffix)] = cloneNRGBA(img)
		}
	}
	slices.Sort(c.frameTypes)
	return c
}

// LoadCatalog scans dir for frame layers. Every subdirectory is a frame
// type; every PNG file inside it is a layer keyed
// "<subdirectory>-<file base name>". Other files are ignored.
//
// Any read or decode failure aborts the load: the returned error wraps
// ErrAssetNotFound or ErrAssetCorrupt and no partial catalog is returned.
func LoadCatalog(dir string) (*FrameCatalog, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: read frame directory: %w", ErrAssetNotFound, err)
	}

	c := &FrameCatalog{layers: make(map[string]*image.NRGBA)}
	for _, entry := range entries {
		framePath := filepath.Join(dir, entry.Name())
		info, err := os.Stat(framePath) // follows symlinks
		if err != nil {
			return nil, fmt.Errorf("%w: stat %s: %w", ErrAssetNotFound, framePath, err)
		}
		if !info.IsDir() {
			continue
		}

		frameType := norm.NFC.String(entry.Name())
		n, err := c.loadFrame(frameType, framePath)
		if err != nil {
			return nil, err
		}
		if n > 0 {
			c.frameTypes = append(c.frameTypes, frameType)
		}
	}
	slices.Sort(c.frameTypes)

	Logger().Info("frame catalog loaded",
		"dir", dir,
		"frames", len(c.frameTypes),
		"layers", len(c.layers))

	return c, nil
}

// loadFrame decodes every PNG layer of one frame directory into c.
func (c *FrameCatalog) loadFrame(frameType, dir string) (int, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("%w: read frame %q: %w", ErrAssetNotFound, frameType, err)
	}

	n := 0
	for _, f := range files {
		name := f.Name()
		if f.IsDir() || !strings.EqualFold(filepath.Ext(name), ".png") {
			continue
		}

		path := filepath.Join(dir, name)
		img, err := intImage.Load(path)
		if err != nil {
			if errors.Is(err, intImage.ErrDecode) {
				return 0, fmt.Errorf("%w: frame layer %s: %w", ErrAssetCorrupt, path, err)
			}
			return 0, fmt.Errorf("%w: frame layer %s: %w", ErrAssetNotFound, path, err)
		}

		suffix := strings.TrimSuffix(name, filepath.Ext(name))
		c.layers[catalogKey(frameType, suffix)] = img
		n++
	}
	return n, nil
}

// Layer returns the layer stored under key.
func (c *FrameCatalog) Layer(key string) (*image.NRGBA, bool) {
	img, ok := c.layers[norm.NFC.String(key)]
	return img, ok
}

// Lookup returns the layer of the given kind for a frame type. An empty
// modifier selects the base layer.
func (c *FrameCatalog) Lookup(frameType, modifier string, kind LayerKind) (*image.NRGBA, bool) {
	img, ok := c.layers[LayerKey(frameType, modifier, kind)]
	return img, ok
}

// Len returns the number of layers in the catalog.
func (c *FrameCatalog) Len() int {
	return len(c.layers)
}

// Keys returns every layer key in sorted order.
func (c *FrameCatalog) Keys() []string {
	keys := make([]string, 0, len(c.layers))
	for k := range c.layers {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// FrameTypes returns the frame types that contributed at least one layer,
// in sorted order.
func (c *FrameCatalog) FrameTypes() []string {
	return slices.Clone(c.frameTypes)
}

func catalogKey(frameType, suffix string) string {
	return norm.NFC.String(frameType + "-" + suffix)
}

// cloneNRGBA returns a private NRGBA copy of img with bounds at the origin.
func cloneNRGBA(img image.Image) *image.NRGBA {
	n := intImage.ToNRGBA(img)
	if n != img {
		return n
	}
	out := image.NewNRGBA(n.Rect)
	copy(out.Pix, n.Pix)
	return out
}
