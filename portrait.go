package maestro

import (
	"errors"
	"fmt"
	"image"
	"path/filepath"
	"strconv"

	intImage "github.com/gogpu/maestro/internal/image"
)

// PortraitSource resolves and decodes the character portrait of a card.
//
// Implementations must be safe for concurrent use and must wrap
// ErrAssetNotFound or ErrAssetCorrupt in the errors they return. The
// returned image is owned by the caller.
type PortraitSource interface {
	Portrait(req CardRequest) (*image.NRGBA, error)
}

// PortraitFunc adapts an ordinary function to PortraitSource.
type PortraitFunc func(req CardRequest) (*image.NRGBA, error)

// Portrait calls f(req).
func (f PortraitFunc) Portrait(req CardRequest) (*image.NRGBA, error) {
	return f(req)
}

// DirPortraits reads portraits from the asset directory layout:
//
//	<Root>/<id>.png              variant 0
//	<Root>/<id>/u<variant>.png   variants 1-9
//	<Root>/<id>/x<variant>.png   variants 10 and above
//	<CustomRoot>/<id>.png        custom portraits
type DirPortraits struct {
	Root       string
	CustomRoot string
}

// PortraitPath returns the portrait file of a character variant under root.
func PortraitPath(root string, id uint32, variant uint8) string {
	name := strconv.FormatUint(uint64(id), 10)
	switch {
	case variant == 0:
		return filepath.Join(root, name+".png")
	case variant < 10:
		return filepath.Join(root, name, "u"+strconv.Itoa(int(variant))+".png")
	default:
		return filepath.Join(root, name, "x"+strconv.Itoa(int(variant))+".png")
	}
}

// Path returns the file DirPortraits reads for req.
func (d DirPortraits) Path(req CardRequest) string {
	if req.Custom {
		return filepath.Join(d.CustomRoot, strconv.FormatUint(uint64(req.ID), 10)+".png")
	}
	return PortraitPath(d.Root, req.ID, req.Variant)
}

// Portrait implements PortraitSource.
func (d DirPortraits) Portrait(req CardRequest) (*image.NRGBA, error) {
	if req.Custom && d.CustomRoot == "" {
		return nil, fmt.Errorf("%w: custom portraits are not configured", ErrAssetNotFound)
	}

	path := d.Path(req)
	img, err := intImage.Load(path)
	if err != nil {
		if errors.Is(err, intImage.ErrDecode) {
			Logger().Warn("damaged portrait", "path", path, "err", err)
			return nil, fmt.Errorf("%w: portrait %s: %w", ErrAssetCorrupt, path, err)
		}
		return nil, fmt.Errorf("%w: portrait %s: %w", ErrAssetNotFound, path, err)
	}
	return img, nil
}
