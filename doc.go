// Package maestro renders character cards, card fans and card albums.
//
// # Overview
//
// A card is a character portrait framed by a frame layer set. The frame's
// color layer is a mask recolored toward a per-card dye in the Oklab color
// space, so a single set of frame images serves every dye. An optional
// static decoration layer is drawn between the portrait and the mask.
//
// A fan lays several cards along a shallow arc, each rotated to follow it.
// An album packs them row-major into a padded grid.
//
// # Quick Start
//
//	import "github.com/gogpu/maestro"
//
//	catalog, err := maestro.LoadCatalog("assets/frames")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	r := maestro.New(catalog, maestro.DirPortraits{Root: "assets/characters"})
//	defer r.Close()
//
//	img, err := r.RenderCard(maestro.CardRequest{
//	    ID:        42,
//	    FrameType: "gold",
//	    Dye:       0xB22222,
//	}, maestro.NewDeadline(2*time.Second))
//
// # Deadlines
//
// Every render takes a Deadline created for the request. The pipeline checks
// it before starting and after every stage; once the budget is spent the
// render is abandoned and an error wrapping ErrTimeout is returned. Partial
// images are never returned.
//
// # Concurrency
//
// The catalog is immutable after loading and shared without locking. Cards
// of a fan or album render concurrently and results are assembled in
// request order, so output is deterministic. Pixel work inside a card is
// split into row bands on a shared worker pool.
//
// # Architecture
//
// The library is organized into:
//   - Public API: Renderer, FrameCatalog, CardRequest, Deadline
//   - Internal: color (Oklab and dye shift), blend (compositing),
//     image (decode, paste, rotate), parallel (worker pool, batches)
//   - Service: cache (rendered images), config, server (HTTP)
//
// # Coordinate System
//
// Uses standard raster coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Fan angles in degrees, positive toward the right of the fan
package maestro

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
