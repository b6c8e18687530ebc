package recording

import (
	"image"

	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/vg"
)

// ResourcePool stores resources referenced by recording commands.
// Resources are stored in slices indexed by their reference types.
// Paths are cloned on Add so later edits by the caller cannot leak into a
// finished recording. Faces are deduplicated.
//
// ResourcePool is not safe for concurrent use.
type ResourcePool struct {
	paths  []vg.Path
	images []image.Image
	faces  []font.Face

	faceIndex map[font.Face]FaceRef
}

// NewResourcePool creates an empty resource pool with pre-allocated capacity.
func NewResourcePool() *ResourcePool {
	return &ResourcePool{
		paths:     make([]vg.Path, 0, 64),
		images:    make([]image.Image, 0, 1),
		faces:     make([]font.Face, 0, 4),
		faceIndex: make(map[font.Face]FaceRef),
	}
}

// AddPath adds a clone of path to the pool and returns its reference.
func (p *ResourcePool) AddPath(path vg.Path) PathRef {
	p.paths = append(p.paths, clonePath(path))
	// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
	return PathRef(uint32(len(p.paths) - 1))
}

// GetPath returns the path for the given reference, or nil.
func (p *ResourcePool) GetPath(ref PathRef) vg.Path {
	if int(ref) >= len(p.paths) {
		return nil
	}
	return p.paths[ref]
}

// PathCount returns the number of paths in the pool.
func (p *ResourcePool) PathCount() int {
	return len(p.paths)
}

// AddImage adds an image to the pool and returns its reference.
// The image must not be modified afterwards.
func (p *ResourcePool) AddImage(img image.Image) ImageRef {
	p.images = append(p.images, img)
	// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
	return ImageRef(uint32(len(p.images) - 1))
}

// GetImage returns the image for the given reference, or nil.
func (p *ResourcePool) GetImage(ref ImageRef) image.Image {
	if int(ref) >= len(p.images) {
		return nil
	}
	return p.images[ref]
}

// ImageCount returns the number of images in the pool.
func (p *ResourcePool) ImageCount() int {
	return len(p.images)
}

// AddFace adds a face to the pool and returns its reference.
func (p *ResourcePool) AddFace(face font.Face) FaceRef {
	if ref, ok := p.faceIndex[face]; ok {
		return ref
	}
	p.faces = append(p.faces, face)
	// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
	ref := FaceRef(uint32(len(p.faces) - 1))
	p.faceIndex[face] = ref
	return ref
}

// GetFace returns the face for the given reference.
func (p *ResourcePool) GetFace(ref FaceRef) (font.Face, bool) {
	if int(ref) >= len(p.faces) {
		return font.Face{}, false
	}
	return p.faces[ref], true
}

// FaceCount returns the number of faces in the pool.
func (p *ResourcePool) FaceCount() int {
	return len(p.faces)
}

func clonePath(path vg.Path) vg.Path {
	if path == nil {
		return nil
	}
	out := make(vg.Path, len(path))
	copy(out, path)
	for i := range out {
		if out[i].Control != nil {
			out[i].Control = append([]vg.Point(nil), out[i].Control...)
		}
	}
	return out
}
