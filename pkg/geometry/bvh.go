package geometry

import (
	"sort"

	"golang.org/x/xerrors"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/material"
)

// ErrEmptyBVH is returned when a BVH is built over no objects
var ErrEmptyBVH = xerrors.New("no objects to build a BVH over")

// BVH is a node of a Bounding Volume Hierarchy. Children are either
// leaf objects or further *BVH nodes. Immutable once built, so it is safe
// for concurrent traversal.
type BVH struct {
	Box   core.AABB
	Left  Hittable
	Right Hittable
	// single marks the one-object case where Left and Right are the same leaf
	single bool
}

// bounded pairs an object with its box so boxes are computed once per build
type bounded struct {
	object Hittable
	box    core.AABB
}

// NewBVH constructs a BVH over objects for the shutter interval [time0, time1].
// Fails when there are no objects or any object has no bounding box.
func NewBVH(objects []Hittable, time0, time1 float64) (*BVH, error) {
	if len(objects) == 0 {
		return nil, ErrEmptyBVH
	}

	// Work on a copy so the caller's slice order is untouched
	items := make([]bounded, len(objects))
	for i, object := range objects {
		box, ok := object.BoundingBox(time0, time1)
		if !ok || !box.IsFinite() {
			return nil, xerrors.Errorf("while building BVH, object %d (%T): %w", i, object, ErrNoBoundingBox)
		}
		items[i] = bounded{object: object, box: box}
	}

	return buildBVH(items), nil
}

// buildBVH splits on the longest axis of the union box, sorting by box min
// and partitioning at the middle of the list
func buildBVH(items []bounded) *BVH {
	box := items[0].box
	for _, item := range items[1:] {
		box = box.Union(item.box)
	}

	switch len(items) {
	case 1:
		return &BVH{Box: box, Left: items[0].object, Right: items[0].object, single: true}
	case 2:
		return &BVH{Box: box, Left: items[0].object, Right: items[1].object}
	}

	axis := box.LongestAxis()
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].box.Min.Axis(axis) < items[j].box.Min.Axis(axis)
	})

	mid := len(items) / 2
	left := buildBVH(items[:mid])
	right := buildBVH(items[mid:])

	return &BVH{Box: left.Box.Union(right.Box), Left: left, Right: right}
}

// Hit prunes on the node box, then keeps the nearer of the children's hits
func (b *BVH) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	if !b.Box.Hit(ray, tMin, tMax) {
		return nil, false
	}

	leftHit, hitLeft := b.Left.Hit(ray, tMin, tMax, sampler)
	if b.single {
		return leftHit, hitLeft
	}

	// Right only needs to beat the left hit
	closest := tMax
	if hitLeft {
		closest = leftHit.T
	}
	if rightHit, hitRight := b.Right.Hit(ray, tMin, closest, sampler); hitRight {
		return rightHit, true
	}
	return leftHit, hitLeft
}

// BoundingBox returns the node's box
func (b *BVH) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return b.Box, true
}

// BVHStats contains statistics about the BVH structure
type BVHStats struct {
	Nodes    int // internal nodes
	Leaves   int // leaf object references
	MaxDepth int
}

// Stats walks the tree and returns its shape
func (b *BVH) Stats() BVHStats {
	var stats BVHStats
	b.collectStats(0, &stats)
	return stats
}

func (b *BVH) collectStats(depth int, stats *BVHStats) {
	stats.Nodes++
	if depth > stats.MaxDepth {
		stats.MaxDepth = depth
	}

	children := []Hittable{b.Left, b.Right}
	if b.single {
		children = children[:1]
	}
	for _, child := range children {
		if node, ok := child.(*BVH); ok {
			node.collectStats(depth+1, stats)
		} else {
			stats.Leaves++
		}
	}
}
