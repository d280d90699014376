// Package buffer provides pooled scratch rows for the transforms.
//
// A decomposition level pads every input row before filtering it. The padded
// row is dead as soon as both sub-bands are computed, so the transforms draw
// it from a Pool instead of allocating one per row and level.
package buffer
