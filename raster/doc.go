// SPDX-License-Identifier: MIT
// Package raster samples a noise.Source over a regular 2D grid.
//
// Rows are rendered concurrently (one task per row, bounded by WithWorkers)
// and written into disjoint slices of one backing array, so the result does
// not depend on scheduling. Cancelling the context stops outstanding rows.
//
//	grid, err := raster.Render(ctx, src, 256, 256, raster.WithFrequency(1.0/32))
//	img := grid.Gray()          // normalized to the grid's own min..max
//	err = grid.WritePNG(w)
package raster
