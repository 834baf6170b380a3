// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package surface adapts drawing targets for the rose gauge.
//
// A Canvas hands out a gg 2D context and can be resized; resizing always
// discards the previous pixel content, the way an HTML canvas does when its
// width or height is assigned. Two kinds of canvases exist:
//
//   - ImageCanvas: an in-memory gg context, used for tests and snapshots
//   - any window-backed canvas (see cmd/roseview for a ggcanvas adapter)
//
// # Registry
//
// Canvases can be registered under a string identifier so a gauge can be
// created from the identifier alone:
//
//	surface.Register("main", surface.NewImageCanvas(300, 300))
//	g, err := rose.NewByID("main")
//
// Lookup of an unknown identifier fails with ErrCanvasNotFound.
package surface
