// Package steel paints the static layers of a round gauge: the metal
// frame ring, the dial background and the glass foreground highlight.
//
// Styles are selected with opaque tokens (FrameDesign, BackgroundColor,
// ForegroundType). Each background color carries a label color that other
// layers use for text drawn on top of it.
package steel
