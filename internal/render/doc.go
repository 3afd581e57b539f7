// Package render produces the two graphic outputs of a survey run.
//
// SaveFigure draws the publication figure: the scaled pond outline filled
// and stroked on a gridded metric plot, with a scale bar, an information
// block, and dimension labels. SaveOverlay draws the traced outline back
// onto the source photograph as a visual check of the extraction.
//
// Both share a Palette of named colors. The figure is rendered with
// gonum/plot, the overlay with fogleman/gg.
package render
