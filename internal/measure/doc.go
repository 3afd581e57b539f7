// Package measure converts pixel-space outlines into real-world survey
// numbers.
//
// A Scale holds the meters-per-pixel ratio established from a reference of
// known length, either entered directly (a map scale bar's pixel span and
// printed length) or derived from two endpoint coordinates. Compute then
// produces a Survey: surface area, extents, shoreline length, and the
// representative fraction of the source photograph.
//
// Surface area is computed from the simplified polygon rather than the
// smoothed outline, so the reported number does not drift with the
// smoothing settings.
package measure
