// Package chart draws metric series as fixed-height terminal charts.
//
// A chart is built in two steps. Build turns a series into a Plot: the Y
// scale, the column of every point and a grid of cells, each tagged with the
// layer that drew it. Render then styles those cells with the field colors
// of an Encodings table. Both steps are pure, so rendering the same series at
// the same width and cursor always yields the same string.
//
// Geometry per chart kind:
//
//	area        monotone-smoothed curve filled down to the axis (braille)
//	line        monotone-smoothed polyline (braille)
//	multi-line  one polyline per field sharing the axes (braille)
//	bar         one bar per point rising from zero (block characters)
//
// Braille cells give 2x4 dots per character, which is enough vertical
// resolution for a 9-row plot to look like a curve rather than a staircase.
package chart
