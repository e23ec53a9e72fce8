// Package geom provides the integer rectangle math the navigation engine
// reasons with: element bounds, region bounds offsets, and the beam/distance
// comparisons used by the spatial finder.
//
// Types are re-exported through the root dial package for public consumption.
package geom
