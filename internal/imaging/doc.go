// Package imaging provides the pixel-level primitives shared by the
// perforation analysis pipeline: image loading, RGB sampling, and the
// tolerance-based color comparison used both for baselight validation
// and for region membership during edge tracing.
//
// The package deliberately works on 8-bit RGB triples. Scanned film
// masters are sometimes 16-bit; components are reduced with a right
// shift so that the tolerance arithmetic stays in one value range.
package imaging
