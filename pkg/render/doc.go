// Package render turns a laid-out cell sequence into poster artifacts.
//
// # Backends
//
// Two backends paint the same document:
//
//   - [RenderSVG] writes vector output directly. It has no runtime
//     dependencies; fonts are referenced by family name and resolved by
//     the viewer.
//   - [RenderPNG] rasterizes with fogleman/gg at the full page pixel
//     size. Digit labels and the pi overlay need a resolved TTF file; if
//     none is available those layers are skipped.
//
// # Format Conversion
//
// [ToPDF] converts any SVG to PDF using the external rsvg-convert tool
// (from librsvg), the same way PNG-from-SVG pipelines commonly do it.
//
//	svg := render.RenderSVG(doc)
//	pdf, err := render.ToPDF(svg)
//
// # Document
//
// [Doc] carries everything a backend needs: page size, palette, cells
// with bound digits, label settings, and overlay/fade toggles. Both
// backends are pure functions of the document, so identical documents
// produce identical bytes.
package render
