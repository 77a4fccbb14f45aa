// Package pkg provides the core libraries for piposter.
//
// # Overview
//
// Piposter renders the decimal digits of pi as a Bauhaus-style poster:
// a grid of colored geometric shapes, one per digit, with a perspective
// zone compressing rows toward the bottom edge. The pkg directory is
// organized by pipeline stage:
//
//  1. [pi] - Digit generation (Machin formula) and the Feynman point
//  2. [poster/grid] - Cell layout: uniform zone plus perspective zone
//  3. [poster/encode] - Digit to shape/color/size/orientation mapping
//  4. [render] - SVG and PNG backends, PDF conversion
//  5. [pipeline] - Orchestration (layout → digits → render) with caching
//  6. [config], [fonts], [cache], [observability], [errors] - Supporting
//     infrastructure
//
// # Architecture
//
// The typical data flow:
//
//	config.Config (page, grid, palette)
//	         ↓
//	    [poster/grid] package (build cells; cell count = digit count)
//	         ↓
//	    [pi] package (compute exactly that many digits)
//	         ↓
//	    [poster/encode] package (digit → visual encoding)
//	         ↓
//	    [render] package (SVG / PNG / PDF output)
//
// # Quick Start
//
//	runner := pipeline.NewRunner(nil, nil)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Config:  config.Default(),
//	    Formats: []string{"svg"},
//	})
package pkg
