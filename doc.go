// Package pathtools provides a pure, I/O-free path algebra for Windows
// and Unix path grammars.
//
// pathtools computes roots, extensions, directory and file components,
// fully qualified forms, combinations, joins, and relative paths — as
// string transformations only. Nothing here touches a filesystem, and
// both grammars are available on any operating system via an explicit
// platform flag.
//
// # Overview
//
// The library consists of three primary packages:
//
//   - pathops: platform grammars and the grammar-agnostic path algebra
//   - pathbuf: a growable char buffer for allocation-light path building
//   - patherrors: structured error types shared across the module
//
// # Installation
//
// Install the library using go get:
//
//	go get github.com/erraggy/pathtools
//
// # Quick Start
//
// Classify and split a path:
//
//	import "github.com/erraggy/pathtools/pathops"
//
//	kind := pathops.ClassifyRoot(`\\server\share\data`, pathops.Windows)
//	// kind == pathops.RootUNC
//
//	ext := pathops.Extension("archive.tar.gz", pathops.Unix)
//	// ext == ".gz"
//
// Compute a relative path:
//
//	rel, err := pathops.RelativePath(`C:\A\B`, `C:\A\B\C\D`, pathops.Windows)
//	if err != nil {
//		log.Fatal(err)
//	}
//	// rel == `C\D`
//
// Build a path incrementally:
//
//	import "github.com/erraggy/pathtools/pathbuf"
//
//	b := pathbuf.NewFromPath(pathops.Unix, "/srv/data")
//	defer b.Dispose()
//	b.Append("reports")
//	b.Append("summary.txt")
//	b.ChangeExtension("csv")
//	// b.String() == "/srv/data/reports/summary.csv"
//
// # pathops Package
//
// The pathops package implements root classification (drive, UNC share,
// device prefix, single separator), fully-qualified resolution against an
// explicit base path, relative-segment removal, separator normalization,
// component extraction, and segment splitting. Operations are pure and
// safe for concurrent use.
//
// # pathbuf Package
//
// The pathbuf package provides the Builder type: a logical window over a
// pool-rented (or caller-borrowed) backing array, mutated in place by
// append, extension-change, and file-name-change operations, and
// materialized to a string only on demand.
//
// # Command Line
//
// The pathtools command exposes the algebra for scripting and also runs
// an MCP server over stdio:
//
//	pathtools normalize --platform windows 'C:\a\.\b\..\c'
//	pathtools relative --platform windows 'C:\A\B' 'C:\A\C'
//	pathtools mcp
//
// See the cmd/pathtools package for details.
package pathtools
