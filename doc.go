// Package magicsquare is a small fixture generator for odd-sided magic
// squares, with a checker for the magic property.
//
// What is in here?
//
//	square/    — New builds an N×N magic square (siamese method); Verify checks any grid
//	frozen/    — immutable, attribute-style view over YAML/JSON data + singleton Params
//	internal/cli/ — cobra commands: build (render as text/table/JSON) and verify
//	cmd/magicsquare/ — the CLI entry point
//
// Quick example (side 3, base 1):
//
//	 ___ ___ ___
//	|  8|  1|  6|
//	|  3|  5|  7|
//	|  4|  9|  2|
//	 --- --- ---
//
// Every row, column and both diagonals sum to 15.
//
//	go get github.com/katalvlaran/magicsquare
package magicsquare
