// internal/nodeid/doc.go

/*
Package nodeid provides a type-safe representation for the identifiers of the
three sizing quantities the calculator knows about:

	co  cache object count
	cs  cache size
	bs  benchmark size

The set is closed. All parsing and formatting of the short names lives here so
the rest of the code can switch over ID values exhaustively.
*/
package nodeid
