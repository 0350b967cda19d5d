// Package lexicon holds the static keyword sets, weighted severity tables and
// regular-expression sources shared by the analyzers.
//
// Tables are plain data. Each analyzer compiles the patterns it needs once in
// its constructor and keeps them on its own instance.
package lexicon

// Version identifies the table revision; it is stamped on every report so
// results produced with different tables can be told apart.
const Version = "2025.10"

// Pattern is a regular-expression source with a human-readable description
type Pattern struct {
	Expr        string
	Description string
}
