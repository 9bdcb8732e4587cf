// Package content owns the static learning material: the leveled
// English/Norwegian word list, grammar topics per level, and flashcard
// decks built from them. The default material is embedded in the binary;
// a replacement word list can be loaded from JSON, xlsx or CSV.
package content
