package location

// PositionRegistry provides byte-offset-to-position conversion.
//
// This interface is the bridge between format adapters (JSON, CSV) and source
// content registries that perform the actual conversion. It enables adapters
// to obtain accurate Position values from byte offsets captured during parsing.
//
// An embedder that parses its own surface syntax before building an
// ast.Program can implement this to let diag.Issue carry accurate
// positions without location depending on that embedder's source model.
//
// Design rationale:
//
//  1. Foundation tier placement: PositionRegistry is defined in location
//     (foundation tier) because the interface operates on location.Position and
//     location.SourceID â€” natural cohesion with the location package.
//
//  2. Decouples diag from any one source registry: diag can accept any
//     PositionRegistry implementation, enabling testing with mock registries
//     and supporting alternative embedder source models.
type PositionRegistry interface {
	// PositionAt converts a byte offset to a Position for the given source.
	//
	// Returns a zero Position (check via IsZero()) if:
	//   - The source is not registered
	//   - The byte offset is out of range
	//   - The byte offset is negative
	//
	// The returned Position has:
	//   - Line: 1-based line number
	//   - Column: 1-based rune offset from line start
	//   - Byte: The input byteOffset (echoed back for convenience)
	PositionAt(source SourceID, byteOffset int) Position
}

// RuneOffsetConverter provides rune-to-byte offset conversion.
//
// ANTLR positions are rune-based (character indices), but the schema layer
// uses byte offsets for consistency with Go strings and UTF-8 handling.
// This interface enables the conversion between these coordinate systems.
//
// An embedder with its own source registry (tracking ANTLR-style rune
// positions, or any other rune-indexed surface syntax) implements this.
type RuneOffsetConverter interface {
	// RuneToByteOffset converts a rune offset to a byte offset for the given source.
	//
	// Returns (byteOffset, true) on success.
	// Returns (0, false) if:
	//   - The source is not registered
	//   - The rune offset is out of range
	//   - The rune offset is negative
	RuneToByteOffset(source SourceID, runeOffset int) (byteOffset int, ok bool)
}
