package domain

// SourceUnit is the compiler's in-memory representation of one source file.
// The caching layer treats it as an opaque handle; the fields are what the
// real host extracts while loading the file.
type SourceUnit struct {
	// FileName is the normalized path the unit was loaded from.
	FileName string
	// Text is the raw file content.
	Text string
	// Target is the language level the unit was parsed for.
	Target ScriptTarget
	// Digest is the xxhash of Text.
	Digest uint64
	// Imports lists module specifiers in source order.
	Imports []string
	// Resources lists template and stylesheet references in source order.
	Resources []string
}

// IsDeclaration reports whether the unit is a type-declaration file.
func (s *SourceUnit) IsDeclaration() bool {
	return IsDeclarationFile(s.FileName)
}
