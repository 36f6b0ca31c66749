package domain

import "strings"

// ScriptTarget is the language level a source unit is parsed for.
type ScriptTarget uint8

const (
	// TargetES5 is the ES5 language level.
	TargetES5 ScriptTarget = iota
	// TargetES2015 is the ES2015 language level.
	TargetES2015
	// TargetES2017 is the ES2017 language level.
	TargetES2017
	// TargetES2020 is the ES2020 language level.
	TargetES2020
	// TargetES2022 is the ES2022 language level.
	TargetES2022
	// TargetESNext is the latest language level.
	TargetESNext
)

var targetNames = map[ScriptTarget]string{
	TargetES5:    "es5",
	TargetES2015: "es2015",
	TargetES2017: "es2017",
	TargetES2020: "es2020",
	TargetES2022: "es2022",
	TargetESNext: "esnext",
}

// String returns the tsconfig spelling of the target.
func (t ScriptTarget) String() string {
	if name, ok := targetNames[t]; ok {
		return name
	}
	return "unknown"
}

// ParseScriptTarget parses a tsconfig "target" value. The lookup is case-insensitive
// and accepts "es6" as an alias for es2015.
func ParseScriptTarget(s string) (ScriptTarget, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "es6" {
		return TargetES2015, nil
	}
	for t, n := range targetNames {
		if n == name {
			return t, nil
		}
	}
	return 0, ErrInvalidScriptTarget
}

// CompilerOptions is the subset of compiler settings the host layer needs.
type CompilerOptions struct {
	// Target is the default language level for loaded units.
	Target ScriptTarget
	// BaseURL is the directory bare module specifiers are resolved against.
	BaseURL string
	// Paths maps specifier patterns (optionally ending in "*") to substitutions.
	Paths map[string][]string
	// Declaration enables declaration artifacts.
	Declaration bool
	// OutDir is where emitted artifacts go. Empty disables emit.
	OutDir string
}

// IsDeclarationFile reports whether fileName is a type-declaration file.
func IsDeclarationFile(fileName string) bool {
	return strings.HasSuffix(fileName, ".d.ts")
}

// IsArtifactFile reports whether fileName denotes a declaration or metadata artifact.
func IsArtifactFile(fileName string) bool {
	return IsDeclarationFile(fileName) || strings.HasSuffix(fileName, MetadataSuffix)
}
