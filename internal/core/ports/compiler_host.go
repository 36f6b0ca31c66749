// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/hostcache/internal/core/domain"

// WriteErrorFunc receives non-fatal write failures reported by a host.
type WriteErrorFunc func(message string)

// CompilerHost is the file-level contract the compiler drives.
//
//go:generate go run go.uber.org/mock/mockgen -source=compiler_host.go -destination=mocks/mock_compiler_host.go -package=mocks
type CompilerHost interface {
	// FileExists reports whether fileName exists.
	FileExists(fileName string) bool

	// GetSourceFile loads and parses fileName for the given language level.
	GetSourceFile(fileName string, target domain.ScriptTarget) (*domain.SourceUnit, error)

	// WriteFile writes an output file. sourceFiles lists the units the output
	// was produced from. Failures are reported to onError when it is non-nil
	// and returned.
	WriteFile(fileName string, data []byte, writeBOM bool, onError WriteErrorFunc, sourceFiles []*domain.SourceUnit) error

	// ReadFile returns the raw content of fileName.
	ReadFile(fileName string) (string, error)
}

// ResourceHost extends CompilerHost with module and resource resolution.
// It is the complete surface the compiler and the orchestrator call.
type ResourceHost interface {
	CompilerHost

	// ModuleNameToFileName resolves one module specifier relative to containingFile.
	ModuleNameToFileName(moduleName, containingFile string) (string, bool)

	// ResolveModuleNames resolves specifiers in order. Unresolved entries are nil.
	ResolveModuleNames(moduleNames []string, containingFile string) []*domain.ResolvedModule

	// ResourceNameToFileName resolves a resource reference relative to the
	// directory of containingFile.
	ResourceNameToFileName(resourceName, containingFile string) string

	// ReadResource returns the transformed content of a resource.
	ReadResource(fileName string) (string, error)
}
