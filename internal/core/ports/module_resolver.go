package ports

import "go.trai.ch/hostcache/internal/core/domain"

// ModuleResolver is the module-resolution primitive.
//
//go:generate go run go.uber.org/mock/mockgen -source=module_resolver.go -destination=mocks/mock_module_resolver.go -package=mocks
type ModuleResolver interface {
	// ResolveModuleName resolves moduleName as imported from containingFile.
	// host answers existence checks; cache is owned by the caller and may be nil.
	// It returns nil when the module cannot be located.
	ResolveModuleName(
		moduleName, containingFile string,
		opts domain.CompilerOptions,
		host CompilerHost,
		cache *domain.ResolutionCache,
	) *domain.ResolvedModule
}
