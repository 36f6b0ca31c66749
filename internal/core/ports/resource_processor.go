package ports

// ResourceProcessor transforms a resource's raw content, e.g. a template
// preprocessor or a stylesheet processor. Implementations must be
// deterministic for identical inputs.
//
//go:generate go run go.uber.org/mock/mockgen -source=resource_processor.go -destination=mocks/mock_resource_processor.go -package=mocks
type ResourceProcessor interface {
	// Process returns the transformed content for fileName.
	Process(fileName, content string) (string, error)
}

// ProcessorFunc adapts a function to ResourceProcessor.
type ProcessorFunc func(fileName, content string) (string, error)

// Process calls f.
func (f ProcessorFunc) Process(fileName, content string) (string, error) {
	return f(fileName, content)
}
