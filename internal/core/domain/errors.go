package domain

import "go.trai.ch/zerr"

var (
	// ErrFileNotFound is returned when the wrapped host cannot find a file.
	ErrFileNotFound = zerr.New("file not found")

	// ErrFileReadFailed is returned when a file exists but cannot be read.
	ErrFileReadFailed = zerr.New("failed to read file")

	// ErrFileWriteFailed is returned when an output file cannot be written.
	ErrFileWriteFailed = zerr.New("failed to write file")

	// ErrSourceLoadFailed is returned when a source unit cannot be produced.
	ErrSourceLoadFailed = zerr.New("failed to load source unit")

	// ErrResourceTransformFailed is returned when a template or stylesheet processor fails.
	ErrResourceTransformFailed = zerr.New("failed to transform resource")

	// ErrProcessorFailed is returned when an external processor command exits with an error.
	ErrProcessorFailed = zerr.New("processor command failed")

	// ErrInvalidScriptTarget is returned when a tsconfig target cannot be parsed.
	ErrInvalidScriptTarget = zerr.New("invalid script target")

	// ErrConfigNotFound is returned when no hostcache.yaml is found.
	ErrConfigNotFound = zerr.New("could not find hostcache.yaml")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrTSConfigReadFailed is returned when the referenced tsconfig.json cannot be read.
	ErrTSConfigReadFailed = zerr.New("failed to read tsconfig")

	// ErrTSConfigInvalid is returned when tsconfig.json is not valid JSON.
	ErrTSConfigInvalid = zerr.New("tsconfig is not valid JSON")

	// ErrEnvOverrideFailed is returned when environment overrides cannot be parsed.
	ErrEnvOverrideFailed = zerr.New("failed to parse environment overrides")

	// ErrNoEntryPoints is returned when neither the config nor the command line names an entry point.
	ErrNoEntryPoints = zerr.New("no entry points specified")

	// ErrEntryPointNotFound is returned when an entry point file does not exist.
	ErrEntryPointNotFound = zerr.New("entry point not found")

	// ErrCompilationFailed is returned when a compilation pass fails.
	ErrCompilationFailed = zerr.New("compilation pass failed")

	// ErrStoreCreateFailed is returned when the manifest store directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create manifest store directory")

	// ErrStoreReadFailed is returned when a manifest cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read manifest")

	// ErrStoreUnmarshalFailed is returned when a manifest cannot be unmarshaled.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal manifest")

	// ErrStoreMarshalFailed is returned when a manifest cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal manifest")

	// ErrStoreWriteFailed is returned when a manifest cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write manifest")

	// ErrGraphStoreOpenFailed is returned when the graph database cannot be opened.
	ErrGraphStoreOpenFailed = zerr.New("failed to open graph database")

	// ErrGraphStoreWriteFailed is returned when the graph snapshot cannot be saved.
	ErrGraphStoreWriteFailed = zerr.New("failed to save graph snapshot")

	// ErrGraphStoreReadFailed is returned when the graph snapshot cannot be loaded.
	ErrGraphStoreReadFailed = zerr.New("failed to load graph snapshot")

	// ErrFailedToCleanCache is returned when the cache directory cannot be removed.
	ErrFailedToCleanCache = zerr.New("failed to clean cache directory")

	// ErrWatcherFailed is returned when the file watcher cannot start or reports an error.
	ErrWatcherFailed = zerr.New("file watcher failed")

	// ErrUnknownGraphFormat is returned for an unsupported graph output format.
	ErrUnknownGraphFormat = zerr.New("unknown graph format, expected 'text' or 'dot'")
)
