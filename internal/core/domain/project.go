package domain

// Project is the resolved configuration of one hostcache project.
type Project struct {
	// Root is the absolute project root.
	Root string
	// ConfigPath is the hostcache.yaml the project was loaded from.
	ConfigPath string
	// EntryPoints are absolute, normalized entry-point paths.
	EntryPoints []string
	// Options are the compiler options derived from tsconfig and overrides.
	Options CompilerOptions
	// TemplateCmd pipes template resources through an external command. Empty means passthrough.
	TemplateCmd []string
	// StylesheetCmd pipes stylesheet resources through an external command. Empty means passthrough.
	StylesheetCmd []string
	// Ignore lists base-name patterns the watcher skips.
	Ignore []string
	// LogJSON switches the logger to JSON output.
	LogJSON bool
}
