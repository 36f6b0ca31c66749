package config

// File represents the structure of the hostcache.yaml configuration file.
type File struct {
	Version     string        `yaml:"version"`
	Root        string        `yaml:"root"`
	TSConfig    string        `yaml:"tsconfig"`
	OutDir      string        `yaml:"outDir"`
	EntryPoints []string      `yaml:"entryPoints"`
	Ignore      []string      `yaml:"ignore"`
	Processors  ProcessorsDTO `yaml:"processors"`
	Log         LogDTO        `yaml:"log"`
}

// ProcessorsDTO configures the external resource processors.
type ProcessorsDTO struct {
	Template   ProcessorDTO `yaml:"template"`
	Stylesheet ProcessorDTO `yaml:"stylesheet"`
}

// ProcessorDTO is one external processor command.
type ProcessorDTO struct {
	Cmd []string `yaml:"cmd"`
}

// LogDTO configures logging.
type LogDTO struct {
	JSON bool `yaml:"json"`
}
