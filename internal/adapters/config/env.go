package config

import (
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"go.trai.ch/hostcache/internal/core/domain"
	"go.trai.ch/zerr"
)

// Overrides are the settings that can be forced through the environment.
type Overrides struct {
	OutDir  string `env:"HOSTCACHE_OUT_DIR"`
	LogJSON *bool  `env:"HOSTCACHE_LOG_JSON"`
	Target  string `env:"HOSTCACHE_TARGET"`
}

// ParseOverrides reads overrides from environ. A nil environ reads the process environment.
func ParseOverrides(environ map[string]string) (Overrides, error) {
	var o Overrides
	opts := env.Options{}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(&o, opts); err != nil {
		return Overrides{}, zerr.Wrap(err, domain.ErrEnvOverrideFailed.Error())
	}
	return o, nil
}

// Apply writes the set overrides onto p. A relative OutDir is taken from p.Root.
func (o Overrides) Apply(p *domain.Project) error {
	if o.OutDir != "" {
		outDir := o.OutDir
		if !filepath.IsAbs(outDir) {
			outDir = filepath.Join(p.Root, outDir)
		}
		p.Options.OutDir = domain.NormalizePath(outDir)
	}
	if o.LogJSON != nil {
		p.LogJSON = *o.LogJSON
	}
	if o.Target != "" {
		t, err := domain.ParseScriptTarget(o.Target)
		if err != nil {
			return zerr.With(err, "env", "HOSTCACHE_TARGET")
		}
		p.Options.Target = t
	}
	return nil
}
