package config

import (
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
	"go.trai.ch/hostcache/internal/core/domain"
	"go.trai.ch/zerr"
)

// maxExtendsDepth bounds "extends" chains, which also breaks cycles.
const maxExtendsDepth = 8

// ReadCompilerOptions reads the compiler options of the tsconfig at path,
// following relative "extends" references. Fields set by a config override
// the ones it extends. baseUrl and outDir are made absolute against the
// directory of the config that sets them.
func ReadCompilerOptions(fsys FileSystem, path string) (domain.CompilerOptions, error) {
	var opts domain.CompilerOptions
	if err := readTSConfig(fsys, path, &opts, 0); err != nil {
		return domain.CompilerOptions{}, err
	}
	if len(opts.Paths) > 0 && opts.BaseURL == "" {
		opts.BaseURL = domain.NormalizePath(filepath.Dir(path))
	}
	return opts, nil
}

func readTSConfig(fsys FileSystem, path string, opts *domain.CompilerOptions, depth int) error {
	if depth > maxExtendsDepth {
		return zerr.With(zerr.With(domain.ErrTSConfigInvalid, "reason", "extends chain too deep"), "path", path)
	}

	data, err := fsys.ReadFile(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrTSConfigReadFailed.Error()), "path", path)
	}

	doc := stripJSONC(string(data))
	if !gjson.Valid(doc) {
		return zerr.With(domain.ErrTSConfigInvalid, "path", path)
	}

	dir := filepath.Dir(path)
	if ext := gjson.Get(doc, "extends"); ext.Type == gjson.String && isRelativeRef(ext.Str) {
		parent := ext.Str
		if !filepath.IsAbs(parent) {
			parent = filepath.Join(dir, parent)
		}
		if filepath.Ext(parent) != ".json" {
			parent += ".json"
		}
		if err := readTSConfig(fsys, parent, opts, depth+1); err != nil {
			return err
		}
	}

	co := gjson.Get(doc, "compilerOptions")
	if !co.Exists() {
		return nil
	}

	if target := co.Get("target"); target.Exists() {
		t, err := domain.ParseScriptTarget(target.String())
		if err != nil {
			return zerr.With(err, "path", path)
		}
		opts.Target = t
	}
	if baseURL := co.Get("baseUrl"); baseURL.Type == gjson.String {
		opts.BaseURL = absFrom(dir, baseURL.Str)
	}
	if outDir := co.Get("outDir"); outDir.Type == gjson.String {
		opts.OutDir = absFrom(dir, outDir.Str)
	}
	if decl := co.Get("declaration"); decl.IsBool() {
		opts.Declaration = decl.Bool()
	}
	if paths := co.Get("paths"); paths.IsObject() {
		opts.Paths = make(map[string][]string)
		paths.ForEach(func(key, value gjson.Result) bool {
			var targets []string
			for _, target := range value.Array() {
				if target.Type == gjson.String {
					targets = append(targets, target.Str)
				}
			}
			opts.Paths[key.String()] = targets
			return true
		})
	}

	return nil
}

func absFrom(dir, p string) string {
	if !filepath.IsAbs(p) {
		p = filepath.Join(dir, p)
	}
	return domain.NormalizePath(p)
}

func isRelativeRef(ref string) bool {
	return strings.HasPrefix(ref, "./") || strings.HasPrefix(ref, "../") || filepath.IsAbs(ref)
}

// stripJSONC removes comments and trailing commas so tsconfig files parse as
// plain JSON. String literals are left untouched.
func stripJSONC(src string) string {
	return stripTrailingCommas(stripComments(src))
}

func stripComments(src string) string {
	var b strings.Builder
	b.Grow(len(src))

	inString := false
	for i := 0; i < len(src); i++ {
		c := src[i]
		switch {
		case inString:
			b.WriteByte(c)
			if c == '\\' && i+1 < len(src) {
				i++
				b.WriteByte(src[i])
			} else if c == '"' {
				inString = false
			}
		case c == '"':
			inString = true
			b.WriteByte(c)
		case c == '/' && i+1 < len(src) && src[i+1] == '/':
			for i+1 < len(src) && src[i+1] != '\n' {
				i++
			}
		case c == '/' && i+1 < len(src) && src[i+1] == '*':
			end := strings.Index(src[i+2:], "*/")
			if end < 0 {
				i = len(src)
			} else {
				i += end + 3
			}
			b.WriteByte(' ')
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func stripTrailingCommas(src string) string {
	var b strings.Builder
	b.Grow(len(src))

	inString := false
	for i := 0; i < len(src); i++ {
		c := src[i]
		switch {
		case inString:
			b.WriteByte(c)
			if c == '\\' && i+1 < len(src) {
				i++
				b.WriteByte(src[i])
			} else if c == '"' {
				inString = false
			}
		case c == '"':
			inString = true
			b.WriteByte(c)
		case c == ',':
			j := i + 1
			for j < len(src) && strings.IndexByte(" \t\r\n", src[j]) >= 0 {
				j++
			}
			if j < len(src) && (src[j] == '}' || src[j] == ']') {
				continue
			}
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
