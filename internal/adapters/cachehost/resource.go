package cachehost

import (
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/hostcache/internal/core/ports"
)

// ResourceKind selects how a resource is transformed.
type ResourceKind uint8

const (
	// KindStylesheet resources go through the stylesheet processor.
	KindStylesheet ResourceKind = iota
	// KindTemplate resources go through the template preprocessor.
	KindTemplate
	// KindMarkup resources are final markup and pass through unchanged.
	KindMarkup
)

// String returns a short name for the kind.
func (k ResourceKind) String() string {
	switch k {
	case KindTemplate:
		return "template"
	case KindMarkup:
		return "markup"
	default:
		return "stylesheet"
	}
}

type resourceRule struct {
	extensions []string
	kind       ResourceKind
}

// resourceRules is checked in order; the first match wins.
// Anything that matches no rule is a stylesheet.
var resourceRules = []resourceRule{
	{extensions: []string{".pug", ".jade"}, kind: KindTemplate},
	{extensions: []string{".html", ".htm", ".svg"}, kind: KindMarkup},
}

// ResourceKindOf classifies fileName by extension.
func ResourceKindOf(fileName string) ResourceKind {
	ext := strings.ToLower(filepath.Ext(fileName))
	for _, rule := range resourceRules {
		if slices.Contains(rule.extensions, ext) {
			return rule.kind
		}
	}
	return KindStylesheet
}

// TransformResource runs exactly one of the template processor, passthrough
// or the stylesheet processor on raw, chosen by fileName's extension.
func TransformResource(fileName, raw string, template, stylesheet ports.ResourceProcessor) (string, error) {
	switch ResourceKindOf(fileName) {
	case KindTemplate:
		return template.Process(fileName, raw)
	case KindMarkup:
		return raw, nil
	default:
		return stylesheet.Process(fileName, raw)
	}
}
