package fs

import (
	"regexp"
	"slices"
	"strings"
)

var (
	importFrom    = regexp.MustCompile(`(?m)^\s*(?:import|export)\b[^'";]*?\bfrom\s*['"]([^'"]+)['"]`)
	importBare    = regexp.MustCompile(`(?m)^\s*import\s*['"]([^'"]+)['"]`)
	dynamicImport = regexp.MustCompile(`\bimport\s*\(\s*['"]([^'"]+)['"]\s*\)`)
	requireCall   = regexp.MustCompile(`\brequire\s*\(\s*['"]([^'"]+)['"]\s*\)`)

	templateURL = regexp.MustCompile(`\btemplateUrl\s*:\s*['"]([^'"]+)['"]`)
	styleURL    = regexp.MustCompile(`\bstyleUrl\s*:\s*['"]([^'"]+)['"]`)
	styleURLs   = regexp.MustCompile(`\bstyleUrls\s*:\s*\[([^\]]*)\]`)
	quoted      = regexp.MustCompile(`['"]([^'"]+)['"]`)
)

// ScanImports returns the module specifiers referenced by text in order of
// first appearance. Line comments are ignored.
func ScanImports(text string) []string {
	text = stripLineComments(text)

	var found []match
	for _, re := range []*regexp.Regexp{importFrom, importBare, dynamicImport, requireCall} {
		found = appendMatches(found, re, text)
	}
	return dedupe(found)
}

// ScanResources returns the component resource references (templateUrl,
// styleUrl and styleUrls entries) in order of first appearance.
func ScanResources(text string) []string {
	text = stripLineComments(text)

	found := appendMatches(nil, templateURL, text)
	found = appendMatches(found, styleURL, text)
	for _, loc := range styleURLs.FindAllStringSubmatchIndex(text, -1) {
		list := text[loc[2]:loc[3]]
		for _, inner := range quoted.FindAllStringSubmatchIndex(list, -1) {
			found = append(found, match{pos: loc[2] + inner[2], value: list[inner[2]:inner[3]]})
		}
	}
	return dedupe(found)
}

type match struct {
	pos   int
	value string
}

func appendMatches(dst []match, re *regexp.Regexp, text string) []match {
	for _, loc := range re.FindAllStringSubmatchIndex(text, -1) {
		dst = append(dst, match{pos: loc[2], value: text[loc[2]:loc[3]]})
	}
	return dst
}

func dedupe(found []match) []string {
	if len(found) == 0 {
		return nil
	}
	slices.SortStableFunc(found, func(a, b match) int { return a.pos - b.pos })

	seen := make(map[string]struct{}, len(found))
	out := make([]string, 0, len(found))
	for _, m := range found {
		if _, ok := seen[m.value]; ok {
			continue
		}
		seen[m.value] = struct{}{}
		out = append(out, m.value)
	}
	return out
}

// stripLineComments blanks out // comments that start a line, keeping offsets.
func stripLineComments(text string) string {
	if !strings.Contains(text, "//") {
		return text
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "//") {
			lines[i] = strings.Repeat(" ", len(line))
		}
	}
	return strings.Join(lines, "\n")
}
