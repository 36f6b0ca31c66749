package fs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/hostcache/internal/adapters/fs"
)

func TestScanImports(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "named and default imports",
			text: "import a from './a';\nimport { b, c } from \"./b\";\n",
			want: []string{"./a", "./b"},
		},
		{
			name: "multi-line import",
			text: "import {\n  a,\n  b,\n} from './multi';\n",
			want: []string{"./multi"},
		},
		{
			name: "side effect import",
			text: "import './polyfills';\n",
			want: []string{"./polyfills"},
		},
		{
			name: "re-exports",
			text: "export * from './x';\nexport { y } from './y';\nexport const z = 1;\n",
			want: []string{"./x", "./y"},
		},
		{
			name: "type-only import",
			text: "import type { T } from './types';\n",
			want: []string{"./types"},
		},
		{
			name: "dynamic import and require",
			text: "const lazy = () => import('./lazy');\nconst fs = require(\"fs\");\n",
			want: []string{"./lazy", "fs"},
		},
		{
			name: "duplicates keep first position",
			text: "import { a } from './a';\nimport { b } from './b';\nimport { c } from './a';\n",
			want: []string{"./a", "./b"},
		},
		{
			name: "commented out import",
			text: "// import { a } from './a';\nimport { b } from './b';\n",
			want: []string{"./b"},
		},
		{
			name: "no imports",
			text: "export const x = 1;\n",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fs.ScanImports(tt.text))
		})
	}
}

func TestScanResources(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "template and style list",
			text: "@Component({\n  templateUrl: './a.html',\n  styleUrls: ['./a.css', \"./b.scss\"],\n})",
			want: []string{"./a.html", "./a.css", "./b.scss"},
		},
		{
			name: "single style url",
			text: "@Component({ styleUrl: './a.less', templateUrl: './a.pug' })",
			want: []string{"./a.less", "./a.pug"},
		},
		{
			name: "multi-line style list",
			text: "styleUrls: [\n  './one.css',\n  './two.css',\n]",
			want: []string{"./one.css", "./two.css"},
		},
		{
			name: "inline template only",
			text: "@Component({ template: '<p></p>' })",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fs.ScanResources(tt.text))
		})
	}
}
