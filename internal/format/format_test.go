package format

import (
	"strings"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "basic formatting",
			input:    `meta{name="Brand"}`,
			expected: `meta { name = "Brand" }`,
		},
		{
			name: "already formatted stays same",
			input: `meta {
  name = "Brand"
}
`,
			expected: `meta {
  name = "Brand"
}
`,
		},
		{
			name:     "extra whitespace normalized",
			input:    `meta   {   name   =   "Brand"   }`,
			expected: `meta { name = "Brand" }`,
		},
		{
			name:     "empty content",
			input:    "",
			expected: "",
		},
		{
			name:     "multiple blank lines collapsed to one",
			input:    "meta { name = \"Brand\" }\n\n\n\npalette { coral = \"#FF6F61\" }",
			expected: "meta { name = \"Brand\" }\n\npalette { coral = \"#FF6F61\" }",
		},
		{
			name:     "single blank line preserved",
			input:    "meta { name = \"Brand\" }\n\npalette { coral = \"#FF6F61\" }",
			expected: "meta { name = \"Brand\" }\n\npalette { coral = \"#FF6F61\" }",
		},
		{
			name:     "blank line after opening brace removed",
			input:    "palette {\n\n  coral = \"#FF6F61\"\n}",
			expected: "palette {\n  coral = \"#FF6F61\"\n}",
		},
		{
			name:     "blank line before closing brace removed",
			input:    "palette {\n  coral = \"#FF6F61\"\n\n}",
			expected: "palette {\n  coral = \"#FF6F61\"\n}",
		},
		{
			name:     "hex literals uppercased",
			input:    "palette {\n  coral = \"#ff6f61\"\n  sun = \"#FfD166\"\n}",
			expected: "palette {\n  coral = \"#FF6F61\"\n  sun   = \"#FFD166\"\n}",
		},
		{
			name:     "other notations untouched",
			input:    "palette {\n  sun = \"rgb(255, 209, 102)\"\n  deep = darken(palette.coral, 0.2)\n}",
			expected: "palette {\n  sun  = \"rgb(255, 209, 102)\"\n  deep = darken(palette.coral, 0.2)\n}",
		},
		{
			name:     "short hex-like strings untouched",
			input:    "meta {\n  name = \"#abc\"\n}",
			expected: "meta {\n  name = \"#abc\"\n}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Format(tt.input)
			if err != nil {
				t.Fatalf("Format() error = %v", err)
			}

			// Normalize line endings for comparison
			result = strings.TrimSuffix(result, "\n")
			expected := strings.TrimSuffix(tt.expected, "\n")

			if result != expected {
				t.Errorf("Format() = %q, want %q", result, expected)
			}
		})
	}
}

func TestFormatInvalidHCL(t *testing.T) {
	// hclwrite.Format should handle partial/invalid HCL gracefully
	input := `palette { coral = "#ff6f61"`
	result, err := Format(input)
	if err != nil {
		t.Errorf("Format() on incomplete HCL should not error, got: %v", err)
	}
	if !strings.Contains(result, `"#FF6F61"`) {
		t.Errorf("Format() = %q, want uppercased hex", result)
	}
}
