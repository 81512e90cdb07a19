package compose

import (
	"testing"
)

func TestExpandTemplate(t *testing.T) {
	values := Values{
		Context:    "test",
		SourceFile: "site",
		Format:     "list",
		Count:      3,
		Names:      []string{"a", "b", "c"},
	}

	tests := []struct {
		name  string
		field string
		want  string
	}{
		{"plain text", "selectors", "selectors"},
		{"fields", "{{ .SourceFile }}-{{ .Count }}", "site-3"},
		{"sprig functions", `{{ .SourceFile | upper }}{{ " " | trim }}`, "SITE"},
		{"names join", `{{ join "_" .Names }}`, "a_b_c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := expandTemplate("test", tt.field, values)
			if err != nil {
				t.Fatalf("expandTemplate() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("expandTemplate() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExpandTemplate_Errors(t *testing.T) {
	if _, err := expandTemplate("test", "{{ .Broken ", Values{}); err == nil {
		t.Error("expandTemplate() expected parse error")
	}
	if _, err := expandTemplate("test", "{{ fail }}", Values{}); err == nil {
		t.Error("expandTemplate() expected execution error")
	}
}
