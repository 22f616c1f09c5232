package textutil

import (
	"strings"
	"testing"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "whitespace only",
			input: "   \t\n  ",
			want:  "",
		},
		{
			name:  "lowercases",
			input: "Senior Software Engineer",
			want:  "senior software engineer",
		},
		{
			name:  "strips ten digit phone run",
			input: "call me at 5551234567 today",
			want:  "call me at  today",
		},
		{
			name:  "eleven digits leave one behind",
			input: "id 55512345678 end",
			want:  "id 8 end",
		},
		{
			name:  "nine digits untouched",
			input: "id 555123456 end",
			want:  "id 555123456 end",
		},
		{
			name:  "strips email token",
			input: "reach jane.doe@example.com for details",
			want:  "reach  for details",
		},
		{
			name:  "strips url token",
			input: "portfolio at https://example.com/work here",
			want:  "portfolio at  here",
		},
		{
			name:  "strips punctuation keeps words",
			input: "C++, Go & Rust!",
			want:  "c go  rust",
		},
		{
			name:  "underscore survives as word character",
			input: "snake_case stays",
			want:  "snake_case stays",
		},
		{
			name:  "accented letters survive",
			input: "José García, naïve résumé",
			want:  "josé garcía naïve résumé",
		},
		{
			name:  "non-latin letters survive",
			input: "Опыт работы: инженер",
			want:  "опыт работы инженер",
		},
		{
			name:  "ten non-ascii digits stripped as phone",
			input: "id ٠١٢٣٤٥٦٧٨٩ end",
			want:  "id  end",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clean(tt.input); got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCleanRemovesAllSensitiveTokens(t *testing.T) {
	input := "Jane Doe 5551234567 jane@corp.io http://jane.dev builds APIs"

	got := Clean(input)

	for _, token := range []string{"5551234567", "@", "http"} {
		if strings.Contains(got, token) {
			t.Errorf("Clean output %q still contains %q", got, token)
		}
	}
}

func TestCleanIdempotent(t *testing.T) {
	inputs := []string{
		"senior golang developer with grpc experience",
		"data analyst sql python",
		"",
		"plain lowercase words only",
	}

	for _, in := range inputs {
		once := Clean(in)
		twice := Clean(once)
		if once != twice {
			t.Errorf("Clean not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}
