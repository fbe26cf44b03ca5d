package converter

import (
	"reflect"
	"testing"
)

func TestStripHTML(t *testing.T) {
	tests := []struct {
		name   string
		markup string
		want   string
	}{
		{
			name:   "empty input",
			markup: "",
			want:   "",
		},
		{
			name:   "plain text passes through",
			markup: "just text",
			want:   "just text",
		},
		{
			name:   "tags removed and blocks joined by spaces",
			markup: "<p>Soft cotton.</p><p>Machine washable.</p>",
			want:   "Soft cotton. Machine washable.",
		},
		{
			name:   "script and style dropped entirely",
			markup: "<style>p{color:red}</style><p>Hello</p><script>alert(1)</script>",
			want:   "Hello",
		},
		{
			name:   "whitespace collapsed",
			markup: "<div>  lots\n\n of \t space  </div>",
			want:   "lots of space",
		},
		{
			name:   "malformed markup is best-effort",
			markup: "<p>unclosed <b>bold",
			want:   "unclosed bold",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripHTML(tt.markup); got != tt.want {
				t.Errorf("StripHTML(%q) = %q, want %q", tt.markup, got, tt.want)
			}
		})
	}
}

func TestExtractImageURLs(t *testing.T) {
	markup := `<p>Look:</p>
<img src="https://cdn.example.com/a.jpg" alt="a">
<img alt="no src">
<img src="https://cdn.example.com/b.jpg">`

	got := ExtractImageURLs(markup)
	want := []string{"https://cdn.example.com/a.jpg", "https://cdn.example.com/b.jpg"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractImageURLs = %v, want %v", got, want)
	}
}

func TestExtractImageURLs_Empty(t *testing.T) {
	if got := ExtractImageURLs(""); got != nil {
		t.Errorf("ExtractImageURLs(\"\") = %v, want nil", got)
	}

	if got := ExtractImageURLs("<p>no images here</p>"); got != nil {
		t.Errorf("ExtractImageURLs(no images) = %v, want nil", got)
	}
}
