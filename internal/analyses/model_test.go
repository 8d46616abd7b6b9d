package analyses

import "testing"

func TestPreview(t *testing.T) {
	tests := []struct {
		name string
		text string
		n    int
		want string
	}{
		{"short text untouched", "hello world", 50, "hello world"},
		{"exact length untouched", "abcde", 5, "abcde"},
		{"long text truncated", "abcdefghij", 5, "abcde..."},
		{"newlines flattened", "line one\nline two", 50, "line one line two"},
		{"tabs and returns flattened", "a\tb\rc", 50, "a b c"},
		{"multibyte counted as code points", "héllo wörld", 7, "héllo w..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Analysis{Text: tt.text}
			if got := a.Preview(tt.n); got != tt.want {
				t.Errorf("Preview(%d) = %q, want %q", tt.n, got, tt.want)
			}
		})
	}
}
