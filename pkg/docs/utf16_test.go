package docs

import "testing"

func TestUTF16Len(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  int64
	}{
		{"empty", "", 0},
		{"ascii", "hello", 5},
		{"newline and tab", "a\n\tb", 4},
		{"latin accent", "héllo", 5},
		{"bmp cjk", "日本語", 3},
		{"emoji surrogate pair", "😀", 2},
		{"mixed", "a😀b", 4},
		{"two emoji", "👍🏴", 4},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			if got := UTF16Len(testCase.input); got != testCase.want {
				t.Errorf("UTF16Len(%q) = %d, want %d", testCase.input, got, testCase.want)
			}
		})
	}
}
