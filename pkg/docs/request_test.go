package docs

import (
	"encoding/json"
	"testing"
)

func TestRequestJSONOmitsUnsetOperations(t *testing.T) {
	t.Parallel()

	req := Request{InsertText: &InsertTextRequest{
		Location: Location{Index: 1},
		Text:     "hi\n",
	}}

	data, err := json.Marshal(req)
	if err != nil {
		t.Fatal(err)
	}

	var m map[string]json.RawMessage
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatal(err)
	}
	if len(m) != 1 {
		t.Fatalf("request JSON has %d keys, want only insertText: %s", len(m), data)
	}
	if _, ok := m["insertText"]; !ok {
		t.Fatalf("request JSON missing insertText key: %s", data)
	}
}

func TestRangeValidity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		r     Range
		valid bool
	}{
		{"normal", Range{StartIndex: 1, EndIndex: 5}, true},
		{"empty", Range{StartIndex: 3, EndIndex: 3}, false},
		{"inverted", Range{StartIndex: 5, EndIndex: 1}, false},
		{"touches reserved index", Range{StartIndex: 0, EndIndex: 2}, false},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			if got := testCase.r.IsValid(); got != testCase.valid {
				t.Errorf("IsValid(%+v) = %v, want %v", testCase.r, got, testCase.valid)
			}
		})
	}
}

func TestHeadingStyle(t *testing.T) {
	t.Parallel()

	for level, want := range map[int]NamedStyleType{
		1: StyleHeading1,
		3: StyleHeading3,
		6: StyleHeading6,
	} {
		got, err := HeadingStyle(level)
		if err != nil {
			t.Fatalf("HeadingStyle(%d): %v", level, err)
		}
		if got != want {
			t.Errorf("HeadingStyle(%d) = %q, want %q", level, got, want)
		}
	}

	for _, level := range []int{0, 7, -2} {
		if _, err := HeadingStyle(level); err == nil {
			t.Errorf("HeadingStyle(%d) expected error", level)
		}
	}
}
