package docs

import (
	"math"
	"testing"
)

func TestParseHexColor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    RGBColor
		wantErr bool
	}{
		{"white with hash", "#FFFFFF", RGBColor{1, 1, 1}, false},
		{"black without hash", "000000", RGBColor{0, 0, 0}, false},
		{"lowercase", "#ededed", RGBColor{237.0 / 255, 237.0 / 255, 237.0 / 255}, false},
		{"pure red", "#FF0000", RGBColor{Red: 1}, false},
		{"too short", "#FFF", RGBColor{}, true},
		{"too long", "#FFFFFFFF", RGBColor{}, true},
		{"bad digits", "#GGHHII", RGBColor{}, true},
		{"empty", "", RGBColor{}, true},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseHexColor(testCase.input)
			if testCase.wantErr {
				if err == nil {
					t.Fatalf("ParseHexColor(%q) expected error", testCase.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseHexColor(%q): %v", testCase.input, err)
			}
			if !closeTo(got.Red, testCase.want.Red) ||
				!closeTo(got.Green, testCase.want.Green) ||
				!closeTo(got.Blue, testCase.want.Blue) {
				t.Errorf("ParseHexColor(%q) = %+v, want %+v", testCase.input, got, testCase.want)
			}
		})
	}
}

func TestHexColorWrapsOptionalColor(t *testing.T) {
	t.Parallel()

	c, err := HexColor("#D5E8F0")
	if err != nil {
		t.Fatal(err)
	}
	if c.Color == nil || c.Color.RGBColor == nil {
		t.Fatal("HexColor returned incomplete wrapper")
	}

	if _, err := HexColor("nope"); err == nil {
		t.Error("HexColor with invalid input expected error")
	}
}

func closeTo(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
