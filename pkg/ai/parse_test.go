package ai

import (
	"errors"
	"testing"

	"github.com/GAJULASAINATH/MacroVerse/pkg/utils"
)

func TestStripCodeFence(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"```json\n{\"a\":1}\n```", `{"a":1}`},
		{`{"a":1}`, `{"a":1}`},
		{"  ```\n{\"a\":1}\n```  ", `{"a":1}`},
	}
	for _, c := range cases {
		if got := StripCodeFence(c.in); got != c.want {
			t.Errorf("StripCodeFence(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

const validEstimate = "```json\n" + `{
  "macros": {"calories": 500, "protein": 20, "carbs": 60, "fats": 15},
  "micros": {"vitaminA": "300mcg", "vitaminC": "10mg", "iron": "2mg", "calcium": "100mg"}
}` + "\n```"

func TestParseNutrientEstimate(t *testing.T) {
	est, err := parseNutrientEstimate(validEstimate)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if est.Macros.Calories != 500 || est.Macros.Protein != 20 {
		t.Errorf("macros = %+v", est.Macros)
	}
	if est.Micros.VitaminA != "300mcg" {
		t.Errorf("micros = %+v", est.Micros)
	}
}

func TestParseNutrientEstimateMalformed(t *testing.T) {
	cases := map[string]string{
		"not json":          "the food looks tasty",
		"missing macros":    `{"micros": {"vitaminA":"a","vitaminC":"b","iron":"c","calcium":"d"}}`,
		"missing field":     `{"macros": {"calories": 500}, "micros": {"vitaminA":"a","vitaminC":"b","iron":"c","calcium":"d"}}`,
		"negative calories": `{"macros": {"calories": -5, "protein": 1, "carbs": 1, "fats": 1}, "micros": {"vitaminA":"a","vitaminC":"b","iron":"c","calcium":"d"}}`,
		"wrong type":        `{"macros": {"calories": "lots", "protein": 1, "carbs": 1, "fats": 1}, "micros": {"vitaminA":"a","vitaminC":"b","iron":"c","calcium":"d"}}`,
	}
	for name, in := range cases {
		if _, err := parseNutrientEstimate(in); !errors.Is(err, utils.ErrMalformedModelOutput) {
			t.Errorf("%s: err = %v, want ErrMalformedModelOutput", name, err)
		}
	}
}

func TestParseNarrative(t *testing.T) {
	in := "```json\n" + `{"overview":"ok","recommendations":"eat greens","highConsumption":"fats","lowConsumption":"protein"}` + "\n```"
	n, err := parseNarrative(in)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if n.Recommendations != "eat greens" {
		t.Errorf("narrative = %+v", n)
	}
}

func TestParseNarrativeEmptyField(t *testing.T) {
	in := `{"overview":"ok","recommendations":"","highConsumption":"fats","lowConsumption":"protein"}`
	if _, err := parseNarrative(in); !errors.Is(err, utils.ErrMalformedModelOutput) {
		t.Errorf("err = %v, want ErrMalformedModelOutput", err)
	}
}
