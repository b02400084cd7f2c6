package io

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/topodyn/braidkit/pkg/braid"
)

func TestJSONRoundTrip(t *testing.T) {
	w, err := braid.New(5, 1, -2, 3)
	if err != nil {
		t.Fatalf("word: %v", err)
	}
	c, err := braid.NewChrono(w, []float64{0.5, 1.0, 1.5})
	if err != nil {
		t.Fatalf("chrono: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteJSON(c, &buf); err != nil {
		t.Fatalf("write: %v", err)
	}
	back, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !back.Equal(c) || back.Strands() != 5 {
		t.Errorf("round trip changed the braid: %v -> %v", c, back)
	}
}

func TestReadJSONDefaults(t *testing.T) {
	c, err := ReadJSON(strings.NewReader(`{"gens": [1, -2]}`))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if c.Strands() != 3 {
		t.Errorf("strands = %d, want 3", c.Strands())
	}
	if !reflect.DeepEqual(c.Times(), []float64{1, 2}) {
		t.Errorf("times = %v, want defaults", c.Times())
	}
}

func TestReadJSONValidation(t *testing.T) {
	cases := map[string]string{
		"malformed":      `{"gens": [1,`,
		"zero generator": `{"gens": [1, 0]}`,
		"narrow strands": `{"gens": [1, -3], "strands": 2}`,
		"time count":     `{"gens": [1, 2], "times": [1.0]}`,
		"time order":     `{"gens": [1, 2], "times": [2.0, 1.0]}`,
	}
	for name, in := range cases {
		if _, err := ReadJSON(strings.NewReader(in)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestReadText(t *testing.T) {
	in := strings.NewReader(`
# generator lists, one word per line
1 -2 3
1,2,1   # trailing comment

-1 -1
`)
	words, err := ReadText(in)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(words) != 3 {
		t.Fatalf("got %d words, want 3", len(words))
	}
	if !reflect.DeepEqual(words[0].Gens(), []int{1, -2, 3}) {
		t.Errorf("first word = %v", words[0].Gens())
	}
	if words[2].Strands() != 2 {
		t.Errorf("third word strands = %d, want 2", words[2].Strands())
	}

	if _, err := ReadText(strings.NewReader("1 oops")); err == nil {
		t.Error("expected error for non-numeric generator")
	}
}
