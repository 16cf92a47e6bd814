package content

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

func TestDefaultPassesValidation(t *testing.T) {
	if err := Validate(Default()); err != nil {
		t.Fatalf("default document failed validation: %v", err)
	}
}

func TestDefaultRoundTripsThroughJSON(t *testing.T) {
	doc := Default()
	raw, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back Document
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(doc, back) {
		t.Fatal("default document does not survive a JSON round trip")
	}
}

func TestValidateRejectsUnknownSection(t *testing.T) {
	doc := Default()
	doc["theme"] = Section{"primaryColor": "#000000"}
	if err := Validate(doc); !errors.Is(err, ErrUnknownSection) {
		t.Fatalf("err = %v, want ErrUnknownSection", err)
	}
}

func TestValidateRejectsUnknownField(t *testing.T) {
	doc := Default()
	doc["hero"]["shoeSize"] = "44"
	if err := Validate(doc); !errors.Is(err, ErrInvalidShape) {
		t.Fatalf("err = %v, want ErrInvalidShape", err)
	}
}

func TestValidateRejectsKindMismatch(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(Document)
	}{
		{"number where string expected", func(d Document) { d["hero"]["badge"] = float64(1) }},
		{"string where number expected", func(d Document) { d["analytics"]["totalViews"] = "many" }},
		{"scalar where record expected", func(d Document) { d["about"]["stats"] = "5 Y." }},
		{"scalar where list expected", func(d Document) { d["blog"]["posts"] = "none" }},
		{"non-record list element", func(d Document) { d["services"]["cards"] = []any{"card"} }},
		{"unknown field in list element", func(d Document) {
			d["footer"]["socials"] = []any{map[string]any{"id": float64(1), "handle": "@me"}}
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc := Default()
			tc.mutate(doc)
			if err := Validate(doc); !errors.Is(err, ErrInvalidShape) {
				t.Fatalf("err = %v, want ErrInvalidShape", err)
			}
		})
	}
}

func TestValidateToleratesMissingFields(t *testing.T) {
	// Replace is full-document, but a sparse section is still a valid shape.
	doc := Document{
		"hero": Section{"badge": "Hi"},
		"seo":  Section{},
	}
	if err := Validate(doc); err != nil {
		t.Fatalf("sparse document rejected: %v", err)
	}
}

func TestKnownSection(t *testing.T) {
	for _, name := range []string{"header", "hero", "about", "services", "blog", "cta", "clients", "footer", "seo", "analytics"} {
		if !KnownSection(name) {
			t.Fatalf("section %q should be known", name)
		}
	}
	if KnownSection("theme") || KnownSection("") {
		t.Fatal("unexpected section accepted")
	}
}
