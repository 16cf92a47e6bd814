package content

import (
	"errors"
	"reflect"
	"testing"
)

func TestApplyReadBack(t *testing.T) {
	doc := Default()

	cases := []struct {
		name    string
		section string
		path    Path
		value   any
	}{
		{"scalar field", "hero", Path{Key("titleLine1")}, "I'm a Builder"},
		{"nested record field", "about", Path{Key("stats"), Key("experience")}, "6 Y."},
		{"list element field", "services", Path{Key("cards"), Index(1), Key("title")}, "Backend Development"},
		{"list element record", "footer", Path{Key("socials"), Index(0)}, map[string]any{"id": float64(7), "platform": "twitter", "url": "https://x.com/me"}},
		{"string list element", "header", Path{Key("links"), Index(2)}, "Work"},
		{"number leaf", "analytics", Path{Key("totalViews")}, float64(42)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			next, err := Apply(doc, tc.section, tc.path, tc.value)
			if err != nil {
				t.Fatalf("Apply failed: %v", err)
			}
			got, err := Resolve(next, tc.section, tc.path)
			if err != nil {
				t.Fatalf("Resolve failed: %v", err)
			}
			if !reflect.DeepEqual(got, tc.value) {
				t.Fatalf("read back %v, want %v", got, tc.value)
			}
		})
	}
}

func TestApplyLeavesEverythingElseUntouched(t *testing.T) {
	doc := Default()
	snapshot := doc.Clone()

	next, err := Apply(doc, "blog", Path{Key("posts"), Index(0), Key("title")}, "Changed")
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	// The input document must be bit-identical to before the call.
	if !reflect.DeepEqual(doc, snapshot) {
		t.Fatal("Apply mutated its input document")
	}

	// Every section except blog must be equal, and the sibling fields of the
	// mutated post must be preserved.
	for name := range Sections {
		if name == "blog" {
			continue
		}
		if !reflect.DeepEqual(next[name], doc[name]) {
			t.Fatalf("section %q changed by unrelated mutation", name)
		}
	}
	post := next["blog"]["posts"].([]any)[0].(map[string]any)
	if post["title"] != "Changed" {
		t.Fatalf("title = %v, want Changed", post["title"])
	}
	orig := doc["blog"]["posts"].([]any)[0].(map[string]any)
	if post["body"] != orig["body"] || post["date"] != orig["date"] || post["id"] != orig["id"] {
		t.Fatal("sibling fields of mutated post changed")
	}
}

func TestApplySharesUntouchedSections(t *testing.T) {
	doc := Default()
	next, err := Apply(doc, "hero", Path{Key("badge")}, "Hi")
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	// Untouched sections keep the same backing maps.
	if reflect.ValueOf(next["about"]).Pointer() != reflect.ValueOf(doc["about"]).Pointer() {
		t.Fatal("expected untouched section to be structurally shared")
	}
	if reflect.ValueOf(next["hero"]).Pointer() == reflect.ValueOf(doc["hero"]).Pointer() {
		t.Fatal("mutated section must be copied, not shared")
	}
}

func TestApplyListSiblingIsolation(t *testing.T) {
	doc := Default()
	// Seed a second and third post so there are real siblings.
	posts := doc["blog"]["posts"].([]any)
	posts = append(posts,
		map[string]any{"id": float64(2), "image": "", "date": "Nov 1, 2023", "comments": float64(0), "title": "Second", "body": "b2"},
		map[string]any{"id": float64(3), "image": "", "date": "Nov 8, 2023", "comments": float64(0), "title": "Third", "body": "b3"},
	)
	doc, err := Apply(doc, "blog", Path{Key("posts")}, posts)
	if err != nil {
		t.Fatalf("seed posts: %v", err)
	}

	next, err := Apply(doc, "blog", Path{Key("posts"), Index(1), Key("title")}, "Second, revised")
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	got := next["blog"]["posts"].([]any)
	want := doc["blog"]["posts"].([]any)
	for i := range want {
		if i == 1 {
			continue
		}
		if !reflect.DeepEqual(got[i], want[i]) {
			t.Fatalf("post %d changed by mutation of post 1", i)
		}
	}
	if got[1].(map[string]any)["body"] != "b2" {
		t.Fatal("body of mutated post changed")
	}
}

func TestApplyWholeListAppendThenRemoveRestores(t *testing.T) {
	doc := Default()
	original := doc["blog"]["posts"].([]any)

	appended := make([]any, len(original), len(original)+1)
	copy(appended, original)
	appended = append(appended, map[string]any{"id": float64(999), "title": "X", "body": ""})

	withNew, err := Apply(doc, "blog", Path{Key("posts")}, appended)
	if err != nil {
		t.Fatalf("append via list replace: %v", err)
	}
	if len(withNew["blog"]["posts"].([]any)) != len(original)+1 {
		t.Fatal("append did not grow the list")
	}

	// Remove the element we just appended by splicing it out.
	spliced := make([]any, 0, len(original))
	for i, elem := range withNew["blog"]["posts"].([]any) {
		if i == len(original) {
			continue
		}
		spliced = append(spliced, elem)
	}
	restored, err := Apply(withNew, "blog", Path{Key("posts")}, spliced)
	if err != nil {
		t.Fatalf("remove via list replace: %v", err)
	}
	if !reflect.DeepEqual(restored["blog"]["posts"], doc["blog"]["posts"]) {
		t.Fatal("append+remove did not restore the original list")
	}
}

func TestApplyErrors(t *testing.T) {
	doc := Default()

	cases := []struct {
		name    string
		section string
		path    Path
		want    error
	}{
		{"unknown section", "theme", Path{Key("primaryColor")}, ErrUnknownSection},
		{"empty path", "hero", Path{}, ErrInvalidPath},
		{"index past end of list", "services", Path{Key("cards"), Index(5), Key("title")}, ErrOutOfRange},
		{"negative index", "services", Path{Key("cards"), Index(-1)}, ErrOutOfRange},
		{"index into scalar", "hero", Path{Key("badge"), Index(0)}, ErrInvalidPath},
		{"key into scalar", "hero", Path{Key("badge"), Key("deep")}, ErrInvalidPath},
		{"missing intermediate is not vivified", "about", Path{Key("missing"), Key("leaf")}, ErrInvalidPath},
		{"key into list", "blog", Path{Key("posts"), Key("title")}, ErrInvalidPath},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			snapshot := doc.Clone()
			_, err := Apply(doc, tc.section, tc.path, "v")
			if !errors.Is(err, tc.want) {
				t.Fatalf("err = %v, want %v", err, tc.want)
			}
			if !reflect.DeepEqual(doc, snapshot) {
				t.Fatal("failed mutation altered the document")
			}
		})
	}
}

func TestApplyOutOfRangeLeavesListUntouched(t *testing.T) {
	doc := Default()
	before := doc["services"]["cards"]

	_, err := Apply(doc, "services", Path{Key("cards"), Index(5), Key("title")}, "nope")
	if !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("err = %v, want ErrOutOfRange", err)
	}
	if !reflect.DeepEqual(doc["services"]["cards"], before) {
		t.Fatal("services.cards changed after failed mutation")
	}
}

func TestParsePath(t *testing.T) {
	path, err := ParsePath([]any{"posts", float64(2), "title"})
	if err != nil {
		t.Fatalf("ParsePath failed: %v", err)
	}
	want := Path{Key("posts"), Index(2), Key("title")}
	if !reflect.DeepEqual(path, want) {
		t.Fatalf("path = %#v, want %#v", path, want)
	}

	if _, err := ParsePath([]any{"posts", true}); !errors.Is(err, ErrInvalidPath) {
		t.Fatalf("err = %v, want ErrInvalidPath", err)
	}
}

func TestResolveErrors(t *testing.T) {
	doc := Default()
	if _, err := Resolve(doc, "nope", Path{Key("x")}); !errors.Is(err, ErrUnknownSection) {
		t.Fatalf("err = %v, want ErrUnknownSection", err)
	}
	if _, err := Resolve(doc, "blog", Path{Key("posts"), Index(9)}); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("err = %v, want ErrOutOfRange", err)
	}
	if _, err := Resolve(doc, "hero", Path{Key("badge"), Key("deep")}); !errors.Is(err, ErrInvalidPath) {
		t.Fatalf("err = %v, want ErrInvalidPath", err)
	}
}
