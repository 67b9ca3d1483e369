package parser

import (
	"reflect"
	"testing"
)

func TestParse_FrontmatterAndBody(t *testing.T) {
	input := []byte("---\ntitle: Hello\ntags:\n  - go\n  - '#menu'\n---\n# Hello\nBody text.\n")
	r, err := Parse(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Title != "Hello" {
		t.Errorf("title = %q, want %q", r.Title, "Hello")
	}
	if !reflect.DeepEqual(r.Tags, []string{"go", "menu"}) {
		t.Errorf("tags = %v, want [go menu]", r.Tags)
	}
	if r.Body != "# Hello\nBody text.\n" {
		t.Errorf("body = %q", r.Body)
	}
}

func TestParse_NoFrontmatter(t *testing.T) {
	r, err := Parse([]byte("# Just a heading\nSome text.\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Frontmatter != nil {
		t.Errorf("expected nil frontmatter, got %v", r.Frontmatter)
	}
	if r.Title != "Just a heading" {
		t.Errorf("title = %q, want %q", r.Title, "Just a heading")
	}
}

func TestParse_InvalidYAMLFallback(t *testing.T) {
	r, err := Parse([]byte("---\n: invalid: yaml: {{{\n---\nBody #kept\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Frontmatter != nil {
		t.Errorf("expected nil frontmatter on invalid YAML")
	}
	if !reflect.DeepEqual(r.Tags, []string{"kept"}) {
		t.Errorf("tags = %v, want [kept]", r.Tags)
	}
}

func TestParse_StringTags(t *testing.T) {
	r, _ := Parse([]byte("---\ntags: project, work daily\naliases: Home\n---\n"))
	if !reflect.DeepEqual(r.Tags, []string{"project", "work", "daily"}) {
		t.Errorf("tags = %v", r.Tags)
	}
	if !reflect.DeepEqual(r.Aliases, []string{"Home"}) {
		t.Errorf("aliases = %v", r.Aliases)
	}
}

func TestExtractTags_InlineAndDedup(t *testing.T) {
	body := "Working on #project today.\n#project again and #area/sub\nprice#notatag\n"
	tags := extractTags(body, map[string]interface{}{"tags": []interface{}{"project"}})
	want := []string{"project", "area/sub"}
	if !reflect.DeepEqual(tags, want) {
		t.Errorf("tags = %v, want %v", tags, want)
	}
}

func TestExtractTags_SkipsCodeFences(t *testing.T) {
	body := "```sh\n# comment #nottag\n```\nreal #tag\n"
	tags := extractTags(body, nil)
	if !reflect.DeepEqual(tags, []string{"tag"}) {
		t.Errorf("tags = %v, want [tag]", tags)
	}
}

func TestExtractTags_HeadingIsNotTag(t *testing.T) {
	if tags := extractTags("# Heading\n## Sub\n", nil); len(tags) != 0 {
		t.Errorf("tags = %v, want none", tags)
	}
}

func TestDeriveTitle_Empty(t *testing.T) {
	if got := deriveTitle(nil, "no heading here"); got != "" {
		t.Errorf("title = %q, want empty", got)
	}
}
