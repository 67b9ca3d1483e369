// Package parser extracts the document metadata rules match on (tags and a
// display title) from Markdown content.
package parser

import (
	"bytes"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

var tagRe = regexp.MustCompile(`(?:^|\s)#([\p{L}_][\p{L}\p{N}_/-]*)`)

// Result holds the metadata of a Markdown document.
type Result struct {
	Frontmatter map[string]interface{}
	Body        string
	Tags        []string
	Aliases     []string
	Title       string
}

// Parse extracts frontmatter, tags, aliases and title from raw Markdown.
// Tags are returned without the leading '#', frontmatter tags first.
func Parse(data []byte) (*Result, error) {
	fm, body := splitFrontmatter(data)

	return &Result{
		Frontmatter: fm,
		Body:        body,
		Tags:        extractTags(body, fm),
		Aliases:     listField(fm, "aliases", "alias"),
		Title:       deriveTitle(fm, body),
	}, nil
}

// splitFrontmatter separates YAML frontmatter between leading "---" lines
// from the body. Missing, unterminated or invalid frontmatter leaves the
// whole content as body.
func splitFrontmatter(data []byte) (map[string]interface{}, string) {
	const delim = "---"
	trimmed := bytes.TrimLeft(data, "\n\r")
	if !bytes.HasPrefix(trimmed, []byte(delim)) {
		return nil, string(data)
	}

	rest := trimmed[len(delim):]
	idx := bytes.Index(rest, []byte("\n"+delim))
	if idx < 0 {
		return nil, string(data)
	}

	var fm map[string]interface{}
	if err := yaml.Unmarshal(rest[:idx], &fm); err != nil {
		return nil, string(data)
	}
	body := strings.TrimLeft(string(rest[idx+1+len(delim):]), "\n\r")
	return fm, body
}

// listField reads a frontmatter field that may be a YAML list or a comma or
// space separated string. The first key present wins.
func listField(fm map[string]interface{}, keys ...string) []string {
	for _, k := range keys {
		raw, ok := fm[k]
		if !ok {
			continue
		}
		var out []string
		switch v := raw.(type) {
		case []interface{}:
			for _, item := range v {
				if s, ok := item.(string); ok {
					out = append(out, s)
				}
			}
		case string:
			out = strings.FieldsFunc(v, func(r rune) bool { return r == ',' || r == ' ' })
		}
		return out
	}
	return nil
}

// extractTags merges frontmatter tags with inline #tags found in the body
// outside fenced code blocks.
func extractTags(body string, fm map[string]interface{}) []string {
	seen := make(map[string]struct{})
	var out []string
	add := func(t string) {
		t = strings.TrimPrefix(strings.TrimSpace(t), "#")
		if t == "" {
			return
		}
		if _, dup := seen[t]; dup {
			return
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}

	for _, t := range listField(fm, "tags", "tag") {
		add(t)
	}

	inFence := false
	for _, line := range strings.Split(body, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			inFence = !inFence
			continue
		}
		if inFence {
			continue
		}
		for _, m := range tagRe.FindAllStringSubmatch(line, -1) {
			add(m[1])
		}
	}
	return out
}

// deriveTitle returns the frontmatter "title", otherwise the first H1
// heading, otherwise "".
func deriveTitle(fm map[string]interface{}, body string) string {
	if s, ok := fm["title"].(string); ok && s != "" {
		return s
	}
	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "# ") {
			return strings.TrimSpace(trimmed[2:])
		}
	}
	return ""
}
