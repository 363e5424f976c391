package module

import "gopkg.in/yaml.v3"

// FrontMatter is an optional YAML block prefixing a module's doc comment
// (delimited the same way as this repository's own Markdown front
// matter), consumed only by internal/docgen's page header. It is parsed
// defensively: a module whose doc comment does not start with a
// front-matter block, or whose block fails to parse, simply has a nil
// FrontMatter and an unmodified Doc — the rest of elaboration never
// depends on it.
type FrontMatter struct {
	Title   string   `yaml:"title"`
	Summary string   `yaml:"summary"`
	Tags    []string `yaml:"tags"`
}

const frontMatterDelim = "---"

// ParseFrontMatter splits a leading "---\n...\n---\n" YAML block off doc,
// returning the parsed FrontMatter (nil if none was present or it failed
// to parse) and the remaining doc text.
func ParseFrontMatter(doc string) (*FrontMatter, string) {
	rest := doc
	if len(rest) < len(frontMatterDelim) || rest[:len(frontMatterDelim)] != frontMatterDelim {
		return nil, doc
	}
	body := rest[len(frontMatterDelim):]
	if len(body) > 0 && body[0] == '\n' {
		body = body[1:]
	}

	end := indexDelim(body)
	if end < 0 {
		return nil, doc
	}

	block := body[:end]
	remainder := body[end+len(frontMatterDelim):]
	if len(remainder) > 0 && remainder[0] == '\n' {
		remainder = remainder[1:]
	}

	var fm FrontMatter
	if err := yaml.Unmarshal([]byte(block), &fm); err != nil {
		return nil, doc
	}
	return &fm, remainder
}

func indexDelim(s string) int {
	for i := 0; i+len(frontMatterDelim) <= len(s); i++ {
		if s[i] == '\n' && i+1+len(frontMatterDelim) <= len(s) && s[i+1:i+1+len(frontMatterDelim)] == frontMatterDelim {
			return i + 1
		}
	}
	return -1
}
