package tupilang

import "strings"

type Source struct {
	Name    string
	Content string
	Lines   []string
}

func NewSource(name string, content string) *Source {
	// trailing whitespace never produces a token and would only keep
	// IsAtEnd false after the last one, so drop it up front
	content = strings.TrimRight(content, " \t\r\n")
	return &Source{
		Name:    name,
		Content: content,
		Lines:   strings.Split(content, "\n"),
	}
}
