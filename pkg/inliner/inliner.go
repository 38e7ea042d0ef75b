package inliner

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"regexp"
	"strings"
)

const (
	linesep  = "\n"
	closeTag = "</script>"
)

// Marker is one insertion point found in a template.
type Marker struct {
	Line   int    // 1-based line number of the marker
	Indent string // whitespace before the comment on its line
	Start  int    // byte offset of the line start
	End    int    // byte offset just past the closing "-->"
}

// Inliner replaces shader markers in a template with script elements.
// It holds no state between calls and may be reused.
type Inliner struct {
	logger *slog.Logger
	config Config
	marker *regexp.Regexp
	tab    string
}

// New creates an Inliner. A nil logger discards all output.
func New(logger *slog.Logger, config Config) *Inliner {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if config.TabWidth < 0 {
		config.TabWidth = 0
	}
	return &Inliner{
		logger: logger,
		config: config,
		marker: regexp.MustCompile(`(?m)^([ \t]*)<!--[ *]*` + regexp.QuoteMeta(config.Phrase) + `[ *]*-->`),
		tab:    strings.Repeat(" ", config.TabWidth),
	}
}

// Markers lists every marker in document, in order of appearance.
func (in *Inliner) Markers(document string) []Marker {
	var markers []Marker
	line, last := 1, 0
	for _, loc := range in.marker.FindAllStringSubmatchIndex(document, -1) {
		line += strings.Count(document[last:loc[0]], "\n")
		last = loc[0]
		markers = append(markers, Marker{
			Line:   line,
			Indent: document[loc[2]:loc[3]],
			Start:  loc[0],
			End:    loc[1],
		})
	}
	return markers
}

// Block builds the text that replaces a marker indented by indent.
// The first line carries indent itself because the marker's own leading
// whitespace is consumed by the substitution.
func (in *Inliner) Block(indent string, fragments []Fragment) string {
	if len(fragments) == 0 {
		return ""
	}
	lines := make([]string, 0, 3*len(fragments))
	for _, f := range fragments {
		body := strings.Split(strings.TrimSpace(f.Source), linesep)
		lines = append(lines,
			fmt.Sprintf(`<script id="%s" type="x-shader/x-%s">`, f.ID(), f.Kind),
			in.tab+strings.Join(body, linesep+indent+in.tab),
			closeTag,
		)
	}
	return indent + strings.Join(lines, linesep+indent)
}

// RenderString replaces every marker in document with the wrapped fragments.
// A document without markers is returned unchanged.
func (in *Inliner) RenderString(document string, fragments []Fragment) (string, error) {
	markers := in.Markers(document)
	if len(markers) == 0 {
		in.logger.Debug("No shader markers found in template")
		return document, nil
	}
	if len(fragments) == 0 {
		return "", ErrNoFragments
	}

	var b strings.Builder
	last := 0
	for _, m := range markers {
		in.logger.Debug("Filling shader marker", "line", m.Line, "indent", len(m.Indent), "fragments", len(fragments))
		b.WriteString(document[last:m.Start])
		b.WriteString(in.Block(m.Indent, fragments))
		last = m.End
	}
	b.WriteString(document[last:])
	return b.String(), nil
}

// Render reads the template at templatePath and the fragments at
// fragmentPaths and returns the substituted document. Nothing is written.
func (in *Inliner) Render(templatePath string, fragmentPaths []string) (string, error) {
	fragments, err := LoadFragments(fragmentPaths)
	if err != nil {
		return "", err
	}
	for _, f := range fragments {
		in.logger.Debug("Loaded shader fragment", "path", f.Path, "id", f.ID(), "kind", f.Kind)
	}

	b, err := os.ReadFile(templatePath)
	if err != nil {
		return "", fmt.Errorf("read template %s: %w", templatePath, err)
	}

	out, err := in.RenderString(string(b), fragments)
	if err != nil {
		return "", fmt.Errorf("render %s: %w", templatePath, err)
	}
	return out, nil
}
