// Package xmlval decides whether user input is Alteryx workflow XML and, when
// it is, produces a simplified rendering of it for prompt assembly.
package xmlval

import (
	"encoding/xml"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// Kind classifies a piece of input text
type Kind int

const (
	// NotXML means the input failed the strict parse (or is empty)
	NotXML Kind = iota
	// KindLooksLikeXML means the input passed only the bracket heuristic
	KindLooksLikeXML
	// WellFormed means the input parsed as a complete XML document
	WellFormed
)

// Result is the outcome of classifying one input string
type Result struct {
	Kind Kind
	// Fragments is a flattened rendering of the document: one entry per
	// element that carries text or attributes, in document order.
	Fragments []string
	// Err carries the parser's message verbatim when Kind is NotXML
	Err string
}

var alteryxRootRe = regexp.MustCompile(`(?i)<\s*(AlteryxDocument|AlteryxWorkflow)[\s>/]`)

// LooksLikeXML is the fast heuristic: trimmed input starts with '<' and ends
// with '>'. It accepts bracket-shaped garbage; Validate has the final word.
func LooksLikeXML(s string) bool {
	trimmed := strings.TrimSpace(s)
	return len(trimmed) >= 2 && strings.HasPrefix(trimmed, "<") && strings.HasSuffix(trimmed, ">")
}

// LooksLikeMarkup reports whether the input plausibly opens a tag. This is the
// routing check: anything starting with '<' is sent to the conversion
// pipeline, where the strict parse decides whether it is actually XML.
func LooksLikeMarkup(s string) bool {
	return strings.HasPrefix(strings.TrimSpace(s), "<")
}

// HasAlteryxRoot checks for an Alteryx workflow root tag by regex, without
// parsing. Used for logging only; it never gates the pipeline.
func HasAlteryxRoot(s string) bool {
	return alteryxRootRe.MatchString(s)
}

// Validate runs a strict parse over the input. On success the Result carries
// the extracted fragments; on failure it carries the parser's error message
// and the caller is expected to surface it to the user.
func Validate(s string) Result {
	if strings.TrimSpace(s) == "" {
		return Result{Kind: NotXML, Err: "empty input"}
	}

	decoder := xml.NewDecoder(strings.NewReader(s))

	var fragments []string
	var stack []string
	rootClosed := false

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Result{Kind: NotXML, Err: err.Error()}
		}

		switch tok := token.(type) {
		case xml.StartElement:
			if rootClosed {
				return Result{Kind: NotXML, Err: fmt.Sprintf("unexpected second root element <%s>", tok.Name.Local)}
			}
			stack = append(stack, tok.Name.Local)
			if len(tok.Attr) > 0 {
				fragments = append(fragments, renderStart(tok))
			}
		case xml.EndElement:
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				rootClosed = true
			}
		case xml.CharData:
			text := strings.TrimSpace(string(tok))
			if text == "" {
				continue
			}
			if len(stack) == 0 {
				return Result{Kind: NotXML, Err: fmt.Sprintf("text %q outside the root element", text)}
			}
			fragments = append(fragments, fmt.Sprintf("<%s> %s", stack[len(stack)-1], text))
		}
	}

	if !rootClosed {
		return Result{Kind: NotXML, Err: "missing root element"}
	}
	return Result{Kind: WellFormed, Fragments: fragments}
}

func renderStart(elem xml.StartElement) string {
	var b strings.Builder
	b.WriteString("<")
	b.WriteString(elem.Name.Local)
	for _, attr := range elem.Attr {
		fmt.Fprintf(&b, " %s=%q", attr.Name.Local, attr.Value)
	}
	b.WriteString(">")
	return b.String()
}
