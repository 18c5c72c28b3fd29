package highlight

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"github.com/tdewolff/parse/v2/html"
	"github.com/tdewolff/parse/v2/js"
)

// SyntaxError reports a sample that does not parse in its declared language.
type SyntaxError struct {
	Lang string
	Err  error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("malformed %s sample: %v", e.Lang, e.Err)
}

func (e *SyntaxError) Unwrap() error { return e.Err }

// Check parses code as lang and returns a *SyntaxError if it is malformed.
// Only css, js/javascript and html are checked; other languages always pass.
//
// Authoring markers are stripped before parsing: a leading ">" on any line,
// and for diff-<lang> tags a leading "-" or "+".
func Check(code, lang string) error {
	diff := strings.HasPrefix(lang, diffPrefix)
	base := strings.TrimPrefix(lang, diffPrefix)
	src := stripMarkers(code, diff)

	var err error
	switch base {
	case "css":
		err = checkCSS(src)
	case "js", "javascript":
		err = checkJS(src)
	case "html":
		err = checkHTML(src)
	default:
		return nil
	}
	if err != nil {
		return &SyntaxError{Lang: lang, Err: err}
	}
	return nil
}

// Checked reports whether Check has a parser for lang.
func Checked(lang string) bool {
	switch strings.TrimPrefix(lang, diffPrefix) {
	case "css", "js", "javascript", "html":
		return true
	}
	return false
}

func stripMarkers(code string, diff bool) string {
	lines := strings.Split(code, "\n")
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, ">"):
			lines[i] = " " + line[1:]
		case diff && (strings.HasPrefix(line, "-") || strings.HasPrefix(line, "+")):
			lines[i] = " " + line[1:]
		}
	}
	return strings.Join(lines, "\n")
}

func checkCSS(src string) error {
	p := css.NewParser(parse.NewInputString(src), false)
	for {
		gt, _, _ := p.Next()
		if gt == css.ErrorGrammar {
			if err := p.Err(); err != nil && err != io.EOF {
				return err
			}
			return nil
		}
	}
}

func checkJS(src string) error {
	_, err := js.Parse(parse.NewInputString(src), js.Options{})
	return err
}

// voidElements never take a closing tag.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}

// optionalEnd lists elements whose end tag may be omitted.
var optionalEnd = map[string]bool{
	"html": true, "head": true, "body": true, "p": true, "li": true,
	"dt": true, "dd": true, "option": true, "tr": true, "td": true,
	"th": true, "thead": true, "tbody": true, "tfoot": true,
}

// checkHTML walks the tokens of src and requires balanced tags, closed
// attribute quotes and terminated comments. The lexer itself accepts any
// input, so structure is tracked here.
func checkHTML(src string) error {
	l := html.NewLexer(parse.NewInputString(src))
	var open []string
	tag := ""
	for {
		tt, data := l.Next()
		switch tt {
		case html.ErrorToken:
			if err := l.Err(); err != nil && err != io.EOF {
				return err
			}
			if tag != "" {
				return fmt.Errorf("unterminated <%s> tag", tag)
			}
			for i := len(open) - 1; i >= 0; i-- {
				if !optionalEnd[open[i]] {
					return fmt.Errorf("unclosed <%s>", open[i])
				}
			}
			return nil
		case html.StartTagToken:
			tag = string(l.Text())
		case html.AttributeToken:
			if v := l.AttrVal(); len(v) > 0 && (v[0] == '"' || v[0] == '\'') {
				if len(v) < 2 || v[len(v)-1] != v[0] {
					return fmt.Errorf("unterminated %s attribute on <%s>", l.AttrKey(), tag)
				}
			}
		case html.StartTagCloseToken:
			if !voidElements[tag] {
				open = append(open, tag)
			}
			tag = ""
		case html.StartTagVoidToken:
			tag = ""
		case html.EndTagToken:
			name := strings.ToLower(string(l.Text()))
			if !bytes.HasSuffix(data, []byte(">")) {
				return fmt.Errorf("unterminated </%s> tag", name)
			}
			if voidElements[name] {
				continue
			}
			for len(open) > 0 && open[len(open)-1] != name && optionalEnd[open[len(open)-1]] {
				open = open[:len(open)-1]
			}
			if len(open) == 0 {
				return fmt.Errorf("unexpected </%s>", name)
			}
			if top := open[len(open)-1]; top != name {
				return fmt.Errorf("mismatched </%s>, expected </%s>", name, top)
			}
			open = open[:len(open)-1]
		case html.CommentToken:
			switch {
			case bytes.HasPrefix(data, []byte("<!--")):
				if !bytes.HasSuffix(data, []byte("-->")) && !bytes.HasSuffix(data, []byte("--!>")) {
					return fmt.Errorf("unterminated comment")
				}
			case bytes.HasPrefix(data, []byte("</")):
				return fmt.Errorf("malformed end tag %q", data)
			case !bytes.HasSuffix(data, []byte(">")):
				return fmt.Errorf("unterminated markup %q", data)
			}
		}
	}
}
