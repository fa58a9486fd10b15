// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"golang.org/x/net/html/charset"
)

// ErrDocumentFormat is returned when markup is not a well formed
// XML document.
var ErrDocumentFormat = errors.New("svg: malformed document")

// encodingDecl matches the encoding pseudo-attribute of an XML declaration.
var encodingDecl = regexp.MustCompile(`encoding\s*=\s*("[^"]*"|'[^']*')`)

// ReadString parses the given markup into a [Document].
func ReadString(markup string) (*Document, error) {
	return Read(strings.NewReader(markup))
}

// Read parses XML-formatted SVG input into a [Document].
// Documents declaring a non UTF-8 encoding are decoded, and
// their declaration is updated to UTF-8, which is what [Write]
// produces. Any syntax error, including mismatched start and
// end tags, is returned wrapped in [ErrDocumentFormat].
func Read(r io.Reader) (*Document, error) {
	decoder := xml.NewDecoder(r)
	decoder.Entity = xml.HTMLEntity
	decoder.CharsetReader = charset.NewReaderLabel

	doc := &Document{}
	var stack []*Element
	add := func(n Node) {
		if len(stack) == 0 {
			doc.Nodes = append(doc.Nodes, n)
			return
		}
		top := stack[len(stack)-1]
		top.Children = append(top.Children, n)
	}
	hasRoot := false
	for {
		t, err := decoder.RawToken()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDocumentFormat, err)
		}
		switch tok := t.(type) {
		case xml.StartElement:
			if len(stack) == 0 {
				if hasRoot {
					return nil, fmt.Errorf("%w: line %d: second root element <%s>", ErrDocumentFormat, line(decoder), qualified(tok.Name))
				}
				hasRoot = true
			}
			el := &Element{Name: tok.Name, Attrs: make([]xml.Attr, len(tok.Attr))}
			copy(el.Attrs, tok.Attr)
			add(el)
			stack = append(stack, el)
		case xml.EndElement:
			if len(stack) == 0 {
				return nil, fmt.Errorf("%w: line %d: unexpected </%s>", ErrDocumentFormat, line(decoder), qualified(tok.Name))
			}
			top := stack[len(stack)-1]
			if top.Name != tok.Name {
				return nil, fmt.Errorf("%w: line %d: element <%s> closed by </%s>", ErrDocumentFormat, line(decoder), qualified(top.Name), qualified(tok.Name))
			}
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) == 0 && strings.TrimSpace(string(tok)) != "" {
				return nil, fmt.Errorf("%w: line %d: text outside of the root element", ErrDocumentFormat, line(decoder))
			}
			add(CharData(tok))
		case xml.Comment:
			add(Comment(tok))
		case xml.ProcInst:
			inst := string(tok.Inst)
			if tok.Target == "xml" {
				inst = encodingDecl.ReplaceAllString(inst, `encoding="UTF-8"`)
			}
			add(ProcInst{Target: tok.Target, Inst: inst})
		case xml.Directive:
			add(Directive(tok))
		}
	}
	if len(stack) > 0 {
		return nil, fmt.Errorf("%w: unclosed element <%s>", ErrDocumentFormat, qualified(stack[len(stack)-1].Name))
	}
	if !hasRoot {
		return nil, fmt.Errorf("%w: no root element", ErrDocumentFormat)
	}
	return doc, nil
}

func line(d *xml.Decoder) int {
	l, _ := d.InputPos()
	return l
}
