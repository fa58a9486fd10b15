// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package svg provides a minimal typed element tree for SVG icon
// markup, with a reader and a deterministic writer, a visitor over
// the graphic elements, and the [Rewriter] that recolors icons
// through a theme palette.
package svg

import (
	"encoding/xml"
	"slices"
)

// Node is a node of a [Document] tree: one of [*Element], [CharData],
// [Comment], [ProcInst], or [Directive].
type Node interface {
	isNode()
}

// Element is an element node with its attributes in source order.
type Element struct {

	// Name is the element name. The Space field holds the
	// literal namespace prefix, not the resolved namespace URL.
	Name xml.Name

	// Attrs are the attributes in the order they were read.
	Attrs []xml.Attr

	// Children are the child nodes of the element.
	Children []Node
}

// CharData is a text node, stored unescaped.
type CharData string

// Comment is a comment node, without the delimiters.
type Comment string

// ProcInst is a processing instruction such as the XML declaration.
type ProcInst struct {
	Target string
	Inst   string
}

// Directive is a directive such as a DOCTYPE, without the delimiters.
type Directive string

func (*Element) isNode() {}
func (CharData) isNode()  {}
func (Comment) isNode()   {}
func (ProcInst) isNode()  {}
func (Directive) isNode() {}

// Document is a parsed SVG document: the top level nodes, including
// the prolog before the root element.
type Document struct {
	Nodes []Node
}

// Root returns the first top level element, or nil if there is none.
func (d *Document) Root() *Element {
	for _, n := range d.Nodes {
		if el, ok := n.(*Element); ok {
			return el
		}
	}
	return nil
}

// Attr returns the value of the attribute with the given local name
// and no prefix.
func (el *Element) Attr(name string) (string, bool) {
	i := el.attrIndex(name)
	if i < 0 {
		return "", false
	}
	return el.Attrs[i].Value, true
}

// SetAttr sets the value of the attribute with the given local name,
// appending it if it is not present.
func (el *Element) SetAttr(name, value string) {
	if i := el.attrIndex(name); i >= 0 {
		el.Attrs[i].Value = value
		return
	}
	el.Attrs = append(el.Attrs, xml.Attr{Name: xml.Name{Local: name}, Value: value})
}

func (el *Element) attrIndex(name string) int {
	return slices.IndexFunc(el.Attrs, func(a xml.Attr) bool {
		return a.Name.Space == "" && a.Name.Local == name
	})
}

// qualified returns the name as written in markup, prefix:local.
func qualified(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	return n.Space + ":" + n.Local
}
