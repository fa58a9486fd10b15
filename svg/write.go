// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"bufio"
	"io"
	"strings"
)

var (
	textEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		"\r", "&#xD;",
	)
	attrEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"\t", "&#x9;",
		"\n", "&#xA;",
		"\r", "&#xD;",
	)
)

// Write writes the document as XML. The output is deterministic:
// attributes are double quoted in source order, elements without
// children are self closed, and text keeps its whitespace.
func Write(w io.Writer, doc *Document) error {
	bw := bufio.NewWriter(w)
	for _, n := range doc.Nodes {
		writeNode(bw, n)
	}
	return bw.Flush()
}

// String returns the document written as XML.
func (d *Document) String() string {
	var sb strings.Builder
	Write(&sb, d) // strings.Builder never fails
	return sb.String()
}

func writeNode(w *bufio.Writer, n Node) {
	switch n := n.(type) {
	case *Element:
		name := qualified(n.Name)
		w.WriteByte('<')
		w.WriteString(name)
		for _, a := range n.Attrs {
			w.WriteByte(' ')
			w.WriteString(qualified(a.Name))
			w.WriteString(`="`)
			attrEscaper.WriteString(w, a.Value)
			w.WriteByte('"')
		}
		if len(n.Children) == 0 {
			w.WriteString("/>")
			return
		}
		w.WriteByte('>')
		for _, c := range n.Children {
			writeNode(w, c)
		}
		w.WriteString("</")
		w.WriteString(name)
		w.WriteByte('>')
	case CharData:
		textEscaper.WriteString(w, string(n))
	case Comment:
		w.WriteString("<!--")
		w.WriteString(string(n))
		w.WriteString("-->")
	case ProcInst:
		w.WriteString("<?")
		w.WriteString(n.Target)
		if n.Inst != "" {
			w.WriteByte(' ')
			w.WriteString(n.Inst)
		}
		w.WriteString("?>")
	case Directive:
		w.WriteString("<!")
		w.WriteString(string(n))
		w.WriteByte('>')
	}
}
