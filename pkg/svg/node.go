package svg

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Namespace is the SVG XML namespace.
const Namespace = "http://www.w3.org/2000/svg"

// Header is the XML declaration written before standalone documents.
const Header = `<?xml version="1.0" encoding="UTF-8"?>`

const indentUnit = "  "

// Attr is a single element attribute. Values are stored unescaped.
type Attr struct {
	Name  string
	Value string
}

// A creates an attribute, formatting numeric values without trailing zeros.
func A(name string, value any) Attr {
	return Attr{Name: name, Value: format(value)}
}

// Node is either an element (Name set) or character data (Name empty).
type Node struct {
	Name     string
	Attrs    []Attr
	Children []*Node
	Text     string
}

// El creates an element node.
func El(name string, attrs ...Attr) *Node {
	return &Node{Name: name, Attrs: attrs}
}

// CharData creates a character data node.
func CharData(s string) *Node {
	return &Node{Text: s}
}

// IsText reports whether n is character data.
func (n *Node) IsText() bool { return n.Name == "" }

// Append adds children in order, skipping nil nodes.
func (n *Node) Append(children ...*Node) *Node {
	for _, c := range children {
		if c != nil {
			n.Children = append(n.Children, c)
		}
	}
	return n
}

// Set replaces the named attribute, or appends it if absent.
func (n *Node) Set(name string, value any) *Node {
	v := format(value)
	for i := range n.Attrs {
		if n.Attrs[i].Name == name {
			n.Attrs[i].Value = v
			return n
		}
	}
	n.Attrs = append(n.Attrs, Attr{Name: name, Value: v})
	return n
}

// Get returns the value of the named attribute.
func (n *Node) Get(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Find returns all descendant elements (including n) with the given name,
// in document order.
func (n *Node) Find(name string) []*Node {
	var out []*Node
	n.walk(func(c *Node) {
		if c.Name == name {
			out = append(out, c)
		}
	})
	return out
}

// Content returns the concatenated character data below n.
func (n *Node) Content() string {
	var b strings.Builder
	n.walk(func(c *Node) {
		if c.IsText() {
			b.WriteString(c.Text)
		}
	})
	return b.String()
}

func (n *Node) walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.Children {
		c.walk(fn)
	}
}

// Encode writes the serialized tree to w.
func (n *Node) Encode(w io.Writer) error {
	var buf bytes.Buffer
	n.write(&buf, 0)
	_, err := buf.WriteTo(w)
	return err
}

// String returns the serialized tree.
func (n *Node) String() string {
	var buf bytes.Buffer
	n.write(&buf, 0)
	return buf.String()
}

func (n *Node) write(buf *bytes.Buffer, depth int) {
	indent := strings.Repeat(indentUnit, depth)
	if n.IsText() {
		buf.WriteString(indent)
		buf.WriteString(Escape(n.Text))
		return
	}

	buf.WriteString(indent)
	buf.WriteByte('<')
	buf.WriteString(n.Name)
	for _, a := range n.Attrs {
		fmt.Fprintf(buf, ` %s="%s"`, a.Name, EscapeAttr(a.Value))
	}

	switch {
	case len(n.Children) == 0:
		buf.WriteString("/>")
	case n.textOnly():
		buf.WriteByte('>')
		for _, c := range n.Children {
			buf.WriteString(Escape(c.Text))
		}
		fmt.Fprintf(buf, "</%s>", n.Name)
	default:
		buf.WriteString(">\n")
		for _, c := range n.Children {
			c.write(buf, depth+1)
			buf.WriteByte('\n')
		}
		fmt.Fprintf(buf, "%s</%s>", indent, n.Name)
	}
}

func (n *Node) textOnly() bool {
	for _, c := range n.Children {
		if !c.IsText() {
			return false
		}
	}
	return true
}

var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// Escape escapes character data. Quotes are left as-is.
func Escape(s string) string {
	return textEscaper.Replace(s)
}

// EscapeAttr escapes an attribute value, including quotes and whitespace
// control characters.
func EscapeAttr(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

// Num formats a float with the shortest exact representation ("1", "0.7").
func Num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func format(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return Num(x)
	case float32:
		return Num(float64(x))
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}
