package legacy

import (
	"encoding/xml"
	"fmt"
	"strings"
)

// Namespaces used by ui_schema.xml. XHTML carries the document structure,
// XForms carries groups, controls and their bindings.
const (
	XHTMLNamespace  = "http://www.w3.org/1999/xhtml"
	XFormsNamespace = "http://www.w3.org/2002/xforms"
)

// Attribute names linking the UI tree to the data schema.
const (
	entityAttr    = "faims_archent_type"
	attributeAttr = "faims_attribute_name"
)

// controlElements are the XForms elements that become fields.
var controlElements = map[string]bool{
	"input":   true,
	"select1": true,
	"select":  true,
	"upload":  true,
}

// UISchema is the parsed ui_schema.xml.
type UISchema struct {
	Title     string
	TabGroups []TabGroup
}

// TabGroup is a top-level group of tabs, usually bound to one entity.
type TabGroup struct {
	Ref    string
	Label  string
	Entity string
	Tabs   []Tab
}

// Tab is one page of a tab group.
type Tab struct {
	Ref      string
	Label    string
	Controls []Control
}

// Control is an input control bound (or not) to an entity attribute.
type Control struct {
	// Element is the XForms element name (input, select1, ...).
	Element   string
	Ref       string
	Label     string
	Attribute string
}

type xmlNode struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Children []xmlNode  `xml:",any"`
	Text     string     `xml:",chardata"`
}

func (n *xmlNode) is(space, local string) bool {
	return n.XMLName.Space == space && n.XMLName.Local == local
}

func (n *xmlNode) attr(local string) string {
	for _, a := range n.Attrs {
		if a.Name.Local == local {
			return a.Value
		}
	}

	return ""
}

func (n *xmlNode) child(space, local string) *xmlNode {
	for i := range n.Children {
		if n.Children[i].is(space, local) {
			return &n.Children[i]
		}
	}

	return nil
}

func (n *xmlNode) label() string {
	if l := n.child(XFormsNamespace, "label"); l != nil {
		return strings.TrimSpace(l.Text)
	}

	return ""
}

// ParseUISchema parses the contents of ui_schema.xml.
func ParseUISchema(data []byte) (*UISchema, error) {
	var root xmlNode
	if err := xml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse ui schema: %w", err)
	}

	if !root.is(XHTMLNamespace, "html") {
		return nil, fmt.Errorf("failed to parse ui schema: root element is %s, want {%s}html",
			root.XMLName.Local, XHTMLNamespace)
	}

	ui := &UISchema{}

	if head := root.child(XHTMLNamespace, "head"); head != nil {
		if title := head.child(XHTMLNamespace, "title"); title != nil {
			ui.Title = strings.TrimSpace(title.Text)
		}
	}

	body := root.child(XHTMLNamespace, "body")
	if body == nil {
		return nil, fmt.Errorf("failed to parse ui schema: no body element")
	}

	for i := range body.Children {
		g := &body.Children[i]
		if !g.is(XFormsNamespace, "group") {
			continue
		}

		ui.TabGroups = append(ui.TabGroups, parseTabGroup(g))
	}

	return ui, nil
}

func parseTabGroup(n *xmlNode) TabGroup {
	tg := TabGroup{
		Ref:    n.attr("ref"),
		Label:  n.label(),
		Entity: n.attr(entityAttr),
	}

	for i := range n.Children {
		t := &n.Children[i]
		if !t.is(XFormsNamespace, "group") {
			continue
		}

		tab := Tab{Ref: t.attr("ref"), Label: t.label()}
		tab.Controls = collectControls(tab.Controls, t)
		tg.Tabs = append(tg.Tabs, tab)
	}

	return tg
}

// collectControls walks n depth-first; nested groups inside a tab are layout
// containers whose controls belong to the tab.
func collectControls(out []Control, n *xmlNode) []Control {
	for i := range n.Children {
		c := &n.Children[i]
		if c.XMLName.Space != XFormsNamespace {
			continue
		}

		switch {
		case controlElements[c.XMLName.Local]:
			out = append(out, Control{
				Element:   c.XMLName.Local,
				Ref:       c.attr("ref"),
				Label:     c.label(),
				Attribute: c.attr(attributeAttr),
			})
		case c.XMLName.Local == "group":
			out = collectControls(out, c)
		}
	}

	return out
}
