package legacy

import (
	"encoding/xml"
	"fmt"
	"strings"
)

// PropertyType is the declared type of an entity property.
type PropertyType string

const (
	PropertyMeasure PropertyType = "measure"
	PropertyVocab   PropertyType = "vocab"
	PropertyFile    PropertyType = "file"
)

// Entity is an archaeological entity from the data schema.
type Entity struct {
	Name        string
	Description string
	// Properties is keyed by property name.
	Properties map[string]*Property
	// Order lists property names in document order.
	Order []string
}

// Property is a single attribute of an entity.
type Property struct {
	Name         string
	Type         PropertyType
	Identifier   bool
	Description  string
	FormatString string
	Vocabulary   []Term
}

// Term is one entry of a controlled vocabulary.
type Term struct {
	Term        string
	Description string
	Picture     string
}

// DataSchema is the parsed data_schema.xml.
type DataSchema struct {
	Name     string
	Entities map[string]*Entity
	Order    []string
}

// Entity returns the entity with the given name.
func (s *DataSchema) Entity(name string) (*Entity, bool) {
	e, ok := s.Entities[name]
	return e, ok
}

type dataSchemaXML struct {
	XMLName  xml.Name    `xml:"dataSchema"`
	Name     string      `xml:"name,attr"`
	Entities []entityXML `xml:"ArchaeologicalElement"`
}

type entityXML struct {
	Name        string        `xml:"name,attr"`
	Description string        `xml:"description"`
	Properties  []propertyXML `xml:"property"`
}

type propertyXML struct {
	Name         string    `xml:"name,attr"`
	Type         string    `xml:"type,attr"`
	IsIdentifier string    `xml:"isIdentifier,attr"`
	Description  string    `xml:"description"`
	FormatString string    `xml:"formatString"`
	Terms        []termXML `xml:"lookup>term"`
}

type termXML struct {
	Text        string    `xml:",chardata"`
	PictureURL  string    `xml:"pictureURL,attr"`
	Description string    `xml:"description"`
	Terms       []termXML `xml:"term"`
}

// ParseDataSchema parses the contents of data_schema.xml.
func ParseDataSchema(data []byte) (*DataSchema, error) {
	var raw dataSchemaXML
	if err := xml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse data schema: %w", err)
	}

	schema := &DataSchema{
		Name:     raw.Name,
		Entities: make(map[string]*Entity, len(raw.Entities)),
	}

	for _, re := range raw.Entities {
		entity := &Entity{
			Name:        re.Name,
			Description: strings.TrimSpace(re.Description),
			Properties:  make(map[string]*Property, len(re.Properties)),
		}

		for _, rp := range re.Properties {
			prop := &Property{
				Name:         rp.Name,
				Type:         PropertyType(rp.Type),
				Identifier:   strings.EqualFold(rp.IsIdentifier, "true"),
				Description:  strings.TrimSpace(rp.Description),
				FormatString: strings.TrimSpace(rp.FormatString),
				Vocabulary:   flattenTerms(nil, rp.Terms),
			}

			if _, dup := entity.Properties[prop.Name]; !dup {
				entity.Order = append(entity.Order, prop.Name)
			}

			entity.Properties[prop.Name] = prop
		}

		if _, dup := schema.Entities[entity.Name]; !dup {
			schema.Order = append(schema.Order, entity.Name)
		}

		schema.Entities[entity.Name] = entity
	}

	return schema, nil
}

// flattenTerms appends terms depth-first; child terms follow their parent.
func flattenTerms(out []Term, terms []termXML) []Term {
	for _, t := range terms {
		out = append(out, Term{
			Term:        strings.TrimSpace(t.Text),
			Description: strings.TrimSpace(t.Description),
			Picture:     t.PictureURL,
		})
		out = flattenTerms(out, t.Terms)
	}

	return out
}
