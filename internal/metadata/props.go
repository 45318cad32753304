package metadata

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Prop describes one component property.
type Prop struct {
	Name         string
	Type         *PropType
	Required     bool
	Description  string
	DefaultValue *DefaultValue
}

// DefaultValue is the default as written in the component source.
type DefaultValue struct {
	Value    string `yaml:"value"`
	Computed bool   `yaml:"computed"`
}

// Props is the ordered list of a component's properties.
type Props []Prop

// Get returns the prop with the given name.
func (p Props) Get(name string) (Prop, bool) {
	for _, prop := range p {
		if prop.Name == name {
			return prop, true
		}
	}
	return Prop{}, false
}

type propFields struct {
	Type         *PropType     `yaml:"type"`
	Required     bool          `yaml:"required"`
	Description  string        `yaml:"description"`
	DefaultValue *DefaultValue `yaml:"defaultValue"`
}

// UnmarshalYAML decodes the props mapping while keeping key order.
func (p *Props) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: props must be a mapping", value.Line)
	}
	props := make(Props, 0, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		var f propFields
		if err := value.Content[i+1].Decode(&f); err != nil {
			return fmt.Errorf("prop %q: %w", value.Content[i].Value, err)
		}
		props = append(props, Prop{
			Name:         value.Content[i].Value,
			Type:         f.Type,
			Required:     f.Required,
			Description:  f.Description,
			DefaultValue: f.DefaultValue,
		})
	}
	*p = props
	return nil
}

// PropType is a react-docgen prop type. Which fields are set depends on Name.
type PropType struct {
	Name string
	// Raw holds the source of custom validators.
	Raw string
	// Required is only set for fields of shape and exact types.
	Required bool
	// Enum holds the allowed values for "enum", as written in source.
	Enum []string
	// Union holds the alternatives for "union".
	Union []*PropType
	// Elem is the element type for "arrayOf" and "objectOf".
	Elem *PropType
	// Fields holds the keys of "shape" and "exact", in order.
	Fields []Field
}

// Field is one key of a shape type.
type Field struct {
	Name string
	Type *PropType
}

// UnmarshalYAML decodes the polymorphic "value" member by type name.
func (t *PropType) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		Name     string    `yaml:"name"`
		Raw      string    `yaml:"raw"`
		Required bool      `yaml:"required"`
		Value    yaml.Node `yaml:"value"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	*t = PropType{Name: raw.Name, Raw: raw.Raw, Required: raw.Required}
	if raw.Value.Kind == 0 {
		return nil
	}

	switch raw.Name {
	case "enum":
		var values []struct {
			Value string `yaml:"value"`
		}
		if err := raw.Value.Decode(&values); err != nil {
			return fmt.Errorf("enum values: %w", err)
		}
		for _, v := range values {
			t.Enum = append(t.Enum, v.Value)
		}
	case "union":
		if err := raw.Value.Decode(&t.Union); err != nil {
			return fmt.Errorf("union members: %w", err)
		}
	case "arrayOf", "objectOf":
		t.Elem = &PropType{}
		if err := raw.Value.Decode(t.Elem); err != nil {
			return fmt.Errorf("%s element: %w", raw.Name, err)
		}
	case "shape", "exact":
		if raw.Value.Kind != yaml.MappingNode {
			return fmt.Errorf("line %d: %s value must be a mapping", raw.Value.Line, raw.Name)
		}
		for i := 0; i+1 < len(raw.Value.Content); i += 2 {
			ft := &PropType{}
			if err := raw.Value.Content[i+1].Decode(ft); err != nil {
				return fmt.Errorf("field %q: %w", raw.Value.Content[i].Value, err)
			}
			t.Fields = append(t.Fields, Field{Name: raw.Value.Content[i].Value, Type: ft})
		}
	}
	return nil
}
