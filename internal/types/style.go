package types

// Template identifies one of the visual resume templates.
type Template string

// Available templates.
const (
	TemplateClassic    Template = "classic"
	TemplateModern     Template = "modern"
	TemplateMinimalist Template = "minimalist"
)

// Valid reports whether t names a known template.
func (t Template) Valid() bool {
	switch t {
	case TemplateClassic, TemplateModern, TemplateMinimalist:
		return true
	}
	return false
}

// StyleOptions carries the presentation choices applied when rendering or
// exporting: template identity, font family and two accent colors.
type StyleOptions struct {
	Template       Template `json:"template"`
	Font           string   `json:"font"`
	PrimaryColor   string   `json:"primaryColor"`
	SecondaryColor string   `json:"secondaryColor"`
}

// DefaultStyle returns the style applied before the user picks anything.
func DefaultStyle() StyleOptions {
	return StyleOptions{
		Template:       TemplateClassic,
		Font:           "Times New Roman",
		PrimaryColor:   "#007BFF",
		SecondaryColor: "#343a40",
	}
}
