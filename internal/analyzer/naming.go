package analyzer

import "fmt"

const (
	DefaultViewFormat    = "%sView"
	DefaultMutableFormat = "Mutable%sView"
)

// ViewNames are the type names of a packet's two views.
type ViewNames struct {
	View    string
	Mutable string
}

// Naming derives view names from packet base names. Formats take the base
// name as their only verb; Overrides replace either name per base.
type Naming struct {
	View      string
	Mutable   string
	Overrides map[string]ViewNames
}

func DefaultNaming() Naming {
	return Naming{View: DefaultViewFormat, Mutable: DefaultMutableFormat}
}

// For returns the view names of base.
func (n Naming) For(base string) ViewNames {
	view, mut := n.View, n.Mutable
	if view == "" {
		view = DefaultViewFormat
	}
	if mut == "" {
		mut = DefaultMutableFormat
	}
	names := ViewNames{
		View:    fmt.Sprintf(view, base),
		Mutable: fmt.Sprintf(mut, base),
	}
	if o, ok := n.Overrides[base]; ok {
		if o.View != "" {
			names.View = o.View
		}
		if o.Mutable != "" {
			names.Mutable = o.Mutable
		}
	}
	return names
}
