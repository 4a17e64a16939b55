package catalog

// startingImportance is the importance assigned to the first template
// added to a degree (spec §6.1 "e.g. 1000").
const startingImportance = 1000

// Degree owns an ordered list of templates. Order is semantically
// significant: earlier templates were added first, carry higher
// importance, and receive assignment priority in the fulfillment engine.
type Degree struct {
	Name      string
	Templates []*Template
}

// NewDegree constructs an empty Degree.
func NewDegree(name string) *Degree {
	return &Degree{Name: name}
}

// AddTemplate appends t to the degree and assigns its Importance:
// startingImportance for the first template, or the previous template's
// Importance minus one thereafter (spec §6.1). Returns
// ErrInvalidRequiredCount if t.CoursesRequired < 1, or
// ErrDuplicateTemplate if the name is already used in this degree.
func (d *Degree) AddTemplate(t *Template) error {
	if t.CoursesRequired < 1 {
		return ErrInvalidRequiredCount
	}
	for _, existing := range d.Templates {
		if existing.Name == t.Name {
			return ErrDuplicateTemplate
		}
	}

	if len(d.Templates) == 0 {
		t.Importance = startingImportance
	} else {
		t.Importance = d.Templates[len(d.Templates)-1].Importance - 1
	}
	d.Templates = append(d.Templates, t)

	return nil
}

// Template returns the template named name, if present.
func (d *Degree) Template(name string) (*Template, bool) {
	for _, t := range d.Templates {
		if t.Name == name {
			return t, true
		}
	}
	return nil, false
}
