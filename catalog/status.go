package catalog

// FulfillmentStatus is the per-template assignment record: the set of
// courses currently bound to Template, against its required count.
//
// FulfillmentStatus is created per (template-combination, template)
// during an engine run, mutated in place by fill/steal/trade, and
// discarded once the combination is scored (spec §3).
type FulfillmentStatus struct {
	Template    *Template
	Required    int
	Fulfillment CourseSet
}

// NewFulfillmentStatus returns an empty status for t.
func NewFulfillmentStatus(t *Template) *FulfillmentStatus {
	return &FulfillmentStatus{
		Template:    t,
		Required:    t.CoursesRequired,
		Fulfillment: make(CourseSet),
	}
}

// Actual is the number of courses currently bound.
func (f *FulfillmentStatus) Actual() int {
	return len(f.Fulfillment)
}

// Excess is how many more courses are bound than required (never negative).
func (f *FulfillmentStatus) Excess() int {
	if e := f.Actual() - f.Required; e > 0 {
		return e
	}
	return 0
}

// Unfulfilled is how many more courses are needed to meet Required
// (never negative).
func (f *FulfillmentStatus) Unfulfilled() int {
	if u := f.Required - f.Actual(); u > 0 {
		return u
	}
	return 0
}

// Fulfilled reports whether Actual >= Required.
func (f *FulfillmentStatus) Fulfilled() bool {
	return f.Actual() >= f.Required
}

// Bind adds c to the fulfillment set.
func (f *FulfillmentStatus) Bind(c *Course) {
	f.Fulfillment.Add(c)
}

// Unbind removes c from the fulfillment set.
func (f *FulfillmentStatus) Unbind(c *Course) {
	f.Fulfillment.Remove(c)
}

// Clone returns a FulfillmentStatus with an independent Fulfillment set,
// sharing the Template pointer.
func (f *FulfillmentStatus) Clone() *FulfillmentStatus {
	return &FulfillmentStatus{
		Template:    f.Template,
		Required:    f.Required,
		Fulfillment: f.Fulfillment.Clone(),
	}
}
