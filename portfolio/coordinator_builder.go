package portfolio

// CoordinatorBuilderOption is a functional option for configuring a Coordinator.
type CoordinatorBuilderOption func(*coordinator)

// WithInitialSection overrides the starting section. Invalid sections are ignored
// and the coordinator keeps the welcome default.
//
// Parameters:
//   - s: the section to start on
//
// Returns:
//   - CoordinatorBuilderOption: option function to apply
func WithInitialSection(s Section) CoordinatorBuilderOption {
	return func(c *coordinator) {
		if s.Valid() {
			c.current = s
		}
	}
}

// WithSectionListener registers a section change listener during construction.
//
// Parameters:
//   - fn: receives the previous and the new section
//
// Returns:
//   - CoordinatorBuilderOption: option function to apply
func WithSectionListener(fn func(prev, next Section)) CoordinatorBuilderOption {
	return func(c *coordinator) {
		if fn != nil {
			c.sectionListeners = append(c.sectionListeners, fn)
		}
	}
}
