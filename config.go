package toyc

// Config holds options for an analysis.
type Config struct {
	// Dialect selects the keyword and type vocabulary (default: C).
	Dialect Dialect

	// FallthroughCheck reports a non-empty case body that does not end in
	// break, return or continue. When nil (default), the check is enabled.
	// Set to false to accept intentional fallthrough.
	FallthroughCheck *bool
}

// fallthroughCheck returns the effective FallthroughCheck setting.
func (c *Config) fallthroughCheck() bool {
	if c.FallthroughCheck == nil {
		return true
	}
	return *c.FallthroughCheck
}

// Bool returns a pointer to b, for optional Config fields.
func Bool(b bool) *bool {
	return &b
}
