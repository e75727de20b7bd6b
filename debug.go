package joystick

// SetDebugMode enables or disables per-transition diagnostics. Output goes to
// the package Logger at debug level, so a logger must be installed with
// SetLogger for anything to appear.
func (c *Controller) SetDebugMode(enabled bool) {
	c.debug = enabled
}

// debugCheckGeometry warns when the stick is at least as large as its
// draggable range, which usually means the scales are swapped.
func debugCheckGeometry(c *Controller) {
	if c.innerRadius >= c.outerRadius {
		Logger().Warn("joystick: inner radius not smaller than outer radius",
			"inner", c.innerRadius, "outer", c.outerRadius)
	}
}
