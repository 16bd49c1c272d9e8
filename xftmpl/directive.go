package xftmpl

// Directives carries output-generation metadata collected from
// `#pragma xftmpl` comment lines. Each field is set at most once: the first
// occurrence wins and later directives for the same key are silently
// ignored. The CLI pre-seeds these from flags, so flags take precedence over
// in-file pragmas.
type Directives struct {
	// Name is the variable identifier used by header-mode emission.
	Name string
	// Size is the optional size-constant identifier.
	Size string
}

// SetName records the header variable name if not already set. Reports
// whether the value took effect.
func (d *Directives) SetName(name string) bool {
	if d.Name != "" || name == "" {
		return false
	}
	d.Name = name
	return true
}

// SetSize records the size-constant name if not already set. Reports whether
// the value took effect.
func (d *Directives) SetSize(name string) bool {
	if d.Size != "" || name == "" {
		return false
	}
	d.Size = name
	return true
}
