package domain

// UserAgent is the browser information extracted from a user-agent string.
//
// Family defaults to "Other" only on the DefaultedResult fallback path
// (see Result.WithDefaults); a raw, successfully-matched UserAgent always
// carries whatever family the matching rule produced.
type UserAgent struct {
	Family     string
	Major      *string
	Minor      *string
	Patch      *string
	PatchMinor *string
}

// Equal reports whether u and other describe the same browser.
func (u UserAgent) Equal(other UserAgent) bool {
	return u.Family == other.Family &&
		strPtrEqual(u.Major, other.Major) &&
		strPtrEqual(u.Minor, other.Minor) &&
		strPtrEqual(u.Patch, other.Patch) &&
		strPtrEqual(u.PatchMinor, other.PatchMinor)
}

// OS is the operating system information extracted from a user-agent
// string. Field shape mirrors UserAgent exactly, per spec.
type OS struct {
	Family     string
	Major      *string
	Minor      *string
	Patch      *string
	PatchMinor *string
}

// Equal reports whether o and other describe the same operating system.
func (o OS) Equal(other OS) bool {
	return o.Family == other.Family &&
		strPtrEqual(o.Major, other.Major) &&
		strPtrEqual(o.Minor, other.Minor) &&
		strPtrEqual(o.Patch, other.Patch) &&
		strPtrEqual(o.PatchMinor, other.PatchMinor)
}

// Device is the hardware information extracted from a user-agent string.
type Device struct {
	Family string
	Brand  *string
	Model  *string
}

// Equal reports whether d and other describe the same device.
func (d Device) Equal(other Device) bool {
	return d.Family == other.Family &&
		strPtrEqual(d.Brand, other.Brand) &&
		strPtrEqual(d.Model, other.Model)
}

func strPtrEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// Str is a convenience constructor for the optional string fields above,
// so call sites can write Str("Windows") instead of taking the address of
// a local.
func Str(s string) *string {
	return &s
}
