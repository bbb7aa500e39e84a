package domain

// Result is the complete classification of a user-agent string: every
// domain has been resolved, to either a record (match) or nil (the domain
// was looked up but no rule fired).
type Result struct {
	UserAgent *UserAgent
	OS        *OS
	Device    *Device
	String    string
}

// WithDefaults replaces every unresolved (nil) domain in r with its
// zero-value record (Family "Other", every other field unset), matching
// the original ua-parser's pre-1.0 semantics for clients that would
// rather not handle per-domain lookup failure. See original_source's
// DefaultedParseResult; supplemented here, not part of the CORE contract.
func (r Result) WithDefaults() DefaultedResult {
	ua := r.UserAgent
	if ua == nil {
		ua = &UserAgent{Family: "Other"}
	}
	os := r.OS
	if os == nil {
		os = &OS{Family: "Other"}
	}
	dev := r.Device
	if dev == nil {
		dev = &Device{Family: "Other"}
	}
	return DefaultedResult{
		UserAgent: *ua,
		OS:        *os,
		Device:    *dev,
		String:    r.String,
	}
}

// DefaultedResult is Result with every domain defaulted to its zero value
// instead of nil on lookup failure.
type DefaultedResult struct {
	UserAgent UserAgent
	OS        OS
	Device    Device
	String    string
}

// PartialResult is a Result annotated with which domains have actually
// been resolved. For every bit set in Domains, the corresponding field is
// meaningful (either a record or nil, meaning "resolved, no match"). For
// every bit NOT set, the field must not be read — it may hold a stale
// value from a prior partial resolution that a caller forgot to merge.
type PartialResult struct {
	Domains   Domain
	UserAgent *UserAgent
	OS        *OS
	Device    *Device
	String    string
}

// Complete requires that every domain has been resolved and returns the
// corresponding Result. It returns ErrIncompleteResult if Domains != All.
func (p PartialResult) Complete() (Result, error) {
	if p.Domains != All {
		return Result{}, ErrIncompleteResult
	}
	return Result{
		UserAgent: p.UserAgent,
		OS:        p.OS,
		Device:    p.Device,
		String:    p.String,
	}, nil
}

// Merge combines p with a fresher PartialResult for the same input,
// preferring p's fields wherever p has already resolved that domain. This
// is the core of cache backfill (spec 4.8): a cached partial answer only
// grows over its lifetime, it never loses a previously resolved field.
func (p PartialResult) Merge(fresh PartialResult) PartialResult {
	merged := PartialResult{
		Domains: p.Domains | fresh.Domains,
		String:  p.String,
	}
	if p.Domains.Has(UserAgent) {
		merged.UserAgent = p.UserAgent
	} else {
		merged.UserAgent = fresh.UserAgent
	}
	if p.Domains.Has(OS) {
		merged.OS = p.OS
	} else {
		merged.OS = fresh.OS
	}
	if p.Domains.Has(Device) {
		merged.Device = p.Device
	} else {
		merged.Device = fresh.Device
	}
	return merged
}
