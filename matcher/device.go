package matcher

import "github.com/fernwood-systems/uaclassify/domain"

// Device matches the device domain: one regex, optionally case
// insensitive, plus substitution templates for family ("$1" default),
// brand (no fallback — default is empty, i.e. always nil unless a
// template is supplied), and model ("$1" default).
type Device struct {
	src *regexSource

	family, brand, model string
	caseInsensitive       bool
}

// DeviceOption configures a Device matcher's substitution templates.
type DeviceOption func(*deviceConfig)

type deviceConfig struct {
	family, brand, model *string
}

func WithDeviceFamily(tmpl string) DeviceOption { return func(c *deviceConfig) { c.family = &tmpl } }
func WithDeviceBrand(tmpl string) DeviceOption  { return func(c *deviceConfig) { c.brand = &tmpl } }
func WithDeviceModel(tmpl string) DeviceOption  { return func(c *deviceConfig) { c.model = &tmpl } }

// NewDevice builds an eager Device matcher. caseInsensitive corresponds
// to the wire schema's regex_flag == "i" (spec 6).
func NewDevice(pattern string, caseInsensitive bool, opts ...DeviceOption) *Device {
	return newDevice(newEagerRegexSource(pattern, caseInsensitive), caseInsensitive, opts)
}

// NewLazyDevice builds a Device matcher whose regex compiles on first
// Apply.
func NewLazyDevice(pattern string, caseInsensitive bool, opts ...DeviceOption) *Device {
	return newDevice(newRegexSource(pattern, caseInsensitive), caseInsensitive, opts)
}

func newDevice(src *regexSource, caseInsensitive bool, opts []DeviceOption) *Device {
	var c deviceConfig
	for _, o := range opts {
		o(&c)
	}
	return &Device{
		src:             src,
		family:          orDefault(c.family, "$1"),
		brand:           orDefault(c.brand, ""),
		model:           orDefault(c.model, "$1"),
		caseInsensitive: caseInsensitive,
	}
}

// Apply implements domain.Matcher[domain.Device]. Returns a
// *domain.MalformedRule error under the same condition as OS.Apply.
func (d *Device) Apply(ua string) (domain.Device, bool, error) {
	m := d.src.search(ua)
	if m == nil {
		return domain.Device{}, false, nil
	}

	family, ok := replace(d.family, m)
	if !ok {
		return domain.Device{}, false, &domain.MalformedRule{Input: ua, Pattern: d.src.pattern}
	}

	return domain.Device{
		Family: family,
		Brand:  replacePtr(d.brand, m),
		Model:  replacePtr(d.model, m),
	}, true, nil
}

func (d *Device) Pattern() string { return d.src.pattern }

func (d *Device) Flags() domain.Flags {
	if d.caseInsensitive {
		return domain.FlagCaseInsensitive
	}
	return 0
}
