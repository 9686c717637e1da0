package egret

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Info field names recognized by the bundle.
const (
	FieldParamUnits     = "param.units"
	FieldShortName      = "shortName"
	FieldParamShortName = "paramShortName"
	FieldConstitAbbrev  = "constitAbbrev"
	FieldDrainSqKm      = "drainSqKm"
	FieldParameterCode  = "parameter_cd"
	FieldPAStart        = "paStart"
	FieldPALong         = "paLong"
)

// AttributeFields are the Info fields cached on a bundle at construction.
var AttributeFields = []string{
	FieldParamUnits,
	FieldShortName,
	FieldParamShortName,
	FieldConstitAbbrev,
	FieldDrainSqKm,
}

// Info is a single-row record of site and parameter metadata.
type Info map[string]any

// ParseInfo decodes an Info record from a YAML mapping.
func ParseInfo(data []byte) (Info, error) {
	var info Info
	if err := yaml.Unmarshal(data, &info); err != nil {
		return nil, fmt.Errorf("decoding info: %w", err)
	}
	return info, nil
}

// Text returns the named field as a string.
func (i Info) Text(key string) (string, bool) {
	v, ok := i[key]
	if !ok || v == nil {
		return "", false
	}
	switch x := v.(type) {
	case string:
		return x, true
	case fmt.Stringer:
		return x.String(), true
	default:
		return fmt.Sprint(x), true
	}
}

// Number returns the named field as a float64. Numeric strings are parsed.
func (i Info) Number(key string) (float64, bool) {
	v, ok := i[key]
	if !ok || v == nil {
		return 0, false
	}
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case string:
		f, err := strconv.ParseFloat(x, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// Clone returns a shallow copy of the record.
func (i Info) Clone() Info {
	if i == nil {
		return nil
	}
	c := make(Info, len(i))
	for k, v := range i {
		c[k] = v
	}
	return c
}

// SetPeriodOfAnalysis returns a copy of info with the period of analysis
// set: paStart is the starting month (1-12) and paLong the length in
// months (1-12). The defaults of a water year are 10 and 12.
func SetPeriodOfAnalysis(info Info, paStart, paLong int) (Info, error) {
	if paStart < 1 || paStart > 12 {
		return nil, fmt.Errorf("paStart must be a month between 1 and 12, got %d", paStart)
	}
	if paLong < 1 || paLong > 12 {
		return nil, fmt.Errorf("paLong must be between 1 and 12 months, got %d", paLong)
	}
	c := info.Clone()
	if c == nil {
		c = Info{}
	}
	c[FieldPAStart] = paStart
	c[FieldPALong] = paLong
	return c, nil
}

// Attributes are the metadata fields copied from Info when a bundle is
// built. A nil field was absent from Info.
type Attributes struct {
	ParamUnits     *string
	ShortName      *string
	ParamShortName *string
	ConstitAbbrev  *string
	DrainSqKm      *float64
}

func attributesOf(info Info) Attributes {
	str := func(key string) *string {
		if s, ok := info.Text(key); ok {
			return &s
		}
		return nil
	}

	var a Attributes
	a.ParamUnits = str(FieldParamUnits)
	a.ShortName = str(FieldShortName)
	a.ParamShortName = str(FieldParamShortName)
	a.ConstitAbbrev = str(FieldConstitAbbrev)
	if f, ok := info.Number(FieldDrainSqKm); ok {
		a.DrainSqKm = &f
	}
	return a
}
