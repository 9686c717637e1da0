package egret

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/sartorproj/goegret/timeseries"
)

// Source is anything the part accessors can read from: a *Bundle or a
// generic Mapping.
type Source interface {
	part(p Part) (any, error)
}

// Mapping is an untyped collection of parts keyed by "INFO", "Daily",
// "Sample" and "surfaces", as produced by external loading code.
type Mapping map[string]any

func (b *Bundle) part(p Part) (any, error) {
	if b == nil {
		return nil, &ContractViolationError{Op: "get " + p.String(), Reason: "nil bundle"}
	}
	switch p {
	case PartInfo:
		return b.info, nil
	case PartDaily:
		return b.daily, nil
	case PartSample:
		return b.sample, nil
	case PartSurfaces:
		return b.surfaces, nil
	}
	return nil, fmt.Errorf("unknown part %d", p)
}

func (m Mapping) part(p Part) (any, error) {
	v, ok := m[p.Key()]
	if !ok {
		return nil, &MissingFieldError{Key: p.Key(), Part: p}
	}
	return v, nil
}

// GetInfo returns the INFO part of src.
func GetInfo(src Source) (Info, error) {
	v, err := src.part(PartInfo)
	if err != nil {
		return nil, err
	}
	switch x := v.(type) {
	case nil:
		return nil, nil
	case Info:
		return x, nil
	case map[string]any:
		return Info(x), nil
	}
	return nil, wrongType(PartInfo, v)
}

// GetDaily returns the Daily part of src.
func GetDaily(src Source) (*timeseries.Table, error) {
	return table(src, PartDaily)
}

// GetSample returns the Sample part of src.
func GetSample(src Source) (*timeseries.Table, error) {
	return table(src, PartSample)
}

// GetSurfaces returns the surfaces part of src.
func GetSurfaces(src Source) (mat.Matrix, error) {
	v, err := src.part(PartSurfaces)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, nil
	}
	m, ok := v.(mat.Matrix)
	if !ok {
		return nil, wrongType(PartSurfaces, v)
	}
	return normalizeMatrix(m), nil
}

func table(src Source, p Part) (*timeseries.Table, error) {
	v, err := src.part(p)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, nil
	}
	t, ok := v.(*timeseries.Table)
	if !ok {
		return nil, wrongType(p, v)
	}
	return t, nil
}

func wrongType(p Part, v any) error {
	return &MissingFieldError{
		Key:    p.Key(),
		Part:   p,
		Reason: fmt.Sprintf("value has type %T", v),
	}
}
