package egret

import (
	"reflect"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"

	"github.com/sartorproj/goegret/internal/log"
	"github.com/sartorproj/goegret/timeseries"
)

// Bundle is the "egret" aggregate of INFO, Daily, Sample and surfaces.
// A nil part is unavailable. Bundles are read-only once built; the With
// methods return modified copies.
type Bundle struct {
	info     Info
	daily    *timeseries.Table
	sample   *timeseries.Table
	surfaces mat.Matrix

	attrs  Attributes
	logger *zap.Logger
}

// Option configures bundle construction.
type Option func(*Bundle)

// WithDaily sets the daily discharge table.
func WithDaily(daily *timeseries.Table) Option {
	return func(b *Bundle) { b.daily = daily }
}

// WithSample sets the discrete sample table.
func WithSample(sample *timeseries.Table) Option {
	return func(b *Bundle) { b.sample = sample }
}

// WithSurfaces sets the fitted surfaces matrix.
func WithSurfaces(surfaces mat.Matrix) Option {
	return func(b *Bundle) { b.surfaces = normalizeMatrix(surfaces) }
}

// WithLogger sets the logger that receives diagnostics. The package
// logger is used otherwise.
func WithLogger(l *zap.Logger) Option {
	return func(b *Bundle) { b.logger = l }
}

// New builds a bundle. Construction always succeeds: structural problems
// found by Check are logged as warnings and the bundle is returned as is.
func New(info Info, opts ...Option) *Bundle {
	b := &Bundle{info: info}
	for _, opt := range opts {
		opt(b)
	}
	if b.logger == nil {
		b.logger = log.Logger()
	}
	b.attrs = attributesOf(info)

	for _, d := range Check(b.info, b.daily, b.sample, b.surfaces) {
		b.logger.Warn(d.Message,
			zap.Stringer("part", d.Part),
			zap.Strings("missing", d.Missing),
		)
	}
	return b
}

// IsBundle reports whether x is a bundle. The check is nominal only.
func IsBundle(x any) bool {
	b, ok := x.(*Bundle)
	return ok && b != nil
}

// Attributes returns the metadata cached from Info at construction.
func (b *Bundle) Attributes() Attributes {
	return b.attrs
}

// Logger returns the logger diagnostics for this bundle are written to.
func (b *Bundle) Logger() *zap.Logger {
	if b.logger == nil {
		return log.Logger()
	}
	return b.logger
}

// WithInfo returns a new bundle with info replaced and attributes recomputed.
func (b *Bundle) WithInfo(info Info) *Bundle {
	return New(info, b.keep(PartInfo)...)
}

// WithDaily returns a new bundle with the daily table replaced.
func (b *Bundle) WithDaily(daily *timeseries.Table) *Bundle {
	return New(b.info, append(b.keep(PartDaily), WithDaily(daily))...)
}

// WithSample returns a new bundle with the sample table replaced.
func (b *Bundle) WithSample(sample *timeseries.Table) *Bundle {
	return New(b.info, append(b.keep(PartSample), WithSample(sample))...)
}

// WithSurfaces returns a new bundle with the surfaces matrix replaced.
func (b *Bundle) WithSurfaces(surfaces mat.Matrix) *Bundle {
	return New(b.info, append(b.keep(PartSurfaces), WithSurfaces(surfaces))...)
}

// keep returns options reproducing every part of b except the replaced one.
func (b *Bundle) keep(replaced Part) []Option {
	opts := []Option{WithLogger(b.Logger())}
	if replaced != PartDaily {
		opts = append(opts, WithDaily(b.daily))
	}
	if replaced != PartSample {
		opts = append(opts, WithSample(b.sample))
	}
	if replaced != PartSurfaces {
		opts = append(opts, WithSurfaces(b.surfaces))
	}
	return opts
}

// normalizeMatrix turns a matrix interface holding a nil pointer into an
// untyped nil.
func normalizeMatrix(m mat.Matrix) mat.Matrix {
	if m == nil {
		return nil
	}
	if v := reflect.ValueOf(m); v.Kind() == reflect.Pointer && v.IsNil() {
		return nil
	}
	return m
}
