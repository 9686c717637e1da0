package egret

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/sartorproj/goegret/timeseries"
)

// DailyCount returns the number of daily observations.
func (b *Bundle) DailyCount() (int, error) {
	if err := b.require("DailyCount"); err != nil {
		return 0, err
	}
	if b.daily == nil {
		return 0, b.notFound(PartDaily)
	}
	return b.daily.Len(), nil
}

// SampleCount returns the number of sample observations.
func (b *Bundle) SampleCount() (int, error) {
	if err := b.require("SampleCount"); err != nil {
		return 0, err
	}
	if b.sample == nil {
		return 0, b.notFound(PartSample)
	}
	return b.sample.Len(), nil
}

// CensoredCount returns the number of sample observations whose Uncen flag
// is exactly 0.
func (b *Bundle) CensoredCount() (int, error) {
	if err := b.require("CensoredCount"); err != nil {
		return 0, err
	}
	if b.sample == nil {
		return 0, b.notFound(PartSample)
	}
	n, ok := timeseries.CountEqual(b.sample, timeseries.ColUncen, 0)
	if !ok {
		b.Logger().Info("sample data has no Uncen column", zap.Stringer("part", PartSample))
		return 0, fmt.Errorf("%s %s column: %w", PartSample, timeseries.ColUncen, ErrNotFound)
	}
	return n, nil
}

func (b *Bundle) require(op string) error {
	if b == nil {
		return &ContractViolationError{Op: op, Reason: "receiver is not a bundle"}
	}
	return nil
}

func (b *Bundle) notFound(p Part) error {
	b.Logger().Info("no "+p.String()+" data found", zap.Stringer("part", p))
	return fmt.Errorf("%s data: %w", p, ErrNotFound)
}
