package egret

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/sartorproj/goegret/timeseries"
)

// Diagnostic is a non-fatal structural finding about a bundle part.
type Diagnostic struct {
	Part    Part
	Message string
	Missing []string // Expected fields or columns that were absent
}

func (d Diagnostic) String() string {
	return d.Part.String() + ": " + d.Message
}

// Check inspects the parts of a prospective bundle and reports structural
// problems. Nil parts are unavailable and are not checked.
func Check(info Info, daily, sample *timeseries.Table, surfaces mat.Matrix) []Diagnostic {
	var diags []Diagnostic

	if daily != nil && !daily.Has(timeseries.ColQ) {
		diags = append(diags, Diagnostic{
			Part:    PartDaily,
			Message: "daily data lacks a Q column",
			Missing: []string{timeseries.ColQ},
		})
	}

	if sample != nil {
		if missing := sample.Missing(timeseries.CensoringColumns...); len(missing) > 0 {
			diags = append(diags, Diagnostic{
				Part:    PartSample,
				Message: "sample data lacks columns " + strings.Join(missing, ", "),
				Missing: missing,
			})
		}
	}

	if info != nil {
		found := false
		for _, f := range AttributeFields {
			if _, ok := info[f]; ok {
				found = true
				break
			}
		}
		if !found {
			diags = append(diags, Diagnostic{
				Part:    PartInfo,
				Message: "info has none of " + strings.Join(AttributeFields, ", "),
				Missing: AttributeFields,
			})
		}
	}

	if surfaces = normalizeMatrix(surfaces); surfaces != nil {
		if r, _ := surfaces.Dims(); r != SurfaceRows {
			diags = append(diags, Diagnostic{
				Part:    PartSurfaces,
				Message: fmt.Sprintf("surfaces has %d rows, expected %d", r, SurfaceRows),
			})
		}
	}

	return diags
}
