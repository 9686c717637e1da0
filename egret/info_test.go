package egret

import (
	"testing"
)

func TestParseInfo(t *testing.T) {
	doc := []byte(`
shortName: Choptank River
paramShortName: Inorganic nitrogen (nitrate and nitrite)
param.units: mg/l as N
constitAbbrev: NO3
drainSqKm: 292.67
parameter_cd: "00631"
`)

	info, err := ParseInfo(doc)
	if err != nil {
		t.Fatalf("ParseInfo failed: %v", err)
	}

	if s, ok := info.Text(FieldParamUnits); !ok || s != "mg/l as N" {
		t.Errorf("Unexpected param.units %q", s)
	}
	if code, _ := info.Text(FieldParameterCode); code != "00631" {
		t.Errorf("Expected parameter code to stay a string, got %q", code)
	}
	if area, ok := info.Number(FieldDrainSqKm); !ok || area != 292.67 {
		t.Errorf("Unexpected drainSqKm %f", area)
	}
	if len(Check(info, nil, nil, nil)) != 0 {
		t.Error("Expected no diagnostics for a complete info record")
	}

	if _, err := ParseInfo([]byte("- not\n- a mapping")); err == nil {
		t.Error("Expected error for a YAML sequence")
	}
}

func TestInfoNumber(t *testing.T) {
	info := Info{"a": 3, "b": "4.5", "c": "x", "d": int64(7), "e": float32(1.5), "f": nil}

	tests := []struct {
		key  string
		want float64
		ok   bool
	}{
		{"a", 3, true},
		{"b", 4.5, true},
		{"c", 0, false},
		{"d", 7, true},
		{"e", 1.5, true},
		{"f", 0, false},
		{"missing", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, ok := info.Number(tt.key)
			if ok != tt.ok || got != tt.want {
				t.Errorf("Expected (%f, %v), got (%f, %v)", tt.want, tt.ok, got, ok)
			}
		})
	}
}

func TestSetPeriodOfAnalysis(t *testing.T) {
	info := Info{FieldShortName: "X"}

	pa, err := SetPeriodOfAnalysis(info, 10, 12)
	if err != nil {
		t.Fatalf("SetPeriodOfAnalysis failed: %v", err)
	}
	if v, _ := pa.Number(FieldPAStart); v != 10 {
		t.Errorf("Expected paStart 10, got %f", v)
	}
	if v, _ := pa.Number(FieldPALong); v != 12 {
		t.Errorf("Expected paLong 12, got %f", v)
	}
	if _, ok := info[FieldPAStart]; ok {
		t.Error("SetPeriodOfAnalysis should not modify its input")
	}

	if _, err := SetPeriodOfAnalysis(nil, 4, 3); err != nil {
		t.Errorf("Expected nil info to be accepted, got %v", err)
	}

	for _, bad := range [][2]int{{0, 12}, {13, 12}, {1, 0}, {1, 13}} {
		if _, err := SetPeriodOfAnalysis(info, bad[0], bad[1]); err == nil {
			t.Errorf("Expected error for paStart=%d paLong=%d", bad[0], bad[1])
		}
	}
}
