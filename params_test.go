// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package georand

import (
	"errors"
	"testing"
)

func TestParameters_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(p *Parameters)
		wantField string
	}{
		{"default valid", func(p *Parameters) {}, ""},
		{"vertex count too low", func(p *Parameters) { p.VertexCountRange = IntRange{Lo: 2, Hi: 5} }, "VertexCountRange"},
		{"vertex count inverted", func(p *Parameters) { p.VertexCountRange = IntRange{Lo: 6, Hi: 4} }, "VertexCountRange"},
		{"radius zero", func(p *Parameters) { p.RadiusRange = FloatRange{Lo: 0, Hi: 5} }, "RadiusRange"},
		{"radius inverted", func(p *Parameters) { p.RadiusRange = FloatRange{Lo: 8, Hi: 5} }, "RadiusRange"},
		{"irregularity negative", func(p *Parameters) { p.Irregularity = -0.1 }, "Irregularity"},
		{"irregularity above one", func(p *Parameters) { p.Irregularity = 1.1 }, "Irregularity"},
		{"spikiness negative", func(p *Parameters) { p.Spikiness = -0.1 }, "Spikiness"},
		{"spikiness above one", func(p *Parameters) { p.Spikiness = 2 }, "Spikiness"},
		{"center range inverted", func(p *Parameters) { p.CenterRange.X.Lo, p.CenterRange.X.Hi = 10, 0 }, "CenterRange"},
		{"shape count zero", func(p *Parameters) { p.ShapeCountRange = IntRange{Lo: 0, Hi: 4} }, "ShapeCountRange"},
		{"shape count inverted", func(p *Parameters) { p.ShapeCountRange = IntRange{Lo: 5, Hi: 2} }, "ShapeCountRange"},
		{"negative attempts", func(p *Parameters) { p.MaxPlacementAttempts = -1 }, "MaxPlacementAttempts"},
		{"hole count negative", func(p *Parameters) { p.HoleCountRange = IntRange{Lo: -1, Hi: 0} }, "HoleCountRange"},
		{"hole count inverted", func(p *Parameters) { p.HoleCountRange = IntRange{Lo: 3, Hi: 1} }, "HoleCountRange"},
		{"path too short", func(p *Parameters) { p.PathPointRange = IntRange{Lo: 1, Hi: 4} }, "PathPointRange"},
		{"path inverted", func(p *Parameters) { p.PathPointRange = IntRange{Lo: 4, Hi: 3} }, "PathPointRange"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Default()
			tt.mutate(&p)
			err := p.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v, want nil", err)
				}
				return
			}
			var invalid *InvalidParameterError
			if !errors.As(err, &invalid) {
				t.Fatalf("Validate() error = %v, want *InvalidParameterError", err)
			}
			if invalid.Field != tt.wantField {
				t.Errorf("Validate() error field = %q, want %q", invalid.Field, tt.wantField)
			}
		})
	}
}

func TestDefault_Valid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() error = %v, want nil", err)
	}
}

func TestInvalidParameterError_Message(t *testing.T) {
	err := &InvalidParameterError{Field: "Spikiness", Reason: "must be in [0, 1]"}
	want := "georand: invalid parameter Spikiness: must be in [0, 1]"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
