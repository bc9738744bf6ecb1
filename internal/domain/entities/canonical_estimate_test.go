package entities

import "testing"

func TestParseLaborType(t *testing.T) {
	cases := []struct {
		in   string
		want LaborType
	}{
		{in: "BODY", want: LaborTypeBody},
		{in: "BDY", want: LaborTypeBody},
		{in: "PNT", want: LaborTypePaint},
		{in: "REFINISH", want: LaborTypePaint},
		{in: "FRM", want: LaborTypeFrame},
		{in: "MECH", want: LaborTypeMechanical},
		{in: "GLS", want: LaborTypeGlass},
		{in: "ELEC", want: LaborTypeElectrical},
		{in: "GLASS", want: LaborTypeGlass},
		{in: "???", want: LaborTypeOther},
		{in: "", want: LaborTypeOther},
	}

	for _, tc := range cases {
		if got := ParseLaborType(tc.in); got != tc.want {
			t.Fatalf("ParseLaborType(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}
