package units_test

import (
	"math/big"
	"testing"

	"github.com/sprintertech/frame-bridge/chains/evm/units"
)

func Test_ParseEther(t *testing.T) {
	tests := []struct {
		name    string
		amount  string
		want    string
		wantErr bool
	}{
		{name: "fraction", amount: "0.1", want: "100000000000000000"},
		{name: "whole", amount: "2", want: "2000000000000000000"},
		{name: "leading dot", amount: ".5", want: "500000000000000000"},
		{name: "trailing dot", amount: "1.", want: "1000000000000000000"},
		{name: "surrounding whitespace", amount: " 0.01 ", want: "10000000000000000"},
		{name: "smallest unit", amount: "0.000000000000000001", want: "1"},
		{name: "zero", amount: "0", want: "0"},
		{name: "empty", amount: "", wantErr: true},
		{name: "dot only", amount: ".", wantErr: true},
		{name: "letters", amount: "abc", wantErr: true},
		{name: "negative", amount: "-0.1", wantErr: true},
		{name: "explicit plus", amount: "+1", wantErr: true},
		{name: "exponent", amount: "1e18", wantErr: true},
		{name: "two dots", amount: "1.2.3", wantErr: true},
		{name: "too many decimals", amount: "0.0000000000000000001", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := units.ParseEther(tc.amount)

			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.String() != tc.want {
				t.Errorf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func Test_FormatEther(t *testing.T) {
	tests := []struct {
		wei  *big.Int
		want string
	}{
		{wei: big.NewInt(0), want: "0"},
		{wei: big.NewInt(1), want: "0.000000000000000001"},
		{wei: new(big.Int).Mul(big.NewInt(15), big.NewInt(1e17)), want: "1.5"},
		{wei: big.NewInt(-1e17), want: "-0.1"},
		{wei: nil, want: "0"},
	}

	for _, tc := range tests {
		if got := units.FormatEther(tc.wei); got != tc.want {
			t.Errorf("expected %s, got %s", tc.want, got)
		}
	}
}

func Test_EtherRoundTrip(t *testing.T) {
	for _, amount := range []string{"0.1", "0.01", "1", "12.345678901234567891", "0.000000000000000001"} {
		wei, err := units.ParseEther(amount)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if got := units.FormatEther(wei); got != amount {
			t.Errorf("expected %s, got %s", amount, got)
		}
	}
}
