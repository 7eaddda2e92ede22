// SPDX-License-Identifier: NONE
package types

import (
	"errors"
	"reflect"
	"testing"
)

func TestSamples_Stats(t *testing.T) {
	tests := []struct {
		name       string
		sl         Samples[int64]
		wantMin    int64
		wantMax    int64
		wantSum    int64
		wantMean   int64
		wantMedian int64
		wantErr    error
	}{
		{name: "empty", sl: Samples[int64]{}, wantErr: ErrNoSamples},
		{name: "single", sl: Samples[int64]{7}, wantMin: 7, wantMax: 7, wantSum: 7, wantMean: 7, wantMedian: 7},
		{name: "odd", sl: Samples[int64]{9, 1, 5}, wantMin: 1, wantMax: 9, wantSum: 15, wantMean: 5, wantMedian: 5},
		{name: "even", sl: Samples[int64]{4, 10, 1, 3}, wantMin: 1, wantMax: 10, wantSum: 18, wantMean: 4, wantMedian: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sl.Sum(); got != tt.wantSum {
				t.Errorf("Samples.Sum() = %v, want %v", got, tt.wantSum)
			}

			checks := map[string]struct {
				fn   func() (int64, error)
				want int64
			}{
				"Min":    {tt.sl.Min, tt.wantMin},
				"Max":    {tt.sl.Max, tt.wantMax},
				"Mean":   {tt.sl.Mean, tt.wantMean},
				"Median": {tt.sl.Median, tt.wantMedian},
			}
			for name, check := range checks {
				got, err := check.fn()
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Samples.%s() error = %v, wantErr %v", name, err, tt.wantErr)
					continue
				}
				if got != check.want {
					t.Errorf("Samples.%s() = %v, want %v", name, got, check.want)
				}
			}
		})
	}
}

func TestSamples_MedianLeavesReceiver(t *testing.T) {
	sl := Samples[float64]{3, 1, 2}
	if got, _ := sl.Median(); got != 2 {
		t.Errorf("Samples.Median() = %v, want 2", got)
	}

	if want := (Samples[float64]{3, 1, 2}); !reflect.DeepEqual(sl, want) {
		t.Errorf("Samples.Median() modified the receiver: %v", sl)
	}
}

func TestSamples_Sort(t *testing.T) {
	sl := Samples[uint]{3, 1, 2}
	sl.Sort()

	if want := (Samples[uint]{1, 2, 3}); !reflect.DeepEqual(sl, want) {
		t.Errorf("Samples.Sort() = %v, want %v", sl, want)
	}
}

func TestSamples_String(t *testing.T) {
	tests := []struct {
		sl   Samples[int]
		want string
	}{
		{Samples[int]{}, "[]"},
		{Samples[int]{1}, "[1]"},
		{Samples[int]{1, 2, 3}, "[1,2,3]"},
	}

	for _, tt := range tests {
		if got := tt.sl.String(); got != tt.want {
			t.Errorf("Samples.String() = %v, want %v", got, tt.want)
		}
	}
}
