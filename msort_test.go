package msort

import (
	"testing"

	"github.com/go-test/deep"
)

func TestFormatInts(t *testing.T) {
	tests := []struct {
		name   string
		input  []int
		expect string
	}{
		{
			name:   "nil",
			input:  nil,
			expect: "[ ]",
		},
		{
			name:   "single",
			input:  []int{42},
			expect: "[ 42 ]",
		},
		{
			name:   "several with negatives",
			input:  []int{-5, 0, 12},
			expect: "[ -5, 0, 12 ]",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatInts(tt.input)
			if diff := deep.Equal(tt.expect, got); diff != nil {
				t.Errorf("%+v", diff)
			}
		})
	}
}

func TestVerdict(t *testing.T) {
	if got := Verdict(true); got != "verified" {
		t.Errorf("unexpected verdict for a sorted slice: %s", got)
	}
	if got := Verdict(false); got != "NOT SORTED" {
		t.Errorf("unexpected verdict for an unsorted slice: %s", got)
	}
}

func TestSortBothWays(t *testing.T) {
	in := []int{45, 12, 78, 22, 90, 5, 60}
	o := SortBothWays(in)
	if diff := deep.Equal(in, []int{45, 12, 78, 22, 90, 5, 60}); diff != nil {
		t.Fatalf("input was modified: %+v", diff)
	}
	if diff := deep.Equal(o.Ascending, []int{5, 12, 22, 45, 60, 78, 90}); diff != nil {
		t.Errorf("%+v", diff)
	}
	if diff := deep.Equal(o.Descending, []int{90, 78, 60, 45, 22, 12, 5}); diff != nil {
		t.Errorf("%+v", diff)
	}
	if !o.Verified() {
		t.Errorf("both orders supposed to be verified")
	}
}
