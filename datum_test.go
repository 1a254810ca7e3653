package propnet

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

func TestDatumMerge(t *testing.T) {
	cases := []struct {
		a    Datum
		b    Value
		want Datum
	}{
		{
			a:    NewDatum(Interval{1, 5}, "a"),
			b:    NewDatum(Interval{0, 10}, "b"),
			want: NewDatum(Interval{1, 5}, "a"),
		},
		{
			// Same value, better justification.
			a:    NewDatum(Interval{1, 5}, "a", "b"),
			b:    NewDatum(Interval{1, 5}, "a"),
			want: NewDatum(Interval{1, 5}, "a"),
		},
		{
			a:    NewDatum(Interval{1, 5}, "a"),
			b:    NewDatum(Interval{1, 5}, "a", "b"),
			want: NewDatum(Interval{1, 5}, "a"),
		},
		{
			a:    NewDatum(Interval{0, 10}, "a"),
			b:    NewDatum(Interval{1, 5}, "b"),
			want: NewDatum(Interval{1, 5}, "b"),
		},
		{
			a:    NewDatum(Interval{0, 5}, "a"),
			b:    NewDatum(Interval{3, 10}, "b"),
			want: NewDatum(Interval{3, 5}, "a", "b"),
		},
		{
			a:    NewDatum(Interval{0, 10}, "a"),
			b:    Interval{1, 5},
			want: NewDatum(Interval{1, 5}),
		},
		{
			a:    NewDatum(Scalar(4), "a"),
			b:    NewDatum(Scalar(4)),
			want: NewDatum(Scalar(4)),
		},
	}
	for i, tc := range cases {
		t.Run(fmt.Sprintf("%02d", i+1), func(t *testing.T) {
			got, err := tc.a.Merge(tc.b)
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDatumMergeContradiction(t *testing.T) {
	_, err := NewDatum(Interval{0, 1}, "a").Merge(NewDatum(Interval{2, 3}, "b"))
	require.ErrorIs(t, err, ErrContradiction)
}

func TestDatumArithmetic(t *testing.T) {
	got, err := Add(NewDatum(Interval{1, 2}, "a"), NewDatum(Interval{3, 4}, "b"))
	require.NoError(t, err)
	want := NewDatum(Interval{4, 6}, "a", "b")
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	got, err = Sqrt(NewDatum(Interval{4, 9}, "c"))
	require.NoError(t, err)
	want = NewDatum(Interval{2, 3}, "c")
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	got, err = Mul(NewDatum(Scalar(3), "a"), Scalar(2))
	require.NoError(t, err)
	want = NewDatum(Scalar(6), "a")
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestDatumSubsumes(t *testing.T) {
	narrow := NewDatum(Interval{2, 3}, "a")
	wide := NewDatum(Interval{1, 4}, "a", "b")
	require.True(t, narrow.Subsumes(wide))
	require.False(t, wide.Subsumes(narrow))
	require.False(t, narrow.Subsumes(NewDatum(Interval{1, 4})))
}
