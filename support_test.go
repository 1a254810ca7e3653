package propnet

import (
	"fmt"
	"strings"
	"testing"
)

func TestSupportAdd(t *testing.T) {
	cases := []struct {
		s    string
		l    string
		want string
	}{
		{
			l:    "a",
			want: "a",
		},
		{
			s:    "a",
			l:    "a",
			want: "a",
		},
		{
			s:    "b c d",
			l:    "a",
			want: "a b c d",
		},
		{
			s:    "a b c",
			l:    "d",
			want: "a b c d",
		},
		{
			s:    "a c",
			l:    "b",
			want: "a b c",
		},
	}
	for i, tc := range cases {
		t.Run(fmt.Sprintf("%02d", i+1), func(t *testing.T) {
			got := toSupport(tc.s).Add(tc.l)
			if want := toSupport(tc.want); !got.Equal(want) {
				t.Errorf("got %s, want %s", got, want)
			}
		})
	}
}

func TestSupportUnion(t *testing.T) {
	cases := []struct {
		a, b, want string
	}{
		{},
		{
			a:    "a",
			want: "a",
		},
		{
			b:    "a",
			want: "a",
		},
		{
			a:    "a c",
			b:    "b d",
			want: "a b c d",
		},
		{
			a:    "a b",
			b:    "b c",
			want: "a b c",
		},
	}
	for i, tc := range cases {
		t.Run(fmt.Sprintf("%02d", i+1), func(t *testing.T) {
			got := toSupport(tc.a).Union(toSupport(tc.b))
			if want := toSupport(tc.want); !got.Equal(want) {
				t.Errorf("got %s, want %s", got, want)
			}
		})
	}
}

func TestSupportMoreInformative(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{
			a: "", b: "",
		},
		{
			a: "", b: "a",
			want: true,
		},
		{
			a: "a", b: "a",
		},
		{
			a: "a", b: "a b",
			want: true,
		},
		{
			a: "a b", b: "a",
		},
		{
			a: "a c", b: "a b",
		},
	}
	for i, tc := range cases {
		t.Run(fmt.Sprintf("%02d", i+1), func(t *testing.T) {
			got := toSupport(tc.a).MoreInformativeThan(toSupport(tc.b))
			if got != tc.want {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func toSupport(s string) Support {
	return NewSupport(strings.Fields(s)...)
}
