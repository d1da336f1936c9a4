package textdiff

import (
	"reflect"
	"testing"
	"time"
)

func TestBisect(t *testing.T) {
	d := newDiffer(defaultOptions())

	got := d.bisect([]rune("cat"), []rune("map"))
	want := EditList{
		{Delete, "c"}, {Insert, "m"}, {Equal, "a"},
		{Delete, "t"}, {Insert, "p"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("bisect() = %v, want %v", got, want)
	}
}

func TestBisect_DeadlinePassed(t *testing.T) {
	d := newDiffer(defaultOptions())
	d.deadline = time.Now().Add(-time.Second)

	got := d.bisect([]rune("cat"), []rune("map"))
	want := EditList{{Delete, "cat"}, {Insert, "map"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("bisect() past deadline = %v, want %v", got, want)
	}
}

func TestBisect_NoCommonality(t *testing.T) {
	d := newDiffer(defaultOptions())

	got := d.bisect([]rune("abc"), []rune("xyz"))
	want := EditList{{Delete, "abc"}, {Insert, "xyz"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("bisect() = %v, want %v", got, want)
	}
}
