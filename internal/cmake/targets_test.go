package cmake

import (
	"reflect"
	"testing"
)

func TestParseTargetListing(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   TargetListing
	}{
		{
			name:   "typical listing with noise",
			output: "foo...Build target foo\n\nbar... Build target bar\nSome unrelated header\n",
			want:   TargetListing{"foo", "bar"},
		},
		{
			name:   "no marker anywhere yields empty listing",
			output: "The following are some of the valid targets for this Makefile:\nnothing to see here\n",
			want:   nil,
		},
		{
			name:   "empty output",
			output: "",
			want:   nil,
		},
		{
			name:   "whitespace only lines ignored",
			output: "   \n\t\n  lib... Build target lib  \n",
			want:   TargetListing{"lib"},
		},
		{
			name:   "name is text before first marker only",
			output: "gen...things... more dots\n",
			want:   TargetListing{"gen"},
		},
		{
			name:   "marker-leading line keeps empty name",
			output: "... all (the default if no target is provided)\n",
			want:   TargetListing{""},
		},
		{
			name:   "duplicates and order preserved",
			output: "clean... cleans\nall... builds\nclean... cleans again\n",
			want:   TargetListing{"clean", "all", "clean"},
		},
		{
			name:   "windows line endings",
			output: "foo... Build target foo\r\nbar... Build target bar\r\n",
			want:   TargetListing{"foo", "bar"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseTargetListing(tt.output)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseTargetListing() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestParseTargetListingIsDeterministic(t *testing.T) {
	output := "a... x\nb... y\n"
	first := ParseTargetListing(output)
	second := ParseTargetListing(output)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated parses differ: %v vs %v", first, second)
	}
}
