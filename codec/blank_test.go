package codec

import "testing"

func TestEncodeBlankRuns(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"a: 1\n\n\nb: 2\n", "a: 1\n#★2\nb: 2\n"},
		{"a: 1\n\n# note\nb: 2\n", "a: 1\n#★1\n# note\nb: 2\n"},
		{"\n\na: 1\n", "#★2\na: 1\n"},
		{"a: 1\nb: 2\n", "a: 1\nb: 2\n"},
		// trailing blanks have no following node, pass through
		{"a: 1\n\n\n", "a: 1\n\n\n"},
		{"", ""},
		{"\n\n\n", "\n\n\n"},
	}
	for _, c := range cases {
		if got := EncodeBlankRuns(c.in); got != c.want {
			t.Errorf("EncodeBlankRuns(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestEncodeBlankRunsSkipsBlockScalars(t *testing.T) {
	cases := []string{
		"key: |\n  line1\n\n  line2\nnext: 1\n",
		"key: >-\n  line1\n\n  line2\nnext: 1\n",
		"list:\n  - |\n    a\n\n    b\n",
	}
	for _, in := range cases {
		if got := EncodeBlankRuns(in); got != in {
			t.Errorf("EncodeBlankRuns(%q) = %q, want input verbatim", in, got)
		}
	}
}

func TestEncodeBlankRunsAfterBlockScalar(t *testing.T) {
	in := "key: |\n  line1\nnext: 1\n\n\nlast: 2\n"
	want := "key: |\n  line1\nnext: 1\n#★2\nlast: 2\n"
	if got := EncodeBlankRuns(in); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestDecodeBlankRuns(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"a: 1\n#★2\nb: 2\n", "a: 1\n\n\nb: 2\n"},
		{"a: 1\n  #★1\n  b: 2\n", "a: 1\n\n  b: 2\n"},
		{"a: 1\n#★1\n# note\nb: 2\n", "a: 1\n\n# note\nb: 2\n"},
		// ordinary comments are not markers
		{"# note\na: 1\n", "# note\na: 1\n"},
		{"a: '#★2'\n", "a: '#★2'\n"},
	}
	for _, c := range cases {
		if got := DecodeBlankRuns(c.in); got != c.want {
			t.Errorf("DecodeBlankRuns(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestBlankRunsRoundTrip(t *testing.T) {
	srcs := []string{
		"a: 1\n\n\nb: 2\n",
		"a: 1\n\n# note\nb: 2\n",
		"\n\na: 1\n",
		"first:\n  a: 1\n\n\nsecond:\n  b: 2\n",
	}
	for _, src := range srcs {
		if got := DecodeBlankRuns(EncodeBlankRuns(src)); got != src {
			t.Errorf("round trip of %q = %q", src, got)
		}
	}
}
