package imageref

import (
	"strings"
	"testing"
)

func TestAssemble(t *testing.T) {
	cases := []struct {
		name                        string
		registry, prefix, img, tag string
		want                        string
	}{
		{"no registry", "", "", "username/image", "tag", "username/image:tag"},
		{"trailing slash on registry", "my-registry:5000/", "", "username/image", "tag", "my-registry:5000/username/image:tag"},
		{"with prefix", "my-registry:5000", "prefix", "image", "tag", "my-registry:5000/prefix/image:tag"},
		{"empty prefix collapses", "reg.example.com", "", "image", "latest", "reg.example.com/image:latest"},
		{"all empty but name", "", "", "image", "v1", "image:v1"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Assemble(tc.registry, tc.prefix, tc.img, tc.tag)
			if got != tc.want {
				t.Errorf("Assemble(%q,%q,%q,%q) = %q, want %q", tc.registry, tc.prefix, tc.img, tc.tag, got, tc.want)
			}
		})
	}
}

func TestAssembleInvariants(t *testing.T) {
	cases := [][4]string{
		{"", "", "username/image", "t1"},
		{"reg//", "p//", "name", "t2"},
		{"reg", "", "name", "t3"},
	}
	for _, c := range cases {
		ref := Assemble(c[0], c[1], c[2], c[3])
		if strings.Contains(ref, "//") {
			t.Errorf("reference %q contains //", ref)
		}
		if len(ref) > 0 && ref[0] == '/' {
			t.Errorf("reference %q begins with /", ref)
		}
	}
}
