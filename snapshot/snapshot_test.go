package snapshot

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSlug(t *testing.T) {
	tests := []struct {
		site string
		want string
	}{
		{"All Sites", "all-sites"},
		{"CCAFS LC-40", "ccafs-lc-40"},
		{"VAFB SLC-4E", "vafb-slc-4e"},
		{"  KSC   LC-39A ", "ksc-lc-39a"},
		{"---", "site"},
		{"", "site"},
	}
	for _, tt := range tests {
		if got := Slug(tt.site); got != tt.want {
			t.Errorf("Slug(%q) = %q, want %q", tt.site, got, tt.want)
		}
	}
}

func TestSlugDeterministic(t *testing.T) {
	for i := 0; i < 3; i++ {
		if Slug("CCAFS SLC-40") != "ccafs-slc-40" {
			t.Fatal("slug changed between calls")
		}
	}
}

func TestTargetsDeduplicates(t *testing.T) {
	got := Targets("All Sites", "KSC LC-39A", "all sites", "KSC LC-39A", "CCAFS LC-40")
	want := []Target{
		{Site: "All Sites", Slug: "all-sites"},
		{Site: "KSC LC-39A", Slug: "ksc-lc-39a"},
		{Site: "CCAFS LC-40", Slug: "ccafs-lc-40"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("targets (-want +got):\n%s", diff)
	}
}

func TestDefaultTargets(t *testing.T) {
	targets := DefaultTargets()
	if len(targets) != 5 {
		t.Fatalf("targets: got %d, want 5", len(targets))
	}
	if targets[0].Site != "All Sites" || targets[4].Slug != "ccafs-slc-40" {
		t.Errorf("unexpected targets: %+v", targets)
	}
}

func TestPageURL(t *testing.T) {
	got := PageURL("http://127.0.0.1:8050", "KSC LC-39A")
	if want := "http://127.0.0.1:8050/?site=KSC+LC-39A"; got != want {
		t.Errorf("PageURL = %q, want %q", got, want)
	}
}

func TestFindChromeBinaryPrefersConfigured(t *testing.T) {
	if got := findChromeBinary("/opt/custom/chrome"); got != "/opt/custom/chrome" {
		t.Errorf("got %q", got)
	}
}
