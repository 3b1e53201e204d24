package form

import (
	"reflect"
	"testing"

	"github.com/ISHAsolanki/property-final/models"
)

func TestNewDraftDefaults(t *testing.T) {
	p := NewDraft().Property()

	if p.TrendingScore != 1 {
		t.Errorf("trending score default = %d, want 1", p.TrendingScore)
	}
	if p.Featured {
		t.Error("featured should default to false")
	}
	if p.PriceRange != models.DefaultPriceRange() {
		t.Errorf("price range default = %+v", p.PriceRange)
	}
	if p.KeyHighlights.CarpetArea.Unit != models.AreaSqft {
		t.Errorf("carpet area unit default = %q, want sqft", p.KeyHighlights.CarpetArea.Unit)
	}
	// Every editable list opens with one empty slot.
	if len(p.KeyHighlights.OtherAmenities) != 1 || p.KeyHighlights.OtherAmenities[0] != "" {
		t.Errorf("amenities default = %v", p.KeyHighlights.OtherAmenities)
	}
	if len(p.Gallery) != 1 || p.Gallery[0] != (models.GalleryItem{}) {
		t.Errorf("gallery default = %v", p.Gallery)
	}
	if len(p.Videos) != 1 || len(p.OtherProjects) != 1 ||
		len(p.LocationAdvantage.Advantages) != 1 || len(p.FeaturedDevelopment.Images) != 1 {
		t.Error("expected one empty slot in videos, other projects, advantages and featured images")
	}
}

func TestEditCopiesRecord(t *testing.T) {
	original := models.Property{
		Name:          "Skyline",
		OtherProjects: []string{"Horizon"},
	}
	d := Edit(original)
	d.SetOtherProject(0, "Summit")
	d.SetName("Changed")

	if original.Name != "Skyline" || original.OtherProjects[0] != "Horizon" {
		t.Errorf("editing the draft mutated the source record: %+v", original)
	}
	if got := d.Property(); got.Name != "Changed" || got.OtherProjects[0] != "Summit" {
		t.Errorf("draft lost edits: %+v", got)
	}
}

func TestAmenityRemoveThenAdd(t *testing.T) {
	d := NewDraft()
	d.SetAmenity(0, "clubhouse")
	d.AddAmenity()
	d.SetAmenity(1, "pool")
	d.AddAmenity()
	d.SetAmenity(2, "gym")

	d.RemoveAmenity(1)
	got := d.Property().KeyHighlights.OtherAmenities
	if !reflect.DeepEqual(got, []string{"clubhouse", "gym"}) {
		t.Fatalf("after remove: %v", got)
	}

	d.AddAmenity()
	got = d.Property().KeyHighlights.OtherAmenities
	if !reflect.DeepEqual(got, []string{"clubhouse", "gym", ""}) {
		t.Fatalf("add must append an empty entry, never the removed value: %v", got)
	}
}

func TestRemoveOutOfRangeIsNoop(t *testing.T) {
	d := NewDraft()
	d.RemoveAmenity(5)
	d.RemoveGalleryItem(-1)
	d.RemoveVideo(2)
	p := d.Property()
	if len(p.KeyHighlights.OtherAmenities) != 1 || len(p.Gallery) != 1 || len(p.Videos) != 1 {
		t.Errorf("out-of-range removes changed the draft: %+v", p)
	}
}

func TestAttachGalleryImageClearsURL(t *testing.T) {
	d := NewDraft()
	d.SetGalleryURL(0, "https://img.example/old.jpg")
	d.SetGalleryName(0, "front view")

	d.AttachGalleryImage(0, []byte{0x89, 0x50}, "image/png")
	item := d.Property().Gallery[0]
	if item.URL != "" {
		t.Errorf("attaching data must clear the URL, got %q", item.URL)
	}
	if item.Data == "" || item.Name != "front view" {
		t.Errorf("attach mangled the item: %+v", item)
	}

	// With inline data present the URL field is suppressed.
	d.SetGalleryURL(0, "https://img.example/new.jpg")
	if got := d.Property().Gallery[0].URL; got != "" {
		t.Errorf("URL edits must be ignored once data is set, got %q", got)
	}
}

func TestAttachFeaturedImageClearsURL(t *testing.T) {
	d := NewDraft()
	d.SetFeaturedImageURL(0, "https://img.example/a.jpg")
	d.AttachFeaturedImage(0, []byte("img"), "image/jpeg")
	item := d.Property().FeaturedDevelopment.Images[0]
	if item.URL != "" || item.Data == "" {
		t.Errorf("featured image attach: %+v", item)
	}
}

func TestUnitTokenSetOps(t *testing.T) {
	d := NewDraft()
	for _, tok := range []string{"2", "3", "BHK"} {
		if err := d.AddUnitToken(tok); err != nil {
			t.Fatalf("AddUnitToken(%q): %v", tok, err)
		}
	}
	if got := d.Property().KeyHighlights.UnitConfiguration; got != "2, 3, BHK" {
		t.Errorf("unit configuration = %q", got)
	}

	// Duplicates are a no-op, unknown tokens are rejected.
	if err := d.AddUnitToken("2"); err != nil {
		t.Errorf("duplicate add should be a no-op, got %v", err)
	}
	if err := d.AddUnitToken("7"); err == nil {
		t.Error("expected error for unknown token")
	}
	if got := d.Property().KeyHighlights.UnitConfiguration; got != "2, 3, BHK" {
		t.Errorf("set changed unexpectedly: %q", got)
	}

	d.RemoveUnitToken("3")
	if got := d.Property().KeyHighlights.UnitConfiguration; got != "2, BHK" {
		t.Errorf("after remove: %q", got)
	}
	if d.HasUnitToken("3") || !d.HasUnitToken("BHK") {
		t.Error("HasUnitToken out of sync with the stored set")
	}
}

func TestSetPriceCoercesUnits(t *testing.T) {
	d := NewDraft()
	d.SetPriceFrom("85", "whatever")
	d.SetPriceTo("1.8", "cr")
	pr := d.Property().PriceRange
	if pr.From.Unit != models.UnitLac || pr.To.Unit != models.UnitCr {
		t.Errorf("price units = %q / %q", pr.From.Unit, pr.To.Unit)
	}
}
