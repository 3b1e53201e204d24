// Package form holds the editable draft behind the admin property form.
// A Draft is caller-owned: handlers build one per request, tests build their
// own, and nothing here is shared process-wide.
package form

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/ISHAsolanki/property-final/models"
)

// UnitTokens are the values the unit-configuration picker offers. The field
// is stored comma-joined but edited as a set.
var UnitTokens = []string{"1", "2", "3", "4", "5", "6", "BHK", "RK", "Studio"}

// IgbcLevels are the certification levels selectable once igbcGoldCertified
// is checked.
var IgbcLevels = []string{"Certified", "Silver", "Gold", "Platinum"}

type Draft struct {
	prop models.Property
}

// NewDraft returns a draft in the state a blank admin form shows: empty
// values, Lac/sqft units, one empty slot in every editable list.
func NewDraft() *Draft {
	return &Draft{prop: models.Property{
		PriceRange: models.DefaultPriceRange(),
		KeyHighlights: models.KeyHighlights{
			CarpetArea:     models.DefaultCarpetArea(),
			OtherAmenities: []string{""},
		},
		Gallery:           []models.GalleryItem{{}},
		Videos:            []models.VideoItem{{}},
		LocationAdvantage: models.LocationAdvantage{Advantages: []string{""}},
		FeaturedDevelopment: models.FeaturedDevelopment{
			Images: []models.GalleryItem{{}},
		},
		OtherProjects: []string{""},
		TrendingScore: 1,
	}}
}

// Edit starts a draft from an existing record. The record is copied, so
// edits never leak into the caller's value until submit succeeds.
func Edit(p models.Property) *Draft {
	return &Draft{prop: cloneProperty(p)}
}

// Property returns a snapshot of the draft's current state.
func (d *Draft) Property() models.Property {
	return cloneProperty(d.prop)
}

func (d *Draft) SetName(v string)         { d.prop.Name = v }
func (d *Draft) SetTagline(v string)      { d.prop.Tagline = v }
func (d *Draft) SetPropertyType(v string) { d.prop.PropertyType = v }
func (d *Draft) SetLocation(v string)     { d.prop.Location = v }
func (d *Draft) SetStatus(v string)       { d.prop.Status = v }
func (d *Draft) SetFeatured(v bool)       { d.prop.Featured = v }
func (d *Draft) SetTrendingScore(v int)   { d.prop.TrendingScore = v }

func (d *Draft) SetPriceFrom(value string, unit models.PriceUnit) {
	d.prop.PriceRange.From = models.PricePoint{Value: value, Unit: unit}
	d.prop.PriceRange = models.NormalizePriceRange(d.prop.PriceRange)
}

func (d *Draft) SetPriceTo(value string, unit models.PriceUnit) {
	d.prop.PriceRange.To = models.PricePoint{Value: value, Unit: unit}
	d.prop.PriceRange = models.NormalizePriceRange(d.prop.PriceRange)
}

func (d *Draft) SetDeveloperName(v string)     { d.prop.Builder.DeveloperName = v }
func (d *Draft) SetBuilderWebsiteURL(v string) { d.prop.Builder.WebsiteURL = v }

func (d *Draft) SetReraApproved(v bool)     { d.prop.KeyHighlights.ReraApproved = v }
func (d *Draft) SetReraNumber(v string)     { d.prop.KeyHighlights.ReraNumber = v }
func (d *Draft) SetPossessionDate(v string) { d.prop.KeyHighlights.PossessionDate = v }
func (d *Draft) SetIgbcCertified(v bool)    { d.prop.KeyHighlights.IgbcGoldCertified = v }
func (d *Draft) SetIgbcLevel(v string)      { d.prop.KeyHighlights.IgbcLevel = v }

func (d *Draft) SetCarpetArea(from, to string, unit models.AreaUnit) {
	d.prop.KeyHighlights.CarpetArea = models.NormalizeAreaRange(models.AreaRange{
		From: from, To: to, Unit: unit,
	})
}

// AddUnitToken adds a token to the unit-configuration set. Order of first
// appearance is kept; duplicates and unknown tokens are rejected.
func (d *Draft) AddUnitToken(tok string) error {
	if !validUnitToken(tok) {
		return fmt.Errorf("unknown unit configuration token %q", tok)
	}
	if d.HasUnitToken(tok) {
		return nil
	}
	set := unitTokenSet(d.prop.KeyHighlights.UnitConfiguration)
	set = append(set, tok)
	d.prop.KeyHighlights.UnitConfiguration = strings.Join(set, ", ")
	return nil
}

func (d *Draft) RemoveUnitToken(tok string) {
	set := unitTokenSet(d.prop.KeyHighlights.UnitConfiguration)
	out := set[:0]
	for _, t := range set {
		if t != tok {
			out = append(out, t)
		}
	}
	d.prop.KeyHighlights.UnitConfiguration = strings.Join(out, ", ")
}

func (d *Draft) HasUnitToken(tok string) bool {
	for _, t := range unitTokenSet(d.prop.KeyHighlights.UnitConfiguration) {
		if t == tok {
			return true
		}
	}
	return false
}

func (d *Draft) SetAmenity(i int, v string) {
	setAt(d.prop.KeyHighlights.OtherAmenities, i, v)
}

func (d *Draft) AddAmenity() {
	d.prop.KeyHighlights.OtherAmenities = append(d.prop.KeyHighlights.OtherAmenities, "")
}

func (d *Draft) RemoveAmenity(i int) {
	d.prop.KeyHighlights.OtherAmenities = removeAt(d.prop.KeyHighlights.OtherAmenities, i)
}

func (d *Draft) SetAddress(v string)    { d.prop.LocationAdvantage.Address = v }
func (d *Draft) SetAddressURL(v string) { d.prop.LocationAdvantage.AddressURL = v }

func (d *Draft) SetAdvantage(i int, v string) {
	setAt(d.prop.LocationAdvantage.Advantages, i, v)
}

func (d *Draft) AddAdvantage() {
	d.prop.LocationAdvantage.Advantages = append(d.prop.LocationAdvantage.Advantages, "")
}

func (d *Draft) RemoveAdvantage(i int) {
	d.prop.LocationAdvantage.Advantages = removeAt(d.prop.LocationAdvantage.Advantages, i)
}

func (d *Draft) SetGalleryName(i int, v string) {
	if i >= 0 && i < len(d.prop.Gallery) {
		d.prop.Gallery[i].Name = v
	}
}

// SetGalleryURL only applies while the item has no inline payload; once an
// image is attached, the URL field is gone from the form.
func (d *Draft) SetGalleryURL(i int, v string) {
	if i >= 0 && i < len(d.prop.Gallery) && d.prop.Gallery[i].Data == "" {
		d.prop.Gallery[i].URL = v
	}
}

// AttachGalleryImage stores an uploaded image inline as a base64 data URI
// and clears the URL: an item carries at most one of the two.
func (d *Draft) AttachGalleryImage(i int, raw []byte, contentType string) {
	if i >= 0 && i < len(d.prop.Gallery) {
		d.prop.Gallery[i].Data = dataURI(raw, contentType)
		d.prop.Gallery[i].URL = ""
	}
}

func (d *Draft) AddGalleryItem() {
	d.prop.Gallery = append(d.prop.Gallery, models.GalleryItem{})
}

func (d *Draft) RemoveGalleryItem(i int) {
	d.prop.Gallery = removeItemAt(d.prop.Gallery, i)
}

func (d *Draft) SetVideoURL(i int, v string) {
	if i >= 0 && i < len(d.prop.Videos) {
		d.prop.Videos[i].URL = v
	}
}

func (d *Draft) SetVideoName(i int, v string) {
	if i >= 0 && i < len(d.prop.Videos) {
		d.prop.Videos[i].Name = v
	}
}

func (d *Draft) AddVideo() {
	d.prop.Videos = append(d.prop.Videos, models.VideoItem{})
}

func (d *Draft) RemoveVideo(i int) {
	if i >= 0 && i < len(d.prop.Videos) {
		d.prop.Videos = append(d.prop.Videos[:i], d.prop.Videos[i+1:]...)
	}
}

func (d *Draft) SetFeaturedText(v string) { d.prop.FeaturedDevelopment.Text = v }

func (d *Draft) SetFeaturedImageName(i int, v string) {
	if i >= 0 && i < len(d.prop.FeaturedDevelopment.Images) {
		d.prop.FeaturedDevelopment.Images[i].Name = v
	}
}

func (d *Draft) SetFeaturedImageURL(i int, v string) {
	imgs := d.prop.FeaturedDevelopment.Images
	if i >= 0 && i < len(imgs) && imgs[i].Data == "" {
		imgs[i].URL = v
	}
}

func (d *Draft) AttachFeaturedImage(i int, raw []byte, contentType string) {
	imgs := d.prop.FeaturedDevelopment.Images
	if i >= 0 && i < len(imgs) {
		imgs[i].Data = dataURI(raw, contentType)
		imgs[i].URL = ""
	}
}

func (d *Draft) AddFeaturedImage() {
	d.prop.FeaturedDevelopment.Images = append(d.prop.FeaturedDevelopment.Images, models.GalleryItem{})
}

func (d *Draft) RemoveFeaturedImage(i int) {
	d.prop.FeaturedDevelopment.Images = removeItemAt(d.prop.FeaturedDevelopment.Images, i)
}

func (d *Draft) SetOtherProject(i int, v string) {
	setAt(d.prop.OtherProjects, i, v)
}

func (d *Draft) AddOtherProject() {
	d.prop.OtherProjects = append(d.prop.OtherProjects, "")
}

func (d *Draft) RemoveOtherProject(i int) {
	d.prop.OtherProjects = removeAt(d.prop.OtherProjects, i)
}

func validUnitToken(tok string) bool {
	for _, t := range UnitTokens {
		if t == tok {
			return true
		}
	}
	return false
}

func unitTokenSet(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func dataURI(raw []byte, contentType string) string {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(raw)
}

func setAt(s []string, i int, v string) {
	if i >= 0 && i < len(s) {
		s[i] = v
	}
}

func removeAt(s []string, i int) []string {
	if i < 0 || i >= len(s) {
		return s
	}
	return append(s[:i], s[i+1:]...)
}

func removeItemAt(s []models.GalleryItem, i int) []models.GalleryItem {
	if i < 0 || i >= len(s) {
		return s
	}
	return append(s[:i], s[i+1:]...)
}

func cloneProperty(p models.Property) models.Property {
	p.KeyHighlights.OtherAmenities = append([]string(nil), p.KeyHighlights.OtherAmenities...)
	p.Gallery = append([]models.GalleryItem(nil), p.Gallery...)
	p.Videos = append([]models.VideoItem(nil), p.Videos...)
	p.LocationAdvantage.Advantages = append([]string(nil), p.LocationAdvantage.Advantages...)
	p.FeaturedDevelopment.Images = append([]models.GalleryItem(nil), p.FeaturedDevelopment.Images...)
	p.OtherProjects = append([]string(nil), p.OtherProjects...)
	return p
}
