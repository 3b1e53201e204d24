package form

import (
	"context"
	"strings"

	"github.com/ISHAsolanki/property-final/models"
)

// Gateway is the persistence boundary a draft submits through. The Mongo
// store satisfies it in production; tests plug in fakes.
type Gateway interface {
	CreateProperty(ctx context.Context, p models.Property) (models.Property, error)
	UpdateProperty(ctx context.Context, id string, p models.Property) (models.Property, error)
}

// ValidationError reports the fields that block submission.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for f, m := range e.Fields {
		msgs = append(msgs, f+": "+m)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Validate checks the rules the form enforces before a save: required name
// and type, plus the dependent required fields. The 1..10 trending range is
// advisory input guidance only and never blocks a save, so records that
// already carry other scores can still be re-saved.
func (d *Draft) Validate() error {
	fields := map[string]string{}
	if strings.TrimSpace(d.prop.Name) == "" {
		fields["name"] = "property name is required"
	}
	if strings.TrimSpace(d.prop.PropertyType) == "" {
		fields["propertyType"] = "property type is required"
	}
	kh := d.prop.KeyHighlights
	if kh.ReraApproved && strings.TrimSpace(kh.ReraNumber) == "" {
		fields["reraNumber"] = "RERA number is required when RERA approved"
	}
	if kh.IgbcGoldCertified && !validIgbcLevel(kh.IgbcLevel) {
		fields["igbcLevel"] = "IGBC level must be one of Certified, Silver, Gold, Platinum"
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// Submit validates and cleans the draft, then creates or updates depending
// on whether the record already has an identifier. Success resets the draft
// to a blank form; any failure leaves it untouched so the admin can retry.
func (d *Draft) Submit(ctx context.Context, gw Gateway) (models.Property, error) {
	if err := d.Validate(); err != nil {
		return models.Property{}, err
	}
	clean := d.cleaned()

	var (
		saved models.Property
		err   error
	)
	if clean.ID.IsZero() {
		saved, err = gw.CreateProperty(ctx, clean)
	} else {
		saved, err = gw.UpdateProperty(ctx, clean.ID.Hex(), clean)
	}
	if err != nil {
		return models.Property{}, err
	}
	d.prop = NewDraft().prop
	return saved, nil
}

// cleaned returns the draft with unsubmittable entries stripped: image items
// carrying neither inline data nor a URL, and blank, duplicate or
// self-referential other-project names.
func (d *Draft) cleaned() models.Property {
	p := cloneProperty(d.prop)
	p.Gallery = keptImages(p.Gallery)
	p.FeaturedDevelopment.Images = keptImages(p.FeaturedDevelopment.Images)

	seen := map[string]bool{}
	projects := make([]string, 0, len(p.OtherProjects))
	for _, name := range p.OtherProjects {
		name = strings.TrimSpace(name)
		if name == "" || name == strings.TrimSpace(p.Name) || seen[name] {
			continue
		}
		seen[name] = true
		projects = append(projects, name)
	}
	p.OtherProjects = projects
	return p
}

func keptImages(items []models.GalleryItem) []models.GalleryItem {
	kept := make([]models.GalleryItem, 0, len(items))
	for _, it := range items {
		if it.Data != "" || it.URL != "" {
			kept = append(kept, it)
		}
	}
	return kept
}

func validIgbcLevel(level string) bool {
	for _, l := range IgbcLevels {
		if l == level {
			return true
		}
	}
	return false
}
