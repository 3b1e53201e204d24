package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// PriceRange is the canonical price shape. Documents written by the old site
// store a plain string instead ("₹85L - 1.8 Cr"); both decode paths below run
// inbound values through normalization, so the rest of the codebase only ever
// sees this struct.
type PriceRange struct {
	From PricePoint `bson:"from" json:"from"`
	To   PricePoint `bson:"to" json:"to"`
}

// Aliases without the custom unmarshalers, for decoding structured input.
type priceRangeDoc PriceRange

type areaRangeDoc AreaRange

type galleryItemDoc GalleryItem

// RawPriceRange is the wire variant of a price range: either the legacy
// string or the structured document. It exists only to feed normalization.
type RawPriceRange struct {
	Legacy     string
	Structured *PriceRange
}

func (r *RawPriceRange) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0 || bytes.Equal(b, []byte("null")):
		return nil
	case b[0] == '"':
		return json.Unmarshal(b, &r.Legacy)
	case b[0] == '{':
		var doc priceRangeDoc
		if err := json.Unmarshal(b, &doc); err != nil {
			return err
		}
		pr := PriceRange(doc)
		r.Structured = &pr
		return nil
	}
	return fmt.Errorf("priceRange: expected string or object, got %s", string(b))
}

// Normalize resolves the variant into the canonical shape. Structured input
// passes through with non-enum units coerced to Lac; legacy strings go
// through token extraction.
func (r RawPriceRange) Normalize() PriceRange {
	if r.Structured != nil {
		return NormalizePriceRange(*r.Structured)
	}
	return NormalizePriceString(r.Legacy)
}

func (p *PriceRange) UnmarshalJSON(b []byte) error {
	var raw RawPriceRange
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*p = raw.Normalize()
	return nil
}

func (p *PriceRange) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	switch t {
	case bsontype.String:
		rv := bson.RawValue{Type: t, Value: data}
		s, ok := rv.StringValueOK()
		if !ok {
			return fmt.Errorf("priceRange: malformed BSON string")
		}
		*p = NormalizePriceString(s)
		return nil
	case bsontype.EmbeddedDocument:
		var doc priceRangeDoc
		if err := bson.Unmarshal(data, &doc); err != nil {
			return err
		}
		*p = NormalizePriceRange(PriceRange(doc))
		return nil
	case bsontype.Null, bsontype.Undefined:
		*p = DefaultPriceRange()
		return nil
	}
	return fmt.Errorf("priceRange: unsupported BSON type %s", t)
}

func (a *AreaRange) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0 || bytes.Equal(b, []byte("null")):
		*a = DefaultCarpetArea()
		return nil
	case b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*a = NormalizeAreaString(s)
		return nil
	case b[0] == '{':
		var doc areaRangeDoc
		if err := json.Unmarshal(b, &doc); err != nil {
			return err
		}
		*a = NormalizeAreaRange(AreaRange(doc))
		return nil
	}
	return fmt.Errorf("carpetArea: expected string or object, got %s", string(b))
}

func (a *AreaRange) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	switch t {
	case bsontype.String:
		rv := bson.RawValue{Type: t, Value: data}
		s, ok := rv.StringValueOK()
		if !ok {
			return fmt.Errorf("carpetArea: malformed BSON string")
		}
		*a = NormalizeAreaString(s)
		return nil
	case bsontype.EmbeddedDocument:
		var doc areaRangeDoc
		if err := bson.Unmarshal(data, &doc); err != nil {
			return err
		}
		*a = NormalizeAreaRange(AreaRange(doc))
		return nil
	case bsontype.Null, bsontype.Undefined:
		*a = DefaultCarpetArea()
		return nil
	}
	return fmt.Errorf("carpetArea: unsupported BSON type %s", t)
}

// Old featuredDevelopment documents store images as bare URL strings; decode
// those into the URL field.
func (g *GalleryItem) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		return json.Unmarshal(b, &g.URL)
	}
	var doc galleryItemDoc
	if err := json.Unmarshal(b, &doc); err != nil {
		return err
	}
	*g = GalleryItem(doc)
	return nil
}

func (g *GalleryItem) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	switch t {
	case bsontype.String:
		rv := bson.RawValue{Type: t, Value: data}
		s, ok := rv.StringValueOK()
		if !ok {
			return fmt.Errorf("gallery item: malformed BSON string")
		}
		g.URL = s
		return nil
	case bsontype.EmbeddedDocument:
		var doc galleryItemDoc
		if err := bson.Unmarshal(data, &doc); err != nil {
			return err
		}
		*g = GalleryItem(doc)
		return nil
	case bsontype.Null, bsontype.Undefined:
		return nil
	}
	return fmt.Errorf("gallery item: unsupported BSON type %s", t)
}

// Normalize fills what the decode hooks cannot: fields absent from the
// source entirely, where no unmarshaler ever runs.
func (p *Property) Normalize() {
	p.PriceRange = NormalizePriceRange(p.PriceRange)
	p.KeyHighlights = NormalizeKeyHighlights(p.KeyHighlights)
	if p.Gallery == nil {
		p.Gallery = []GalleryItem{}
	}
	if p.Videos == nil {
		p.Videos = []VideoItem{}
	}
	if p.LocationAdvantage.Advantages == nil {
		p.LocationAdvantage.Advantages = []string{}
	}
	if p.FeaturedDevelopment.Images == nil {
		p.FeaturedDevelopment.Images = []GalleryItem{}
	}
	if p.OtherProjects == nil {
		p.OtherProjects = []string{}
	}
}

func DefaultPriceRange() PriceRange {
	return PriceRange{
		From: PricePoint{Value: "", Unit: UnitLac},
		To:   PricePoint{Value: "", Unit: UnitLac},
	}
}

func DefaultCarpetArea() AreaRange {
	return AreaRange{Unit: AreaSqft}
}

// NormalizePriceRange coerces an already-structured range onto the unit enum.
// Idempotent: canonical input passes through unchanged.
func NormalizePriceRange(p PriceRange) PriceRange {
	p.From.Unit = coercePriceUnit(string(p.From.Unit))
	p.To.Unit = coercePriceUnit(string(p.To.Unit))
	return p
}

// NormalizePriceString extracts up to two numeric tokens from a legacy price
// string, in order of appearance. Each bound's unit comes from the word
// following its number: "Cr" (any case) maps to Cr, anything else to Lac.
func NormalizePriceString(s string) PriceRange {
	pr := DefaultPriceRange()
	toks := extractTokens(s)
	if len(toks) > 0 {
		pr.From = PricePoint{Value: toks[0].value, Unit: coercePriceUnit(toks[0].unit)}
	}
	if len(toks) > 1 {
		pr.To = PricePoint{Value: toks[1].value, Unit: coercePriceUnit(toks[1].unit)}
	}
	return pr
}

func NormalizeAreaRange(a AreaRange) AreaRange {
	a.Unit = coerceAreaUnit(string(a.Unit))
	return a
}

// NormalizeAreaString extracts a from/to bound pair plus a single range-wide
// unit (the last unit word seen), defaulting to sqft.
func NormalizeAreaString(s string) AreaRange {
	ar := DefaultCarpetArea()
	toks := extractTokens(s)
	if len(toks) > 0 {
		ar.From = toks[0].value
	}
	if len(toks) > 1 {
		ar.To = toks[1].value
	}
	for _, t := range toks {
		if t.unit != "" {
			ar.Unit = coerceAreaUnit(t.unit)
		}
	}
	return ar
}

// NormalizeKeyHighlights fills defaults for sub-fields a legacy document may
// lack and re-normalizes the carpet area.
func NormalizeKeyHighlights(k KeyHighlights) KeyHighlights {
	k.CarpetArea = NormalizeAreaRange(k.CarpetArea)
	if k.OtherAmenities == nil {
		k.OtherAmenities = []string{}
	}
	return k
}

type numToken struct {
	value string
	unit  string
}

// Matches a numeric token and the optional unit word right after it. Currency
// symbols, dashes and anything else between tokens is skipped.
var tokenPattern = regexp.MustCompile(`([\d.]+)\s*([A-Za-z]+)?`)

func extractTokens(s string) []numToken {
	matches := tokenPattern.FindAllStringSubmatch(s, -1)
	toks := make([]numToken, 0, len(matches))
	for _, m := range matches {
		toks = append(toks, numToken{value: m[1], unit: m[2]})
	}
	return toks
}

func coercePriceUnit(u string) PriceUnit {
	if strings.EqualFold(strings.TrimSpace(u), string(UnitCr)) {
		return UnitCr
	}
	return UnitLac
}

func coerceAreaUnit(u string) AreaUnit {
	u = strings.TrimSpace(u)
	for _, known := range []AreaUnit{AreaSqft, AreaSqmt, AreaSqyd, AreaAcre, AreaHectare} {
		if strings.EqualFold(u, string(known)) {
			return known
		}
	}
	return AreaSqft
}
