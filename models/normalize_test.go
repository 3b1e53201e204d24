package models

import (
	"encoding/json"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestNormalizePriceString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  PriceRange
	}{
		{
			name:  "two bounds with units",
			input: "85 Lac - 1.8 Cr",
			want: PriceRange{
				From: PricePoint{Value: "85", Unit: UnitLac},
				To:   PricePoint{Value: "1.8", Unit: UnitCr},
			},
		},
		{
			name:  "short L suffix maps to Lac",
			input: "₹85L - 1.8 Cr",
			want: PriceRange{
				From: PricePoint{Value: "85", Unit: UnitLac},
				To:   PricePoint{Value: "1.8", Unit: UnitCr},
			},
		},
		{
			name:  "lowercase cr recognised",
			input: "2 cr - 3.5 cr",
			want: PriceRange{
				From: PricePoint{Value: "2", Unit: UnitCr},
				To:   PricePoint{Value: "3.5", Unit: UnitCr},
			},
		},
		{
			name:  "single bound",
			input: "45 Lac",
			want: PriceRange{
				From: PricePoint{Value: "45", Unit: UnitLac},
				To:   PricePoint{Value: "", Unit: UnitLac},
			},
		},
		{
			name:  "missing units default to Lac",
			input: "40 - 60",
			want: PriceRange{
				From: PricePoint{Value: "40", Unit: UnitLac},
				To:   PricePoint{Value: "60", Unit: UnitLac},
			},
		},
		{
			name:  "three numbers keep first two",
			input: "10 - 20 - 30 Cr",
			want: PriceRange{
				From: PricePoint{Value: "10", Unit: UnitLac},
				To:   PricePoint{Value: "20", Unit: UnitLac},
			},
		},
		{
			name:  "no numbers yields empty values",
			input: "price on request",
			want:  DefaultPriceRange(),
		},
		{
			name:  "empty string",
			input: "",
			want:  DefaultPriceRange(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizePriceString(tt.input)
			if got != tt.want {
				t.Errorf("NormalizePriceString(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizePriceStringDeterministic(t *testing.T) {
	const input = "garbage ₹1.2.3 Cr maybe 9"
	first := NormalizePriceString(input)
	second := NormalizePriceString(input)
	if first != second {
		t.Errorf("normalization not deterministic: %+v vs %+v", first, second)
	}
}

func TestNormalizePriceRangeIdempotent(t *testing.T) {
	canonical := PriceRange{
		From: PricePoint{Value: "85", Unit: UnitLac},
		To:   PricePoint{Value: "1.8", Unit: UnitCr},
	}
	once := NormalizePriceRange(canonical)
	twice := NormalizePriceRange(once)
	if once != canonical || twice != once {
		t.Errorf("expected canonical input to pass through: %+v -> %+v -> %+v", canonical, once, twice)
	}
}

func TestNormalizePriceRangeCoercesUnknownUnit(t *testing.T) {
	got := NormalizePriceRange(PriceRange{
		From: PricePoint{Value: "85", Unit: "Million"},
		To:   PricePoint{Value: "1", Unit: "cr"},
	})
	if got.From.Unit != UnitLac {
		t.Errorf("unknown unit should coerce to Lac, got %q", got.From.Unit)
	}
	if got.To.Unit != UnitCr {
		t.Errorf("case-insensitive cr should coerce to Cr, got %q", got.To.Unit)
	}
}

func TestNormalizeAreaString(t *testing.T) {
	tests := []struct {
		input string
		want  AreaRange
	}{
		{"1200 - 1800 sqft", AreaRange{From: "1200", To: "1800", Unit: AreaSqft}},
		{"2 acre", AreaRange{From: "2", Unit: AreaAcre}},
		{"500 SQYD", AreaRange{From: "500", Unit: AreaSqyd}},
		{"900", AreaRange{From: "900", Unit: AreaSqft}},
		{"650 sqm", AreaRange{From: "650", Unit: AreaSqft}},
		{"", AreaRange{Unit: AreaSqft}},
	}
	for _, tt := range tests {
		if got := NormalizeAreaString(tt.input); got != tt.want {
			t.Errorf("NormalizeAreaString(%q) = %+v, want %+v", tt.input, got, tt.want)
		}
	}
}

func TestPriceRangeJSONDecodeLegacyString(t *testing.T) {
	var p Property
	payload := `{"name":"Skyline","priceRange":"85L - 1.8 Cr"}`
	if err := json.Unmarshal([]byte(payload), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	want := PriceRange{
		From: PricePoint{Value: "85", Unit: UnitLac},
		To:   PricePoint{Value: "1.8", Unit: UnitCr},
	}
	if p.PriceRange != want {
		t.Errorf("decoded %+v, want %+v", p.PriceRange, want)
	}
}

func TestPriceRangeJSONDecodeStructured(t *testing.T) {
	payload := `{"priceRange":{"from":{"value":"85","unit":"Lac"},"to":{"value":"1.8","unit":"Cr"}}}`
	var p Property
	if err := json.Unmarshal([]byte(payload), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	want := PriceRange{
		From: PricePoint{Value: "85", Unit: UnitLac},
		To:   PricePoint{Value: "1.8", Unit: UnitCr},
	}
	if p.PriceRange != want {
		t.Errorf("decoded %+v, want %+v", p.PriceRange, want)
	}

	// Round-tripping the canonical shape must be a no-op.
	out, err := json.Marshal(p.PriceRange)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var again PriceRange
	if err := json.Unmarshal(out, &again); err != nil {
		t.Fatalf("second unmarshal: %v", err)
	}
	if again != p.PriceRange {
		t.Errorf("round trip changed the range: %+v vs %+v", again, p.PriceRange)
	}
}

func TestPriceRangeBSONDecodeLegacyString(t *testing.T) {
	type legacyDoc struct {
		Name       string `bson:"name"`
		PriceRange string `bson:"priceRange"`
	}
	raw, err := bson.Marshal(legacyDoc{Name: "Skyline", PriceRange: "85 Lac - 1.8 Cr"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var p Property
	if err := bson.Unmarshal(raw, &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	want := PriceRange{
		From: PricePoint{Value: "85", Unit: UnitLac},
		To:   PricePoint{Value: "1.8", Unit: UnitCr},
	}
	if p.PriceRange != want {
		t.Errorf("decoded %+v, want %+v", p.PriceRange, want)
	}
}

func TestCarpetAreaBSONDecodeLegacyString(t *testing.T) {
	type legacyHighlights struct {
		CarpetArea string `bson:"carpetArea"`
	}
	type legacyDoc struct {
		KeyHighlights legacyHighlights `bson:"keyHighlights"`
	}
	raw, err := bson.Marshal(legacyDoc{KeyHighlights: legacyHighlights{CarpetArea: "1200 - 1800 sqft"}})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var p Property
	if err := bson.Unmarshal(raw, &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	want := AreaRange{From: "1200", To: "1800", Unit: AreaSqft}
	if p.KeyHighlights.CarpetArea != want {
		t.Errorf("decoded %+v, want %+v", p.KeyHighlights.CarpetArea, want)
	}
}

func TestGalleryItemDecodesBareString(t *testing.T) {
	payload := `{"featuredDevelopment":{"text":"towers","images":["https://img.example/a.jpg",{"url":"","name":"b","data":"data:image/png;base64,xx"}]}}`
	var p Property
	if err := json.Unmarshal([]byte(payload), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	imgs := p.FeaturedDevelopment.Images
	if len(imgs) != 2 {
		t.Fatalf("expected 2 images, got %d", len(imgs))
	}
	if imgs[0].URL != "https://img.example/a.jpg" {
		t.Errorf("bare string should land in URL, got %+v", imgs[0])
	}
	if imgs[1].Data == "" || imgs[1].Name != "b" {
		t.Errorf("structured item mangled: %+v", imgs[1])
	}
}

func TestPropertyNormalizeFillsMissing(t *testing.T) {
	var p Property
	p.Normalize()
	if p.PriceRange != DefaultPriceRange() {
		t.Errorf("price range not defaulted: %+v", p.PriceRange)
	}
	if p.KeyHighlights.CarpetArea.Unit != AreaSqft {
		t.Errorf("carpet area unit not defaulted: %+v", p.KeyHighlights.CarpetArea)
	}
	if p.KeyHighlights.OtherAmenities == nil || p.Gallery == nil || p.Videos == nil ||
		p.LocationAdvantage.Advantages == nil || p.FeaturedDevelopment.Images == nil ||
		p.OtherProjects == nil {
		t.Error("expected all list fields non-nil after Normalize")
	}
}
