package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PriceUnit string

const (
	UnitLac PriceUnit = "Lac"
	UnitCr  PriceUnit = "Cr"
)

type AreaUnit string

const (
	AreaSqft    AreaUnit = "sqft"
	AreaSqmt    AreaUnit = "sqmt"
	AreaSqyd    AreaUnit = "sqyd"
	AreaAcre    AreaUnit = "acre"
	AreaHectare AreaUnit = "hectare"
)

const (
	StatusReady             = "Ready"
	StatusUnderConstruction = "Under Construction"
	StatusUpcoming          = "Upcoming"
)

// PricePoint is one bound of a price range. Value keeps the string the admin
// typed so partially filled drafts round-trip unchanged.
type PricePoint struct {
	Value string    `bson:"value" json:"value"`
	Unit  PriceUnit `bson:"unit" json:"unit"`
}

type AreaRange struct {
	From string   `bson:"from" json:"from"`
	To   string   `bson:"to" json:"to"`
	Unit AreaUnit `bson:"unit" json:"unit"`
}

type Builder struct {
	DeveloperName string `bson:"developerName" json:"developerName"`
	WebsiteURL    string `bson:"websiteUrl" json:"websiteUrl"`
}

type KeyHighlights struct {
	ReraApproved      bool      `bson:"reraApproved" json:"reraApproved"`
	ReraNumber        string    `bson:"reraNumber" json:"reraNumber"`
	PossessionDate    string    `bson:"possessionDate" json:"possessionDate"`
	UnitConfiguration string    `bson:"unitConfiguration" json:"unitConfiguration"`
	CarpetArea        AreaRange `bson:"carpetArea" json:"carpetArea"`
	IgbcGoldCertified bool      `bson:"igbcGoldCertified" json:"igbcGoldCertified"`
	IgbcLevel         string    `bson:"igbcLevel" json:"igbcLevel"`
	OtherAmenities    []string  `bson:"otherAmenities" json:"otherAmenities"`
}

// GalleryItem holds at most one of Data (inline base64 payload) or URL.
// URL survives for documents written before inline uploads existed.
type GalleryItem struct {
	URL  string `bson:"url" json:"url"`
	Name string `bson:"name" json:"name"`
	Data string `bson:"data" json:"data"`
}

type VideoItem struct {
	URL  string `bson:"url" json:"url"`
	Name string `bson:"name" json:"name"`
}

type LocationAdvantage struct {
	Address    string   `bson:"address" json:"address"`
	AddressURL string   `bson:"addressUrl" json:"addressUrl"`
	Advantages []string `bson:"advantages" json:"advantages"`
}

type FeaturedDevelopment struct {
	Text   string        `bson:"text" json:"text"`
	Images []GalleryItem `bson:"images" json:"images"`
}

type Property struct {
	ID                  primitive.ObjectID  `bson:"_id,omitempty" json:"_id,omitempty"`
	Name                string              `bson:"name" json:"name"`
	Tagline             string              `bson:"tagline" json:"tagline"`
	PropertyType        string              `bson:"propertyType" json:"propertyType"`
	Location            string              `bson:"location" json:"location"`
	PriceRange          PriceRange          `bson:"priceRange" json:"priceRange"`
	Builder             Builder             `bson:"builder" json:"builder"`
	KeyHighlights       KeyHighlights       `bson:"keyHighlights" json:"keyHighlights"`
	Gallery             []GalleryItem       `bson:"gallery" json:"gallery"`
	Videos              []VideoItem         `bson:"videos" json:"videos"`
	LocationAdvantage   LocationAdvantage   `bson:"locationAdvantage" json:"locationAdvantage"`
	FeaturedDevelopment FeaturedDevelopment `bson:"featuredDevelopment" json:"featuredDevelopment"`
	OtherProjects       []string            `bson:"otherProjects" json:"otherProjects"`
	TrendingScore       int                 `bson:"trendingScore" json:"trendingScore"`
	Featured            bool                `bson:"featured" json:"featured"`
	Status              string              `bson:"status" json:"status"`
	CreatedAt           time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt           time.Time           `bson:"updatedAt" json:"updatedAt"`
}
