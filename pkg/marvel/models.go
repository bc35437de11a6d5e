package marvel

import (
	"github.com/shopspring/decimal"
)

// Summary is a cross-reference to another resource. Role is set for creators
// of a resource and Type for stories.
type Summary struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	ResourceURI string `json:"resourceURI" validate:"required,url"`
	Type        string `json:"type,omitempty"`
	Role        string `json:"role,omitempty"`
}

// URLs maps a link kind ("detail", "wiki", "purchase", "reader", "inAppLink",
// "comiclink") to its URL.
type URLs map[string]string

// Detail returns the resource's detail page.
func (u URLs) Detail() string { return u["detail"] }

// Wiki returns the wiki page, if any.
func (u URLs) Wiki() string { return u["wiki"] }

// Purchase returns the purchase link, if any.
func (u URLs) Purchase() string { return u["purchase"] }

// Reader returns the digital reader link, if any.
func (u URLs) Reader() string { return u["reader"] }

// Dates holds a comic's named dates. Absent or malformed dates are nil.
type Dates struct {
	OnSale          *Date `json:"onsaleDate,omitempty"`
	FOC             *Date `json:"focDate,omitempty"`
	Unlimited       *Date `json:"unlimitedDate,omitempty"`
	DigitalPurchase *Date `json:"digitalPurchaseDate,omitempty"`
}

// Prices holds a comic's prices. Absent prices are nil.
type Prices struct {
	Print   *decimal.Decimal `json:"printPrice,omitempty"`
	Digital *decimal.Decimal `json:"digitalPurchasePrice,omitempty"`
}

// TextObject is a descriptive text blurb attached to a comic.
type TextObject struct {
	Type     string `json:"type"`
	Language string `json:"language"`
	Text     string `json:"text"`
}

// Character is a Marvel character.
type Character struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description"`
	Modified    *Date     `json:"modified,omitempty"`
	ResourceURI string    `json:"resourceURI" validate:"required,url"`
	URLs        URLs      `json:"urls" validate:"dive,url"`
	Thumbnail   *string   `json:"thumbnail" validate:"omitempty,url"`
	Comics      []Summary `json:"comics" validate:"dive"`
	Series      []Summary `json:"series" validate:"dive"`
	Stories     []Summary `json:"stories" validate:"dive"`
	Events      []Summary `json:"events" validate:"dive"`
}

// Comic is a single comic issue, collection or digital release.
type Comic struct {
	ID                 int64        `json:"id"`
	DigitalID          int64        `json:"digitalId"`
	Title              string       `json:"title" validate:"required"`
	IssueNumber        string       `json:"issueNumber"`
	VariantDescription string       `json:"variantDescription"`
	Description        *string      `json:"description"`
	Modified           *Date        `json:"modified,omitempty"`
	ISBN               string       `json:"isbn"`
	UPC                string       `json:"upc"`
	DiamondCode        string       `json:"diamondCode"`
	EAN                string       `json:"ean"`
	ISSN               string       `json:"issn"`
	Format             string       `json:"format"`
	PageCount          int          `json:"pageCount"`
	TextObjects        []TextObject `json:"textObjects"`
	ResourceURI        string       `json:"resourceURI" validate:"required,url"`
	URLs               URLs         `json:"urls" validate:"dive,url"`
	Series             *Summary     `json:"series"`
	Variants           []Summary    `json:"variants" validate:"dive"`
	Collections        []Summary    `json:"collections" validate:"dive"`
	CollectedIssues    []Summary    `json:"collectedIssues" validate:"dive"`
	Dates              Dates        `json:"dates"`
	Prices             Prices       `json:"prices"`
	Thumbnail          *string      `json:"thumbnail" validate:"omitempty,url"`
	Images             []string     `json:"images" validate:"dive,url"`
	Creators           []Summary    `json:"creators" validate:"dive"`
	Characters         []Summary    `json:"characters" validate:"dive"`
	Stories            []Summary    `json:"stories" validate:"dive"`
	Events             []Summary    `json:"events" validate:"dive"`
}

// Creator is a writer, artist, editor or other credited contributor.
type Creator struct {
	ID          int64     `json:"id"`
	FirstName   string    `json:"firstName"`
	MiddleName  string    `json:"middleName"`
	LastName    string    `json:"lastName"`
	Suffix      string    `json:"suffix"`
	FullName    string    `json:"fullName"`
	Modified    *Date     `json:"modified,omitempty"`
	ResourceURI string    `json:"resourceURI" validate:"required,url"`
	URLs        URLs      `json:"urls" validate:"dive,url"`
	Thumbnail   *string   `json:"thumbnail" validate:"omitempty,url"`
	Comics      []Summary `json:"comics" validate:"dive"`
	Series      []Summary `json:"series" validate:"dive"`
	Stories     []Summary `json:"stories" validate:"dive"`
	Events      []Summary `json:"events" validate:"dive"`
}

// Series is a sequentially numbered run of comics.
type Series struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title" validate:"required"`
	Description *string   `json:"description"`
	ResourceURI string    `json:"resourceURI" validate:"required,url"`
	URLs        URLs      `json:"urls" validate:"dive,url"`
	StartYear   int       `json:"startYear"`
	EndYear     int       `json:"endYear"`
	Rating      string    `json:"rating"`
	Type        string    `json:"type"`
	Modified    *Date     `json:"modified,omitempty"`
	Thumbnail   *string   `json:"thumbnail" validate:"omitempty,url"`
	Creators    []Summary `json:"creators" validate:"dive"`
	Characters  []Summary `json:"characters" validate:"dive"`
	Stories     []Summary `json:"stories" validate:"dive"`
	Comics      []Summary `json:"comics" validate:"dive"`
	Events      []Summary `json:"events" validate:"dive"`
	Next        *Summary  `json:"next"`
	Previous    *Summary  `json:"previous"`
}

// Event is a crossover storyline spanning several series.
type Event struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description"`
	ResourceURI string    `json:"resourceURI" validate:"required,url"`
	URLs        URLs      `json:"urls" validate:"dive,url"`
	Modified    *Date     `json:"modified,omitempty"`
	Start       *Date     `json:"start"`
	End         *Date     `json:"end"`
	Thumbnail   *string   `json:"thumbnail" validate:"omitempty,url"`
	Creators    []Summary `json:"creators" validate:"dive"`
	Characters  []Summary `json:"characters" validate:"dive"`
	Stories     []Summary `json:"stories" validate:"dive"`
	Comics      []Summary `json:"comics" validate:"dive"`
	Series      []Summary `json:"series" validate:"dive"`
	Next        *Summary  `json:"next"`
	Previous    *Summary  `json:"previous"`
}

// Story is an indivisible unit of a comic: a cover, an interior story or similar.
type Story struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	ResourceURI   string    `json:"resourceURI" validate:"required,url"`
	Type          string    `json:"type"`
	Modified      *Date     `json:"modified,omitempty"`
	Thumbnail     *string   `json:"thumbnail" validate:"omitempty,url"`
	Creators      []Summary `json:"creators" validate:"dive"`
	Characters    []Summary `json:"characters" validate:"dive"`
	Series        []Summary `json:"series" validate:"dive"`
	Comics        []Summary `json:"comics" validate:"dive"`
	Events        []Summary `json:"events" validate:"dive"`
	OriginalIssue *Summary  `json:"originalIssue"`
}
