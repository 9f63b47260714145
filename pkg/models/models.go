package models

// Card is a raw row of the Cards fact table, foreign keys as ids.
// It is the shape of the seed file and of the id-preserving listing.
type Card struct {
	ID               int64   `json:"id" db:"id"`
	CardNumber       string  `json:"card_number" db:"card_number"`
	Name             string  `json:"name" db:"name"`
	DP               *int64  `json:"dp" db:"dp"`
	Cost             *int64  `json:"cost" db:"cost"`
	EvolutionCostOne *int64  `json:"evolution_cost_one" db:"evolution_cost_one"`
	EvolutionCostTwo *int64  `json:"evolution_cost_two" db:"evolution_cost_two"`
	Effect           *string `json:"effect" db:"effect"`
	EvolutionEffect  *string `json:"evolution_effect" db:"evolution_effect"`
	SecurityEffect   *string `json:"security_effect" db:"security_effect"`
	ImageURL         *string `json:"image_url" db:"image_url"`
	Alternative      bool    `json:"alternative" db:"alternative"`
	CardTypeID       *int64  `json:"card_type_id" db:"card_type_id"`
	RarityID         *int64  `json:"rarity_id" db:"rarity_id"`
	ColorOneID       *int64  `json:"color_one_id" db:"color_one_id"`
	ColorTwoID       *int64  `json:"color_two_id" db:"color_two_id"`
	ColorThreeID     *int64  `json:"color_three_id" db:"color_three_id"`
	StageID          *int64  `json:"stage_id" db:"stage_id"`
	AttributeID      *int64  `json:"attribute_id" db:"attribute_id"`
	TypeOneID        *int64  `json:"type_one_id" db:"type_one_id"`
	TypeTwoID        *int64  `json:"type_two_id" db:"type_two_id"`
	BTID             *int64  `json:"bt_id" db:"bt_id"`
}

// CardRef is the id-preserving card view: clients resolve names themselves.
type CardRef struct {
	ID           int64   `json:"id" db:"id"`
	CardNumber   string  `json:"card_number" db:"card_number"`
	Name         string  `json:"name" db:"name"`
	CardTypeID   *int64  `json:"card_type_id" db:"card_type_id"`
	RarityID     *int64  `json:"rarity_id" db:"rarity_id"`
	ColorOneID   *int64  `json:"color_one_id" db:"color_one_id"`
	ColorTwoID   *int64  `json:"color_two_id" db:"color_two_id"`
	ColorThreeID *int64  `json:"color_three_id" db:"color_three_id"`
	ImageURL     *string `json:"image_url" db:"image_url"`
	Cost         *int64  `json:"cost" db:"cost"`
	StageID      *int64  `json:"stage_id" db:"stage_id"`
	AttributeID  *int64  `json:"attribute_id" db:"attribute_id"`
	TypeOneID    *int64  `json:"type_one_id" db:"type_one_id"`
	TypeTwoID    *int64  `json:"type_two_id" db:"type_two_id"`
	BTID         *int64  `json:"bt_id" db:"bt_id"`
	Alternative  bool    `json:"alternative" db:"alternative"`
}

// CardSummary is the name-resolved card view.
type CardSummary struct {
	ID             int64   `json:"id" db:"id"`
	CardNumber     string  `json:"card_number" db:"card_number"`
	Name           string  `json:"name" db:"name"`
	CardType       *string `json:"card_type" db:"card_type"`
	Rarity         *string `json:"rarity" db:"rarity"`
	ColorOne       *string `json:"color_one" db:"color_one"`
	ColorTwo       *string `json:"color_two" db:"color_two"`
	ColorThree     *string `json:"color_three" db:"color_three"`
	ImageURL       *string `json:"image_url" db:"image_url"`
	Cost           *int64  `json:"cost" db:"cost"`
	Stage          *string `json:"stage" db:"stage"`
	Attribute      *string `json:"attribute" db:"attribute"`
	TypeOne        *string `json:"type_one" db:"type_one"`
	TypeTwo        *string `json:"type_two" db:"type_two"`
	BTAbbreviation *string `json:"bt_abbreviation" db:"bt_abbreviation"`
	Alternative    bool    `json:"alternative" db:"alternative"`
}

// CardDetail is the summary plus stats and effect text.
type CardDetail struct {
	CardSummary
	DP               *int64  `json:"dp" db:"dp"`
	EvolutionCostOne *int64  `json:"evolution_cost_one" db:"evolution_cost_one"`
	EvolutionCostTwo *int64  `json:"evolution_cost_two" db:"evolution_cost_two"`
	Effect           *string `json:"effect" db:"effect"`
	EvolutionEffect  *string `json:"evolution_effect" db:"evolution_effect"`
	SecurityEffect   *string `json:"security_effect" db:"security_effect"`
}

// CardStub identifies an alternative printing.
type CardStub struct {
	ID         int64  `json:"id" db:"id"`
	CardNumber string `json:"card_number" db:"card_number"`
}

// AlternativeSet is a main card and the stubs of its alternative printings.
type AlternativeSet struct {
	Main         CardDetail
	Alternatives []CardStub
}

// AlternativeArt is the alternate entry embedded in a search group.
type AlternativeArt struct {
	ID         int64   `json:"id"`
	CardNumber string  `json:"card_number"`
	Name       string  `json:"name"`
	ImageURL   *string `json:"image_url"`
}

// CardGroup is a main card with its alternatives folded in.
type CardGroup struct {
	CardDetail
	Alternatives []AlternativeArt `json:"alternatives"`
}

// Reference is a row of one of the enumeration tables.
// Abbreviation is only populated for BT sets.
type Reference struct {
	ID           int64   `json:"id" db:"id"`
	Name         string  `json:"name" db:"name"`
	Abbreviation *string `json:"abbreviation,omitempty" db:"abbreviation"`
}

// CollectionEntry is an owned card with its quantity.
type CollectionEntry struct {
	CardSummary
	Quantity int `json:"quantity" db:"quantity"`
}

type Deck struct {
	ID      int64   `json:"id" db:"id"`
	Name    string  `json:"name" db:"name"`
	ColorID *int64  `json:"color_id" db:"color_id"`
	Image   *string `json:"image" db:"image"`
}

// DeckCard is a card in a deck, joined to the catalog for display.
type DeckCard struct {
	CardNumber string  `json:"card_number" db:"card_number"`
	Name       string  `json:"name" db:"name"`
	Quantity   int     `json:"quantity" db:"quantity"`
	ImageURL   *string `json:"image_url" db:"image_url"`
}

// Catalog is the seed file layout: reference tables, cards and
// optionally a starting collection and decks.
type Catalog struct {
	BTs        []Reference      `json:"bts"`
	Colors     []Reference      `json:"colors"`
	CardTypes  []Reference      `json:"card_types"`
	Rarities   []Reference      `json:"rarities"`
	Stages     []Reference      `json:"stages"`
	Attributes []Reference      `json:"attributes"`
	Types      []Reference      `json:"types"`
	Cards      []Card           `json:"cards"`
	Collection []CollectionSeed `json:"collection"`
	Decks      []DeckSeed       `json:"decks"`
}

type CollectionSeed struct {
	CardNumber string `json:"card_number"`
	Quantity   int    `json:"quantity"`
}

type DeckSeed struct {
	Deck
	Cards []CollectionSeed `json:"cards"`
}
