package dto

import (
	"bytes"
	"encoding/json"
)

// RawActivity is one provider activity record. The provider's schema varies by
// account and API version, so several keys may carry the same concept; the
// mappers package decides which one wins.
type RawActivity struct {
	ID         Scalar `json:"id"`
	ActivityID Scalar `json:"activityId"`
	ProductID  Scalar `json:"productId"`
	ExternalID Scalar `json:"externalId"`

	Title    Text `json:"title"`
	Name     Text `json:"name"`
	Subtitle Text `json:"subtitle"`
	Excerpt  Text `json:"excerpt"`
	Summary  Text `json:"summary"`
	Slug     Text `json:"slug"`

	CoverImageURL Text      `json:"coverImageUrl"`
	CoverImage    Text      `json:"coverImage"`
	Images        MediaList `json:"images"`
	Photos        MediaList `json:"photos"`
	Media         MediaList `json:"media"`

	Feedback    Feedback `json:"feedback"`
	Rating      Number   `json:"rating"`
	ReviewCount Number   `json:"reviewCount"`

	PriceFrom   PriceBlock `json:"priceFrom"`
	FromPrice   PriceBlock `json:"fromPrice"`
	LowestPrice PriceBlock `json:"lowestPrice"`
	Price       PriceBlock `json:"price"`
	Pricing     PriceBlock `json:"pricing"`
	Currency    Text       `json:"currency"`

	Duration     Text `json:"duration"`
	DurationText Text `json:"durationText"`

	URL          Text `json:"url"`
	PublicURL    Text `json:"publicUrl"`
	CanonicalURL Text `json:"canonicalUrl"`

	// Raw is the record exactly as received; nil when it was not valid JSON.
	Raw json.RawMessage `json:"-"`
}

// DecodeActivity never fails: anything that is not a JSON object yields an
// empty record.
func DecodeActivity(data []byte) RawActivity {
	type plain RawActivity

	var p plain
	_ = json.Unmarshal(data, &p)

	a := RawActivity(p)
	if json.Valid(data) {
		a.Raw = append(json.RawMessage(nil), bytes.TrimSpace(data)...)
	}
	return a
}

// Feedback is the nested review summary block.
type Feedback struct {
	Average Number `json:"average"`
	Count   Number `json:"count"`
}

func (f *Feedback) UnmarshalJSON(data []byte) error {
	type plain Feedback

	var p plain
	_ = json.Unmarshal(data, &p)
	*f = Feedback(p)
	return nil
}

// PriceBlock is either a bare amount or an object with amount and currency.
type PriceBlock struct {
	Amount   Number
	Currency Text
}

func (p *PriceBlock) UnmarshalJSON(data []byte) error {
	*p = PriceBlock{}

	var amount Number
	_ = amount.UnmarshalJSON(data)
	if amount.Valid {
		p.Amount = amount
		return nil
	}

	var obj struct {
		Amount       Number `json:"amount"`
		Value        Number `json:"value"`
		Currency     Text   `json:"currency"`
		CurrencyCode Text   `json:"currencyCode"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil
	}

	p.Amount = obj.Amount
	if !p.Amount.Valid {
		p.Amount = obj.Value
	}
	p.Currency = obj.Currency
	if !p.Currency.Valid {
		p.Currency = obj.CurrencyCode
	}
	return nil
}

// Media is one image entry: an object with url/originalUrl, or a bare URL string.
type Media struct {
	URL         Text `json:"url"`
	OriginalURL Text `json:"originalUrl"`
}

func (m *Media) UnmarshalJSON(data []byte) error {
	*m = Media{}

	if _, ok := decodeScalar(data).(string); ok {
		_ = m.URL.UnmarshalJSON(data)
		return nil
	}

	type plain Media
	var p plain
	_ = json.Unmarshal(data, &p)
	*m = Media(p)
	return nil
}

type MediaList []Media

func (l *MediaList) UnmarshalJSON(data []byte) error {
	*l = nil

	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil
	}

	out := make(MediaList, 0, len(items))
	for _, item := range items {
		var m Media
		_ = m.UnmarshalJSON(item)
		out = append(out, m)
	}
	*l = out
	return nil
}
