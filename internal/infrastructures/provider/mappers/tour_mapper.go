package mappers

import (
	"net/url"
	"strings"

	"github.com/ozzus/tours-gateway/internal/domain/models"
	"github.com/ozzus/tours-gateway/internal/infrastructures/provider/dto"
)

const toursPathPrefix = "/tours/"

// ToTour maps a provider record onto the canonical Tour. It is total: every
// field resolves through an ordered fallback chain and the first non-empty
// candidate wins. Reordering a chain changes which key wins when the provider
// sends several, so the order is part of the contract.
func ToTour(raw dto.RawActivity) models.Tour {
	id := resolveID(raw)
	slug := firstText(raw.Slug)
	fromPrice, currency := resolvePrice(raw)
	rating, ratingCount := resolveRating(raw)

	return models.Tour{
		ID:          id,
		Title:       resolveTitle(raw),
		Subtitle:    firstText(raw.Subtitle, raw.Excerpt, raw.Summary),
		Slug:        slug,
		Cover:       resolveCover(raw),
		Rating:      rating,
		RatingCount: ratingCount,
		FromPrice:   fromPrice,
		Currency:    currency,
		Duration:    firstText(raw.Duration, raw.DurationText),
		URL:         resolveURL(raw, slug, id),
	}
}

func resolveID(raw dto.RawActivity) models.ID {
	for _, candidate := range []dto.Scalar{raw.ID, raw.ActivityID, raw.ProductID, raw.ExternalID} {
		if !candidate.Valid {
			continue
		}
		if candidate.Numeric {
			return models.NumericID(candidate.Value)
		}
		return models.StringID(candidate.Value)
	}
	return models.ID{}
}

func resolveTitle(raw dto.RawActivity) string {
	if title := firstText(raw.Title, raw.Name); title != nil {
		return *title
	}
	return models.UntitledTour
}

// cover: explicit cover field, then the first media entry's url, then its originalUrl.
func resolveCover(raw dto.RawActivity) *string {
	if cover := firstText(raw.CoverImageURL, raw.CoverImage); cover != nil {
		return cover
	}

	media := firstMedia(raw.Images, raw.Photos, raw.Media)
	if media == nil {
		return nil
	}
	return firstText(media.URL, media.OriginalURL)
}

func firstMedia(lists ...dto.MediaList) *dto.Media {
	for _, list := range lists {
		if len(list) > 0 {
			return &list[0]
		}
	}
	return nil
}

// rating: nested feedback block, then the flat rating/reviewCount fields.
func resolveRating(raw dto.RawActivity) (*float64, *int64) {
	rating := firstNumber(raw.Feedback.Average, raw.Rating)

	var count *int64
	if n := firstNumber(raw.Feedback.Count, raw.ReviewCount); n != nil {
		v := int64(*n)
		count = &v
	}

	return rating, count
}

// price: priceFrom, fromPrice, lowestPrice, price, pricing. Amount and currency
// each come from the first block that carries one.
func resolvePrice(raw dto.RawActivity) (*float64, string) {
	blocks := []dto.PriceBlock{raw.PriceFrom, raw.FromPrice, raw.LowestPrice, raw.Price, raw.Pricing}

	amounts := make([]dto.Number, 0, len(blocks))
	currencies := make([]dto.Text, 0, len(blocks)+1)
	for _, b := range blocks {
		amounts = append(amounts, b.Amount)
		currencies = append(currencies, b.Currency)
	}
	currencies = append(currencies, raw.Currency)

	currency := models.DefaultCurrency
	if c := firstText(currencies...); c != nil {
		currency = strings.ToUpper(*c)
	}

	return firstNumber(amounts...), currency
}

// url: explicit public link, then /tours/{slug}, then /tours/{id}.
func resolveURL(raw dto.RawActivity, slug *string, id models.ID) *string {
	if link := firstText(raw.URL, raw.PublicURL, raw.CanonicalURL); link != nil {
		return link
	}

	var path string
	switch {
	case slug != nil:
		path = toursPathPrefix + url.PathEscape(*slug)
	case !id.IsZero():
		path = toursPathPrefix + url.PathEscape(id.String())
	default:
		return nil
	}
	return &path
}

func firstText(values ...dto.Text) *string {
	for _, v := range values {
		if v.Valid && v.Value != "" {
			s := v.Value
			return &s
		}
	}
	return nil
}

func firstNumber(values ...dto.Number) *float64 {
	for _, v := range values {
		if v.Valid {
			f := v.Value
			return &f
		}
	}
	return nil
}
