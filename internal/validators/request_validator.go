package validators

import (
	"context"
	"fmt"
	"regexp"

	"github.com/MKhiriev/go-city-guide/models"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

const (
	maxEmailLength     = 254
	maxNameLength      = 100
	minPasswordLength  = 6
	maxPasswordLength  = 72
	maxPlaceIDLength   = 255
	maxCommentLength   = 1000
	maxQueryLength     = 200
	MaxEventsPageLimit = 100
)

var placeTypePattern = regexp.MustCompile(`^[a-z_]+$`)

type RequestValidator struct {
}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

func (v *RequestValidator) Validate(ctx context.Context, obj any) error {
	var err error

	switch value := obj.(type) {
	case models.RegisterRequest:
		err = validateRegisterRequest(value)
	case *models.RegisterRequest:
		err = validateRegisterRequest(*value)

	case models.LoginRequest:
		err = validateLoginRequest(value)
	case *models.LoginRequest:
		err = validateLoginRequest(*value)

	case models.FavoriteRequest:
		err = validateFavoriteRequest(value)
	case *models.FavoriteRequest:
		err = validateFavoriteRequest(*value)

	case models.ReviewRequest:
		err = validateReviewRequest(value)
	case *models.ReviewRequest:
		err = validateReviewRequest(*value)

	case models.PlaceSearch:
		err = validatePlaceSearch(value)
	case *models.PlaceSearch:
		err = validatePlaceSearch(*value)

	case models.EventFilter:
		err = validateEventFilter(value)
	case *models.EventFilter:
		err = validateEventFilter(*value)

	default:
		return ErrUnsupportedType
	}

	if err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return nil
}

func validateRegisterRequest(r models.RegisterRequest) error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, validation.Length(3, maxEmailLength), is.Email),
		validation.Field(&r.Name, validation.Required, validation.Length(1, maxNameLength)),
		validation.Field(&r.Password, validation.Required, validation.Length(minPasswordLength, maxPasswordLength)),
	)
}

// Login only checks presence: a malformed email must end in the same
// "invalid credentials" answer as an unknown one.
func validateLoginRequest(r models.LoginRequest) error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

func validateFavoriteRequest(r models.FavoriteRequest) error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.PlaceID, validation.Required, validation.Length(1, maxPlaceIDLength)),
		validation.Field(&r.PlaceName, validation.Length(0, maxPlaceIDLength)),
	)
}

func validateReviewRequest(r models.ReviewRequest) error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Rating, validation.Required, validation.Min(models.MinRating), validation.Max(models.MaxRating)),
		validation.Field(&r.Comment, validation.Length(0, maxCommentLength)),
	)
}

func validatePlaceSearch(s models.PlaceSearch) error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Query, validation.Required, validation.Length(1, maxQueryLength)),
		validation.Field(&s.Type, validation.Match(placeTypePattern)),
		validation.Field(&s.Radius, validation.Required, validation.Min(1), validation.Max(models.MaxPlaceRadius)),
		validation.Field(&s.MinRating, validation.Min(0.0), validation.Max(5.0)),
	)
}

func validateEventFilter(f models.EventFilter) error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Limit, validation.Max(uint64(MaxEventsPageLimit))),
	)
}
