package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-city-guide/models"
	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func TestRequestValidator_Validate(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		obj     any
		wantErr error
		field   string
	}{
		// register
		{name: "register ok", obj: models.RegisterRequest{Email: "alice@example.com", Name: "Alice", Password: "secret123"}},
		{name: "register pointer ok", obj: &models.RegisterRequest{Email: "alice@example.com", Name: "Alice", Password: "secret123"}},
		{name: "register bad email", obj: models.RegisterRequest{Email: "alice", Name: "Alice", Password: "secret123"}, wantErr: ErrValidation, field: "email"},
		{name: "register missing email", obj: models.RegisterRequest{Name: "Alice", Password: "secret123"}, wantErr: ErrValidation, field: "email"},
		{name: "register short password", obj: models.RegisterRequest{Email: "alice@example.com", Name: "Alice", Password: "123"}, wantErr: ErrValidation, field: "password"},
		{name: "register long password", obj: models.RegisterRequest{Email: "alice@example.com", Name: "Alice", Password: strings.Repeat("p", 73)}, wantErr: ErrValidation, field: "password"},

		{name: "register missing name", obj: models.RegisterRequest{Email: "alice@example.com", Password: "secret123"}, wantErr: ErrValidation, field: "name"},

		// login
		{name: "login ok", obj: models.LoginRequest{Email: "alice@example.com", Password: "x"}},
		{name: "login any identifier", obj: models.LoginRequest{Email: "not-an-email", Password: "x"}},
		{name: "login missing password", obj: models.LoginRequest{Email: "alice@example.com"}, wantErr: ErrValidation, field: "password"},

		// favorites
		{name: "favorite ok", obj: models.FavoriteRequest{PlaceID: "ChIJ123", PlaceName: "Alto do Moura"}},
		{name: "favorite missing place", obj: models.FavoriteRequest{PlaceName: "Alto do Moura"}, wantErr: ErrValidation, field: "place_id"},

		// reviews
		{name: "review ok", obj: models.ReviewRequest{Rating: 5, Comment: "Lindo"}},
		{name: "review min", obj: models.ReviewRequest{Rating: 1}},
		{name: "review zero rating", obj: models.ReviewRequest{}, wantErr: ErrValidation, field: "rating"},
		{name: "review rating too high", obj: models.ReviewRequest{Rating: 6}, wantErr: ErrValidation, field: "rating"},
		{name: "review negative rating", obj: models.ReviewRequest{Rating: -1}, wantErr: ErrValidation, field: "rating"},
		{name: "review long comment", obj: models.ReviewRequest{Rating: 3, Comment: strings.Repeat("a", 1001)}, wantErr: ErrValidation, field: "comment"},

		// place search
		{name: "search ok", obj: models.PlaceSearch{Query: "museu", Type: "museum", Radius: 5000, MinRating: ptr(4.0)}},
		{name: "search missing query", obj: models.PlaceSearch{Radius: 5000}, wantErr: ErrValidation, field: "query"},
		{name: "search radius too big", obj: models.PlaceSearch{Query: "museu", Radius: 60000}, wantErr: ErrValidation, field: "radius"},
		{name: "search bad type", obj: models.PlaceSearch{Query: "museu", Type: "Museum!", Radius: 10}, wantErr: ErrValidation, field: "type"},
		{name: "search rating above 5", obj: models.PlaceSearch{Query: "museu", Radius: 10, MinRating: ptr(5.5)}, wantErr: ErrValidation, field: "min_rating"},

		// events
		{name: "events ok", obj: models.EventFilter{Limit: 10}},
		{name: "events limit too big", obj: models.EventFilter{Limit: 1000}, wantErr: ErrValidation, field: "limit"},

		{name: "unsupported", obj: 42, wantErr: ErrUnsupportedType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.obj)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.field != "" {
				assert.Contains(t, err.Error(), tt.field)
			}
		})
	}
}
