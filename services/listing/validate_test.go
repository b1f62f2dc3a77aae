package listing

import (
	"strings"
	"testing"

	"stayhaven/models"
)

func validInput() models.HostListingInput {
	return models.HostListingInput{
		Title:       "Cozy canal-side flat",
		Description: "Two rooms near the old town",
		Type:        models.ListingTypeApartment,
		Image:       "data:image/jpeg;base64,abc",
		Address:     "1 Canal Street, Amsterdam",
		Price:       12000,
		NumOfGuests: 2,
	}
}

func TestVerifyHostListingInput(t *testing.T) {
	if err := verifyHostListingInput(validInput()); err != nil {
		t.Fatalf("valid input rejected: %v", err)
	}

	cases := []struct {
		name    string
		mutate  func(*models.HostListingInput)
		wantErr string
	}{
		{
			name:    "title too long",
			mutate:  func(in *models.HostListingInput) { in.Title = strings.Repeat("a", 101) },
			wantErr: "listing title must be under 100 characters",
		},
		{
			name:    "description too long",
			mutate:  func(in *models.HostListingInput) { in.Description = strings.Repeat("a", 5001) },
			wantErr: "listing description must be under 5000 characters",
		},
		{
			name:    "unknown type",
			mutate:  func(in *models.HostListingInput) { in.Type = "CASTLE" },
			wantErr: "listing type must be either apartment or house",
		},
		{
			name:    "negative price",
			mutate:  func(in *models.HostListingInput) { in.Price = -1 },
			wantErr: "price must be greater than 0",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)

			err := verifyHostListingInput(in)
			if err == nil || err.Error() != tc.wantErr {
				t.Fatalf("got %v, want %q", err, tc.wantErr)
			}
		})
	}
}
