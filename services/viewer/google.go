package viewer

import (
	"context"
	"errors"
	"fmt"

	"stayhaven/config"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	people "google.golang.org/api/people/v1"
	"google.golang.org/api/option"
)

// googleProfile is the subset of the People API profile the platform keeps.
type googleProfile struct {
	ID     string
	Name   string
	Avatar string
	Email  string
}

func oauthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     config.AppConfig.GoogleClientID,
		ClientSecret: config.AppConfig.GoogleClientSecret,
		RedirectURL:  config.AppConfig.PublicURL + "/login",
		Scopes: []string{
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}
}

// AuthURL returns the Google OAuth consent URL the client redirects to.
func (s *DefaultViewerService) AuthURL() string {
	return oauthConfig().AuthCodeURL("", oauth2.AccessTypeOnline)
}

// fetchGoogleProfile exchanges the OAuth code and reads the viewer's People
// API profile.
func (s *DefaultViewerService) fetchGoogleProfile(ctx context.Context, code string) (*googleProfile, error) {
	conf := oauthConfig()

	token, err := conf.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange google auth code: %w", err)
	}

	svc, err := people.NewService(ctx, option.WithTokenSource(conf.TokenSource(ctx, token)))
	if err != nil {
		return nil, fmt.Errorf("failed to create people service: %w", err)
	}

	person, err := svc.People.Get("people/me").
		PersonFields("emailAddresses,names,photos").
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch google profile: %w", err)
	}

	profile := &googleProfile{}
	if len(person.Names) > 0 {
		profile.Name = person.Names[0].DisplayName
		if person.Names[0].Metadata != nil && person.Names[0].Metadata.Source != nil {
			profile.ID = person.Names[0].Metadata.Source.Id
		}
	}
	if len(person.Photos) > 0 {
		profile.Avatar = person.Photos[0].Url
	}
	if len(person.EmailAddresses) > 0 {
		profile.Email = person.EmailAddresses[0].Value
	}

	if profile.ID == "" || profile.Name == "" || profile.Avatar == "" || profile.Email == "" {
		return nil, errors.New("google profile is missing required fields")
	}
	return profile, nil
}
