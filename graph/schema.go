package graph

import (
	"errors"

	"stayhaven/config"
	"stayhaven/middleware"
	"stayhaven/models"

	"github.com/graphql-go/graphql"
	"go.uber.org/zap"
)

// NewSchema assembles the executable schema around the resolver's services.
func NewSchema(r *Resolver) (graphql.Schema, error) {
	t := buildTypes(r)

	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"authUrl": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Viewers.AuthURL(), nil
				},
			},
			"user": &graphql.Field{
				Type: graphql.NewNonNull(t.user),
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					auth, err := requestAuth(p)
					if err != nil {
						return nil, err
					}
					return r.Users.GetByID(p.Context, stringArg(p, "id"), auth.Viewer)
				},
			},
			"listing": &graphql.Field{
				Type: graphql.NewNonNull(t.listing),
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					auth, err := requestAuth(p)
					if err != nil {
						return nil, err
					}
					return r.Listings.GetByID(p.Context, stringArg(p, "id"), auth.Viewer)
				},
			},
			"listings": &graphql.Field{
				Type: graphql.NewNonNull(t.listings),
				Args: graphql.FieldConfigArgument{
					"location": &graphql.ArgumentConfig{Type: graphql.String},
					"filter":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(t.listingsFilter)},
					"limit":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
					"page":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					filter := models.ListingsFilter(stringArg(p, "filter"))
					result, err := r.Listings.Search(p.Context, stringArg(p, "location"), filter, intArg(p, "limit"), intArg(p, "page"))
					if err != nil {
						return nil, err
					}
					return listingsPage{Region: result.Region, Total: result.Total, Result: result.Result}, nil
				},
			},
		},
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"logIn": &graphql.Field{
				Type: graphql.NewNonNull(t.viewer),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: t.logInInput},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					auth, err := requestAuth(p)
					if err != nil {
						return nil, err
					}
					return r.logIn(p, auth)
				},
			},
			"logOut": &graphql.Field{
				Type: graphql.NewNonNull(t.viewer),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					auth, err := requestAuth(p)
					if err != nil {
						return nil, err
					}
					if auth.Viewer != nil {
						if err := r.Viewers.SignOut(p.Context, auth.Viewer.ID); err != nil {
							r.Logger.Warn("sign-out failed", zap.String("viewerId", auth.Viewer.ID), zap.Error(err))
						}
					}
					middleware.ClearViewerCookie(auth.Gin)
					return models.Viewer{DidRequest: true}, nil
				},
			},
			"connectStripe": &graphql.Field{
				Type: graphql.NewNonNull(t.viewer),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(t.connectInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					auth, err := requestAuth(p)
					if err != nil {
						return nil, err
					}
					if auth.Viewer == nil {
						return nil, errors.New("viewer cannot be found")
					}
					updated, err := r.Viewers.ConnectWallet(p.Context, auth.Viewer, inputString(inputArg(p), "code"))
					if err != nil {
						return nil, err
					}
					return toViewer(updated, auth.Gin.GetHeader("X-CSRF-TOKEN")), nil
				},
			},
			"disconnectStripe": &graphql.Field{
				Type: graphql.NewNonNull(t.viewer),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					auth, err := requestAuth(p)
					if err != nil {
						return nil, err
					}
					if auth.Viewer == nil {
						return nil, errors.New("viewer cannot be found")
					}
					updated, err := r.Viewers.DisconnectWallet(p.Context, auth.Viewer)
					if err != nil {
						return nil, err
					}
					return toViewer(updated, auth.Gin.GetHeader("X-CSRF-TOKEN")), nil
				},
			},
			"hostListing": &graphql.Field{
				Type: graphql.NewNonNull(t.listing),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(t.hostInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					auth, err := requestAuth(p)
					if err != nil {
						return nil, err
					}
					input := inputArg(p)
					hostInput := models.HostListingInput{
						Title:       inputString(input, "title"),
						Description: inputString(input, "description"),
						Image:       inputString(input, "image"),
						Type:        models.ListingType(inputString(input, "type")),
						Address:     inputString(input, "address"),
						NumOfGuests: intInput(input, "numOfGuests"),
						Price:       int64(intInput(input, "price")),
					}
					return r.Listings.Host(p.Context, auth.Viewer, hostInput)
				},
			},
			"createBooking": &graphql.Field{
				Type: graphql.NewNonNull(t.booking),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(t.bookInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					auth, err := requestAuth(p)
					if err != nil {
						return nil, err
					}
					input := inputArg(p)
					bookInput := models.CreateBookingInput{
						ID:       inputString(input, "id"),
						Source:   inputString(input, "source"),
						CheckIn:  inputString(input, "checkIn"),
						CheckOut: inputString(input, "checkOut"),
					}
					return r.Bookings.CreateBooking(p.Context, auth.Viewer, bookInput)
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    query,
		Mutation: mutation,
	})
}

// logIn covers both entry paths: a fresh Google OAuth code, or a returning
// viewer identified only by their cookie.
func (r *Resolver) logIn(p graphql.ResolveParams, auth *middleware.RequestAuth) (interface{}, error) {
	input := inputArg(p)
	code := inputString(input, "code")

	if code != "" {
		signedIn, token, cookie, err := r.Viewers.SignInWithGoogle(p.Context, code)
		if err != nil {
			return nil, err
		}
		middleware.SetViewerCookie(auth.Gin, cookie, config.IsProduction())
		return toViewer(signedIn, token), nil
	}

	if auth.ViewerID == "" {
		return models.Viewer{DidRequest: true}, nil
	}

	signedIn, token, err := r.Viewers.SignInFromCookie(p.Context, auth.ViewerID)
	if err != nil {
		return nil, err
	}
	if signedIn == nil {
		// The cookie pointed at a user that no longer exists.
		middleware.ClearViewerCookie(auth.Gin)
		return models.Viewer{DidRequest: true}, nil
	}
	return toViewer(signedIn, token), nil
}
