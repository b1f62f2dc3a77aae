package graph

import (
	"encoding/json"

	"stayhaven/models"

	"github.com/graphql-go/graphql"
)

// schemaTypes holds every named type of the schema. Cyclic fields (a booking's
// listing, a listing's host, a user's bookings) are attached after all object
// types exist.
type schemaTypes struct {
	listingType     *graphql.Enum
	listingsFilter  *graphql.Enum
	viewer          *graphql.Object
	user            *graphql.Object
	listing         *graphql.Object
	booking         *graphql.Object
	bookings        *graphql.Object
	listings        *graphql.Object
	logInInput      *graphql.InputObject
	connectInput    *graphql.InputObject
	hostInput       *graphql.InputObject
	bookInput       *graphql.InputObject
}

func pageArgs() graphql.FieldConfigArgument {
	return graphql.FieldConfigArgument{
		"limit": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
		"page":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
	}
}

func buildTypes(r *Resolver) *schemaTypes {
	t := &schemaTypes{}

	t.listingType = graphql.NewEnum(graphql.EnumConfig{
		Name: "ListingType",
		Values: graphql.EnumValueConfigMap{
			"APARTMENT": &graphql.EnumValueConfig{Value: string(models.ListingTypeApartment)},
			"HOUSE":     &graphql.EnumValueConfig{Value: string(models.ListingTypeHouse)},
		},
	})

	t.listingsFilter = graphql.NewEnum(graphql.EnumConfig{
		Name: "ListingsFilter",
		Values: graphql.EnumValueConfigMap{
			"PRICE_LOW_TO_HIGH": &graphql.EnumValueConfig{Value: string(models.ListingsFilterPriceLowToHigh)},
			"PRICE_HIGH_TO_LOW": &graphql.EnumValueConfig{Value: string(models.ListingsFilterPriceHighToLow)},
		},
	})

	t.viewer = graphql.NewObject(graphql.ObjectConfig{
		Name: "Viewer",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.ID,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					v := p.Source.(models.Viewer)
					if v.ID == "" {
						return nil, nil
					}
					return v.ID, nil
				},
			},
			"token": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					v := p.Source.(models.Viewer)
					if v.Token == "" {
						return nil, nil
					}
					return v.Token, nil
				},
			},
			"avatar": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					v := p.Source.(models.Viewer)
					if v.Avatar == "" {
						return nil, nil
					}
					return v.Avatar, nil
				},
			},
			"hasWallet": &graphql.Field{
				Type: graphql.Boolean,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					v := p.Source.(models.Viewer)
					if v.ID == "" {
						return nil, nil
					}
					return v.WalletID != "", nil
				},
			},
			"didRequest": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Boolean),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(models.Viewer).DidRequest, nil
				},
			},
		},
	})

	t.booking = graphql.NewObject(graphql.ObjectConfig{
		Name: "Booking",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return bookingSource(p.Source).ID, nil
				},
			},
			"checkIn": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return bookingSource(p.Source).CheckIn, nil
				},
			},
			"checkOut": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return bookingSource(p.Source).CheckOut, nil
				},
			},
		},
	})

	t.bookings = graphql.NewObject(graphql.ObjectConfig{
		Name: "Bookings",
		Fields: graphql.Fields{
			"total": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Int),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(bookingsPage).Total, nil
				},
			},
			"result": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(t.booking))),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(bookingsPage).Result, nil
				},
			},
		},
	})

	t.listing = graphql.NewObject(graphql.ObjectConfig{
		Name: "Listing",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return listingSource(p.Source).ID, nil
				},
			},
			"title": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return listingSource(p.Source).Title, nil
				},
			},
			"description": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return listingSource(p.Source).Description, nil
				},
			},
			"image": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return listingSource(p.Source).Image, nil
				},
			},
			"type": &graphql.Field{
				Type: graphql.NewNonNull(t.listingType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return string(listingSource(p.Source).Type), nil
				},
			},
			"address": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return listingSource(p.Source).Address, nil
				},
			},
			"city": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return listingSource(p.Source).City, nil
				},
			},
			"admin": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return listingSource(p.Source).Admin, nil
				},
			},
			"country": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return listingSource(p.Source).Country, nil
				},
			},
			"bookingsIndex": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					index := listingSource(p.Source).Index
					if index == nil {
						index = models.BookingsIndex{}
					}
					encoded, err := json.Marshal(index)
					if err != nil {
						return nil, err
					}
					return string(encoded), nil
				},
			},
			"price": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Int),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return int(listingSource(p.Source).Price), nil
				},
			},
			"numOfGuests": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Int),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return listingSource(p.Source).NumOfGuests, nil
				},
			},
		},
	})

	t.listings = graphql.NewObject(graphql.ObjectConfig{
		Name: "Listings",
		Fields: graphql.Fields{
			"region": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					page := p.Source.(listingsPage)
					if page.Region == "" {
						return nil, nil
					}
					return page.Region, nil
				},
			},
			"total": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Int),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return int(p.Source.(listingsPage).Total), nil
				},
			},
			"result": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(t.listing))),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(listingsPage).Result, nil
				},
			},
		},
	})

	t.user = graphql.NewObject(graphql.ObjectConfig{
		Name: "User",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return userSource(p.Source).ID, nil
				},
			},
			"name": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return userSource(p.Source).Name, nil
				},
			},
			"avatar": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return userSource(p.Source).Avatar, nil
				},
			},
			"contact": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return userSource(p.Source).Contact, nil
				},
			},
			"hasWallet": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Boolean),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return userSource(p.Source).HasWallet(), nil
				},
			},
			"income": &graphql.Field{
				Type: graphql.Int,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					u := userSource(p.Source)
					if !u.Authorized {
						return nil, nil
					}
					return int(u.Income), nil
				},
			},
		},
	})

	// Cyclic fields.

	t.booking.AddFieldConfig("listing", &graphql.Field{
		Type: graphql.NewNonNull(t.listing),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			auth, err := requestAuth(p)
			if err != nil {
				return nil, err
			}
			return r.Listings.GetByID(p.Context, bookingSource(p.Source).Listing, auth.Viewer)
		},
	})

	t.booking.AddFieldConfig("tenant", &graphql.Field{
		Type: graphql.NewNonNull(t.user),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			auth, err := requestAuth(p)
			if err != nil {
				return nil, err
			}
			return r.Users.GetByID(p.Context, bookingSource(p.Source).Tenant, auth.Viewer)
		},
	})

	t.listing.AddFieldConfig("host", &graphql.Field{
		Type: graphql.NewNonNull(t.user),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			auth, err := requestAuth(p)
			if err != nil {
				return nil, err
			}
			return r.Users.GetByID(p.Context, listingSource(p.Source).Host, auth.Viewer)
		},
	})

	t.listing.AddFieldConfig("bookings", &graphql.Field{
		Type: t.bookings,
		Args: pageArgs(),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			l := listingSource(p.Source)
			if !l.Authorized {
				return nil, nil
			}
			result, err := r.Bookings.Page(p.Context, l.Bookings, intArg(p, "limit"), intArg(p, "page"))
			if err != nil {
				return nil, err
			}
			return bookingsPage{Total: len(l.Bookings), Result: result}, nil
		},
	})

	t.user.AddFieldConfig("bookings", &graphql.Field{
		Type: t.bookings,
		Args: pageArgs(),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			u := userSource(p.Source)
			if !u.Authorized {
				return nil, nil
			}
			result, err := r.Bookings.Page(p.Context, u.Bookings, intArg(p, "limit"), intArg(p, "page"))
			if err != nil {
				return nil, err
			}
			return bookingsPage{Total: len(u.Bookings), Result: result}, nil
		},
	})

	t.user.AddFieldConfig("listings", &graphql.Field{
		Type: graphql.NewNonNull(t.listings),
		Args: pageArgs(),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			u := userSource(p.Source)
			result, err := r.Listings.Page(p.Context, u.Listings, intArg(p, "limit"), intArg(p, "page"))
			if err != nil {
				return nil, err
			}
			return listingsPage{Total: int64(len(u.Listings)), Result: result}, nil
		},
	})

	t.logInInput = graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "LogInInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"code": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	t.connectInput = graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "ConnectStripeInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"code": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	t.hostInput = graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "HostListingInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"title":       &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"description": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"image":       &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"type":        &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(t.listingType)},
			"address":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"price":       &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
			"numOfGuests": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
		},
	})

	t.bookInput = graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "CreateBookingInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"id":       &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
			"source":   &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"checkIn":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"checkOut": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	return t
}
