package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/bufbuild/connect-go"
)

const (
	SearchServiceName = "pouringat.v1.SearchService"
	VenueServiceName  = "pouringat.v1.VenueService"
	TapServiceName    = "pouringat.v1.TapService"
)

const (
	SearchServiceSearchProcedure              = "/pouringat.v1.SearchService/Search"
	VenueServiceCreateVenueProcedure          = "/pouringat.v1.VenueService/CreateVenue"
	VenueServiceGetVenueProcedure             = "/pouringat.v1.VenueService/GetVenue"
	VenueServiceListMyVenuesProcedure         = "/pouringat.v1.VenueService/ListMyVenues"
	VenueServiceListUnverifiedVenuesProcedure = "/pouringat.v1.VenueService/ListUnverifiedVenues"
	VenueServiceVerifyVenueProcedure          = "/pouringat.v1.VenueService/VerifyVenue"
	VenueServiceUpdateBrandingProcedure       = "/pouringat.v1.VenueService/UpdateBranding"
	TapServiceTapBeverageProcedure            = "/pouringat.v1.TapService/TapBeverage"
	TapServiceUntapBeverageProcedure          = "/pouringat.v1.TapService/UntapBeverage"
)

type SearchServiceHandler interface {
	Search(context.Context, *connect.Request[SearchRequest]) (*connect.Response[SearchResponse], error)
}

type VenueServiceHandler interface {
	CreateVenue(context.Context, *connect.Request[CreateVenueRequest]) (*connect.Response[CreateVenueResponse], error)
	GetVenue(context.Context, *connect.Request[GetVenueRequest]) (*connect.Response[GetVenueResponse], error)
	ListMyVenues(context.Context, *connect.Request[ListMyVenuesRequest]) (*connect.Response[ListMyVenuesResponse], error)
	ListUnverifiedVenues(context.Context, *connect.Request[ListUnverifiedVenuesRequest]) (*connect.Response[ListUnverifiedVenuesResponse], error)
	VerifyVenue(context.Context, *connect.Request[VerifyVenueRequest]) (*connect.Response[VerifyVenueResponse], error)
	UpdateBranding(context.Context, *connect.Request[UpdateBrandingRequest]) (*connect.Response[UpdateBrandingResponse], error)
}

type TapServiceHandler interface {
	TapBeverage(context.Context, *connect.Request[TapBeverageRequest]) (*connect.Response[TapBeverageResponse], error)
	UntapBeverage(context.Context, *connect.Request[UntapBeverageRequest]) (*connect.Response[UntapBeverageResponse], error)
}

func handlerOptions(opts []connect.HandlerOption) []connect.HandlerOption {
	return append([]connect.HandlerOption{connect.WithCodec(JSONCodec{})}, opts...)
}

func clientOptions(opts []connect.ClientOption) []connect.ClientOption {
	return append([]connect.ClientOption{connect.WithCodec(JSONCodec{})}, opts...)
}

// routes serves each procedure path with its handler and answers anything else with 404.
func routes(handlers map[string]http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if handler, ok := handlers[r.URL.Path]; ok {
			handler.ServeHTTP(w, r)

			return
		}

		http.NotFound(w, r)
	})
}

func NewSearchServiceHandler(svc SearchServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)

	return "/" + SearchServiceName + "/", routes(map[string]http.Handler{
		SearchServiceSearchProcedure: connect.NewUnaryHandler(SearchServiceSearchProcedure, svc.Search, opts...),
	})
}

func NewVenueServiceHandler(svc VenueServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)

	return "/" + VenueServiceName + "/", routes(map[string]http.Handler{
		VenueServiceCreateVenueProcedure:          connect.NewUnaryHandler(VenueServiceCreateVenueProcedure, svc.CreateVenue, opts...),
		VenueServiceGetVenueProcedure:             connect.NewUnaryHandler(VenueServiceGetVenueProcedure, svc.GetVenue, opts...),
		VenueServiceListMyVenuesProcedure:         connect.NewUnaryHandler(VenueServiceListMyVenuesProcedure, svc.ListMyVenues, opts...),
		VenueServiceListUnverifiedVenuesProcedure: connect.NewUnaryHandler(VenueServiceListUnverifiedVenuesProcedure, svc.ListUnverifiedVenues, opts...),
		VenueServiceVerifyVenueProcedure:          connect.NewUnaryHandler(VenueServiceVerifyVenueProcedure, svc.VerifyVenue, opts...),
		VenueServiceUpdateBrandingProcedure:       connect.NewUnaryHandler(VenueServiceUpdateBrandingProcedure, svc.UpdateBranding, opts...),
	})
}

func NewTapServiceHandler(svc TapServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)

	return "/" + TapServiceName + "/", routes(map[string]http.Handler{
		TapServiceTapBeverageProcedure:   connect.NewUnaryHandler(TapServiceTapBeverageProcedure, svc.TapBeverage, opts...),
		TapServiceUntapBeverageProcedure: connect.NewUnaryHandler(TapServiceUntapBeverageProcedure, svc.UntapBeverage, opts...),
	})
}

type SearchServiceClient struct {
	search *connect.Client[SearchRequest, SearchResponse]
}

func NewSearchServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *SearchServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)

	return &SearchServiceClient{
		search: connect.NewClient[SearchRequest, SearchResponse](httpClient, baseURL+SearchServiceSearchProcedure, opts...),
	}
}

func (c *SearchServiceClient) Search(ctx context.Context, req *connect.Request[SearchRequest]) (*connect.Response[SearchResponse], error) {
	return c.search.CallUnary(ctx, req)
}

type VenueServiceClient struct {
	createVenue          *connect.Client[CreateVenueRequest, CreateVenueResponse]
	getVenue             *connect.Client[GetVenueRequest, GetVenueResponse]
	listMyVenues         *connect.Client[ListMyVenuesRequest, ListMyVenuesResponse]
	listUnverifiedVenues *connect.Client[ListUnverifiedVenuesRequest, ListUnverifiedVenuesResponse]
	verifyVenue          *connect.Client[VerifyVenueRequest, VerifyVenueResponse]
	updateBranding       *connect.Client[UpdateBrandingRequest, UpdateBrandingResponse]
}

func NewVenueServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *VenueServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)

	return &VenueServiceClient{
		createVenue:          connect.NewClient[CreateVenueRequest, CreateVenueResponse](httpClient, baseURL+VenueServiceCreateVenueProcedure, opts...),
		getVenue:             connect.NewClient[GetVenueRequest, GetVenueResponse](httpClient, baseURL+VenueServiceGetVenueProcedure, opts...),
		listMyVenues:         connect.NewClient[ListMyVenuesRequest, ListMyVenuesResponse](httpClient, baseURL+VenueServiceListMyVenuesProcedure, opts...),
		listUnverifiedVenues: connect.NewClient[ListUnverifiedVenuesRequest, ListUnverifiedVenuesResponse](httpClient, baseURL+VenueServiceListUnverifiedVenuesProcedure, opts...),
		verifyVenue:          connect.NewClient[VerifyVenueRequest, VerifyVenueResponse](httpClient, baseURL+VenueServiceVerifyVenueProcedure, opts...),
		updateBranding:       connect.NewClient[UpdateBrandingRequest, UpdateBrandingResponse](httpClient, baseURL+VenueServiceUpdateBrandingProcedure, opts...),
	}
}

func (c *VenueServiceClient) CreateVenue(ctx context.Context, req *connect.Request[CreateVenueRequest]) (*connect.Response[CreateVenueResponse], error) {
	return c.createVenue.CallUnary(ctx, req)
}

func (c *VenueServiceClient) GetVenue(ctx context.Context, req *connect.Request[GetVenueRequest]) (*connect.Response[GetVenueResponse], error) {
	return c.getVenue.CallUnary(ctx, req)
}

func (c *VenueServiceClient) ListMyVenues(ctx context.Context, req *connect.Request[ListMyVenuesRequest]) (*connect.Response[ListMyVenuesResponse], error) {
	return c.listMyVenues.CallUnary(ctx, req)
}

func (c *VenueServiceClient) ListUnverifiedVenues(ctx context.Context, req *connect.Request[ListUnverifiedVenuesRequest]) (*connect.Response[ListUnverifiedVenuesResponse], error) {
	return c.listUnverifiedVenues.CallUnary(ctx, req)
}

func (c *VenueServiceClient) VerifyVenue(ctx context.Context, req *connect.Request[VerifyVenueRequest]) (*connect.Response[VerifyVenueResponse], error) {
	return c.verifyVenue.CallUnary(ctx, req)
}

func (c *VenueServiceClient) UpdateBranding(ctx context.Context, req *connect.Request[UpdateBrandingRequest]) (*connect.Response[UpdateBrandingResponse], error) {
	return c.updateBranding.CallUnary(ctx, req)
}

type TapServiceClient struct {
	tapBeverage   *connect.Client[TapBeverageRequest, TapBeverageResponse]
	untapBeverage *connect.Client[UntapBeverageRequest, UntapBeverageResponse]
}

func NewTapServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *TapServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)

	return &TapServiceClient{
		tapBeverage:   connect.NewClient[TapBeverageRequest, TapBeverageResponse](httpClient, baseURL+TapServiceTapBeverageProcedure, opts...),
		untapBeverage: connect.NewClient[UntapBeverageRequest, UntapBeverageResponse](httpClient, baseURL+TapServiceUntapBeverageProcedure, opts...),
	}
}

func (c *TapServiceClient) TapBeverage(ctx context.Context, req *connect.Request[TapBeverageRequest]) (*connect.Response[TapBeverageResponse], error) {
	return c.tapBeverage.CallUnary(ctx, req)
}

func (c *TapServiceClient) UntapBeverage(ctx context.Context, req *connect.Request[UntapBeverageRequest]) (*connect.Response[UntapBeverageResponse], error) {
	return c.untapBeverage.CallUnary(ctx, req)
}
