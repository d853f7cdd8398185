package server

import (
	"context"
	"strings"

	"github.com/bufbuild/connect-go"
	"go.uber.org/zap"

	"pouringat.com/PouringAt/pkg/search"
	"pouringat.com/PouringAt/pkg/server/api"
)

const defaultPreviewCount = 4

type Searcher interface {
	Search(ctx context.Context, query search.Query) (*search.Result, error)
}

type SearchServer struct {
	searcher     Searcher
	previewCount int
	proxies      TrustedProxies
	logger       *zap.Logger
}

func NewSearchServer(searcher Searcher, previewCount int, proxies TrustedProxies, logger *zap.Logger) *SearchServer {
	if previewCount <= 0 {
		previewCount = defaultPreviewCount
	}

	return &SearchServer{searcher: searcher, previewCount: previewCount, proxies: proxies, logger: logger}
}

func (s *SearchServer) Search(ctx context.Context, request *connect.Request[api.SearchRequest]) (*connect.Response[api.SearchResponse], error) {
	query := search.Query{
		Location:  strings.TrimSpace(request.Msg.Location),
		Style:     strings.TrimSpace(request.Msg.Style),
		Brewery:   strings.TrimSpace(request.Msg.Brewery),
		ClientKey: s.proxies.ClientKey(request.Header(), request.Peer().Addr),
	}

	result, err := s.searcher.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	response := api.SearchResponse{
		Coordinate: api.CoordinateFromModel(result.Coordinate),
		Venues:     make([]*api.VenuePreview, 0, len(result.Venues)),
	}

	for _, hit := range result.Venues {
		venue := api.VenueFromModel(hit.Venue)
		venue.Beverages = nil

		response.Venues = append(response.Venues, &api.VenuePreview{
			Venue:          venue,
			DistanceMeters: hit.DistanceMeters,
			Beverages:      api.BeveragesFromListings(hit.Listings, s.previewCount),
			TotalBeverages: len(hit.Listings),
		})
	}

	s.logger.Debug("search", zap.String("location", query.Location), zap.Int("venues", len(response.Venues)))

	return connect.NewResponse(&response), nil
}
