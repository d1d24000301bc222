//go:build unit

package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"testing"
	"time"

	"clipvault/internal/domain/catalog"
	"clipvault/internal/handler/api"
	resdto "clipvault/internal/handler/dto/response"
	"clipvault/internal/pkg/clock"
	"clipvault/internal/pkg/errs"
	"clipvault/internal/usecase/progressive"
	"clipvault/tests/common/builder"
	"clipvault/tests/common/httptest"
	commandsmock "clipvault/tests/mock/commands"
	queriesmock "clipvault/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CatalogHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockQueries  *queriesmock.MockCatalogQueries
	mockPreviews *queriesmock.MockPreviewQueries
	mockCommands *commandsmock.MockCatalogCommands
	streams      *progressive.Registry
	handler      *api.CatalogHandler
}

func noSleep(context.Context, time.Duration) error { return nil }

func (s *CatalogHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockCatalogQueries(s.mockCtrl)
	s.mockPreviews = queriesmock.NewMockPreviewQueries(s.mockCtrl)
	s.mockCommands = commandsmock.NewMockCatalogCommands(s.mockCtrl)
	logger := slog.New(slog.DiscardHandler)
	s.streams = progressive.NewRegistry(s.mockQueries, clock.NewRealClock(), logger, progressive.WithSleep(noSleep))
	s.handler = api.NewCatalogHandler(s.mockQueries, s.mockPreviews, s.mockCommands, s.streams, logger)

	s.router.GET("/api/catalog", s.handler.List)
	s.router.GET("/api/catalog/ids", s.handler.ListIDs)
	s.router.GET("/api/catalog/stream", s.handler.Stream)
	s.router.GET("/api/catalog/:id", s.handler.Get)
	s.router.GET("/api/catalog/:id/previews", s.handler.Previews)
}

func (s *CatalogHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCatalogHandlerSuite(t *testing.T) {
	suite.Run(t, new(CatalogHandlerTestSuite))
}

func (s *CatalogHandlerTestSuite) TestListIDs() {
	s.Run("success: default sort is newest", func() {
		s.mockQueries.EXPECT().ListIDs(gomock.Any(), catalog.SortNewest).
			Return([]string{"b", "a"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/catalog/ids", nil, "")

		var res resdto.VideoIDsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal("newest", res.Sort)
		s.Equal([]string{"b", "a"}, res.IDs)
	})

	s.Run("success: sort key is case-insensitive", func() {
		s.mockQueries.EXPECT().ListIDs(gomock.Any(), catalog.SortPriceDesc).Return([]string{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/catalog/ids?sort=PRICE_DESC", nil, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 400 on unknown sort", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/catalog/ids?sort=rating", nil, "")

		detail := httptest.AssertErrorDetail(s.T(), rec, http.StatusBadRequest)
		s.Len(detail["allowed"], len(catalog.SortKeys))
	})

	s.Run("error: 500 when the store fails", func() {
		s.mockQueries.EXPECT().ListIDs(gomock.Any(), catalog.SortNewest).
			Return(nil, errors.New("db down")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/catalog/ids", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to load catalog")
	})
}

func (s *CatalogHandlerTestSuite) TestList() {
	s.Run("success: hides the product link", func() {
		entries := builder.Videos(2)
		s.mockQueries.EXPECT().ListDetails(gomock.Any(), catalog.SortViews, "clip").
			Return(entries, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/catalog?sort=views&q=clip", nil, "")

		var res resdto.VideoListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal("views", res.Sort)
		s.Require().Len(res.Items, 2)
		s.Equal(entries[0].ID, res.Items[0].ID)
		s.Equal("12.50", res.Items[0].Price)
		s.Equal(260, res.Items[0].DurationSeconds)
		s.Equal(entries[0].CreatedAt.Unix(), res.Items[0].CreatedAt)
		s.NotContains(rec.Body.String(), "product_link")
		s.NotContains(rec.Body.String(), "files.example.com")
	})

	s.Run("error: 400 when the filter is too long", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/catalog?q="+strings.Repeat("x", 201), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query")
	})
}

func (s *CatalogHandlerTestSuite) TestGet() {
	entry := builder.NewVideoBuilder().BuildDomain()
	url := "/api/catalog/" + entry.ID

	s.Run("success: counts a view", func() {
		s.mockQueries.EXPECT().GetOne(gomock.Any(), entry.ID).Return(entry, nil).Times(1)
		s.mockCommands.EXPECT().RecordView(gomock.Any(), entry.ID).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var res resdto.VideoResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal(entry.Title, res.Title)
	})

	s.Run("success: a failed view count does not fail the read", func() {
		s.mockQueries.EXPECT().GetOne(gomock.Any(), entry.ID).Return(entry, nil).Times(1)
		s.mockCommands.EXPECT().RecordView(gomock.Any(), entry.ID).Return(errors.New("db down")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 404 for unknown video", func() {
		s.mockQueries.EXPECT().GetOne(gomock.Any(), "missing").
			Return(catalog.Entry{}, errs.ErrEntryNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/catalog/missing", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Video not found")
	})
}

func (s *CatalogHandlerTestSuite) TestPreviews() {
	entry := builder.NewVideoBuilder().BuildDomain()

	s.Run("success: ordered sources", func() {
		s.mockQueries.EXPECT().GetOne(gomock.Any(), entry.ID).Return(entry, nil).Times(1)
		s.mockPreviews.EXPECT().ResolvePreviews(gomock.Any(), entry.ID).Return([]catalog.PreviewSource{
			{ID: "p1", URL: "https://cdn.test/p1.mp4", Position: 1},
			{ID: "p2", URL: "https://cdn.test/p2.mp4", Position: 2},
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/catalog/"+entry.ID+"/previews", nil, "")

		var res []resdto.PreviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal([]resdto.PreviewResponse{
			{ID: "p1", URL: "https://cdn.test/p1.mp4", Position: 1},
			{ID: "p2", URL: "https://cdn.test/p2.mp4", Position: 2},
		}, res)
	})

	s.Run("success: empty list", func() {
		s.mockQueries.EXPECT().GetOne(gomock.Any(), entry.ID).Return(entry, nil).Times(1)
		s.mockPreviews.EXPECT().ResolvePreviews(gomock.Any(), entry.ID).Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/catalog/"+entry.ID+"/previews", nil, "")
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[]`, rec.Body.String())
	})

	s.Run("error: 404 for unknown video", func() {
		s.mockQueries.EXPECT().GetOne(gomock.Any(), "missing").
			Return(catalog.Entry{}, errs.ErrEntryNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/catalog/missing/previews", nil, "")
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

func (s *CatalogHandlerTestSuite) TestStream() {
	entries := builder.Videos(3)
	ids := []string{entries[0].ID, entries[1].ID, entries[2].ID}

	s.Run("success: entries in order, failed ones skipped, then done", func() {
		s.mockQueries.EXPECT().ListIDs(gomock.Any(), catalog.SortNewest).Return(ids, nil).Times(1)
		s.mockQueries.EXPECT().GetOne(gomock.Any(), ids[0]).Return(entries[0], nil).Times(1)
		s.mockQueries.EXPECT().GetOne(gomock.Any(), ids[1]).Return(catalog.Entry{}, errors.New("timeout")).Times(1)
		s.mockQueries.EXPECT().GetOne(gomock.Any(), ids[2]).Return(entries[2], nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/catalog/stream?session=tab-1", nil, "")

		s.Equal(http.StatusOK, rec.Code)
		httptest.AssertEventStreamHeaders(s.T(), rec)
		events := httptest.ParseSSE(s.T(), rec.Body.String())
		s.Require().Len(events, 3)

		var first, second resdto.StreamEntryEvent
		s.Equal("entry", events[0].Event)
		s.Require().NoError(json.Unmarshal([]byte(events[0].Data), &first))
		s.Require().NoError(json.Unmarshal([]byte(events[1].Data), &second))
		s.Equal(0, first.Index)
		s.Equal(ids[0], first.Video.ID)
		s.Equal(2, second.Index)
		s.Equal(ids[2], second.Video.ID)

		var done resdto.StreamDoneEvent
		s.Equal("done", events[2].Event)
		s.Require().NoError(json.Unmarshal([]byte(events[2].Data), &done))
		s.Equal(resdto.StreamDoneEvent{Generation: first.Generation, Delivered: 2, Skipped: 1}, done)
	})

	s.Run("success: same session gets a new generation", func() {
		s.mockQueries.EXPECT().ListIDs(gomock.Any(), catalog.SortNewest).Return([]string{}, nil).Times(2)

		httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/catalog/stream?session=tab-2", nil, "")
		before := s.streams.For("tab-2").Generation()
		httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/catalog/stream?session=tab-2", nil, "")
		s.Equal(before+1, s.streams.For("tab-2").Generation())
	})

	s.Run("success: filtered stream takes ids from details", func() {
		s.mockQueries.EXPECT().ListDetails(gomock.Any(), catalog.SortNewest, "clip c").
			Return(entries[:1], nil).Times(1)
		s.mockQueries.EXPECT().GetOne(gomock.Any(), ids[0]).Return(entries[0], nil).Times(1)

		sessions := s.streams.Len()
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/catalog/stream?q=clip+c", nil, "")

		events := httptest.ParseSSE(s.T(), rec.Body.String())
		s.Require().Len(events, 2)
		s.Equal("entry", events[0].Event)
		s.Equal("done", events[1].Event)
		s.Equal(sessions, s.streams.Len(), "anonymous streams are not registered")
	})

	s.Run("error: 400 on unknown sort before the stream opens", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/catalog/stream?sort=bogus", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid sort")
	})
}
