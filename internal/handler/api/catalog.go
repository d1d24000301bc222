package api

import (
	"log/slog"
	"net/http"

	"clipvault/internal/domain/catalog"
	reqdto "clipvault/internal/handler/dto/request"
	resdto "clipvault/internal/handler/dto/response"
	"clipvault/internal/handler/httperr"
	"clipvault/internal/usecase/commands"
	"clipvault/internal/usecase/progressive"
	"clipvault/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// StreamLoaders hands out the progressive loader of a client session.
type StreamLoaders interface {
	For(session string) *progressive.Loader
	Detached() *progressive.Loader
}

type CatalogHandler struct {
	q        queries.CatalogQueries
	previews queries.PreviewQueries
	cmds     commands.CatalogCommands
	streams  StreamLoaders
	logger   *slog.Logger
}

func NewCatalogHandler(q queries.CatalogQueries, previews queries.PreviewQueries, cmds commands.CatalogCommands, streams StreamLoaders, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{q: q, previews: previews, cmds: cmds, streams: streams, logger: logger}
}

// @Summary List catalog ids
// @Description Ordered ids only, for progressive loading
// @Tags catalog
// @Produce json
// @Param sort query string false "newest|price_asc|price_desc|views|duration"
// @Success 200 {object} resdto.VideoIDsResponse
// @Failure 400 {object} httperr.Response
// @Router /api/catalog/ids [get]
func (h *CatalogHandler) ListIDs(c *gin.Context) {
	var q reqdto.CatalogQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	sort, err := q.SortKey()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid sort", gin.H{"allowed": catalog.SortKeys})
		return
	}

	ids, err := h.q.ListIDs(c.Request.Context(), sort)
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Failed to load catalog")
		return
	}
	c.JSON(http.StatusOK, resdto.VideoIDsResponse{Sort: sort.String(), IDs: ids})
}

// @Summary List catalog
// @Description Full entries, sorted then filtered by title
// @Tags catalog
// @Produce json
// @Param sort query string false "newest|price_asc|price_desc|views|duration"
// @Param q query string false "case-insensitive title filter"
// @Success 200 {object} resdto.VideoListResponse
// @Failure 400 {object} httperr.Response
// @Router /api/catalog [get]
func (h *CatalogHandler) List(c *gin.Context) {
	var q reqdto.CatalogQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	sort, err := q.SortKey()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid sort", gin.H{"allowed": catalog.SortKeys})
		return
	}

	entries, err := h.q.ListDetails(c.Request.Context(), sort, q.Q)
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Failed to load catalog")
		return
	}
	items, err := resdto.FromEntries(entries)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to render catalog", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.VideoListResponse{Sort: sort.String(), Items: items})
}

// @Summary Get video
// @Description One entry; counts a view
// @Tags catalog
// @Produce json
// @Param id path string true "Video ID"
// @Success 200 {object} resdto.VideoResponse
// @Failure 404 {object} httperr.Response
// @Router /api/catalog/{id} [get]
func (h *CatalogHandler) Get(c *gin.Context) {
	id := c.Param("id")
	e, err := h.q.GetOne(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Failed to load video")
		return
	}

	if err := h.cmds.RecordView(c.Request.Context(), id); err != nil {
		h.logger.Warn("view count not recorded", "video_id", id, "error", err)
	}

	res, err := resdto.FromEntry(e)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to render video", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Video previews
// @Description Up to three preview sources ordered by position; empty means use the thumbnail
// @Tags catalog
// @Produce json
// @Param id path string true "Video ID"
// @Success 200 {array} resdto.PreviewResponse
// @Failure 404 {object} httperr.Response
// @Router /api/catalog/{id}/previews [get]
func (h *CatalogHandler) Previews(c *gin.Context) {
	id := c.Param("id")
	if _, err := h.q.GetOne(c.Request.Context(), id); err != nil {
		httperr.AbortWithDomainError(c, err, "Failed to load video")
		return
	}

	ps, err := h.previews.ResolvePreviews(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Failed to load previews")
		return
	}
	c.JSON(http.StatusOK, resdto.FromPreviews(ps))
}

// @Summary Stream catalog
// @Description Server-sent events: one "entry" per resolved video in order, then "done". A new stream for the same session supersedes the previous one.
// @Tags catalog
// @Produce text/event-stream
// @Param sort query string false "newest|price_asc|price_desc|views|duration"
// @Param q query string false "case-insensitive title filter"
// @Param session query string false "client session id"
// @Success 200 {object} resdto.StreamEntryEvent
// @Failure 400 {object} httperr.Response
// @Router /api/catalog/stream [get]
func (h *CatalogHandler) Stream(c *gin.Context) {
	var q reqdto.StreamQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	sort, err := q.SortKey()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid sort", gin.H{"allowed": catalog.SortKeys})
		return
	}

	ctx := c.Request.Context()
	ids, err := h.streamIDs(c, sort, q.Q)
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Failed to load catalog")
		return
	}

	session := q.Session
	var loader *progressive.Loader
	if session == "" {
		session = "anonymous"
		loader = h.streams.Detached()
	} else {
		loader = h.streams.For(session)
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)

	summary, err := loader.Stream(ctx, ids, func(it progressive.Item) error {
		v, err := resdto.FromEntry(it.Entry)
		if err != nil {
			return err
		}
		c.SSEvent("entry", resdto.StreamEntryEvent{Generation: it.Generation, Index: it.Index, Video: v})
		c.Writer.Flush()
		return nil
	})
	if err != nil {
		h.logger.Warn("catalog stream aborted", "session", session, "error", err)
		return
	}
	if ctx.Err() != nil {
		return
	}

	c.SSEvent("done", resdto.StreamDoneEvent{
		Generation: summary.Generation,
		Delivered:  summary.Delivered,
		Skipped:    summary.Skipped,
		Superseded: summary.Superseded,
	})
	c.Writer.Flush()
}

func (h *CatalogHandler) streamIDs(c *gin.Context, sort catalog.SortKey, filter string) ([]string, error) {
	if filter == "" {
		return h.q.ListIDs(c.Request.Context(), sort)
	}
	entries, err := h.q.ListDetails(c.Request.Context(), sort, filter)
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.ID
	}
	return ids, nil
}
