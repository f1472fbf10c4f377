package rest

import (
	"errors"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/social360/social360"
	"github.com/social360/social360/internal/domain"
	"github.com/social360/social360/internal/present/rest/presenter"
	"github.com/social360/social360/internal/usecase"
)

type Handler struct {
	account    *usecase.AccountUsecase
	graph      *usecase.GraphUsecase
	content    *usecase.ContentUsecase
	engagement *usecase.EngagementUsecase
	moderation *usecase.ModerationUsecase
	timeline   *usecase.TimelineUsecase
	insight    *usecase.InsightUsecase
}

func NewHandler(
	account *usecase.AccountUsecase,
	graph *usecase.GraphUsecase,
	content *usecase.ContentUsecase,
	engagement *usecase.EngagementUsecase,
	moderation *usecase.ModerationUsecase,
	timeline *usecase.TimelineUsecase,
	insight *usecase.InsightUsecase,
) *Handler {
	return &Handler{
		account:    account,
		graph:      graph,
		content:    content,
		engagement: engagement,
		moderation: moderation,
		timeline:   timeline,
		insight:    insight,
	}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/.well-known/social360", h.handleWellKnown)

	e.POST("/api/v1/register", h.handleRegister)
	e.GET("/api/v1/users/:identity", h.handleGetUser)
	e.POST("/api/v1/users/:identity/suspend", h.handleSuspend)
	e.POST("/api/v1/users/:identity/unsuspend", h.handleUnsuspend)
	e.POST("/api/v1/users/:identity/verify", h.handleVerify)

	e.POST("/api/v1/follow", h.handleFollow)
	e.GET("/api/v1/users/:identity/followers", h.handleFollowers)
	e.GET("/api/v1/users/:identity/following", h.handleFollowing)

	e.POST("/api/v1/updates", h.handlePost)
	e.POST("/api/v1/updates/:id/repost", h.handleRepost)
	e.POST("/api/v1/updates/:id/quote", h.handleQuote)

	e.POST("/api/v1/updates/:id/like", h.handleLike)
	e.GET("/api/v1/updates/:id/liked", h.handleHasLiked)
	e.GET("/api/v1/updates/:id/reposted", h.handleHasReposted)

	e.POST("/api/v1/updates/:id/flag", h.handleFlag)
	e.POST("/api/v1/flags/:id/resolve", h.handleResolveFlag)
	e.POST("/api/v1/updates/:id/moderate", h.handleModerate)
	e.POST("/api/v1/updates/:id/unmoderate", h.handleUnmoderate)
	e.GET("/api/v1/users/:identity/warnings", h.handleWarnings)
	e.GET("/api/v1/moderation/flags", h.handleFlaggedContent)
	e.GET("/api/v1/moderation/updates", h.handleModeratedUpdates)

	e.GET("/api/v1/timeline", h.handleTimeline)
	e.GET("/api/v1/users/:identity/updates", h.handleUserUpdates)
	e.GET("/api/v1/search/updates", h.handleSearchUpdates)
	e.GET("/api/v1/search/users", h.handleSearchUsers)

	e.POST("/api/v1/insights", h.handleInsights)
}

func requesterID(c echo.Context) (string, bool) {
	identity, ok := c.Request().Context().Value(domain.RequesterIdCtxKey).(string)
	return identity, ok && identity != ""
}

func (h *Handler) handleWellKnown(c echo.Context) error {
	wellknown := social360.WellKnownSocial360{
		Version: "1.0",
		Endpoints: map[string]string{
			"social360.register":  "/api/v1/register",
			"social360.user":      "/api/v1/users/{identity}",
			"social360.follow":    "/api/v1/follow",
			"social360.updates":   "/api/v1/updates",
			"social360.timeline":  "/api/v1/timeline",
			"social360.search":    "/api/v1/search/updates",
			"social360.insights":  "/api/v1/insights",
			"social360.wellknown": "/.well-known/social360",
		},
	}
	return presenter.OK(c, wellknown)
}

func (h *Handler) handleRegister(c echo.Context) error {
	ctx := c.Request().Context()

	identity, ok := requesterID(c)
	if !ok {
		return presenter.Unauthorized(c, "requester identity required")
	}

	var req social360.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, err)
	}

	if err := h.account.Register(ctx, identity, req.Handle); err != nil {
		return presenter.InternalError(c, err)
	}
	return presenter.OK(c, echo.Map{"status": "ok"})
}

func (h *Handler) handleGetUser(c echo.Context) error {
	ctx := c.Request().Context()

	account, err := h.account.Get(ctx, c.Param("identity"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return presenter.NotFound(c, "user not found")
		}
		return presenter.InternalError(c, err)
	}
	return presenter.OK(c, account)
}

func (h *Handler) handleSuspend(c echo.Context) error {
	ctx := c.Request().Context()

	var req social360.SuspendRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, err)
	}

	ok, err := h.account.Suspend(ctx, c.Param("identity"), time.Duration(req.DurationSeconds)*time.Second)
	if err != nil {
		return presenter.InternalError(c, err)
	}
	return presenter.OK(c, social360.ResultResponse{OK: ok})
}

func (h *Handler) handleUnsuspend(c echo.Context) error {
	ctx := c.Request().Context()

	ok, err := h.account.Unsuspend(ctx, c.Param("identity"))
	if err != nil {
		return presenter.InternalError(c, err)
	}
	return presenter.OK(c, social360.ResultResponse{OK: ok})
}

func (h *Handler) handleVerify(c echo.Context) error {
	ctx := c.Request().Context()

	ok, err := h.account.Verify(ctx, c.Param("identity"))
	if err != nil {
		return presenter.InternalError(c, err)
	}
	return presenter.OK(c, social360.ResultResponse{OK: ok})
}

func (h *Handler) handleFollow(c echo.Context) error {
	ctx := c.Request().Context()

	identity, ok := requesterID(c)
	if !ok {
		return presenter.Unauthorized(c, "requester identity required")
	}

	var req social360.FollowRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, err)
	}
	if req.Identity == "" {
		return presenter.BadRequestMessage(c, "identity is required")
	}

	if err := h.graph.Follow(ctx, identity, req.Identity); err != nil {
		return presenter.InternalError(c, err)
	}
	return presenter.OK(c, echo.Map{"status": "ok"})
}

func (h *Handler) handleFollowers(c echo.Context) error {
	ctx := c.Request().Context()

	followers, err := h.graph.Followers(ctx, c.Param("identity"))
	if err != nil {
		return presenter.InternalError(c, err)
	}
	return presenter.OK(c, followers)
}

func (h *Handler) handleFollowing(c echo.Context) error {
	ctx := c.Request().Context()

	following, err := h.graph.Following(ctx, c.Param("identity"))
	if err != nil {
		return presenter.InternalError(c, err)
	}
	return presenter.OK(c, following)
}

func (h *Handler) handlePost(c echo.Context) error {
	ctx := c.Request().Context()

	identity, ok := requesterID(c)
	if !ok {
		return presenter.Unauthorized(c, "requester identity required")
	}

	var req social360.PostRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, err)
	}

	id, err := h.content.Post(ctx, identity, req.Content)
	if err != nil {
		return presenter.InternalError(c, err)
	}
	return presenter.OK(c, social360.IDResponse{ID: id})
}

func (h *Handler) handleRepost(c echo.Context) error {
	ctx := c.Request().Context()

	identity, ok := requesterID(c)
	if !ok {
		return presenter.Unauthorized(c, "requester identity required")
	}

	originalID, err := parseID(c)
	if err != nil {
		return presenter.BadRequestMessage(c, "invalid update id")
	}

	id, err := h.content.Repost(ctx, originalID, identity)
	if err != nil {
		return presenter.InternalError(c, err)
	}
	return presenter.OK(c, social360.IDResponse{ID: id})
}

func (h *Handler) handleQuote(c echo.Context) error {
	ctx := c.Request().Context()

	identity, ok := requesterID(c)
	if !ok {
		return presenter.Unauthorized(c, "requester identity required")
	}

	originalID, err := parseID(c)
	if err != nil {
		return presenter.BadRequestMessage(c, "invalid update id")
	}

	var req social360.QuoteRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, err)
	}

	id, err := h.content.Quote(ctx, originalID, identity, req.Content)
	if err != nil {
		return presenter.InternalError(c, err)
	}
	return presenter.OK(c, social360.IDResponse{ID: id})
}

func (h *Handler) handleLike(c echo.Context) error {
	ctx := c.Request().Context()

	identity, ok := requesterID(c)
	if !ok {
		return presenter.Unauthorized(c, "requester identity required")
	}

	updateID, err := parseID(c)
	if err != nil {
		return presenter.BadRequestMessage(c, "invalid update id")
	}

	liked, err := h.engagement.ToggleLike(ctx, updateID, identity)
	if err != nil {
		return presenter.InternalError(c, err)
	}
	return presenter.OK(c, social360.LikedResponse{Liked: liked})
}

func (h *Handler) handleHasLiked(c echo.Context) error {
	ctx := c.Request().Context()

	updateID, err := parseID(c)
	if err != nil {
		return presenter.BadRequestMessage(c, "invalid update id")
	}
	identity := c.QueryParam("identity")
	if identity == "" {
		return presenter.BadRequestMessage(c, "identity parameter is required")
	}

	member, err := h.engagement.HasLiked(ctx, updateID, identity)
	if err != nil {
		return presenter.InternalError(c, err)
	}
	return presenter.OK(c, social360.MembershipResponse{Member: member})
}

func (h *Handler) handleHasReposted(c echo.Context) error {
	ctx := c.Request().Context()

	updateID, err := parseID(c)
	if err != nil {
		return presenter.BadRequestMessage(c, "invalid update id")
	}
	identity := c.QueryParam("identity")
	if identity == "" {
		return presenter.BadRequestMessage(c, "identity parameter is required")
	}

	member, err := h.engagement.HasReposted(ctx, updateID, identity)
	if err != nil {
		return presenter.InternalError(c, err)
	}
	return presenter.OK(c, social360.MembershipResponse{Member: member})
}

func (h *Handler) handleFlag(c echo.Context) error {
	ctx := c.Request().Context()

	identity, ok := requesterID(c)
	if !ok {
		return presenter.Unauthorized(c, "requester identity required")
	}

	updateID, err := parseID(c)
	if err != nil {
		return presenter.BadRequestMessage(c, "invalid update id")
	}

	var req social360.FlagRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, err)
	}
	severity, ok := domain.ParseSeverity(req.Severity)
	if !ok {
		return presenter.BadRequestMessage(c, "invalid severity")
	}

	flagged, err := h.moderation.Flag(ctx, updateID, identity, req.Reason, severity)
	if err != nil {
		return presenter.InternalError(c, err)
	}
	return presenter.OK(c, social360.ResultResponse{OK: flagged})
}

func (h *Handler) handleResolveFlag(c echo.Context) error {
	ctx := c.Request().Context()

	flagID, err := parseID(c)
	if err != nil {
		return presenter.BadRequestMessage(c, "invalid flag id")
	}

	resolved, err := h.moderation.Resolve(ctx, flagID)
	if err != nil {
		return presenter.InternalError(c, err)
	}
	return presenter.OK(c, social360.ResultResponse{OK: resolved})
}

func (h *Handler) handleModerate(c echo.Context) error {
	ctx := c.Request().Context()

	updateID, err := parseID(c)
	if err != nil {
		return presenter.BadRequestMessage(c, "invalid update id")
	}

	var req social360.ModerateRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, err)
	}

	ok, err := h.content.Moderate(ctx, updateID, req.Reason)
	if err != nil {
		return presenter.InternalError(c, err)
	}
	return presenter.OK(c, social360.ResultResponse{OK: ok})
}

func (h *Handler) handleUnmoderate(c echo.Context) error {
	ctx := c.Request().Context()

	updateID, err := parseID(c)
	if err != nil {
		return presenter.BadRequestMessage(c, "invalid update id")
	}

	ok, err := h.content.Unmoderate(ctx, updateID)
	if err != nil {
		return presenter.InternalError(c, err)
	}
	return presenter.OK(c, social360.ResultResponse{OK: ok})
}

func (h *Handler) handleWarnings(c echo.Context) error {
	ctx := c.Request().Context()

	warnings, err := h.moderation.Warnings(ctx, c.Param("identity"))
	if err != nil {
		return presenter.InternalError(c, err)
	}
	return presenter.OK(c, warnings)
}

func (h *Handler) handleFlaggedContent(c echo.Context) error {
	ctx := c.Request().Context()

	flags, err := h.moderation.FlaggedContent(ctx)
	if err != nil {
		return presenter.InternalError(c, err)
	}
	return presenter.OK(c, flags)
}

func (h *Handler) handleModeratedUpdates(c echo.Context) error {
	ctx := c.Request().Context()

	updates, err := h.moderation.ModeratedUpdates(ctx)
	if err != nil {
		return presenter.InternalError(c, err)
	}
	return presenter.OK(c, updates)
}

func (h *Handler) handleTimeline(c echo.Context) error {
	ctx := c.Request().Context()

	identity, ok := requesterID(c)
	if !ok {
		return presenter.Unauthorized(c, "requester identity required")
	}

	page, pageSize, err := parsePaging(c)
	if err != nil {
		return presenter.BadRequestMessage(c, "invalid paging parameters")
	}

	updates, err := h.timeline.Timeline(ctx, identity, page, pageSize)
	if err != nil {
		return presenter.InternalError(c, err)
	}
	return presenter.OK(c, updates)
}

func (h *Handler) handleUserUpdates(c echo.Context) error {
	ctx := c.Request().Context()

	page, pageSize, err := parsePaging(c)
	if err != nil {
		return presenter.BadRequestMessage(c, "invalid paging parameters")
	}

	updates, err := h.timeline.UserUpdates(ctx, c.Param("identity"), page, pageSize)
	if err != nil {
		return presenter.InternalError(c, err)
	}
	return presenter.OK(c, updates)
}

func (h *Handler) handleSearchUpdates(c echo.Context) error {
	ctx := c.Request().Context()

	keyword := c.QueryParam("q")
	if keyword == "" {
		return presenter.BadRequestMessage(c, "q parameter is required")
	}

	updates, err := h.timeline.SearchUpdates(ctx, keyword)
	if err != nil {
		return presenter.InternalError(c, err)
	}
	return presenter.OK(c, updates)
}

func (h *Handler) handleSearchUsers(c echo.Context) error {
	ctx := c.Request().Context()

	prefix := c.QueryParam("q")
	if prefix == "" {
		return presenter.BadRequestMessage(c, "q parameter is required")
	}

	accounts, err := h.timeline.SearchUsers(ctx, prefix)
	if err != nil {
		return presenter.InternalError(c, err)
	}
	return presenter.OK(c, accounts)
}

func (h *Handler) handleInsights(c echo.Context) error {
	ctx := c.Request().Context()

	var req social360.InsightRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, err)
	}

	return presenter.OK(c, h.insight.Analyze(ctx, req.Content))
}

func parseID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

const defaultPageSize = 20

func parsePaging(c echo.Context) (int, int, error) {
	page := 0
	if raw := c.QueryParam("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, err
		}
		page = parsed
	}

	pageSize := defaultPageSize
	if raw := c.QueryParam("pageSize"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, err
		}
		pageSize = parsed
	}
	return page, pageSize, nil
}
