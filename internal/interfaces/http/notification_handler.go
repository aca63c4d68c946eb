package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/pot-code/elearn-bff/internal/domain"
	"github.com/pot-code/elearn-bff/internal/identity"
	"github.com/pot-code/elearn-bff/internal/infrastructure/auth"
	"github.com/pot-code/elearn-bff/internal/infrastructure/driver"
	"github.com/pot-code/elearn-bff/internal/notification"
	"go.uber.org/zap"
)

// streamWriteInterval cadence of badge pushes on the websocket stream
const streamWriteInterval = 5 * time.Second

// NotificationHandler unread badge operations
type NotificationHandler struct {
	gateway          domain.AuthorityGateway
	kvStore          driver.KeyValueDB
	identityResolver *identity.Resolver
	jwtUtil          *auth.JWTUtil
	pollInterval     time.Duration
	logger           *zap.Logger
}

// NewNotificationHandler create a notification controller instance
func NewNotificationHandler(
	Gateway domain.AuthorityGateway,
	KVStore driver.KeyValueDB,
	IdentityResolver *identity.Resolver,
	JWTUtil *auth.JWTUtil,
	PollInterval time.Duration,
	Logger *zap.Logger,
) *NotificationHandler {
	return &NotificationHandler{Gateway, KVStore, IdentityResolver, JWTUtil, PollInterval, Logger}
}

// HandleGetBadge one-shot badge read: serve the cached value from a live
// poller when present, otherwise fetch once
func (nh *NotificationHandler) HandleGetBadge(c echo.Context) error {
	viewer := resolveViewer(nh.jwtUtil, nh.identityResolver, c)

	if cached, err := nh.kvStore.Get(notification.BadgeCacheKey(viewer.UID)); err == nil {
		if count, err := strconv.Atoi(cached); err == nil {
			return c.JSON(http.StatusOK, domain.NotificationBadge{UnreadCount: count})
		}
	}

	count, err := nh.gateway.FetchUnreadCount(c.Request().Context(), viewer.UID)
	if err != nil {
		return c.JSON(http.StatusBadGateway,
			NewRESTStandardError(http.StatusBadGateway, "Failed to load unread count"))
	}
	return c.JSON(http.StatusOK, domain.NotificationBadge{UnreadCount: count})
}

// HandleBadgeStream websocket badge stream. Each connection owns one
// poller; closing the connection stops it, so no fetch outlives the
// viewer's session.
func (nh *NotificationHandler) HandleBadgeStream(c echo.Context, conn *websocket.Conn) error {
	// probe first so a re-entry on a dead connection bails out before a
	// fresh poller gets to issue any fetch
	if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(time.Second)); err != nil {
		return err
	}

	viewer := resolveViewer(nh.jwtUtil, nh.identityResolver, c)
	poller := notification.NewPoller(nh.gateway, nh.kvStore, viewer.UID, nh.pollInterval, nh.logger)
	poller.Start()
	defer poller.Stop()

	ticker := time.NewTicker(streamWriteInterval)
	defer ticker.Stop()

	for {
		// unconditional writes double as liveness probes for the stream
		if err := conn.WriteJSON(poller.Badge()); err != nil {
			return err
		}
		<-ticker.C
	}
}
