package http

import (
	"github.com/labstack/echo/v4"
	infra "github.com/pot-code/elearn-bff/internal/infrastructure"
)

func v1Endpoint(
	websocket *infra.Websocket,
	SessionHandler *SessionHandler,
	GateHandler *GateHandler,
	CourseHandler *CourseHandler,
	PlayerHandler *PlayerHandler,
	ProgressHandler *ProgressHandler,
	NotificationHandler *NotificationHandler,
	jwtMiddleware echo.MiddlewareFunc,
	requestIDMiddleware echo.MiddlewareFunc,
	traceLoggerMiddleware echo.MiddlewareFunc,
) *endpoint {
	return &endpoint{
		apiVersion:  "api/v1",
		middlewares: []echo.MiddlewareFunc{requestIDMiddleware, traceLoggerMiddleware},
		groups: []*apiGroup{
			{
				// identity and gating stay reachable for anonymous viewers:
				// the gate itself decides what an anonymous navigation gets
				prefix: "/session",
				routes: []*route{
					{"GET", "/identity", SessionHandler.HandleGetIdentity, nil},
					{"POST", "/sign-out", SessionHandler.HandleSignOut, []echo.MiddlewareFunc{jwtMiddleware}},
				},
			},
			{
				prefix: "/gate",
				routes: []*route{
					{"POST", "/decision", GateHandler.HandleDecide, nil},
				},
			},
			{
				prefix:      "/courses",
				middlewares: []echo.MiddlewareFunc{jwtMiddleware},
				routes: []*route{
					{"GET", "/:id/enrollment", CourseHandler.HandleGetEnrollment, nil},
					{"GET", "/:id/assignments", CourseHandler.HandleListAssignments, nil},
					{"GET", "/:id/quizzes", CourseHandler.HandleListQuizzes, nil},
					{"GET", "/:id/player/entry", PlayerHandler.HandleEnterPlayback, nil},
					{"POST", "/:id/progress", ProgressHandler.HandleTopicComplete, nil},
				},
			},
			{
				prefix:      "/notifications",
				middlewares: []echo.MiddlewareFunc{jwtMiddleware},
				routes: []*route{
					{"GET", "/badge", NotificationHandler.HandleGetBadge, nil},
				},
			},
			{
				prefix:      "/ws",
				middlewares: []echo.MiddlewareFunc{jwtMiddleware},
				routes: []*route{
					{"GET", "/notifications", websocket.WithHeartbeat(NotificationHandler.HandleBadgeStream), nil},
				},
			},
		},
	}
}
