package driver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/pot-code/elearn-bff/internal/domain"
	"github.com/pot-code/elearn-bff/internal/infrastructure/logging"
	"github.com/pot-code/elearn-bff/internal/infrastructure/uuid"
	"go.uber.org/zap"
)

// AuthorityConfig options for the remote authority gateway
type AuthorityConfig struct {
	BaseURL string        // API root of the content authority
	Timeout time.Duration // per-call transport timeout
}

// AuthorityClient domain.AuthorityGateway implementation over the
// authority's JSON API. Responses are normalized into canonical domain
// models right here, before anything compares identifiers.
type AuthorityClient struct {
	base   *url.URL
	client *http.Client
	idGen  uuid.UUIDGenerator
}

var _ domain.AuthorityGateway = &AuthorityClient{}

// NewAuthorityClient create an authority gateway from given config. Calls log
// through the trace-bound logger carried by the request context.
func NewAuthorityClient(cfg *AuthorityConfig, idGen uuid.UUIDGenerator) (*AuthorityClient, error) {
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("Failed to parse authority base URL: %w", err)
	}
	return &AuthorityClient{
		base:   base,
		client: &http.Client{Timeout: cfg.Timeout},
		idGen:  idGen,
	}, nil
}

// wireEnrollment accepts both identifier shapes the authority emits: a flat
// course_id or a nested course object, depending on the endpoint
type wireEnrollment struct {
	CourseID string `json:"course_id"`
	Course   *struct {
		ID    string `json:"id"`
		Title string `json:"title"`
	} `json:"course"`
	Progress struct {
		CompletedTopics []string `json:"completed_topics"`
		PercentComplete float64  `json:"percent_complete"`
	} `json:"progress"`
}

func (w *wireEnrollment) normalize() *domain.Enrollment {
	record := &domain.Enrollment{
		CourseID:        w.CourseID,
		CompletedTopics: w.Progress.CompletedTopics,
		PercentComplete: w.Progress.PercentComplete,
	}
	if w.Course != nil {
		if record.CourseID == "" {
			record.CourseID = w.Course.ID
		}
		record.CourseTitle = w.Course.Title
	}
	return record
}

// FetchEnrollments implement domain.AuthorityGateway
func (ac *AuthorityClient) FetchEnrollments(ctx context.Context, viewerID string) ([]*domain.Enrollment, error) {
	var wire []*wireEnrollment
	if err := ac.getJSON(ctx, "/enrollments", viewerID, &wire); err != nil {
		return nil, err
	}
	records := make([]*domain.Enrollment, 0, len(wire))
	for _, w := range wire {
		records = append(records, w.normalize())
	}
	return records, nil
}

// FetchCourse implement domain.AuthorityGateway
func (ac *AuthorityClient) FetchCourse(ctx context.Context, viewerID, courseID string) (*domain.Course, error) {
	course := new(domain.Course)
	if err := ac.getJSON(ctx, "/courses/"+url.PathEscape(courseID), viewerID, course); err != nil {
		return nil, err
	}
	if course.ID == "" {
		course.ID = courseID
	}
	return course, nil
}

// FetchAssignments implement domain.AuthorityGateway
func (ac *AuthorityClient) FetchAssignments(ctx context.Context, viewerID, courseID string) ([]*domain.Assignment, error) {
	var items []*domain.Assignment
	if err := ac.getJSON(ctx, "/courses/"+url.PathEscape(courseID)+"/assignments", viewerID, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// FetchQuizzes implement domain.AuthorityGateway
func (ac *AuthorityClient) FetchQuizzes(ctx context.Context, viewerID, courseID string) ([]*domain.Quiz, error) {
	var items []*domain.Quiz
	if err := ac.getJSON(ctx, "/courses/"+url.PathEscape(courseID)+"/quizzes", viewerID, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// PushProgress implement domain.AuthorityGateway
func (ac *AuthorityClient) PushProgress(ctx context.Context, viewerID string, update *domain.ProgressUpdate) error {
	body, err := json.Marshal(update)
	if err != nil {
		return err
	}
	req, err := ac.newRequest(ctx, http.MethodPost, "/progress/update", viewerID, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	res, err := ac.client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.StatusCode >= http.StatusBadRequest {
		logging.ExtractLoggerFromContext(ctx).Error("Authority rejected progress update",
			zap.Int("http.response.status_code", res.StatusCode),
		)
		return fmt.Errorf("Authority rejected progress update: %s", res.Status)
	}
	return nil
}

// FetchUnreadCount implement domain.AuthorityGateway
func (ac *AuthorityClient) FetchUnreadCount(ctx context.Context, viewerID string) (int, error) {
	payload := struct {
		Count int `json:"count"`
	}{}
	if err := ac.getJSON(ctx, "/notifications/unread-count", viewerID, &payload); err != nil {
		return 0, err
	}
	return payload.Count, nil
}

func (ac *AuthorityClient) newRequest(ctx context.Context, method, path, viewerID string, body *bytes.Reader) (*http.Request, error) {
	target := *ac.base
	target.Path = ac.base.Path + path
	query := target.Query()
	query.Set("viewer", viewerID)
	target.RawQuery = query.Encode()

	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequestWithContext(ctx, method, target.String(), body)
	} else {
		req, err = http.NewRequestWithContext(ctx, method, target.String(), nil)
	}
	if err != nil {
		return nil, err
	}
	if rid, err := ac.idGen.Generate(); err == nil {
		req.Header.Set("X-Request-ID", rid)
	}
	return req, nil
}

func (ac *AuthorityClient) getJSON(ctx context.Context, path, viewerID string, out interface{}) error {
	logger := logging.ExtractLoggerFromContext(ctx)
	startTime := time.Now()

	req, err := ac.newRequest(ctx, http.MethodGet, path, viewerID, nil)
	if err != nil {
		return err
	}
	res, err := ac.client.Do(req)
	if err != nil {
		logger.Error(err.Error(), zap.String("url.path", path))
		return err
	}
	defer res.Body.Close()
	if res.StatusCode >= http.StatusBadRequest {
		logger.Error("Authority call failed",
			zap.String("url.path", path),
			zap.Int("http.response.status_code", res.StatusCode),
		)
		return fmt.Errorf("Authority returned %s for %s", res.Status, path)
	}
	logger.Debug("", zap.Duration("authority.time", time.Since(startTime)),
		zap.String("url.path", path),
	)
	return json.NewDecoder(res.Body).Decode(out)
}
