package progress

import (
	"context"
	"sort"

	"github.com/pot-code/elearn-bff/internal/domain"
	"github.com/pot-code/elearn-bff/internal/enrollment"
	"go.elastic.co/apm"
	"go.uber.org/zap"
)

// PlaybackAction what the playback view should do on entry
type PlaybackAction string

const (
	// PlaybackRender render the requested module/topic
	PlaybackRender PlaybackAction = "render"
	// PlaybackRedirectOverview content-level gate: the viewer is not
	// enrolled, send them to the course overview instead of the tree
	PlaybackRedirectOverview PlaybackAction = "redirect_overview"
	// PlaybackNavigate bare course root, navigate to the first topic
	PlaybackNavigate PlaybackAction = "navigate"
)

// PlaybackDecision settled entry decision for a course-playback view
type PlaybackDecision struct {
	Action   PlaybackAction     `json:"action"`
	ModuleID string             `json:"module_id,omitempty"`
	TopicID  string             `json:"topic_id,omitempty"`
	Course   *domain.Course     `json:"course,omitempty"`
	Record   *domain.Enrollment `json:"record,omitempty"`
}

// Tracker drives topic completion and playback entry for an active
// course-playback session
type Tracker struct {
	gateway     domain.AuthorityGateway
	enrollments *enrollment.Resolver
	logger      *zap.Logger
}

// NewTracker ...
func NewTracker(gateway domain.AuthorityGateway, enrollments *enrollment.Resolver, logger *zap.Logger) *Tracker {
	return &Tracker{
		gateway:     gateway,
		enrollments: enrollments,
		logger:      logger,
	}
}

// EnterPlayback load the course tree and enrollment for a playback view and
// decide what to do with the requested target. moduleID and topicID are
// empty when the navigation target is the bare course root.
//
// Auto-navigation happens only from the bare root and only to the lowest
// declared order module/topic; a topic the viewer explicitly opened is never
// advanced past.
func (t *Tracker) EnterPlayback(ctx context.Context, viewer domain.Identity, courseID, moduleID, topicID string) (*PlaybackDecision, error) {
	apmSpan, ctx := apm.StartSpan(ctx, "ProgressTracker.EnterPlayback", "service")
	defer apmSpan.End()

	result, err := t.enrollments.Resolve(ctx, viewer, courseID)
	if err != nil {
		return nil, err
	}
	if !result.CanMutate() {
		return &PlaybackDecision{Action: PlaybackRedirectOverview}, nil
	}

	course, err := t.gateway.FetchCourse(ctx, viewer.UID, courseID)
	if err != nil {
		t.logger.Error("Course tree fetch failed",
			zap.String("course.id", courseID),
			zap.Error(err),
		)
		return nil, domain.ErrCourseUnavailable
	}

	if moduleID == "" && topicID == "" {
		if module, topic, ok := firstTopic(course); ok {
			return &PlaybackDecision{
				Action:   PlaybackNavigate,
				ModuleID: module.ID,
				TopicID:  topic.ID,
				Course:   course,
				Record:   result.Record,
			}, nil
		}
	}
	return &PlaybackDecision{
		Action:   PlaybackRender,
		ModuleID: moduleID,
		TopicID:  topicID,
		Course:   course,
		Record:   result.Record,
	}, nil
}

// OnTopicComplete record a topic completion with the authority and re-fetch
// the enrollment aggregate. Both steps are non-fatal: a transient failure to
// record one completion must not interrupt playback, so failures are logged
// and nil is returned, leaving the previously displayed progress unchanged.
// No optimistic mutation happens before the round-trip settles.
func (t *Tracker) OnTopicComplete(ctx context.Context, viewer domain.Identity, courseID, moduleID, topicID string) *domain.Enrollment {
	apmSpan, ctx := apm.StartSpan(ctx, "ProgressTracker.OnTopicComplete", "service")
	defer apmSpan.End()

	update := &domain.ProgressUpdate{
		CourseID:  courseID,
		ModuleID:  moduleID,
		TopicID:   topicID,
		Completed: true,
	}
	if err := t.gateway.PushProgress(ctx, viewer.UID, update); err != nil {
		t.logger.Warn("Progress write failed, keeping displayed state",
			zap.String("course.id", courseID),
			zap.String("topic.id", topicID),
			zap.Error(err),
		)
		return nil
	}

	records, err := t.gateway.FetchEnrollments(ctx, viewer.UID)
	if err != nil {
		t.logger.Warn("Enrollment refresh failed after progress write",
			zap.String("course.id", courseID),
			zap.Error(err),
		)
		return nil
	}
	for _, record := range records {
		if record.CourseID == courseID {
			return record
		}
	}
	return nil
}

// firstTopic the lowest-order topic of the lowest-order module that has any
func firstTopic(course *domain.Course) (*domain.Module, *domain.Topic, bool) {
	modules := make([]domain.Module, len(course.Modules))
	copy(modules, course.Modules)
	sort.SliceStable(modules, func(i, j int) bool {
		return modules[i].Order < modules[j].Order
	})
	for i := range modules {
		module := &modules[i]
		if len(module.Topics) == 0 {
			continue
		}
		topics := make([]domain.Topic, len(module.Topics))
		copy(topics, module.Topics)
		sort.SliceStable(topics, func(i, j int) bool {
			return topics[i].Order < topics[j].Order
		})
		return module, &topics[0], true
	}
	return nil, nil, false
}
