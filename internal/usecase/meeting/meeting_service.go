package meeting

import (
	"context"
	stdErrors "errors"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/fireflies-bridge/errors"
	"github.com/johnquangdev/fireflies-bridge/internal/domain/entities"
	"github.com/johnquangdev/fireflies-bridge/internal/domain/repositories"
	"github.com/johnquangdev/fireflies-bridge/internal/infrastructure/cache"
	"github.com/johnquangdev/fireflies-bridge/pkg/fallback"
)

const cooldownKeyPrefix = "lazy-pull:"

// errLinkMismatch rejects a candidate transcript that belongs to another meeting
var errLinkMismatch = stdErrors.New("transcript belongs to a different meeting link")

// meetingResolver looks a meeting up by one interpretation of the identifier
type meetingResolver func(ctx context.Context, identifier string) (*entities.Meeting, error)

// MeetingService handles meeting business logic
type MeetingService struct {
	meetingRepo repositories.MeetingRepository
	provider    TranscriptProvider
	cooldowns   cache.Store
	cooldownTTL time.Duration
	logger      *zap.Logger
	now         func() time.Time
	resolvers   []meetingResolver
}

// NewMeetingService creates a new meeting service.
// Failed lazy pulls are remembered in cooldowns for cooldownTTL; a zero TTL disables the cooldown.
func NewMeetingService(
	meetingRepo repositories.MeetingRepository,
	provider TranscriptProvider,
	cooldowns cache.Store,
	cooldownTTL time.Duration,
	logger *zap.Logger,
) *MeetingService {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &MeetingService{
		meetingRepo: meetingRepo,
		provider:    provider,
		cooldowns:   cooldowns,
		cooldownTTL: cooldownTTL,
		logger:      logger,
		now:         func() time.Time { return time.Now().UTC() },
	}
	s.resolvers = []meetingResolver{s.byTranscriptID, s.byInternalID}
	return s
}

// CreateMeeting invites the transcription bot and records the meeting
func (s *MeetingService) CreateMeeting(ctx context.Context, input CreateMeetingInput) (*entities.Meeting, error) {
	if !entities.IsGoogleMeetURL(input.MeetingURL) {
		return nil, errors.ErrInvalidMeetingURL(input.MeetingURL)
	}

	if err := s.provider.AddBotToMeeting(ctx, input.MeetingURL, input.Title, input.Duration); err != nil {
		s.logger.Error("Failed to add Fireflies bot",
			zap.String("meeting_url", input.MeetingURL),
			zap.Error(err),
		)
		return nil, errors.ErrBotInviteFailed(err)
	}

	meeting := entities.NewMeeting(input.ProjectID, input.MeetingURL, input.Title)
	meeting.MeetingDatetime = s.now()
	if err := s.meetingRepo.Create(ctx, meeting); err != nil {
		return nil, errors.ErrDBQueryFailed("create meeting", err)
	}

	s.logger.Info("Meeting created",
		zap.Uint("id", meeting.ID),
		zap.String("project_id", meeting.ProjectID),
	)
	return meeting, nil
}

// HandleTranscriptionCompleted fetches a finished transcript and stores it on its meeting.
// A meeting already holding this transcript is returned unchanged without calling the provider.
// Otherwise the newest meeting for the transcript's link that has no transcript yet is populated.
func (s *MeetingService) HandleTranscriptionCompleted(ctx context.Context, transcriptID string) (*entities.Meeting, error) {
	existing, err := s.meetingRepo.FindByTranscriptID(ctx, transcriptID)
	if err != nil {
		return nil, errors.ErrDBQueryFailed("find meeting by transcript id", err)
	}
	if existing != nil && existing.HasTranscription() {
		s.logger.Info("Transcript already stored, skipping",
			zap.String("meeting_id", transcriptID),
			zap.Uint("id", existing.ID),
		)
		return existing, nil
	}

	transcript, err := s.provider.GetTranscript(ctx, transcriptID)
	if err != nil {
		s.logger.Warn("Failed to retrieve transcript",
			zap.String("meeting_id", transcriptID),
			zap.Error(err),
		)
		return nil, errors.ErrTranscriptNotFound(transcriptID, err)
	}

	target := existing
	if target == nil {
		target, err = s.meetingRepo.FindPendingByURL(ctx, transcript.MeetingLink)
		if err != nil {
			return nil, errors.ErrDBQueryFailed("find pending meeting by url", err)
		}
	}
	if target == nil {
		return nil, s.unmatchedTranscript(ctx, transcriptID, transcript.MeetingLink)
	}

	applyTranscript(target, transcriptID, transcript)
	if err := s.meetingRepo.Update(ctx, target); err != nil {
		return nil, errors.ErrDBQueryFailed("update meeting transcript", err)
	}
	s.clearCooldown(ctx, transcriptID)

	s.logger.Info("Transcript stored",
		zap.Uint("id", target.ID),
		zap.String("meeting_id", transcriptID),
	)
	return target, nil
}

// unmatchedTranscript tells a URL with only populated meetings apart from an unknown URL.
// Populated meetings are never overwritten by a different transcript.
func (s *MeetingService) unmatchedTranscript(ctx context.Context, transcriptID, meetingURL string) error {
	known, err := s.meetingRepo.FindByURL(ctx, meetingURL)
	if err != nil {
		return errors.ErrDBQueryFailed("find meeting by url", err)
	}
	if known != nil {
		s.logger.Warn("Every meeting for this URL already holds a transcript",
			zap.String("meeting_id", transcriptID),
			zap.String("meeting_url", meetingURL),
		)
		return errors.ErrNoPendingMeeting(meetingURL)
	}
	s.logger.Warn("No matching meeting found for transcript",
		zap.String("meeting_id", transcriptID),
		zap.String("meeting_url", meetingURL),
	)
	return errors.ErrMeetingNotFound(meetingURL)
}

// GetMeeting resolves identifier to a meeting, pulling a missing transcript if possible
func (s *MeetingService) GetMeeting(ctx context.Context, identifier string) (*entities.Meeting, error) {
	var meeting *entities.Meeting
	for _, resolve := range s.resolvers {
		m, err := resolve(ctx, identifier)
		if err != nil {
			return nil, errors.ErrDBQueryFailed("resolve meeting", err)
		}
		if m != nil {
			meeting = m
			break
		}
	}
	if meeting == nil {
		return nil, errors.ErrMeetingNotFound(identifier)
	}
	return s.enrich(ctx, meeting, identifier), nil
}

// ListProjectMeetings retrieves all meetings of a project, newest first
func (s *MeetingService) ListProjectMeetings(ctx context.Context, projectID string) ([]*entities.Meeting, error) {
	meetings, err := s.meetingRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, errors.ErrDBQueryFailed("list project meetings", err)
	}
	return meetings, nil
}

// UpdateMeeting overwrites selected fields of a meeting
func (s *MeetingService) UpdateMeeting(ctx context.Context, id uint, input UpdateMeetingInput) (*entities.Meeting, error) {
	meeting, err := s.meetingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.ErrDBQueryFailed("find meeting", err)
	}
	if meeting == nil {
		return nil, errors.ErrMeetingNotFound(strconv.FormatUint(uint64(id), 10))
	}

	if input.TranscriptID != nil {
		meeting.TranscriptID = input.TranscriptID
	}
	if input.Transcription != nil {
		meeting.Transcription = input.Transcription
	}
	if input.MeetingURL != nil {
		meeting.MeetingURL = *input.MeetingURL
	}

	if err := s.meetingRepo.Update(ctx, meeting); err != nil {
		return nil, errors.ErrDBQueryFailed("update meeting", err)
	}
	return meeting, nil
}

// InjectTranscript stores a transcript on the first meeting recorded for a URL
func (s *MeetingService) InjectTranscript(ctx context.Context, input InjectTranscriptInput) (*entities.Meeting, error) {
	meeting, err := s.meetingRepo.FindByURL(ctx, input.MeetingURL)
	if err != nil {
		return nil, errors.ErrDBQueryFailed("find meeting by url", err)
	}
	if meeting == nil {
		return nil, errors.ErrMeetingNotFound(input.MeetingURL)
	}

	meeting.ApplyTranscript(input.TranscriptID, input.Transcription)
	if err := s.meetingRepo.Update(ctx, meeting); err != nil {
		return nil, errors.ErrDBQueryFailed("inject transcript", err)
	}
	return meeting, nil
}

func (s *MeetingService) byTranscriptID(ctx context.Context, identifier string) (*entities.Meeting, error) {
	return s.meetingRepo.FindByTranscriptID(ctx, identifier)
}

func (s *MeetingService) byInternalID(ctx context.Context, identifier string) (*entities.Meeting, error) {
	if !isDigits(identifier) {
		return nil, nil
	}
	id, err := strconv.ParseUint(identifier, 10, 64)
	if err != nil || uint64(uint(id)) != id {
		return nil, nil
	}
	return s.meetingRepo.FindByID(ctx, uint(id))
}

// enrich lazily pulls the transcript of a meeting that does not have one yet.
// Failures are logged and the record is returned as stored.
func (s *MeetingService) enrich(ctx context.Context, meeting *entities.Meeting, identifier string) *entities.Meeting {
	if meeting.HasTranscription() {
		return meeting
	}

	var candidate string
	var matchLink bool
	switch {
	case meeting.HasTranscriptID():
		candidate = *meeting.TranscriptID
	case identifier != meeting.InternalID():
		candidate = identifier
		matchLink = true
	default:
		return meeting
	}

	if s.coolingDown(ctx, candidate) {
		s.logger.Debug("Skipping lazy pull during cooldown", zap.String("meeting_id", candidate))
		return meeting
	}

	enriched, _ := fallback.Do(
		func() (*entities.Meeting, error) {
			return s.lazyPull(ctx, meeting, candidate, matchLink)
		},
		func(err error) (*entities.Meeting, error) {
			s.logger.Warn("Lazy transcript pull failed, returning stored meeting",
				zap.Uint("id", meeting.ID),
				zap.String("meeting_id", candidate),
				zap.Error(err),
			)
			s.startCooldown(ctx, candidate)
			return meeting, nil
		},
	)
	return enriched
}

func (s *MeetingService) lazyPull(ctx context.Context, meeting *entities.Meeting, transcriptID string, matchLink bool) (*entities.Meeting, error) {
	transcript, err := s.provider.GetTranscript(ctx, transcriptID)
	if err != nil {
		return nil, err
	}
	if matchLink && transcript.MeetingLink != meeting.MeetingURL {
		return nil, fmt.Errorf("%w: %s", errLinkMismatch, transcript.MeetingLink)
	}

	updated := *meeting
	applyTranscript(&updated, transcriptID, transcript)
	if err := s.meetingRepo.Update(ctx, &updated); err != nil {
		return nil, err
	}

	s.logger.Info("Lazily pulled transcript",
		zap.Uint("id", updated.ID),
		zap.String("meeting_id", transcriptID),
	)
	return &updated, nil
}

func (s *MeetingService) coolingDown(ctx context.Context, transcriptID string) bool {
	if s.cooldowns == nil || s.cooldownTTL <= 0 {
		return false
	}
	_, found, err := s.cooldowns.Get(ctx, cooldownKeyPrefix+transcriptID)
	if err != nil {
		s.logger.Warn("Cooldown lookup failed", zap.String("meeting_id", transcriptID), zap.Error(err))
		return false
	}
	return found
}

func (s *MeetingService) startCooldown(ctx context.Context, transcriptID string) {
	if s.cooldowns == nil || s.cooldownTTL <= 0 {
		return
	}
	if err := s.cooldowns.Set(ctx, cooldownKeyPrefix+transcriptID, s.now().Format(time.RFC3339), s.cooldownTTL); err != nil {
		s.logger.Warn("Failed to record lazy pull cooldown", zap.String("meeting_id", transcriptID), zap.Error(err))
	}
}

func (s *MeetingService) clearCooldown(ctx context.Context, transcriptID string) {
	if s.cooldowns == nil {
		return
	}
	if err := s.cooldowns.Delete(ctx, cooldownKeyPrefix+transcriptID); err != nil {
		s.logger.Warn("Failed to clear lazy pull cooldown", zap.String("meeting_id", transcriptID), zap.Error(err))
	}
}

// applyTranscript stores the flattened transcript and keeps an existing title
func applyTranscript(meeting *entities.Meeting, transcriptID string, transcript *entities.TranscriptData) {
	meeting.ApplyTranscript(transcriptID, transcript.Text())
	if meeting.Title == nil && transcript.Title != "" {
		title := transcript.Title
		meeting.Title = &title
	}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
