package handler

import (
	stdErrors "errors"
	"io"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/interview-practice/errors"
	sessionDTO "github.com/johnquangdev/interview-practice/internal/adapter/dto/session"
	"github.com/johnquangdev/interview-practice/internal/adapter/presenter"
	"github.com/johnquangdev/interview-practice/internal/domain/entities"
	httpmw "github.com/johnquangdev/interview-practice/internal/infrastructure/http/middleware"
	usecaseErrors "github.com/johnquangdev/interview-practice/internal/usecase/errors"
	sessionUsecase "github.com/johnquangdev/interview-practice/internal/usecase/session"
	"github.com/johnquangdev/interview-practice/internal/usecase/voice"
)

// maxAudioBytes bounds a single voice upload
const maxAudioBytes = 25 << 20

// Session handles practice session HTTP requests
type Session struct {
	sessionService sessionUsecase.Service
	voiceService   *voice.Service
	logger         *zap.Logger
}

// NewSessionHandler creates a new session handler. voiceService may be nil,
// in which case voice answers are rejected.
func NewSessionHandler(sessionService sessionUsecase.Service, voiceService *voice.Service, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		sessionService: sessionService,
		voiceService:   voiceService,
		logger:         logger,
	}
}

// StartSession handles POST /sessions
// @Summary      Start a practice session
// @Description  Selects questions for the settings and starts a new session
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Param        X-User-ID  header    string                              false  "Owner of the session"
// @Param        request    body      session.StartSessionRequest         true   "Interview settings"
// @Success      201        {object}  common.SuccessResponse{data=session.SessionResponse}
// @Failure      400        {object}  common.ErrorResponse  "Invalid settings"
// @Failure      422        {object}  common.ErrorResponse  "No questions available"
// @Router       /sessions [post]
func (h *Session) StartSession(c echo.Context) error {
	var req sessionDTO.StartSessionRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, validationError(err))
	}

	settings := entities.InterviewSettings{
		Category:        entities.QuestionCategory(req.Category),
		Difficulty:      entities.Difficulty(req.Difficulty),
		QuestionCount:   req.QuestionCount,
		IncludeFollowUp: req.IncludeFollowUp,
		Industry:        req.Industry,
		Role:            req.Role,
	}

	s, err := h.sessionService.Start(c.Request().Context(), httpmw.UserIDFrom(c), settings)
	if err != nil {
		if stdErrors.Is(err, usecaseErrors.ErrEmptySession) {
			return HandleError(h.logger, c, errors.ErrEmptySession(req.Category, req.Difficulty))
		}
		return HandleError(h.logger, c, toAppError("", err))
	}

	return HandleCreated(h.logger, c, presenter.ToSessionResponse(s))
}

// GetSession handles GET /sessions/:id
// @Summary      Get a session
// @Tags         Sessions
// @Produce      json
// @Param        id   path      string  true  "Session ID"
// @Success      200  {object}  common.SuccessResponse{data=session.SessionResponse}
// @Failure      404  {object}  common.ErrorResponse  "Session not found"
// @Router       /sessions/{id} [get]
func (h *Session) GetSession(c echo.Context) error {
	id := c.Param("id")
	s, err := h.sessionService.Get(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, toAppError(id, err))
	}
	return HandleSuccess(h.logger, c, presenter.ToSessionResponse(s))
}

// GetCurrentQuestion handles GET /sessions/:id/question
// @Summary      Get the current question
// @Tags         Sessions
// @Produce      json
// @Param        id   path      string  true  "Session ID"
// @Success      200  {object}  common.SuccessResponse{data=session.QuestionResponse}
// @Failure      404  {object}  common.ErrorResponse  "Session not found"
// @Failure      409  {object}  common.ErrorResponse  "Session is paused or completed"
// @Router       /sessions/{id}/question [get]
func (h *Session) GetCurrentQuestion(c echo.Context) error {
	id := c.Param("id")
	q, err := h.sessionService.CurrentQuestion(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, toAppError(id, err))
	}
	return HandleSuccess(h.logger, c, presenter.ToQuestionResponse(*q))
}

// SubmitResponse handles POST /sessions/:id/responses
// @Summary      Answer the current question
// @Description  Records the answer, scores it and advances. An empty answer skips the question.
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Param        id       path      string                          true  "Session ID"
// @Param        request  body      session.SubmitResponseRequest   true  "Answer"
// @Success      200      {object}  common.SuccessResponse{data=session.SubmitResponseResponse}
// @Failure      400      {object}  common.ErrorResponse  "Invalid request"
// @Failure      404      {object}  common.ErrorResponse  "Session not found"
// @Failure      409      {object}  common.ErrorResponse  "Session is paused or completed"
// @Router       /sessions/{id}/responses [post]
func (h *Session) SubmitResponse(c echo.Context) error {
	id := c.Param("id")

	var req sessionDTO.SubmitResponseRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, validationError(err))
	}

	out, err := h.sessionService.Submit(c.Request().Context(), sessionUsecase.SubmitInput{
		SessionID:  id,
		QuestionID: req.QuestionID,
		Answer:     req.Answer,
		Confidence: req.Confidence,
	})
	if err != nil {
		return HandleError(h.logger, c, toAppError(id, err))
	}

	return HandleSuccess(h.logger, c, presenter.ToSubmitResponse(out, ""))
}

// SubmitVoiceResponse handles POST /sessions/:id/voice
// @Summary      Answer the current question by voice
// @Description  Transcribes the uploaded recording and submits the transcript as the answer
// @Tags         Sessions
// @Accept       multipart/form-data
// @Produce      json
// @Param        id          path      string  true   "Session ID"
// @Param        audio       formData  file    true   "Recorded answer"
// @Param        confidence  formData  int     false  "Self rated confidence (1-10)"
// @Success      200         {object}  common.SuccessResponse{data=session.SubmitResponseResponse}
// @Failure      400         {object}  common.ErrorResponse  "Missing or empty audio"
// @Failure      409         {object}  common.ErrorResponse  "Session is paused or completed"
// @Router       /sessions/{id}/voice [post]
func (h *Session) SubmitVoiceResponse(c echo.Context) error {
	id := c.Param("id")

	if h.voiceService == nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("voice answers are disabled"))
	}

	confidence := 0
	if raw := c.FormValue("confidence"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < entities.MinConfidence || v > entities.MaxConfidence {
			return HandleError(h.logger, c, errors.ErrInvalidArgument("confidence must be between 1 and 10"))
		}
		confidence = v
	}

	fh, err := c.FormFile("audio")
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("audio file is required"))
	}
	f, err := fh.Open()
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxAudioBytes))
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}

	ctx := c.Request().Context()

	// The question is resolved first so a paused or finished session never reaches transcription
	q, err := h.sessionService.CurrentQuestion(ctx, id)
	if err != nil {
		return HandleError(h.logger, c, toAppError(id, err))
	}

	transcript, err := h.voiceService.Transcribe(ctx, voice.Recording{
		SessionID:   id,
		QuestionID:  q.ID,
		Filename:    fh.Filename,
		ContentType: fh.Header.Get(echo.HeaderContentType),
		Data:        data,
	})
	if err != nil {
		if stdErrors.Is(err, usecaseErrors.ErrEmptyAudio) {
			return HandleError(h.logger, c, toAppError(id, err))
		}
		return HandleError(h.logger, c, errors.ErrTranscriptionFailed(err))
	}

	out, err := h.sessionService.Submit(ctx, sessionUsecase.SubmitInput{
		SessionID:  id,
		QuestionID: q.ID,
		Answer:     transcript,
		Confidence: confidence,
	})
	if err != nil {
		return HandleError(h.logger, c, toAppError(id, err))
	}

	return HandleSuccess(h.logger, c, presenter.ToSubmitResponse(out, transcript))
}

// SkipQuestion handles POST /sessions/:id/skip
// @Summary      Skip the current question
// @Tags         Sessions
// @Produce      json
// @Param        id   path      string  true  "Session ID"
// @Success      200  {object}  common.SuccessResponse{data=session.SessionResponse}
// @Failure      409  {object}  common.ErrorResponse  "Session is paused or completed"
// @Router       /sessions/{id}/skip [post]
func (h *Session) SkipQuestion(c echo.Context) error {
	id := c.Param("id")
	s, err := h.sessionService.Skip(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, toAppError(id, err))
	}
	return HandleSuccess(h.logger, c, presenter.ToSessionResponse(s))
}

// PauseSession handles POST /sessions/:id/pause
// @Summary      Pause a session
// @Tags         Sessions
// @Produce      json
// @Param        id   path      string  true  "Session ID"
// @Success      200  {object}  common.SuccessResponse{data=session.SessionResponse}
// @Failure      409  {object}  common.ErrorResponse  "Session is not in progress"
// @Router       /sessions/{id}/pause [post]
func (h *Session) PauseSession(c echo.Context) error {
	id := c.Param("id")
	s, err := h.sessionService.Pause(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, toAppError(id, err))
	}
	return HandleSuccess(h.logger, c, presenter.ToSessionResponse(s))
}

// ResumeSession handles POST /sessions/:id/resume
// @Summary      Resume a paused session
// @Tags         Sessions
// @Produce      json
// @Param        id   path      string  true  "Session ID"
// @Success      200  {object}  common.SuccessResponse{data=session.SessionResponse}
// @Failure      409  {object}  common.ErrorResponse  "Session is not paused"
// @Router       /sessions/{id}/resume [post]
func (h *Session) ResumeSession(c echo.Context) error {
	id := c.Param("id")
	s, err := h.sessionService.Resume(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, toAppError(id, err))
	}
	return HandleSuccess(h.logger, c, presenter.ToSessionResponse(s))
}

// GetSummary handles GET /sessions/:id/summary
// @Summary      Get the final report of a session
// @Tags         Sessions
// @Produce      json
// @Param        id   path      string  true  "Session ID"
// @Success      200  {object}  common.SuccessResponse{data=session.SummaryResponse}
// @Failure      409  {object}  common.ErrorResponse  "Session is not completed"
// @Router       /sessions/{id}/summary [get]
func (h *Session) GetSummary(c echo.Context) error {
	id := c.Param("id")
	summary, err := h.sessionService.Summary(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, toAppError(id, err))
	}
	return HandleSuccess(h.logger, c, presenter.ToSummaryResponse(summary))
}

// GetDashboard handles GET /users/:id/dashboard
// @Summary      Get a user's practice dashboard
// @Tags         Users
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  common.SuccessResponse{data=session.DashboardResponse}
// @Failure      403  {object}  common.ErrorResponse  "Caller is another user"
// @Router       /users/{id}/dashboard [get]
func (h *Session) GetDashboard(c echo.Context) error {
	userID := strings.TrimSpace(c.Param("id"))
	if userID == "" {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("user id is required"))
	}
	if caller := httpmw.UserIDFrom(c); caller != "" && caller != userID {
		return HandleError(h.logger, c, errors.ErrForbidden("Dashboard belongs to another user"))
	}

	d, err := h.sessionService.Dashboard(c.Request().Context(), userID)
	if err != nil {
		return HandleError(h.logger, c, toAppError("", err))
	}
	return HandleSuccess(h.logger, c, presenter.ToDashboardResponse(d))
}
