package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"idea-copilot-api/internal/dto"
	"idea-copilot-api/internal/response"
	"idea-copilot-api/internal/service"
)

type AIHandler struct {
	aiService service.AIService
}

func NewAIHandler(aiService service.AIService) *AIHandler {
	return &AIHandler{
		aiService: aiService,
	}
}

// GenerateSuggestions godoc
// @Summary      AI 제안 생성
// @Description  아이디어에 대한 AI 제안을 생성합니다 (features/improvements/marketing/validation)
// @Tags         ai
// @Accept       json
// @Produce      json
// @Param        request body dto.GenerateSuggestionsRequest true "제안 생성 요청"
// @Success      201 {object} response.SuccessResponse{data=dto.SuggestionResponse} "제안 생성 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청 또는 API 키 미설정"
// @Failure      403 {object} response.ErrorResponse "소유자가 아님"
// @Failure      404 {object} response.ErrorResponse "아이디어를 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "AI 생성 실패"
// @Security     BearerAuth
// @Router       /ai/suggestions [post]
func (h *AIHandler) GenerateSuggestions(c *gin.Context) {
	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}

	var req dto.GenerateSuggestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	suggestion, err := h.aiService.GenerateSuggestions(c.Request.Context(), auth.UserID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, "Suggestions generated successfully", suggestion)
}

// ListSuggestions godoc
// @Summary      제안 목록 조회
// @Description  아이디어에 저장된 AI 제안을 조회합니다 (소유자만)
// @Tags         ai
// @Produce      json
// @Param        id path string true "Idea ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.SuggestionListResponse} "제안 목록 조회 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 ID"
// @Failure      404 {object} response.ErrorResponse "아이디어를 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Security     BearerAuth
// @Router       /ideas/{id}/suggestions [get]
func (h *AIHandler) ListSuggestions(c *gin.Context) {
	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}

	ideaID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid idea ID")
		return
	}

	suggestions, err := h.aiService.ListSuggestions(c.Request.Context(), ideaID, auth.UserID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, "Suggestions retrieved successfully", suggestions)
}

// ApplySuggestion godoc
// @Summary      제안 적용
// @Description  제안을 적용 처리하고 XP를 지급합니다. 이미 적용된 제안은 다시 적용할 수 없습니다
// @Tags         ai
// @Produce      json
// @Param        id path string true "Suggestion ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.SuggestionResponse} "제안 적용 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 ID"
// @Failure      404 {object} response.ErrorResponse "제안을 찾을 수 없거나 이미 적용됨"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Security     BearerAuth
// @Router       /ai/suggestions/{id}/apply [post]
func (h *AIHandler) ApplySuggestion(c *gin.Context) {
	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}

	suggestionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid suggestion ID")
		return
	}

	suggestion, err := h.aiService.ApplySuggestion(c.Request.Context(), suggestionID, auth.UserID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, "Suggestion applied successfully", suggestion)
}

// ListQueryLogs godoc
// @Summary      AI 호출 기록 조회
// @Description  내 최근 AI 호출 기록을 조회합니다
// @Tags         ai
// @Produce      json
// @Param        limit query int false "조회 개수" default(50)
// @Success      200 {object} response.SuccessResponse{data=[]dto.QueryLogResponse} "호출 기록 조회 성공"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Security     BearerAuth
// @Router       /ai/query-logs [get]
func (h *AIHandler) ListQueryLogs(c *gin.Context) {
	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}

	limit := 50
	if v, err := strconv.Atoi(c.DefaultQuery("limit", "50")); err == nil && v > 0 && v <= 200 {
		limit = v
	}

	logs, err := h.aiService.ListQueryLogs(c.Request.Context(), auth.UserID, limit)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, "Query logs retrieved successfully", logs)
}
