package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"idea-copilot-api/internal/dto"
	"idea-copilot-api/internal/response"
	"idea-copilot-api/internal/service"
)

type StatsHandler struct {
	statsService       service.StatsService
	achievementService service.AchievementService
}

func NewStatsHandler(statsService service.StatsService, achievementService service.AchievementService) *StatsHandler {
	return &StatsHandler{
		statsService:       statsService,
		achievementService: achievementService,
	}
}

// GetStats godoc
// @Summary      내 통계 조회
// @Description  XP, 레벨, 스트릭 등 게임화 통계를 조회합니다. 없으면 기본값으로 생성됩니다
// @Tags         stats
// @Produce      json
// @Success      200 {object} response.SuccessResponse{data=dto.StatsResponse} "통계 조회 성공"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Security     BearerAuth
// @Router       /stats [get]
func (h *StatsHandler) GetStats(c *gin.Context) {
	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}

	stats, err := h.statsService.GetStats(c.Request.Context(), auth.UserID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, "Stats retrieved successfully", stats)
}

// UpdateStats godoc
// @Summary      통계 수정
// @Description  통계 필드를 직접 수정합니다. 스트릭과 레벨은 규칙에 따라 재계산됩니다
// @Tags         stats
// @Accept       json
// @Produce      json
// @Param        request body dto.UpdateStatsRequest true "통계 수정 요청"
// @Success      200 {object} response.SuccessResponse{data=dto.StatsResponse} "통계 수정 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Security     BearerAuth
// @Router       /stats [put]
func (h *StatsHandler) UpdateStats(c *gin.Context) {
	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}

	var req dto.UpdateStatsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	stats, err := h.statsService.UpdateStats(c.Request.Context(), auth.UserID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, "Stats updated successfully", stats)
}

// IncrementStat godoc
// @Summary      통계 카운터 증가
// @Description  지정한 통계 필드를 증가시키고 업적 해금을 확인합니다
// @Tags         stats
// @Accept       json
// @Produce      json
// @Param        request body dto.IncrementStatRequest true "카운터 증가 요청"
// @Success      200 {object} response.SuccessResponse{data=dto.StatsResponse} "카운터 증가 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Security     BearerAuth
// @Router       /stats/increment [post]
func (h *StatsHandler) IncrementStat(c *gin.Context) {
	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}

	var req dto.IncrementStatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	stats, err := h.statsService.IncrementStat(c.Request.Context(), auth.UserID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, "Stat incremented successfully", stats)
}

// AwardXP godoc
// @Summary      XP 지급
// @Description  XP를 지급하고 레벨을 재계산합니다
// @Tags         stats
// @Accept       json
// @Produce      json
// @Param        request body dto.AwardXPRequest true "XP 지급 요청"
// @Success      200 {object} response.SuccessResponse{data=dto.StatsResponse} "XP 지급 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Security     BearerAuth
// @Router       /stats/award-xp [post]
func (h *StatsHandler) AwardXP(c *gin.Context) {
	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}

	var req dto.AwardXPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	stats, err := h.statsService.AwardXP(c.Request.Context(), auth.UserID, req.XPAmount)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, "XP awarded successfully", stats)
}

// ListAchievements godoc
// @Summary      내 업적 조회
// @Description  해금한 업적을 최신순으로 조회합니다
// @Tags         achievements
// @Produce      json
// @Success      200 {object} response.SuccessResponse{data=[]dto.AchievementResponse} "업적 조회 성공"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Security     BearerAuth
// @Router       /achievements [get]
func (h *StatsHandler) ListAchievements(c *gin.Context) {
	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}

	achievements, err := h.achievementService.ListAchievements(c.Request.Context(), auth.UserID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, "Achievements retrieved successfully", achievements)
}

// ListAchievementDefinitions godoc
// @Summary      업적 정의 조회
// @Description  전체 업적 카탈로그와 해금 조건을 조회합니다
// @Tags         achievements
// @Produce      json
// @Success      200 {object} response.SuccessResponse{data=[]dto.AchievementDefinition} "업적 정의 조회 성공"
// @Security     BearerAuth
// @Router       /achievements/definitions [get]
func (h *StatsHandler) ListAchievementDefinitions(c *gin.Context) {
	definitions := h.achievementService.ListDefinitions()
	response.SendSuccess(c, http.StatusOK, "Achievement definitions retrieved successfully", definitions)
}
