package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"idea-copilot-api/internal/dto"
	"idea-copilot-api/internal/response"
	"idea-copilot-api/internal/service"
)

type FeatureHandler struct {
	featureService service.FeatureService
}

func NewFeatureHandler(featureService service.FeatureService) *FeatureHandler {
	return &FeatureHandler{
		featureService: featureService,
	}
}

// CreatePhase godoc
// @Summary      단계 생성
// @Description  아이디어에 개발 단계를 추가합니다 (편집 권한 필요)
// @Tags         phases
// @Accept       json
// @Produce      json
// @Param        id path string true "Idea ID (UUID)"
// @Param        request body dto.CreatePhaseRequest true "단계 생성 요청"
// @Success      201 {object} response.SuccessResponse{data=dto.PhaseResponse} "단계 생성 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      404 {object} response.ErrorResponse "아이디어를 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Security     BearerAuth
// @Router       /ideas/{id}/phases [post]
func (h *FeatureHandler) CreatePhase(c *gin.Context) {
	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}

	ideaID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid idea ID")
		return
	}

	var req dto.CreatePhaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	phase, err := h.featureService.CreatePhase(c.Request.Context(), ideaID, auth.UserID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, "Phase created successfully", phase)
}

// ListPhases godoc
// @Summary      단계 목록 조회
// @Description  아이디어의 단계를 순서대로 조회합니다
// @Tags         phases
// @Produce      json
// @Param        id path string true "Idea ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=[]dto.PhaseResponse} "단계 목록 조회 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 ID"
// @Failure      404 {object} response.ErrorResponse "아이디어를 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Security     BearerAuth
// @Router       /ideas/{id}/phases [get]
func (h *FeatureHandler) ListPhases(c *gin.Context) {
	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}

	ideaID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid idea ID")
		return
	}

	phases, err := h.featureService.ListPhases(c.Request.Context(), ideaID, auth.UserID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, "Phases retrieved successfully", phases)
}

// UpdatePhase godoc
// @Summary      단계 수정
// @Description  단계 이름/설명/순서/완료 상태를 수정합니다
// @Tags         phases
// @Accept       json
// @Produce      json
// @Param        id path string true "Phase ID (UUID)"
// @Param        request body dto.UpdatePhaseRequest true "단계 수정 요청"
// @Success      200 {object} response.SuccessResponse{data=dto.PhaseResponse} "단계 수정 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      404 {object} response.ErrorResponse "단계를 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Security     BearerAuth
// @Router       /phases/{id} [put]
func (h *FeatureHandler) UpdatePhase(c *gin.Context) {
	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}

	phaseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid phase ID")
		return
	}

	var req dto.UpdatePhaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	phase, err := h.featureService.UpdatePhase(c.Request.Context(), phaseID, auth.UserID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, "Phase updated successfully", phase)
}

// DeletePhase godoc
// @Summary      단계 삭제
// @Description  단계를 삭제합니다. 소속 기능은 단계 연결만 해제됩니다
// @Tags         phases
// @Produce      json
// @Param        id path string true "Phase ID (UUID)"
// @Success      200 {object} response.SuccessResponse "단계 삭제 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 ID"
// @Failure      404 {object} response.ErrorResponse "단계를 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Security     BearerAuth
// @Router       /phases/{id} [delete]
func (h *FeatureHandler) DeletePhase(c *gin.Context) {
	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}

	phaseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid phase ID")
		return
	}

	if err := h.featureService.DeletePhase(c.Request.Context(), phaseID, auth.UserID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, "Phase deleted successfully", nil)
}

// CreateFeature godoc
// @Summary      기능 생성
// @Description  아이디어에 기능을 추가합니다. phase_id 쿼리로 단계에 소속시킬 수 있습니다
// @Tags         features
// @Accept       json
// @Produce      json
// @Param        id path string true "Idea ID (UUID)"
// @Param        phase_id query string false "Phase ID (UUID)"
// @Param        request body dto.CreateFeatureRequest true "기능 생성 요청"
// @Success      201 {object} response.SuccessResponse{data=dto.FeatureResponse} "기능 생성 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      404 {object} response.ErrorResponse "아이디어를 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Security     BearerAuth
// @Router       /ideas/{id}/features [post]
func (h *FeatureHandler) CreateFeature(c *gin.Context) {
	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}

	ideaID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid idea ID")
		return
	}

	var phaseID *uuid.UUID
	if phaseIDStr := c.Query("phase_id"); phaseIDStr != "" {
		parsed, err := uuid.Parse(phaseIDStr)
		if err != nil {
			response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid phase ID")
			return
		}
		phaseID = &parsed
	}

	var req dto.CreateFeatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	feature, err := h.featureService.CreateFeature(c.Request.Context(), ideaID, phaseID, auth.UserID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, "Feature created successfully", feature)
}

// ListFeatures godoc
// @Summary      기능 목록 조회
// @Description  아이디어의 기능 전체를 조회합니다
// @Tags         features
// @Produce      json
// @Param        id path string true "Idea ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=[]dto.FeatureResponse} "기능 목록 조회 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 ID"
// @Failure      404 {object} response.ErrorResponse "아이디어를 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Security     BearerAuth
// @Router       /ideas/{id}/features [get]
func (h *FeatureHandler) ListFeatures(c *gin.Context) {
	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}

	ideaID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid idea ID")
		return
	}

	features, err := h.featureService.ListFeatures(c.Request.Context(), ideaID, auth.UserID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, "Features retrieved successfully", features)
}

// UpdateFeature godoc
// @Summary      기능 수정
// @Description  기능 필드를 수정합니다. 상태 변경 시 아이디어 진행률이 재계산됩니다
// @Tags         features
// @Accept       json
// @Produce      json
// @Param        id path string true "Feature ID (UUID)"
// @Param        request body dto.UpdateFeatureRequest true "기능 수정 요청"
// @Success      200 {object} response.SuccessResponse{data=dto.FeatureResponse} "기능 수정 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      404 {object} response.ErrorResponse "기능을 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Security     BearerAuth
// @Router       /features/{id} [put]
func (h *FeatureHandler) UpdateFeature(c *gin.Context) {
	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}

	featureID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid feature ID")
		return
	}

	var req dto.UpdateFeatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	feature, err := h.featureService.UpdateFeature(c.Request.Context(), featureID, auth.UserID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, "Feature updated successfully", feature)
}

// DeleteFeature godoc
// @Summary      기능 삭제
// @Description  기능을 삭제하고 아이디어 진행률을 재계산합니다
// @Tags         features
// @Produce      json
// @Param        id path string true "Feature ID (UUID)"
// @Success      200 {object} response.SuccessResponse "기능 삭제 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 ID"
// @Failure      404 {object} response.ErrorResponse "기능을 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Security     BearerAuth
// @Router       /features/{id} [delete]
func (h *FeatureHandler) DeleteFeature(c *gin.Context) {
	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}

	featureID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid feature ID")
		return
	}

	if err := h.featureService.DeleteFeature(c.Request.Context(), featureID, auth.UserID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, "Feature deleted successfully", nil)
}
