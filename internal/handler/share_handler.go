package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"idea-copilot-api/internal/dto"
	"idea-copilot-api/internal/response"
	"idea-copilot-api/internal/service"
)

type ShareHandler struct {
	shareService service.ShareService
}

func NewShareHandler(shareService service.ShareService) *ShareHandler {
	return &ShareHandler{
		shareService: shareService,
	}
}

// CreateShare godoc
// @Summary      아이디어 공유
// @Description  이메일로 다른 사용자에게 아이디어를 공유합니다 (소유자만)
// @Tags         shares
// @Accept       json
// @Produce      json
// @Param        id path string true "Idea ID (UUID)"
// @Param        request body dto.CreateShareRequest true "공유 생성 요청"
// @Success      201 {object} response.SuccessResponse{data=dto.ShareResponse} "공유 생성 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      404 {object} response.ErrorResponse "아이디어 또는 사용자를 찾을 수 없음"
// @Failure      409 {object} response.ErrorResponse "이미 공유된 사용자"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Security     BearerAuth
// @Router       /ideas/{id}/shares [post]
func (h *ShareHandler) CreateShare(c *gin.Context) {
	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}

	ideaID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid idea ID")
		return
	}

	var req dto.CreateShareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	share, err := h.shareService.CreateShare(c.Request.Context(), ideaID, auth.UserID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, "Idea shared successfully", share)
}

// ListShares godoc
// @Summary      공유 목록 조회
// @Description  아이디어의 공유 목록을 조회합니다 (소유자만)
// @Tags         shares
// @Produce      json
// @Param        id path string true "Idea ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=[]dto.ShareResponse} "공유 목록 조회 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 ID"
// @Failure      404 {object} response.ErrorResponse "아이디어를 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Security     BearerAuth
// @Router       /ideas/{id}/shares [get]
func (h *ShareHandler) ListShares(c *gin.Context) {
	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}

	ideaID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid idea ID")
		return
	}

	shares, err := h.shareService.ListShares(c.Request.Context(), ideaID, auth.UserID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, "Shares retrieved successfully", shares)
}

// ListSharedWithMe godoc
// @Summary      공유받은 아이디어 조회
// @Description  나에게 공유된 아이디어 목록을 조회합니다 (만료된 공유 제외)
// @Tags         shares
// @Produce      json
// @Success      200 {object} response.SuccessResponse{data=[]dto.IdeaResponse} "공유받은 아이디어 조회 성공"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Security     BearerAuth
// @Router       /shares/shared-with-me [get]
func (h *ShareHandler) ListSharedWithMe(c *gin.Context) {
	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}

	ideas, err := h.shareService.ListSharedWithMe(c.Request.Context(), auth.UserID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, "Shared ideas retrieved successfully", ideas)
}

// UpdateShare godoc
// @Summary      공유 수정
// @Description  공유의 역할 또는 만료일을 수정합니다 (소유자만)
// @Tags         shares
// @Accept       json
// @Produce      json
// @Param        id path string true "Idea ID (UUID)"
// @Param        shareId path string true "Share ID (UUID)"
// @Param        request body dto.UpdateShareRequest true "공유 수정 요청"
// @Success      200 {object} response.SuccessResponse{data=dto.ShareResponse} "공유 수정 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      404 {object} response.ErrorResponse "공유를 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Security     BearerAuth
// @Router       /ideas/{id}/shares/{shareId} [put]
func (h *ShareHandler) UpdateShare(c *gin.Context) {
	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}

	ideaID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid idea ID")
		return
	}

	shareID, err := uuid.Parse(c.Param("shareId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid share ID")
		return
	}

	var req dto.UpdateShareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	share, err := h.shareService.UpdateShare(c.Request.Context(), ideaID, shareID, auth.UserID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, "Share updated successfully", share)
}

// RevokeShare godoc
// @Summary      공유 취소
// @Description  공유를 취소하고 접근 권한을 제거합니다 (소유자만)
// @Tags         shares
// @Produce      json
// @Param        id path string true "Idea ID (UUID)"
// @Param        shareId path string true "Share ID (UUID)"
// @Success      200 {object} response.SuccessResponse "공유 취소 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 ID"
// @Failure      404 {object} response.ErrorResponse "공유를 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Security     BearerAuth
// @Router       /ideas/{id}/shares/{shareId} [delete]
func (h *ShareHandler) RevokeShare(c *gin.Context) {
	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}

	ideaID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid idea ID")
		return
	}

	shareID, err := uuid.Parse(c.Param("shareId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid share ID")
		return
	}

	if err := h.shareService.RevokeShare(c.Request.Context(), ideaID, shareID, auth.UserID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, "Share revoked successfully", nil)
}
