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

type NotificationHandler struct {
	notificationService service.NotificationService
}

func NewNotificationHandler(notificationService service.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
	}
}

// ListNotifications godoc
// @Summary      알림 목록 조회
// @Description  내 알림을 최신순으로 조회합니다. 만료된 알림은 제외됩니다
// @Tags         notifications
// @Produce      json
// @Param        unread_only query bool false "읽지 않은 알림만" default(false)
// @Param        limit query int false "페이지 크기" default(50)
// @Param        offset query int false "오프셋" default(0)
// @Success      200 {object} response.SuccessResponse{data=dto.NotificationListResponse} "알림 목록 조회 성공"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Security     BearerAuth
// @Router       /notifications [get]
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}

	unreadOnly := c.DefaultQuery("unread_only", "false") == "true"
	limit := 50
	if v, err := strconv.Atoi(c.DefaultQuery("limit", "50")); err == nil && v > 0 && v <= 100 {
		limit = v
	}
	offset := 0
	if v, err := strconv.Atoi(c.DefaultQuery("offset", "0")); err == nil && v >= 0 {
		offset = v
	}

	notifications, err := h.notificationService.ListNotifications(c.Request.Context(), auth.UserID, unreadOnly, limit, offset)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, "Notifications retrieved successfully", notifications)
}

// CreateNotification godoc
// @Summary      알림 생성
// @Description  현재 사용자에게 알림을 생성합니다
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateNotificationRequest true "알림 생성 요청"
// @Success      201 {object} response.SuccessResponse{data=dto.NotificationResponse} "알림 생성 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Security     BearerAuth
// @Router       /notifications [post]
func (h *NotificationHandler) CreateNotification(c *gin.Context) {
	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}

	var req dto.CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	notification, err := h.notificationService.CreateNotification(c.Request.Context(), auth.UserID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, "Notification created successfully", notification)
}

// GetUnreadCount godoc
// @Summary      읽지 않은 알림 수 조회
// @Description  읽지 않은 알림 수를 조회합니다 (redis 캐시 사용)
// @Tags         notifications
// @Produce      json
// @Success      200 {object} response.SuccessResponse{data=dto.UnreadCountResponse} "읽지 않은 알림 수 조회 성공"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Security     BearerAuth
// @Router       /notifications/unread-count [get]
func (h *NotificationHandler) GetUnreadCount(c *gin.Context) {
	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}

	count, err := h.notificationService.GetUnreadCount(c.Request.Context(), auth.UserID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, "Unread count retrieved successfully", dto.UnreadCountResponse{UnreadCount: count})
}

// MarkRead godoc
// @Summary      알림 읽음 처리
// @Description  알림 하나를 읽음 처리합니다
// @Tags         notifications
// @Produce      json
// @Param        id path string true "Notification ID (UUID)"
// @Success      200 {object} response.SuccessResponse "알림 읽음 처리 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 ID"
// @Failure      404 {object} response.ErrorResponse "알림을 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Security     BearerAuth
// @Router       /notifications/{id}/read [put]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}

	notificationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid notification ID")
		return
	}

	if err := h.notificationService.MarkRead(c.Request.Context(), notificationID, auth.UserID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, "Notification marked as read", nil)
}

// MarkAllRead godoc
// @Summary      알림 전체 읽음 처리
// @Description  읽지 않은 알림을 모두 읽음 처리합니다
// @Tags         notifications
// @Produce      json
// @Success      200 {object} response.SuccessResponse "알림 전체 읽음 처리 성공"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Security     BearerAuth
// @Router       /notifications/read-all [put]
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}

	updated, err := h.notificationService.MarkAllRead(c.Request.Context(), auth.UserID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, "All notifications marked as read", gin.H{"updated": updated})
}

// DeleteNotification godoc
// @Summary      알림 삭제
// @Description  알림 하나를 삭제합니다
// @Tags         notifications
// @Produce      json
// @Param        id path string true "Notification ID (UUID)"
// @Success      200 {object} response.SuccessResponse "알림 삭제 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 ID"
// @Failure      404 {object} response.ErrorResponse "알림을 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Security     BearerAuth
// @Router       /notifications/{id} [delete]
func (h *NotificationHandler) DeleteNotification(c *gin.Context) {
	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}

	notificationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid notification ID")
		return
	}

	if err := h.notificationService.DeleteNotification(c.Request.Context(), notificationID, auth.UserID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, "Notification deleted successfully", nil)
}

// SendMotivation godoc
// @Summary      동기부여 알림 발송
// @Description  동기부여 알림을 생성하고 SMTP가 설정된 경우 이메일도 발송합니다
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Param        request body dto.MotivationRequest true "메시지 유형 (encouragement/reminder/streak)"
// @Success      201 {object} response.SuccessResponse{data=dto.NotificationResponse} "동기부여 알림 발송 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Security     BearerAuth
// @Router       /notifications/motivation [post]
func (h *NotificationHandler) SendMotivation(c *gin.Context) {
	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}

	var req dto.MotivationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	notification, err := h.notificationService.SendMotivation(c.Request.Context(), auth.UserID, req.MessageType)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, "Motivational notification sent successfully", notification)
}
