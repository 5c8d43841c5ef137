package handler

import (
	"net/http"
	"time"

	"kalado/internal/delivery/http/middleware"
	"kalado/internal/delivery/http/response"
	"kalado/internal/domain/entity"
	"kalado/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ReportHandler exposes the moderation endpoints.
type ReportHandler struct {
	reportUsecase usecase.ReportUsecase
	authUsecase   usecase.AuthUsecase
}

// NewReportHandler is the constructor for ReportHandler.
func NewReportHandler(reportUsecase usecase.ReportUsecase, authUsecase usecase.AuthUsecase) *ReportHandler {
	return &ReportHandler{reportUsecase: reportUsecase, authUsecase: authUsecase}
}

type submitReportRequest struct {
	ViolationType     string   `json:"violationType" validate:"required,max=64"`
	Description       string   `json:"description" validate:"required"`
	ReportedUserID    int64    `json:"reportedUserId" validate:"required"`
	ReportedContentID int64    `json:"reportedContentId"`
	EvidenceURLs      []string `json:"evidenceUrls"`
}

type resolveReportRequest struct {
	Status    string `json:"status" validate:"required"`
	Notes     string `json:"notes"`
	BlockUser bool   `json:"blockUser"`
}

type reportBody struct {
	ID                int64     `json:"id"`
	ViolationType     string    `json:"violationType"`
	Description       string    `json:"description"`
	ReporterID        int64     `json:"reporterId"`
	ReporterUsername  string    `json:"reporterUsername,omitempty"`
	ReportedUserID    int64     `json:"reportedUserId"`
	ReportedUsername  string    `json:"reportedUsername,omitempty"`
	ReportedContentID int64     `json:"reportedContentId"`
	EvidenceURLs      []string  `json:"evidenceUrls"`
	Status            string    `json:"status"`
	AdminID           int64     `json:"adminId,omitempty"`
	AdminNotes        string    `json:"adminNotes,omitempty"`
	UserBlocked       bool      `json:"userBlocked"`
	CreatedAt         time.Time `json:"createdAt"`
	LastUpdatedAt     time.Time `json:"lastUpdatedAt"`
}

func toReportBody(report *entity.Report) reportBody {
	return reportBody{
		ID:                report.ID,
		ViolationType:     report.ViolationType,
		Description:       report.Description,
		ReporterID:        report.ReporterID,
		ReportedUserID:    report.ReportedUserID,
		ReportedContentID: report.ReportedContentID,
		EvidenceURLs:      report.EvidenceURLs,
		Status:            string(report.Status),
		AdminID:           report.AdminID,
		AdminNotes:        report.AdminNotes,
		UserBlocked:       report.UserBlocked,
		CreatedAt:         report.CreatedAt,
		LastUpdatedAt:     report.LastUpdatedAt,
	}
}

func toReportBodyList(reports []*entity.Report) []reportBody {
	out := make([]reportBody, 0, len(reports))
	for _, report := range reports {
		out = append(out, toReportBody(report))
	}

	return out
}

// Submit handles POST /api/v1/reports.
func (h *ReportHandler) Submit(c echo.Context) error {
	var req submitReportRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_REQUEST", "請求格式錯誤")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	report, err := h.reportUsecase.SubmitReport(c.Request().Context(), usecase.SubmitReportInput{
		ViolationType:     req.ViolationType,
		Description:       req.Description,
		ReporterID:        middleware.CallerID(c),
		ReportedUserID:    req.ReportedUserID,
		ReportedContentID: req.ReportedContentID,
		EvidenceURLs:      req.EvidenceURLs,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, toReportBody(report), "檢舉已送出")
}

// GetMine handles GET /api/v1/reports/mine.
func (h *ReportHandler) GetMine(c echo.Context) error {
	reports, err := h.reportUsecase.GetMyReports(c.Request().Context(), middleware.CallerID(c))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toReportBodyList(reports), "")
}

// Get handles GET /api/v1/reports/:id. Admin only.
func (h *ReportHandler) Get(c echo.Context) error {
	reportID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	report, err := h.reportUsecase.GetReport(c.Request().Context(), reportID)
	if err != nil {
		return err
	}

	body := toReportBody(report)
	h.resolveUsernames(c, &body)

	return response.Success(c, http.StatusOK, body, "")
}

// resolveUsernames decorates the admin view with usernames. Lookup failures
// leave the fields empty rather than failing the request.
func (h *ReportHandler) resolveUsernames(c echo.Context, body *reportBody) {
	ctx := c.Request().Context()
	if username, err := h.authUsecase.GetUsername(ctx, body.ReporterID); err == nil {
		body.ReporterUsername = username
	}
	if username, err := h.authUsecase.GetUsername(ctx, body.ReportedUserID); err == nil {
		body.ReportedUsername = username
	}
}

// GetByStatus handles GET /api/v1/reports. Admin only.
func (h *ReportHandler) GetByStatus(c echo.Context) error {
	status := c.QueryParam("status")
	if status == "" {
		status = string(entity.ReportSubmitted)
	}

	reports, err := h.reportUsecase.GetReportsByStatus(c.Request().Context(), entity.ReportStatus(status))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toReportBodyList(reports), "")
}

// Resolve handles PUT /api/v1/reports/:id. Admin only.
func (h *ReportHandler) Resolve(c echo.Context) error {
	reportID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req resolveReportRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_REQUEST", "請求格式錯誤")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	report, err := h.reportUsecase.ResolveReport(c.Request().Context(), usecase.ResolveReportInput{
		ReportID:  reportID,
		AdminID:   middleware.CallerID(c),
		Status:    entity.ReportStatus(req.Status),
		Notes:     req.Notes,
		BlockUser: req.BlockUser,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toReportBody(report), "檢舉已裁決")
}
