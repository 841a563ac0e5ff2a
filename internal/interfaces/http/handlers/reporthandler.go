package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/subflow-io/subflow/internal/application/reporting/usecases"
	"github.com/subflow-io/subflow/internal/shared/logger"
	"github.com/subflow-io/subflow/internal/shared/utils"
)

type ReportHandler struct {
	getSummaryUC *usecases.GetSummaryUseCase
	logger       logger.Interface
}

func NewReportHandler(
	getSummaryUC *usecases.GetSummaryUseCase,
	logger logger.Interface,
) *ReportHandler {
	return &ReportHandler{
		getSummaryUC: getSummaryUC,
		logger:       logger,
	}
}

func (h *ReportHandler) GetSummary(c *gin.Context) {
	summary, err := h.getSummaryUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, summary)
}
