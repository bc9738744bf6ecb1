package routes

import (
	"funilaria_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathClaims    = "/claims"
	PathEstimates = "/estimates"
)

func addClaimRoutes(rg *gin.RouterGroup, importHandler *handlers.EstimateImportHandler, paymentHandler *handlers.DeductiblePaymentHandler) {
	claims := rg.Group(PathClaims)
	{
		claims.POST("/:claim_id/estimates", importHandler.ImportEstimate)
		claims.GET("/:claim_id/estimates/versions", importHandler.GetVersionHistory)
		claims.GET("/:claim_id/estimates/latest", importHandler.GetLatestVersion)

		claims.POST("/:claim_id/deductible-payments", paymentHandler.CreatePaymentByClaimID)
		claims.GET("/:claim_id/deductible-payments", paymentHandler.GetPaymentByClaimID)
	}

	estimates := rg.Group(PathEstimates)
	{
		estimates.GET("/versions/:version_id/changes", importHandler.GetVersionChanges)
	}
}
