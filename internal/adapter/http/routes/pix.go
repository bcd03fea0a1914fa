package routes

import (
	"pix_checkout/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathPix = "/pix"

func addPixRoutes(rg *gin.RouterGroup, pixHandler *handlers.PixHandler) {
	pix := rg.Group(PathPix)
	{
		// Endpoints consumed by the storefront checkout and by cmd/watch.
		pix.POST("/qrcode", pixHandler.CreateQRCode)
		pix.POST("/status", pixHandler.GetStatus)
	}
}
