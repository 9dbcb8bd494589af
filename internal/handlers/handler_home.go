package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// getHome godoc
// @Summary API banner
// @Description Identifies the POS backend; used by the terminal to check it is pointed at the right host.
// @Tags root
// @Accept */*
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func getHome(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"message": "GCash POS Backend API v1"})
}

// getHealth reports liveness.
func getHealth(ctx *gin.Context) {
	ctx.String(http.StatusOK, "OK")
}
