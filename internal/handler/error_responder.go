package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"MeshiDoko-App/internal/domain/apperror"
)

// respondError はすべてのエラーを唯一の境界で分類してレスポンスに変換する
// Alert付きのエラーは詳細を返さない（内部情報の漏えい防止）
func respondError(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		// 想定外のエラーは常に監視対象の内部エラーとして扱う
		log.Printf("🚨 [%s] unknown error: %v", c.GetString(ContextRequestIDKey), err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "不明なエラーが発生しました。",
			"code":  "unknown",
		})
		return
	}

	if appErr.Alert {
		log.Printf("🚨 [%s] %s: %s details=%+v", c.GetString(ContextRequestIDKey), appErr.Code, appErr.Message, appErr.Details)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": appErr.Message,
			"code":  appErr.Code,
		})
		return
	}

	log.Printf("⚠️ [%s] %s: %s details=%+v", c.GetString(ContextRequestIDKey), appErr.Code, appErr.Message, appErr.Details)
	status := http.StatusBadRequest
	if appErr.Code == apperror.CodeUnauthorized {
		status = http.StatusUnauthorized
	}
	c.JSON(status, gin.H{
		"error":   appErr.Message,
		"code":    appErr.Code,
		"details": appErr.Details,
	})
}
