package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"MeshiDoko-App/internal/domain/apperror"
)

const (
	// ContextUserIDKey 認証済みユーザーIDを保持するコンテキストキー
	ContextUserIDKey = "uid"

	// ContextRequestIDKey リクエストIDを保持するコンテキストキー
	ContextRequestIDKey = "requestId"

	// 認証ゲートウェイが検証済みユーザーIDを載せてくるヘッダー
	userIDHeader = "X-User-Id"
)

// RequestIDMiddleware はリクエストごとにIDを採番してログとレスポンスヘッダーに載せる
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.New().String()
		c.Set(ContextRequestIDKey, requestID)
		c.Writer.Header().Set("X-Request-Id", requestID)
		c.Next()
	}
}

// AuthMiddleware は前段のゲートウェイが付与した認証済みユーザーIDを取り出す
// ヘッダーがない場合は認証エラーとして処理を打ち切る
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.GetHeader(userIDHeader)
		if uid == "" {
			respondError(c, apperror.NewUnauthorized())
			c.Abort()
			return
		}
		c.Set(ContextUserIDKey, uid)
		c.Next()
	}
}
