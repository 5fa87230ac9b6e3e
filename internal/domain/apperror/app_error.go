package apperror

import (
	"fmt"
	"time"

	"MeshiDoko-App/internal/domain/model"
)

// エラーコードの一覧（閉じた集合）
const (
	CodeInvalidEnvironment       = "invalid-env"
	CodeInvalidRequest           = "invalid-request"
	CodeInvalidArgument          = "invalid-argument"
	CodeUnauthorized             = "unauthorized"
	CodeInvalidResource          = "invalid-resource"
	CodeResourceNotFound         = "resource-not-found"
	CodeUnavailablePick          = "unavailable-pick"
	CodeNoRestaurants            = "no-restaurants"
	CodeFailedToFetchRestaurants = "failed-to-fetch-restaurants"
	CodeIllegalState             = "illegal-state"
)

// AppError アプリケーション定義エラー
// Alertがtrueのものは監視対象（システム異常）、falseのものは業務上の失敗
type AppError struct {
	Code    string
	Alert   bool
	Message string
	Details interface{}
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewInvalidEnvironment 環境変数エラー
func NewInvalidEnvironment(values interface{}) *AppError {
	return &AppError{
		Code:    CodeInvalidEnvironment,
		Alert:   true,
		Message: "環境変数が不正な値です。",
		Details: values,
	}
}

// NewInvalidRequest リクエストバリデーションエラー
func NewInvalidRequest(issues interface{}) *AppError {
	return &AppError{
		Code:    CodeInvalidRequest,
		Alert:   false,
		Message: "リクエストが不正な値です。",
		Details: issues,
	}
}

// NewInvalidArgument 入力値エラー
func NewInvalidArgument(args interface{}) *AppError {
	return &AppError{
		Code:    CodeInvalidArgument,
		Alert:   true,
		Message: "入力値が不正な値です。",
		Details: args,
	}
}

// NewUnauthorized 認証エラー
func NewUnauthorized() *AppError {
	return &AppError{
		Code:    CodeUnauthorized,
		Alert:   false,
		Message: "認証されていません。",
	}
}

// NewInvalidResource リソース不整合エラー
func NewInvalidResource(resource, key string) *AppError {
	return &AppError{
		Code:    CodeInvalidResource,
		Alert:   true,
		Message: "リソースの状態が正しくありません。",
		Details: map[string]string{"resource": resource, "key": key},
	}
}

// NewResourceNotFound リソース不存在エラー
func NewResourceNotFound(resource, key string) *AppError {
	return &AppError{
		Code:    CodeResourceNotFound,
		Alert:   false,
		Message: "リソースが存在しません。",
		Details: map[string]string{"resource": resource, "key": key},
	}
}

// NewUnavailablePick 抽選不許可エラー
// 次回抽選可能日時を詳細として保持する
func NewUnavailablePick(nextAvailableAt time.Time) *AppError {
	return &AppError{
		Code:    CodeUnavailablePick,
		Alert:   false,
		Message: "抽選が許可されませんでした。",
		Details: map[string]interface{}{"nextAvailableAt": nextAvailableAt},
	}
}

// NewNoRestaurants レストラン不存在エラー
func NewNoRestaurants(conditions interface{}) *AppError {
	return &AppError{
		Code:    CodeNoRestaurants,
		Alert:   false,
		Message: "指定された条件でレストランが見つかりませんでした。",
		Details: map[string]interface{}{"conditions": conditions},
	}
}

// NewFailedToFetchRestaurants レストラン取得失敗エラー
// リクエストはAPIキーを秘匿した形で保持する
func NewFailedToFetchRestaurants(status, message string, request model.PlacesNearbyRequest) *AppError {
	return &AppError{
		Code:    CodeFailedToFetchRestaurants,
		Alert:   false,
		Message: "レストランの取得に失敗しました。",
		Details: map[string]interface{}{
			"status":  status,
			"message": message,
			"request": request.Redacted(),
		},
	}
}

// NewIllegalState 内部状態不整合エラー
func NewIllegalState(message string) *AppError {
	return &AppError{
		Code:    CodeIllegalState,
		Alert:   true,
		Message: message,
	}
}
