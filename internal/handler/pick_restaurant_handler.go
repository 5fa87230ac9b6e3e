package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"MeshiDoko-App/internal/domain/apperror"
	"MeshiDoko-App/internal/domain/model"
	"MeshiDoko-App/internal/usecase"
)

// PickRestaurantHandler はレストラン抽選APIのハンドラー
type PickRestaurantHandler struct {
	pickUseCase usecase.PickRestaurantUseCase
}

// NewPickRestaurantHandler は新しいPickRestaurantHandlerインスタンスを作成
func NewPickRestaurantHandler(pickUseCase usecase.PickRestaurantUseCase) *PickRestaurantHandler {
	return &PickRestaurantHandler{
		pickUseCase: pickUseCase,
	}
}

// PostPickRestaurant はレストランを抽選するエンドポイント
// POST /api/v1/restaurants/pick
func (h *PickRestaurantHandler) PostPickRestaurant(c *gin.Context) {
	uid := c.GetString(ContextUserIDKey)
	if uid == "" {
		respondError(c, apperror.NewUnauthorized())
		return
	}

	// リクエストボディのバインド
	var req model.PickRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperror.NewInvalidRequest(err.Error()))
		return
	}

	// バリデーション
	if err := h.validateRequest(&req); err != nil {
		respondError(c, apperror.NewInvalidRequest(err.Error()))
		return
	}

	// UseCase呼び出し
	response, err := h.pickUseCase.PickRestaurant(c.Request.Context(), uid, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	// 成功レスポンス
	c.JSON(http.StatusOK, response)
}

// validateRequest はリクエストの詳細バリデーションを行う
func (h *PickRestaurantHandler) validateRequest(req *model.PickRestaurantRequest) error {
	// Locationは必須
	if req.Location == nil {
		return &ValidationError{Field: "location", Message: "現在地は必須です"}
	}

	// 緯度経度の範囲チェック
	if req.Location.Latitude < -90 || req.Location.Latitude > 90 {
		return &ValidationError{Field: "location.latitude", Message: "緯度は-90から90の範囲で指定してください"}
	}
	if req.Location.Longitude < -180 || req.Location.Longitude > 180 {
		return &ValidationError{Field: "location.longitude", Message: "経度は-180から180の範囲で指定してください"}
	}

	// 距離条件のチェック
	if req.Distance < model.MinPickDistanceMeters || req.Distance > model.MaxPickDistanceMeters {
		return &ValidationError{Field: "distance", Message: "距離は100から10000メートルの範囲で指定してください"}
	}

	// アルコール提供条件のチェック
	if req.Alcohol != nil && !req.Alcohol.Valid() {
		return &ValidationError{Field: "alcohol", Message: "alcoholは'notRequired'または'required'を指定してください"}
	}

	// 価格帯条件のチェック
	for _, price := range req.Prices {
		if !price.Valid() {
			return &ValidationError{Field: "prices", Message: "pricesに不正な値が含まれています"}
		}
	}

	return nil
}

// ValidationError はバリデーションエラーを表す
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
