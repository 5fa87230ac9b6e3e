package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"MeshiDoko-App/internal/domain/apperror"
	"MeshiDoko-App/internal/domain/model"
)

type fakePickUseCase struct {
	response *model.PickRestaurantResponse
	err      error
	calledID string
}

func (f *fakePickUseCase) PickRestaurant(_ context.Context, uid string, _ *model.PickRestaurantRequest) (*model.PickRestaurantResponse, error) {
	f.calledID = uid
	if f.err != nil {
		return nil, f.err
	}
	return f.response, nil
}

func newTestRouter(useCase *fakePickUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestIDMiddleware())
	v1 := r.Group("/api/v1")
	v1.Use(AuthMiddleware())
	v1.POST("/restaurants/pick", NewPickRestaurantHandler(useCase).PostPickRestaurant)
	return r
}

func doPick(r *gin.Engine, uid, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/restaurants/pick", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if uid != "" {
		req.Header.Set("X-User-Id", uid)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

const validBody = `{"location": {"latitude": 35.0, "longitude": 135.0}, "distance": 1000}`

func TestPostPickRestaurant(t *testing.T) {
	t.Run("認証ヘッダーがない場合は401を返す", func(t *testing.T) {
		useCase := &fakePickUseCase{}
		w := doPick(newTestRouter(useCase), "", validBody)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Empty(t, useCase.calledID)
	})

	t.Run("正常系は抽選結果を返す", func(t *testing.T) {
		useCase := &fakePickUseCase{
			response: &model.PickRestaurantResponse{
				Data: model.Restaurant{
					ID:     "p1",
					Name:   "店A",
					MapURL: "https://www.google.com/maps/search/?api=1&query=店A",
				},
				NextAvailableAt:      time.Date(2024, 6, 1, 18, 0, 0, 0, time.UTC),
				RewardRemainingCount: 4,
			},
		}
		w := doPick(newTestRouter(useCase), "user-1", validBody)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "user-1", useCase.calledID)
		assert.NotEmpty(t, w.Header().Get("X-Request-Id"))

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		data := body["data"].(map[string]interface{})
		assert.Equal(t, "p1", data["id"])
		assert.Equal(t, float64(4), body["rewardRemainingCount"])
	})

	t.Run("ボディがJSONでない場合は400を返す", func(t *testing.T) {
		w := doPick(newTestRouter(&fakePickUseCase{}), "user-1", `{`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), apperror.CodeInvalidRequest)
	})

	t.Run("バリデーション違反は400を返す", func(t *testing.T) {
		tests := []struct {
			name string
			body string
		}{
			{name: "locationなし", body: `{"distance": 1000}`},
			{name: "緯度が範囲外", body: `{"location": {"latitude": 91, "longitude": 135.0}, "distance": 1000}`},
			{name: "経度が範囲外", body: `{"location": {"latitude": 35.0, "longitude": 181}, "distance": 1000}`},
			{name: "距離が下限未満", body: `{"location": {"latitude": 35.0, "longitude": 135.0}, "distance": 99}`},
			{name: "距離が上限超過", body: `{"location": {"latitude": 35.0, "longitude": 135.0}, "distance": 10001}`},
			{name: "alcoholが不正", body: `{"location": {"latitude": 35.0, "longitude": 135.0}, "distance": 1000, "alcohol": "maybe"}`},
			{name: "pricesに不正な値", body: `{"location": {"latitude": 35.0, "longitude": 135.0}, "distance": 1000, "prices": ["cheap"]}`},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				useCase := &fakePickUseCase{}
				w := doPick(newTestRouter(useCase), "user-1", tt.body)

				assert.Equal(t, http.StatusBadRequest, w.Code)
				assert.Empty(t, useCase.calledID)
			})
		}
	})

	t.Run("抽選不許可エラーは400で次回可能日時を返す", func(t *testing.T) {
		nextAvailableAt := time.Date(2024, 6, 1, 18, 0, 0, 0, time.UTC)
		useCase := &fakePickUseCase{err: apperror.NewUnavailablePick(nextAvailableAt)}
		w := doPick(newTestRouter(useCase), "user-1", validBody)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), apperror.CodeUnavailablePick)
		assert.Contains(t, w.Body.String(), "nextAvailableAt")
	})

	t.Run("リソース不存在エラーは400を返す", func(t *testing.T) {
		useCase := &fakePickUseCase{err: apperror.NewResourceNotFound("restaurantsCache", "cache-1")}
		w := doPick(newTestRouter(useCase), "user-1", validBody)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), apperror.CodeResourceNotFound)
		assert.Contains(t, w.Body.String(), "cache-1")
	})

	t.Run("リソース不整合エラーは監視対象として500を返す", func(t *testing.T) {
		useCase := &fakePickUseCase{err: apperror.NewInvalidResource("pickStatus", "user-1")}
		w := doPick(newTestRouter(useCase), "user-1", validBody)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), apperror.CodeInvalidResource)
		assert.NotContains(t, w.Body.String(), "details")
	})

	t.Run("監視対象エラーは500で詳細を返さない", func(t *testing.T) {
		useCase := &fakePickUseCase{err: apperror.NewInvalidEnvironment(map[string]string{"PLACES_API_KEY": ""})}
		w := doPick(newTestRouter(useCase), "user-1", validBody)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), apperror.CodeInvalidEnvironment)
		assert.NotContains(t, w.Body.String(), "details")
	})

	t.Run("想定外のエラーは500でunknownを返す", func(t *testing.T) {
		useCase := &fakePickUseCase{err: assert.AnError}
		w := doPick(newTestRouter(useCase), "user-1", validBody)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "unknown")
	})
}
