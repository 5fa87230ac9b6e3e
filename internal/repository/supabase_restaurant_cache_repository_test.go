package repository

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"os"
	"testing"

	"github.com/joho/godotenv"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"MeshiDoko-App/internal/domain/apperror"
	"MeshiDoko-App/internal/domain/model"
	"MeshiDoko-App/internal/infrastructure/database"
)

func TestCacheFilename(t *testing.T) {
	assert.Equal(t, "caches/01ARZ3NDEKTSV4RRFFQ69G5FAV.json", CacheFilename("01ARZ3NDEKTSV4RRFFQ69G5FAV"))
}

func TestCacheIDGeneration(t *testing.T) {
	t.Run("固定エントロピーで26文字の辞書順ソート可能なIDを生成する", func(t *testing.T) {
		entropy := ulid.Monotonic(rand.New(rand.NewSource(1)), 0)
		repo := NewSupabaseRestaurantCacheRepository(nil, "restaurant-caches", entropy)

		id, err := ulid.New(ulid.Now(), repo.entropy)

		require.NoError(t, err)
		assert.Len(t, id.String(), 26)
	})
}

func TestSupabaseRestaurantCacheRepository_Arguments(t *testing.T) {
	repo := NewSupabaseRestaurantCacheRepository(nil, "restaurant-caches", nil)

	t.Run("空の候補一覧は保存できない", func(t *testing.T) {
		_, err := repo.Store(context.Background(), nil)

		var appErr *apperror.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperror.CodeInvalidArgument, appErr.Code)
	})

	t.Run("空のIDでは取得できない", func(t *testing.T) {
		_, err := repo.Retrieve(context.Background(), "")

		var appErr *apperror.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperror.CodeInvalidArgument, appErr.Code)
	})

	t.Run("空のIDでは削除できない", func(t *testing.T) {
		err := repo.Clear(context.Background(), "")

		var appErr *apperror.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperror.CodeInvalidArgument, appErr.Code)
	})
}

// TestSupabaseRestaurantCacheRepository_RoundTrip は実際のSupabase Storageに対する統合テスト
func TestSupabaseRestaurantCacheRepository_RoundTrip(t *testing.T) {
	if err := godotenv.Load("../../.env"); err != nil {
		// CI環境等では.envが存在しない場合があるため警告のみ
	}
	if os.Getenv("SUPABASE_URL") == "" || os.Getenv("SUPABASE_ANON_KEY") == "" {
		t.Skip("Supabaseの環境変数が設定されていません。統合テストをスキップします。")
	}

	client, err := database.NewSupabaseClient()
	require.NoError(t, err)

	bucket := os.Getenv("SUPABASE_STORAGE_BUCKET")
	if bucket == "" {
		bucket = "restaurant-caches"
	}
	repo := NewSupabaseRestaurantCacheRepository(client.GetStorage(), bucket, nil)
	ctx := context.Background()

	restaurants := []model.Restaurant{
		{
			ID:        "test-restaurant-id",
			Name:      "Test Restaurant",
			MapURL:    "https://www.google.com/maps/search/?api=1&query=Test Restaurant",
			Latitude:  35.1,
			Longitude: 135.1,
			Distance:  120.5,
		},
	}

	cacheID, err := repo.Store(ctx, restaurants)
	require.NoError(t, err)
	assert.Len(t, cacheID, 26)

	retrieved, err := repo.Retrieve(ctx, cacheID)
	require.NoError(t, err)
	assert.Equal(t, restaurants, retrieved)

	require.NoError(t, repo.Clear(ctx, cacheID))

	// 削除後は「キャッシュなし」になる
	missing, err := repo.Retrieve(ctx, cacheID)
	require.NoError(t, err)
	assert.Nil(t, missing)

	// 再削除も成功する（冪等）
	require.NoError(t, repo.Clear(ctx, cacheID))

	log.Printf("✅ レストランキャッシュのラウンドトリップ成功: %s", cacheID)
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, isNotFound(fmt.Errorf("Object not_found")))
	assert.True(t, isNotFound(fmt.Errorf("status 404: object not found")))
	assert.False(t, isNotFound(fmt.Errorf("connection refused")))
}
