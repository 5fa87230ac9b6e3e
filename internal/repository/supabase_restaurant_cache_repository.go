package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	storage_go "github.com/supabase-community/storage-go"

	"MeshiDoko-App/internal/domain/apperror"
	"MeshiDoko-App/internal/domain/model"
)

// CacheFilename キャッシュIDからオブジェクトパスを導出する
func CacheFilename(cacheID string) string {
	return "caches/" + cacheID + ".json"
}

// SupabaseRestaurantCacheRepository Supabase Storageを使用したレストランキャッシュリポジトリ
type SupabaseRestaurantCacheRepository struct {
	storage *storage_go.Client
	bucket  string
	entropy io.Reader
}

// NewSupabaseRestaurantCacheRepository 新しいSupabaseRestaurantCacheRepositoryインスタンスを作成
// entropyがnilの場合は標準のULIDエントロピー源を使用する（テストでは固定シードを注入する）
func NewSupabaseRestaurantCacheRepository(storage *storage_go.Client, bucket string, entropy io.Reader) *SupabaseRestaurantCacheRepository {
	if entropy == nil {
		entropy = ulid.DefaultEntropy()
	}
	return &SupabaseRestaurantCacheRepository{
		storage: storage,
		bucket:  bucket,
		entropy: entropy,
	}
}

// Store は候補一覧を整形済みJSONで保存し、新規キャッシュIDを返す
func (r *SupabaseRestaurantCacheRepository) Store(ctx context.Context, restaurants []model.Restaurant) (string, error) {
	if len(restaurants) == 0 {
		return "", apperror.NewInvalidArgument(map[string]interface{}{"restaurants": restaurants})
	}

	id, err := ulid.New(ulid.Timestamp(time.Now()), r.entropy)
	if err != nil {
		return "", fmt.Errorf("キャッシュIDの生成に失敗しました: %w", err)
	}
	cacheID := id.String()

	data, err := json.MarshalIndent(restaurants, "", "  ")
	if err != nil {
		return "", fmt.Errorf("キャッシュのシリアライズに失敗しました: %w", err)
	}

	contentType := "application/json"
	_, err = r.storage.UploadFile(r.bucket, CacheFilename(cacheID), bytes.NewReader(data), storage_go.FileOptions{
		ContentType: &contentType,
	})
	if err != nil {
		return "", fmt.Errorf("キャッシュの保存に失敗しました: %w", err)
	}

	return cacheID, nil
}

// Retrieve はキャッシュを読み出す
// オブジェクト不存在・JSON不正・スキーマ検証失敗はすべて「キャッシュなし」として扱う
func (r *SupabaseRestaurantCacheRepository) Retrieve(ctx context.Context, cacheID string) ([]model.Restaurant, error) {
	if cacheID == "" {
		return nil, apperror.NewInvalidArgument(map[string]string{"cacheId": cacheID})
	}

	data, err := r.storage.DownloadFile(r.bucket, CacheFilename(cacheID))
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("キャッシュの取得に失敗しました: %w", err)
	}

	return model.ParseRestaurantCache(data), nil
}

// Clear はキャッシュを削除する。存在しない場合も成功として扱う（冪等）
func (r *SupabaseRestaurantCacheRepository) Clear(ctx context.Context, cacheID string) error {
	if cacheID == "" {
		return apperror.NewInvalidArgument(map[string]string{"cacheId": cacheID})
	}

	_, err := r.storage.RemoveFile(r.bucket, []string{CacheFilename(cacheID)})
	if err != nil && !isNotFound(err) {
		return fmt.Errorf("キャッシュの削除に失敗しました: %w", err)
	}
	return nil
}

// isNotFound ストレージAPIのエラーがオブジェクト不存在を表すか判定する
func isNotFound(err error) bool {
	message := strings.ToLower(err.Error())
	return strings.Contains(message, "not_found") ||
		strings.Contains(message, "not found") ||
		strings.Contains(message, "404")
}
