package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/firestore"

	"MeshiDoko-App/internal/domain/apperror"
	"MeshiDoko-App/internal/domain/model"
)

const (
	usersCollection = "users"
	pickStatusField = "pickStatus"
)

// FirestorePickStatusRepository Firestoreを使用した抽選ステータスリポジトリ
// users/{uid} ドキュメントの pickStatus フィールドにワイヤ表現を保持する
type FirestorePickStatusRepository struct {
	client *firestore.Client
}

// NewFirestorePickStatusRepository 新しいFirestorePickStatusRepositoryインスタンスを作成
func NewFirestorePickStatusRepository(client *firestore.Client) *FirestorePickStatusRepository {
	return &FirestorePickStatusRepository{
		client: client,
	}
}

// Get は抽選ステータスを取得する
// ドキュメント不存在・フィールド欠落・形式不正はすべて「ステータスなし」として扱う
func (r *FirestorePickStatusRepository) Get(ctx context.Context, uid string) (*model.PickStatus, error) {
	if uid == "" {
		return nil, apperror.NewInvalidArgument(map[string]string{"uid": uid})
	}

	doc, err := r.client.Collection(usersCollection).Doc(uid).Get(ctx)
	if err != nil {
		if strings.Contains(err.Error(), "NotFound") || strings.Contains(err.Error(), "not found") {
			return nil, nil
		}
		return nil, fmt.Errorf("抽選ステータスの取得に失敗しました: %w", err)
	}

	raw, ok := doc.Data()[pickStatusField]
	if !ok {
		return nil, nil
	}

	// 保存データは信頼しない。JSON経由で厳密にパースし、不正ならステータスなしとする
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, nil
	}
	return model.ParsePickStatus(data), nil
}

// Set は抽選ステータスをリワードなしの新規内容で無条件に上書きする
func (r *FirestorePickStatusRepository) Set(ctx context.Context, uid, cacheID string, now time.Time) (*model.PickStatus, error) {
	if uid == "" || cacheID == "" {
		return nil, apperror.NewInvalidArgument(map[string]string{"uid": uid, "cacheId": cacheID})
	}

	status := &model.PickStatus{
		CacheID:  cacheID,
		PickedAt: now,
	}

	_, err := r.client.Collection(usersCollection).Doc(uid).Set(ctx,
		map[string]interface{}{pickStatusField: status.Data()},
		firestore.Merge(firestore.FieldPath{pickStatusField}),
	)
	if err != nil {
		return nil, fmt.Errorf("抽選ステータスの更新に失敗しました: %w", err)
	}

	return status, nil
}
