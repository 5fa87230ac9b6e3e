package usecase

import (
	"context"
	"log"
	"time"

	"MeshiDoko-App/internal/domain/apperror"
	"MeshiDoko-App/internal/domain/model"
	"MeshiDoko-App/internal/domain/repository"
	"MeshiDoko-App/internal/domain/service"
)

type PickRestaurantUseCase interface {
	// PickRestaurant は抽選可否の判定から候補取得・抽選・ステータス更新までの一連の流れを実行する
	PickRestaurant(ctx context.Context, uid string, req *model.PickRestaurantRequest) (*model.PickRestaurantResponse, error)
}

// pickRestaurantUseCaseImpl はPickRestaurantUseCaseの実装
type pickRestaurantUseCaseImpl struct {
	statusRepo        repository.PickStatusRepository
	cacheRepo         repository.RestaurantCacheRepository
	candidatesService service.RestaurantCandidatesService
	picker            *service.RestaurantPicker
	now               func() time.Time
}

// NewPickRestaurantUseCase は新しいPickRestaurantUseCaseインスタンスを作成
func NewPickRestaurantUseCase(
	statusRepo repository.PickStatusRepository,
	cacheRepo repository.RestaurantCacheRepository,
	candidatesService service.RestaurantCandidatesService,
	picker *service.RestaurantPicker,
) PickRestaurantUseCase {
	return &pickRestaurantUseCaseImpl{
		statusRepo:        statusRepo,
		cacheRepo:         cacheRepo,
		candidatesService: candidatesService,
		picker:            picker,
		now:               time.Now,
	}
}

// PickRestaurant は抽選フローを実行する
func (u *pickRestaurantUseCaseImpl) PickRestaurant(ctx context.Context, uid string, req *model.PickRestaurantRequest) (*model.PickRestaurantResponse, error) {
	// 抽選が可能であるかチェックする
	currentStatus, err := u.statusRepo.Get(ctx, uid)
	if err != nil {
		return nil, err
	}
	if !service.CheckCanPick(currentStatus, u.now()) {
		if currentStatus != nil {
			return nil, apperror.NewUnavailablePick(service.NextAvailableDate(*currentStatus))
		}
		// ステータスなしで拒否されることはゲートの規則上ありえない
		return nil, apperror.NewIllegalState("抽選ステータスが存在しないのに抽選が拒否されています。")
	}

	// 前回のキャッシュが残っている場合は削除する
	if currentStatus != nil && currentStatus.CacheID != "" {
		if err := u.cacheRepo.Clear(ctx, currentStatus.CacheID); err != nil {
			return nil, err
		}
	}

	// レストラン候補を取得する
	condition := req.ToCondition()
	candidates, err := u.candidatesService.GetCandidates(ctx, condition)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, apperror.NewNoRestaurants(condition)
	}
	log.Printf("✅ %d件のレストラン候補を取得", len(candidates))

	// キャッシュを保存する
	cacheID, err := u.cacheRepo.Store(ctx, candidates)
	if err != nil {
		return nil, err
	}

	// レストランを抽選する
	restaurant, err := u.picker.Pick(candidates)
	if err != nil {
		return nil, err
	}

	// 抽選ステータスを更新する
	newStatus, err := u.statusRepo.Set(ctx, uid, cacheID, u.now())
	if err != nil {
		return nil, err
	}

	return &model.PickRestaurantResponse{
		Data:                 *restaurant,
		NextAvailableAt:      service.NextAvailableDate(*newStatus),
		RewardRemainingCount: service.RemainingRewardCount(*newStatus),
	}, nil
}
