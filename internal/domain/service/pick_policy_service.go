package service

import (
	"time"

	"MeshiDoko-App/internal/domain/model"
)

// CheckCanPick 抽選が可能であるか判定する
// 前回の抽選がない場合は常に許可し、インターバル経過ちょうどの境界も許可する
func CheckCanPick(status *model.PickStatus, now time.Time) bool {
	if status == nil {
		return true
	}
	return now.Sub(status.PickedAt) >= model.PickInterval
}

// NextAvailableDate 次回抽選可能日時を取得する
func NextAvailableDate(status model.PickStatus) time.Time {
	return status.PickedAt.Add(model.PickInterval)
}

// RemainingRewardCount 残りリワード使用回数を取得する
// 使用履歴がない場合は未使用として扱う
func RemainingRewardCount(status model.PickStatus) int {
	remaining := model.MaxRewardCount - len(status.UsedRewards)
	if remaining < 0 {
		return 0
	}
	return remaining
}
