package model

import (
	"encoding/json"
	"time"
)

// EarnedReward 獲得リワード情報
type EarnedReward struct {
	RewardID string    `json:"rewardId"`
	EarnedAt time.Time `json:"earnedAt"`
}

// UsedReward 使用済みリワード情報
type UsedReward struct {
	RewardID string    `json:"rewardId"`
	UsedAt   time.Time `json:"usedAt"`
}

// PickStatus ユーザーごとの抽選ステータス
type PickStatus struct {
	CacheID      string
	PickedAt     time.Time
	EarnedReward *EarnedReward
	UsedRewards  []UsedReward
}

// ワイヤ表現（KVストア上のJSON形状）
type pickStatusData struct {
	CacheID      string       `json:"cacheId"`
	PickedAt     string       `json:"pickedAt"`
	EarnedReward *rewardData  `json:"earnedReward,omitempty"`
	UsedRewards  []rewardData `json:"usedRewards,omitempty"`
}

type rewardData struct {
	RewardID string `json:"rewardId"`
	EarnedAt string `json:"earnedAt,omitempty"`
	UsedAt   string `json:"usedAt,omitempty"`
}

// ParsePickStatus 保存データを抽選ステータスとして厳密にパースする
// いずれかのフィールドが不正な場合はステータス全体を不存在として扱いnilを返す
func ParsePickStatus(data []byte) *PickStatus {
	var raw pickStatusData
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}
	if raw.CacheID == "" {
		return nil
	}
	pickedAt, err := time.Parse(time.RFC3339, raw.PickedAt)
	if err != nil {
		return nil
	}

	status := &PickStatus{
		CacheID:  raw.CacheID,
		PickedAt: pickedAt,
	}

	if raw.EarnedReward != nil {
		earnedAt, err := time.Parse(time.RFC3339, raw.EarnedReward.EarnedAt)
		if err != nil || raw.EarnedReward.RewardID == "" {
			return nil
		}
		status.EarnedReward = &EarnedReward{
			RewardID: raw.EarnedReward.RewardID,
			EarnedAt: earnedAt,
		}
	}

	if raw.UsedRewards != nil {
		used := make([]UsedReward, 0, len(raw.UsedRewards))
		for _, entry := range raw.UsedRewards {
			usedAt, err := time.Parse(time.RFC3339, entry.UsedAt)
			if err != nil || entry.RewardID == "" {
				return nil
			}
			used = append(used, UsedReward{RewardID: entry.RewardID, UsedAt: usedAt})
		}
		status.UsedRewards = used
	}

	return status
}

// Data KVストア保存用のワイヤ表現に変換する
func (s *PickStatus) Data() map[string]interface{} {
	data := map[string]interface{}{
		"cacheId":  s.CacheID,
		"pickedAt": s.PickedAt.UTC().Format(time.RFC3339),
	}
	if s.EarnedReward != nil {
		data["earnedReward"] = map[string]interface{}{
			"rewardId": s.EarnedReward.RewardID,
			"earnedAt": s.EarnedReward.EarnedAt.UTC().Format(time.RFC3339),
		}
	}
	if s.UsedRewards != nil {
		used := make([]map[string]interface{}, 0, len(s.UsedRewards))
		for _, entry := range s.UsedRewards {
			used = append(used, map[string]interface{}{
				"rewardId": entry.RewardID,
				"usedAt":   entry.UsedAt.UTC().Format(time.RFC3339),
			})
		}
		data["usedRewards"] = used
	}
	return data
}
