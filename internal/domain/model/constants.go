package model

import "time"

// 抽選ポリシーの定数
const (
	// PickInterval 前回の抽選から次の抽選までに必要な経過時間
	PickInterval = 6 * time.Hour

	// MaxRewardCount リワードの最大使用回数
	MaxRewardCount = 4
)

// Places Nearby Search APIに関する定数
const (
	PlacesKeyword  = "飲食店"
	PlacesRankBy   = "distance"
	PlacesLanguage = "ja"

	// PlacesPageLimit 初回を含めたリクエスト回数の上限
	PlacesPageLimit = 10

	// PlacesPageCooldown ページネーション時の待機時間
	// 次ページをすぐにリクエストするとAPI側が確実に失敗するため必要
	PlacesPageCooldown = 1200 * time.Millisecond
)
