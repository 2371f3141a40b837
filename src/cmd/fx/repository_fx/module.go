package repository_fx

import (
	padmin "github.com/xiangzhu626/jifen/src/internal/infrastructure/persistence/admin"
	pmember "github.com/xiangzhu626/jifen/src/internal/infrastructure/persistence/member"
	ppoints "github.com/xiangzhu626/jifen/src/internal/infrastructure/persistence/points"
	"go.uber.org/fx"
)

var Module = fx.Provide(
	padmin.NewAdminRepository,
	pmember.NewMemberRepository,
	pmember.NewMemberQueryRepository,
	ppoints.NewPointsAccountRepository,
	ppoints.NewPointsTransactionRepository,
	ppoints.NewLeaderboardRepository,
	ppoints.NewStatisticsRepository,
)
