package usecase_fx

import (
	appauth "github.com/xiangzhu626/jifen/src/internal/application/auth"
	appmember "github.com/xiangzhu626/jifen/src/internal/application/member"
	apppoints "github.com/xiangzhu626/jifen/src/internal/application/points"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(
		appauth.NewLoginUseCase,
		appauth.NewVerifyTokenUseCase,
		appauth.NewChangePasswordUseCase,
		appauth.NewEnsureDefaultAdminUseCase,
	),
	fx.Provide(
		appmember.NewCreateMemberUseCase,
		appmember.NewUpdateMemberUseCase,
		appmember.NewDeleteMemberUseCase,
		appmember.NewGetMemberUseCase,
		appmember.NewListMembersUseCase,
		appmember.NewSeedSampleMembersUseCase,
	),
	fx.Provide(
		apppoints.NewCreditPointsUseCase,
		apppoints.NewDebitPointsUseCase,
		apppoints.NewGetPointsBalanceUseCase,
		apppoints.NewListTransactionsUseCase,
		apppoints.NewGetRankingUseCase,
		apppoints.NewSearchByPlanetIDUseCase,
		apppoints.NewGetStatisticsUseCase,
	),
)
