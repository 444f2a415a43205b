package wire

import (
	"TeleInvest/internal/api"
	"TeleInvest/internal/api/config"
	"TeleInvest/internal/api/handler"
	"TeleInvest/internal/job"
	"TeleInvest/internal/pkg/cron"
	"TeleInvest/internal/pkg/es"
	"TeleInvest/internal/pkg/kafka"
	pkgmongo "TeleInvest/internal/pkg/mongo"
	"TeleInvest/internal/repository"
	"TeleInvest/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// ApplicationContainer bundles the top-level components the app runs.
type ApplicationContainer struct {
	Router       *gin.Engine
	DB           *gorm.DB
	Producer     *kafka.Producer
	KafkaManager *kafka.ConsumerManager
	CronMgr      *cron.Manager
}

func BuildApplication(db *gorm.DB, mongoDB *mongo.Database, cfg *config.Config) (*ApplicationContainer, error) {
	channelRepo := repository.NewChannelRepo(db)
	investRepo := repository.NewInvestmentRepo(db)
	profileRepo := repository.NewProfileRepo(db)
	distributionRepo := repository.NewDistributionRepo(db)
	journalRepo := pkgmongo.NewPurchaseRecordRepo(mongoDB)
	searchRepo := es.NewChannelRepo(es.Client)

	producer, err := kafka.NewProducer(cfg)
	if err != nil {
		return nil, err
	}

	cache := service.NewRedisChannelCache()
	deduper := service.NewRedisRequestDeduper()
	notifier := service.NewRedisInventoryNotifier()

	channelService := service.NewChannelService(channelRepo, investRepo, searchRepo, cache)
	investmentService := service.NewInvestmentService(channelRepo, investRepo, journalRepo, deduper, producer, notifier, cache)
	portfolioService := service.NewPortfolioService(investRepo, channelRepo)
	profileService := service.NewProfileService(profileRepo)
	authService := service.NewAuthService()

	handlers := &api.HandlersGroup{
		AuthHandler:       handler.NewAuthHandler(authService),
		ChannelHandler:    handler.NewChannelHandler(channelService),
		InvestmentHandler: handler.NewInvestmentHandler(investmentService),
		PortfolioHandler:  handler.NewPortfolioHandler(portfolioService, profileService),
		WsHandler:         handler.NewWsHandler(),
	}

	router := api.SetupRouter(handlers)

	kafkaMgr, err := kafka.NewConsumerManager(cfg, journalRepo)
	if err != nil {
		return nil, err
	}

	cronMgr := cron.NewCronManager(
		job.NewReconcileJob(investRepo, profileRepo),
		job.NewDistributionJob(channelRepo, distributionRepo),
	)

	return &ApplicationContainer{
		Router:       router,
		DB:           db,
		Producer:     producer,
		KafkaManager: kafkaMgr,
		CronMgr:      cronMgr,
	}, nil
}
