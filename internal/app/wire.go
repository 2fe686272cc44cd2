//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	distanceGateway "quickparcel/internal/gateway/http/distance"
	paymentGateway "quickparcel/internal/gateway/http/payment"
	"quickparcel/internal/gateway/kafka/delivery_status"
	"quickparcel/internal/gateway/smtp/mailer"
	"quickparcel/internal/handlers/rest/admin_deliveries_get"
	"quickparcel/internal/handlers/rest/admin_login_post"
	"quickparcel/internal/handlers/rest/admin_partners_get"
	"quickparcel/internal/handlers/rest/admin_stats_get"
	"quickparcel/internal/handlers/rest/calculate_price_post"
	"quickparcel/internal/handlers/rest/cash_confirm_post"
	"quickparcel/internal/handlers/rest/delivery_accept_post"
	"quickparcel/internal/handlers/rest/delivery_get"
	"quickparcel/internal/handlers/rest/delivery_post"
	"quickparcel/internal/handlers/rest/delivery_status_put"
	"quickparcel/internal/handlers/rest/partner_deliveries_get"
	"quickparcel/internal/handlers/rest/partner_login_post"
	"quickparcel/internal/handlers/rest/partner_register_post"
	"quickparcel/internal/handlers/rest/partner_status_get"
	"quickparcel/internal/handlers/rest/partner_status_put"
	"quickparcel/internal/handlers/rest/payment_cash_post"
	"quickparcel/internal/handlers/rest/payment_order_post"
	"quickparcel/internal/handlers/rest/payment_verify_post"
	"quickparcel/internal/handlers/rest/stop_deliver_post"
	"quickparcel/internal/handlers/tasks/stats_refresh"
	"quickparcel/internal/pkg/auth"
	"quickparcel/internal/pkg/config"

	deliveryRepo "quickparcel/internal/repository/delivery"
	partnerRepo "quickparcel/internal/repository/partner"
	statsRepo "quickparcel/internal/repository/stats"
	adminService "quickparcel/internal/service/admin"
	deliveryService "quickparcel/internal/service/delivery"
	notificationService "quickparcel/internal/service/notification"
	partnerService "quickparcel/internal/service/partner"
	paymentService "quickparcel/internal/service/payment"
	pricingService "quickparcel/internal/service/pricing"

	"quickparcel/pkg/background"
	"quickparcel/pkg/logger"
	"quickparcel/pkg/querier"
	"quickparcel/pkg/tx"
)

type (
	StatsRefreshInterval time.Duration
)

type Application struct {
	ServicePricing    ServicePricing
	ServiceDelivery   ServiceDelivery
	ServicePartner    ServicePartner
	ServicePayment    ServicePayment
	ServiceAdmin      ServiceAdmin
	TokenIssuer       *auth.Issuer
	Publisher         *delivery_status.Publisher
	BackgroundWorkers *background.Worker
}

type ServicePricing interface {
	calculate_price_post.Service
}

type ServiceDelivery interface {
	delivery_post.Service
	delivery_get.Service
	partner_deliveries_get.Service
	delivery_accept_post.Service
	delivery_status_put.Service
	stop_deliver_post.Service
}

type ServicePartner interface {
	partner_register_post.Service
	partner_login_post.Service
	partner_status_get.Service
	partner_status_put.Service
}

type ServicePayment interface {
	payment_order_post.Service
	payment_verify_post.Service
	payment_cash_post.Service
	cash_confirm_post.Service
}

type ServiceAdmin interface {
	admin_login_post.Service
	admin_stats_get.Service
	admin_deliveries_get.Service
	admin_partners_get.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer sarama.AsyncProducer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideStatsRefreshInterval,
		provideTokenIssuer,
		providePasswordHasher,

		provideDeliveryRepository,
		providePartnerRepository,
		provideStatsRepository,

		provideDistanceGateway,
		providePaymentGateway,
		provideDeliveryStatusPublisher,

		provideServicePricing,
		provideServicePartner,
		provideServiceDelivery,
		provideServicePayment,
		provideServiceAdmin,

		provideStatsRefreshTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServicePricing), new(*pricingService.Engine)),
		wire.Bind(new(ServiceDelivery), new(*deliveryService.Delivery)),
		wire.Bind(new(ServicePartner), new(*partnerService.Partner)),
		wire.Bind(new(ServicePayment), new(*paymentService.Payment)),
		wire.Bind(new(ServiceAdmin), new(*adminService.Admin)),

		wire.Bind(new(pricingService.DistanceEstimator), new(*distanceGateway.Gateway)),

		wire.Bind(new(partnerService.Repository), new(*partnerRepo.Repository)),
		wire.Bind(new(partnerService.PasswordHasher), new(*partnerService.BcryptHasher)),

		wire.Bind(new(deliveryService.Repository), new(*deliveryRepo.Repository)),
		wire.Bind(new(deliveryService.PartnerService), new(*partnerService.Partner)),
		wire.Bind(new(deliveryService.PriceCalculator), new(*pricingService.Engine)),
		wire.Bind(new(deliveryService.Notifier), new(*delivery_status.Publisher)),
		wire.Bind(new(deliveryService.TxManager), new(*tx.Manager)),

		wire.Bind(new(paymentService.Repository), new(*deliveryRepo.Repository)),
		wire.Bind(new(paymentService.DeliveryService), new(*deliveryService.Delivery)),
		wire.Bind(new(paymentService.Gateway), new(*paymentGateway.Gateway)),
		wire.Bind(new(paymentService.Notifier), new(*delivery_status.Publisher)),

		wire.Bind(new(adminService.Repository), new(*statsRepo.Repository)),
		wire.Bind(new(adminService.PartnerService), new(*partnerService.Partner)),
		wire.Bind(new(adminService.PasswordHasher), new(*partnerService.BcryptHasher)),

		wire.Bind(new(stats_refresh.Repository), new(*statsRepo.Repository)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	NotificationService *notificationService.Notification
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-delivery-status-changed)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideMailer,
		notificationService.New,

		wire.Bind(new(notificationService.Sender), new(*mailer.Mailer)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideTokenIssuer(cfg *config.Config) *auth.Issuer {
	return auth.NewIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
}

func providePasswordHasher(cfg *config.Config) *partnerService.BcryptHasher {
	return partnerService.NewBcryptHasher(cfg.Auth.BcryptCost)
}

func provideDeliveryRepository(querier *querier.Querier) *deliveryRepo.Repository {
	return deliveryRepo.New(querier)
}

func providePartnerRepository(querier *querier.Querier) *partnerRepo.Repository {
	return partnerRepo.New(querier)
}

func provideStatsRepository(querier *querier.Querier) *statsRepo.Repository {
	return statsRepo.New(querier)
}

func provideDistanceGateway(cfg *config.Config) *distanceGateway.Gateway {
	return distanceGateway.New(cfg.Distance.BaseURL, cfg.Distance.APIKey, cfg.Distance.Timeout)
}

func providePaymentGateway(cfg *config.Config) *paymentGateway.Gateway {
	return paymentGateway.New(paymentGateway.Config{
		BaseURL:   cfg.Payment.BaseURL,
		KeyID:     cfg.Payment.KeyID,
		KeySecret: cfg.Payment.KeySecret,
		Currency:  cfg.Payment.Currency,
		Timeout:   cfg.Payment.Timeout,
	})
}

func provideDeliveryStatusPublisher(
	log logger.Logger,
	producer sarama.AsyncProducer,
	cfg *config.Config,
) *delivery_status.Publisher {
	return delivery_status.New(log, producer, cfg.Kafka.Topic, cfg.Kafka.Sarama.ProducerEnqueueTimeout)
}

func provideMailer(cfg *config.Config) *mailer.Mailer {
	return mailer.New(mailer.Config{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
		Timeout:  cfg.SMTP.Timeout,
	})
}

func provideServicePricing(
	cfg *config.Config,
	estimator pricingService.DistanceEstimator,
) (*pricingService.Engine, error) {
	pricingConfig := pricingService.Config{
		BaseFare:        cfg.Pricing.BaseFare,
		PricePerKm:      cfg.Pricing.PricePerKm,
		PricePerKg:      cfg.Pricing.PricePerKg,
		ExtraStopCharge: cfg.Pricing.ExtraStopCharge,
		FallbackLegKm:   cfg.Pricing.FallbackLegKm,
	}
	if err := pricingConfig.Validate(); err != nil {
		return nil, err
	}
	return pricingService.New(pricingConfig, estimator), nil
}

func provideServicePartner(
	repository partnerService.Repository,
	hasher partnerService.PasswordHasher,
) *partnerService.Partner {
	return partnerService.New(repository, hasher)
}

func provideServiceDelivery(
	repository deliveryService.Repository,
	partnerService deliveryService.PartnerService,
	pricing deliveryService.PriceCalculator,
	notifier deliveryService.Notifier,
	txManager deliveryService.TxManager,
	cfg *config.Config,
) *deliveryService.Delivery {
	return deliveryService.New(
		repository,
		partnerService,
		pricing,
		notifier,
		txManager,
		deliveryService.NewTransitionPolicy(cfg.Lifecycle.StrictTransitions),
	)
}

func provideServicePayment(
	repository paymentService.Repository,
	deliveryService paymentService.DeliveryService,
	gateway paymentService.Gateway,
	notifier paymentService.Notifier,
	cfg *config.Config,
) *paymentService.Payment {
	return paymentService.New(repository, deliveryService, gateway, notifier, cfg.Payment.KeySecret)
}

func provideServiceAdmin(
	repository adminService.Repository,
	partnerService adminService.PartnerService,
	hasher adminService.PasswordHasher,
	cfg *config.Config,
) *adminService.Admin {
	return adminService.New(repository, partnerService, hasher, adminService.Credentials{
		Email:        cfg.Auth.AdminEmail,
		PasswordHash: cfg.Auth.AdminPasswordHash,
	})
}

func provideStatsRefreshInterval(cfg *config.Config) StatsRefreshInterval {
	return StatsRefreshInterval(cfg.Tasks.StatsRefreshInterval)
}

func provideStatsRefreshTask(
	log logger.Logger,
	repository stats_refresh.Repository,
	interval StatsRefreshInterval,
) *stats_refresh.StatsRefresh {
	return stats_refresh.NewStatsRefresh(log, repository, time.Duration(interval))
}

func provideTaskList(
	statsRefreshTask *stats_refresh.StatsRefresh,
) []background.Task {
	return []background.Task{
		statsRefreshTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
