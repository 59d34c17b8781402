package usecases

import (
	"time"

	"github.com/printfarm/printfarm-backend/repositories"
	"github.com/printfarm/printfarm-backend/usecases/executor_factory"
	"github.com/printfarm/printfarm-backend/usecases/worker_jobs"
)

const DefaultMoonrakerSyncConcurrency = 4

type Usecases struct {
	Repositories             repositories.Repositories
	moonrakerSyncConcurrency int
	location                 *time.Location
}

type Option func(*options)

func WithMoonrakerSyncConcurrency(concurrency int) Option {
	return func(o *options) {
		o.moonrakerSyncConcurrency = concurrency
	}
}

// WithLocation sets the timezone used for calendar based aggregates.
func WithLocation(location *time.Location) Option {
	return func(o *options) {
		o.location = location
	}
}

type options struct {
	moonrakerSyncConcurrency int
	location                 *time.Location
}

func NewUsecases(repositories repositories.Repositories, opts ...Option) Usecases {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.moonrakerSyncConcurrency <= 0 {
		o.moonrakerSyncConcurrency = DefaultMoonrakerSyncConcurrency
	}
	if o.location == nil {
		o.location = time.UTC
	}
	return Usecases{
		Repositories:             repositories,
		moonrakerSyncConcurrency: o.moonrakerSyncConcurrency,
		location:                 o.location,
	}
}

func (usecases *Usecases) NewExecutorFactory() executor_factory.ExecutorFactory {
	return executor_factory.NewDbExecutorFactory(usecases.Repositories.ExecutorGetter)
}

func (usecases *Usecases) NewTransactionFactory() executor_factory.TransactionFactory {
	return executor_factory.NewDbExecutorFactory(usecases.Repositories.ExecutorGetter)
}

func (usecases *Usecases) NewLivenessUsecase() LivenessUsecase {
	return LivenessUsecase{
		executorFactory:    usecases.NewExecutorFactory(),
		livenessRepository: usecases.Repositories.PrintfarmDbRepository,
	}
}

func (usecases *Usecases) NewAuthUsecase() AuthUsecase {
	return AuthUsecase{
		executorFactory: usecases.NewExecutorFactory(),
		userRepository:  usecases.Repositories.PrintfarmDbRepository,
		jwtRepository:   usecases.Repositories.JwtRepository,
	}
}

func (usecases *Usecases) NewSeedUseCase() SeedUseCase {
	return SeedUseCase{
		executorFactory: usecases.NewExecutorFactory(),
		userRepository:  usecases.Repositories.PrintfarmDbRepository,
	}
}

func (usecases *Usecases) NewPrinterUsecase() PrinterUsecase {
	return PrinterUsecase{
		executorFactory:     usecases.NewExecutorFactory(),
		transactionFactory:  usecases.NewTransactionFactory(),
		repository:          usecases.Repositories.PrintfarmDbRepository,
		taskQueueRepository: usecases.Repositories.TaskQueueRepository,
		timelineNotifier:    usecases.Repositories.TimelineNotifier,
	}
}

func (usecases *Usecases) NewFilamentUsecase() FilamentUsecase {
	return FilamentUsecase{
		executorFactory: usecases.NewExecutorFactory(),
		repository:      usecases.Repositories.PrintfarmDbRepository,
	}
}

func (usecases *Usecases) NewJobUsecase() JobUsecase {
	return JobUsecase{
		executorFactory:    usecases.NewExecutorFactory(),
		transactionFactory: usecases.NewTransactionFactory(),
		repository:         usecases.Repositories.PrintfarmDbRepository,
		timelineNotifier:   usecases.Repositories.TimelineNotifier,
	}
}

func (usecases *Usecases) NewSettingUsecase() SettingUsecase {
	return SettingUsecase{
		executorFactory: usecases.NewExecutorFactory(),
		repository:      usecases.Repositories.PrintfarmDbRepository,
	}
}

func (usecases *Usecases) NewMoonrakerUsecase() MoonrakerUsecase {
	return MoonrakerUsecase{
		executorFactory:     usecases.NewExecutorFactory(),
		repository:          usecases.Repositories.PrintfarmDbRepository,
		moonrakerRepository: usecases.Repositories.MoonrakerRepository,
		timelineNotifier:    usecases.Repositories.TimelineNotifier,
		clock:               usecases.Repositories.Clock,
		syncConcurrency:     usecases.moonrakerSyncConcurrency,
	}
}

func (usecases *Usecases) NewTimelineUsecase() TimelineUsecase {
	return TimelineUsecase{
		executorFactory:  usecases.NewExecutorFactory(),
		repository:       usecases.Repositories.PrintfarmDbRepository,
		timelineNotifier: usecases.Repositories.TimelineNotifier,
		clock:            usecases.Repositories.Clock,
		updateDelay:      timelineUpdateDelay,
	}
}

func (usecases *Usecases) NewDashboardUsecase() DashboardUsecase {
	return DashboardUsecase{
		executorFactory: usecases.NewExecutorFactory(),
		repository:      usecases.Repositories.PrintfarmDbRepository,
		clock:           usecases.Repositories.Clock,
		location:        usecases.location,
	}
}

func (usecases *Usecases) NewPrinterSyncAllWorker() *worker_jobs.PrinterSyncAllWorker {
	uc := usecases.NewMoonrakerUsecase()
	return worker_jobs.NewPrinterSyncAllWorker(&uc)
}

func (usecases *Usecases) NewPrinterSyncWorker() *worker_jobs.PrinterSyncWorker {
	uc := usecases.NewMoonrakerUsecase()
	return worker_jobs.NewPrinterSyncWorker(&uc)
}
