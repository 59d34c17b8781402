package repositories

import (
	"net/http"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"

	"github.com/printfarm/printfarm-backend/repositories/clock"
)

type options struct {
	riverClient      *river.Client[pgx.Tx]
	jwtSigningKey    []byte
	tokenLifetime    time.Duration
	moonrakerTimeout time.Duration
	httpClient       *http.Client
	clock            clock.Clock
}

type Option func(*options)

func WithRiverClient(client *river.Client[pgx.Tx]) Option {
	return func(o *options) {
		o.riverClient = client
	}
}

func WithJwtSigning(key []byte, lifetime time.Duration) Option {
	return func(o *options) {
		o.jwtSigningKey = key
		o.tokenLifetime = lifetime
	}
}

func WithMoonrakerTimeout(timeout time.Duration) Option {
	return func(o *options) {
		o.moonrakerTimeout = timeout
	}
}

func WithHttpClient(client *http.Client) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

func WithClock(c clock.Clock) Option {
	return func(o *options) {
		o.clock = c
	}
}

type Repositories struct {
	ExecutorGetter        ExecutorGetter
	PrintfarmDbRepository *PrintfarmDbRepository
	TaskQueueRepository   TaskQueueRepository
	JwtRepository         JwtRepository
	MoonrakerRepository   MoonrakerRepository
	TimelineNotifier      TimelineNotifier
	Clock                 clock.Clock
}

func NewRepositories(pool *pgxpool.Pool, opts ...Option) Repositories {
	o := &options{
		tokenLifetime:    2 * time.Hour,
		moonrakerTimeout: 10 * time.Second,
		clock:            clock.New(),
	}
	for _, opt := range opts {
		opt(o)
	}

	httpClient := o.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: o.moonrakerTimeout}
	}

	return Repositories{
		ExecutorGetter:        NewExecutorGetter(pool),
		PrintfarmDbRepository: &PrintfarmDbRepository{},
		TaskQueueRepository:   NewTaskQueueRepository(o.riverClient),
		JwtRepository:         NewJwtRepository(o.jwtSigningKey, o.tokenLifetime, o.clock),
		MoonrakerRepository:   NewMoonrakerRepository(httpClient),
		TimelineNotifier:      NewTimelineNotifier(pool),
		Clock:                 o.clock,
	}
}

type PrintfarmDbRepository struct{}
