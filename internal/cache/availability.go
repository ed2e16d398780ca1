package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"

	"github.com/bemviver/clinic-scheduler/internal/domain/schedule"
)

// TTL curto: a leitura de disponibilidade tolera consistência frouxa,
// e todo agendamento novo invalida as chaves de qualquer forma.
const availabilityTTL = 30 * time.Second

const keyPrefix = "avail:"

// AvailabilityCache guarda respostas de disponibilidade no Redis.
// Sem endereço configurado o cache fica desligado e todos os métodos
// viram no-op.
type AvailabilityCache struct {
	client *redis.Client
	logger zerolog.Logger
}

func New(addr string, logger zerolog.Logger) *AvailabilityCache {
	if addr == "" {
		return &AvailabilityCache{logger: logger}
	}
	return &AvailabilityCache{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		logger: logger,
	}
}

// NewWithClient injeta um client pronto (testes com miniredis).
func NewWithClient(client *redis.Client, logger zerolog.Logger) *AvailabilityCache {
	return &AvailabilityCache{client: client, logger: logger}
}

func (c *AvailabilityCache) Enabled() bool {
	return c.client != nil
}

func Key(service, from string, days int) string {
	return fmt.Sprintf("%s%s:%s:%d", keyPrefix, service, from, days)
}

func (c *AvailabilityCache) Get(ctx context.Context, key string) ([]schedule.DayAvailability, bool) {
	if c.client == nil {
		return nil, false
	}

	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn().Err(err).Msg("availability cache read failed")
		}
		return nil, false
	}

	var days []schedule.DayAvailability
	if err := json.Unmarshal(raw, &days); err != nil {
		return nil, false
	}
	return days, true
}

func (c *AvailabilityCache) Set(ctx context.Context, key string, days []schedule.DayAvailability) {
	if c.client == nil {
		return
	}

	raw, err := json.Marshal(days)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, raw, availabilityTTL).Err(); err != nil {
		c.logger.Warn().Err(err).Msg("availability cache write failed")
	}
}

// Invalidate derruba todas as chaves de disponibilidade. Chamado após
// cada escrita de agendamento.
func (c *AvailabilityCache) Invalidate(ctx context.Context) {
	if c.client == nil {
		return
	}

	iter := c.client.Scan(ctx, 0, keyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			c.logger.Warn().Err(err).Msg("availability cache invalidate failed")
		}
	}
	if err := iter.Err(); err != nil {
		c.logger.Warn().Err(err).Msg("availability cache scan failed")
	}
}
