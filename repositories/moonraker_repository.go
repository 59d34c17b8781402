package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/cockroachdb/errors"

	"github.com/printfarm/printfarm-backend/models"
	"github.com/printfarm/printfarm-backend/repositories/httpmodels"
	"github.com/printfarm/printfarm-backend/utils"
)

const (
	moonrakerStatusPath     = "/printer/objects/query"
	moonrakerStatusQuery    = "print_stats&display_status"
	moonrakerAttempts       = 2
	moonrakerRetryDelay     = 250 * time.Millisecond
	moonrakerMaxPayloadSize = 1 << 20
)

type MoonrakerRepository interface {
	QueryPrinterStatus(ctx context.Context, baseUrl string) (models.MoonrakerStatus, error)
}

type MoonrakerRepositoryImpl struct {
	client *http.Client
}

func NewMoonrakerRepository(client *http.Client) MoonrakerRepositoryImpl {
	return MoonrakerRepositoryImpl{client: client}
}

func (repo MoonrakerRepositoryImpl) QueryPrinterStatus(ctx context.Context, baseUrl string) (models.MoonrakerStatus, error) {
	url := fmt.Sprintf("%s%s?%s", baseUrl, moonrakerStatusPath, moonrakerStatusQuery)

	var response httpmodels.HTTPMoonrakerQueryResponse
	err := retry.Do(
		func() error {
			var err error
			response, err = repo.queryOnce(ctx, url)
			return err
		},
		retry.Context(ctx),
		retry.Attempts(moonrakerAttempts),
		retry.Delay(moonrakerRetryDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			utils.LoggerFromContext(ctx).DebugContext(ctx,
				fmt.Sprintf("retrying Moonraker query %s (attempt %d): %v", baseUrl, n+1, err))
		}),
	)
	if err != nil {
		return models.MoonrakerStatus{}, err
	}

	return httpmodels.AdaptMoonrakerStatus(response), nil
}

func (repo MoonrakerRepositoryImpl) queryOnce(ctx context.Context, url string) (httpmodels.HTTPMoonrakerQueryResponse, error) {
	var response httpmodels.HTTPMoonrakerQueryResponse

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return response, retry.Unrecoverable(errors.Wrap(err, "could not build Moonraker request"))
	}

	resp, err := repo.client.Do(req)
	if err != nil {
		return response, errors.Wrap(err, "could not reach Moonraker")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return response, errors.Newf("Moonraker returned status %d", resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		return response, retry.Unrecoverable(errors.Newf("Moonraker returned status %d", resp.StatusCode))
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, moonrakerMaxPayloadSize)).Decode(&response); err != nil {
		return response, retry.Unrecoverable(errors.Wrap(err, "could not decode Moonraker response"))
	}
	return response, nil
}
