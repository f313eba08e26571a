package salesapiclient

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"path"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	salesapidomain "github.com/Carlos-D04/AtosCapitais2-main/infrastructure/integrator/salesapi/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var ErrUnauthorized = errors.New("token recusado pela API de vendas")

type DashboardDataParams struct {
	Ctx   context.Context
	Token string
}

type DashboardDataResponse = salesapidomain.DashboardResponse

func (c *SalesAPIClient) GetDashboardData(params DashboardDataParams) (DashboardDataResponse, error) {
	var response DashboardDataResponse

	ctx := params.Ctx
	if ctx == nil {
		ctx = context.Background()
	}

	// Construir a URL da requisição.
	endpoint, err := url.Parse(c.config.URL)
	if err != nil {
		return response, errors.Wrap(err, "erro ao analisar a URL base")
	}
	endpoint.Path = path.Join(endpoint.Path, c.config.Path)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return response, errors.Wrap(err, "erro ao criar a requisição")
	}

	req.Header.Set("Authorization", "Bearer "+params.Token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return response, errors.Wrap(err, "erro ao executar a requisição")
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return response, errors.Wrapf(ErrUnauthorized, "status %s", resp.Status)
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return response, errors.Errorf("requisição falhou com status: %s: %s", resp.Status, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return response, errors.Wrap(err, "erro ao decodificar a resposta")
	}

	return response, nil
}
