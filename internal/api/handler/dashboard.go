package handler

import (
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"

	"github.com/Carlos-D04/AtosCapitais2-main/internal/domain"
	"github.com/Carlos-D04/AtosCapitais2-main/internal/usecases/dashboard"
	"github.com/Carlos-D04/AtosCapitais2-main/pkg/apiErrors"
	"github.com/Carlos-D04/AtosCapitais2-main/pkg/log"
	"github.com/Carlos-D04/AtosCapitais2-main/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// FiltersRequest aceita o ano como texto ("2024", "all") ou número (2024)
type FiltersRequest struct {
	Branch any `json:"branch"`
	Year   any `json:"year"`
}

// ForecastMonthRequest aceita o mês como número (3) ou nome ("marco")
type ForecastMonthRequest struct {
	Month any `json:"month"`
}

// GetDashboard retorna o pacote completo do painel com a seleção atual
func GetDashboard(service dashboard.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := sessionOrUnauthorized(w, r)
		if !ok {
			return
		}

		view, err := service.View(r.Context(), session.Token)
		if err != nil {
			writeDashboardError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, view)
	})
}

// UpdateFilters troca a filial e o ano selecionados
func UpdateFilters(service dashboard.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := sessionOrUnauthorized(w, r)
		if !ok {
			return
		}

		var req FiltersRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		branch, okBranch := scalarValue(req.Branch)
		year, okYear := scalarValue(req.Year)
		if !okBranch || !okYear {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Filial e ano devem ser texto ou número", nil)
			return
		}

		log.ForSession(r.Context(), session.Token).WithFields(log.Fields{
			"branch": branch,
			"year":   year,
		}).Info("dashboard: atualizando filtros")

		view, err := service.SetFilters(r.Context(), session.Token, branch, year)
		if err != nil {
			writeDashboardError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, view)
	})
}

// UpdateForecastMonth troca o mês da previsão
func UpdateForecastMonth(service dashboard.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := sessionOrUnauthorized(w, r)
		if !ok {
			return
		}

		var req ForecastMonthRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		month, valid := scalarValue(req.Month)
		if !valid || month == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Informe o mês da previsão", nil)
			return
		}

		view, err := service.SetForecastMonth(r.Context(), session.Token, month)
		if err != nil {
			writeDashboardError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, view)
	})
}

func GetFilterHistory(service dashboard.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := sessionOrUnauthorized(w, r)
		if !ok {
			return
		}

		entries, err := service.History(r.Context(), session.Token)
		if err != nil {
			writeDashboardError(w, r, err)
			return
		}
		if entries == nil {
			entries = []domain.HistoryEntry{}
		}

		writeJSON(w, r, http.StatusOK, map[string]any{
			"entries": entries,
			"total":   len(entries),
		})
	})
}

// GetSeries retorna apenas uma das séries comparativas
func GetSeries(service dashboard.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := sessionOrUnauthorized(w, r)
		if !ok {
			return
		}

		mode := httprouter.ParamsFromContext(r.Context()).ByName("mode")
		if mode == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Modo da série não especificado", nil)
			return
		}

		series, err := service.Series(r.Context(), session.Token, mode)
		if err != nil {
			writeDashboardError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, series)
	})
}

// ReloadDashboard busca os dados de novo; é a saída do estado de falha
func ReloadDashboard(service dashboard.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := sessionOrUnauthorized(w, r)
		if !ok {
			return
		}

		log.ForSession(r.Context(), session.Token).Info("dashboard: recarregando dados")

		view, err := service.Reload(r.Context(), session.Token)
		if err != nil {
			writeDashboardError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, view)
	})
}

func sessionOrUnauthorized(w http.ResponseWriter, r *http.Request) (*domain.Session, bool) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrMissingToken, "Token de acesso ausente", nil)
		return nil, false
	}
	return session, true
}

// scalarValue converte o valor decodificado do JSON em texto; nil vira ""
func scalarValue(v any) (string, bool) {
	switch value := v.(type) {
	case nil:
		return "", true
	case string:
		return value, true
	case float64:
		if value != float64(int64(value)) {
			return "", false
		}
		return strconv.FormatInt(int64(value), 10), true
	default:
		return "", false
	}
}

func writeDashboardError(w http.ResponseWriter, r *http.Request, err error) {
	logger := log.ForContext(r.Context()).WithError(err)

	var dashErr *dashboard.DashboardError
	if !errors.As(err, &dashErr) {
		logger.Error("dashboard: erro inesperado")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno do servidor", nil)
		return
	}

	var details any
	if dashErr.Details != "" {
		details = map[string]any{"detail": dashErr.Details}
	}

	if errors.Is(err, dashboard.ErrFetchFailure) {
		logger.Warn("dashboard: dados de vendas indisponíveis")
	} else {
		logger.Info("dashboard: requisição rejeitada")
	}

	apiErrors.WriteError(w, dashErr.Code, dashErr.Err.Error(), details)
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("erro ao codificar resposta")
	}
}
