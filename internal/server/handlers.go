package server

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"InvestSmart/internal/model"
)

const apiVersion = "2.0.0"

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"version":   apiVersion,
	})
}

func (s *Server) handleNews(w http.ResponseWriter, r *http.Request) {
	ticker := r.URL.Query().Get("ticker")
	if ticker == "" {
		s.writeError(w, http.StatusBadRequest, "ticker is required")
		return
	}

	items, err := s.news.FetchNews(r.Context(), ticker)
	if err != nil {
		s.log.Error().Err(err).Str("ticker", ticker).Msg("News error")
		s.writeError(w, http.StatusInternalServerError, "Failed to fetch news")
		return
	}
	s.writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	ticker := r.URL.Query().Get("ticker")
	if ticker == "" {
		s.writeError(w, http.StatusBadRequest, "ticker is required")
		return
	}

	summary, err := s.advisor.Analyze(r.Context(), ticker)
	if err != nil {
		s.log.Error().Err(err).Str("ticker", ticker).Msg("Analysis error")
		s.writeError(w, http.StatusInternalServerError, "Failed to analyze market")
		return
	}
	s.writeJSON(w, http.StatusOK, summary)
}

func (s *Server) handleStrategy(w http.ResponseWriter, r *http.Request) {
	ticker := r.URL.Query().Get("ticker")
	if ticker == "" {
		s.writeError(w, http.StatusBadRequest, "ticker is required")
		return
	}

	rec, err := s.advisor.Recommend(r.Context(), ticker)
	if err != nil {
		s.log.Error().Err(err).Str("ticker", ticker).Msg("Strategy error")
		s.writeError(w, http.StatusInternalServerError, "Failed to generate strategy")
		return
	}
	s.writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handlePrices(w http.ResponseWriter, r *http.Request) {
	ticker := r.URL.Query().Get("ticker")
	if ticker == "" {
		s.writeError(w, http.StatusBadRequest, "ticker is required")
		return
	}
	period := r.URL.Query().Get("period")
	if period == "" {
		period = "1M"
	}

	snap, err := s.advisor.Prices(r.Context(), ticker, period)
	if err != nil {
		s.log.Error().Err(err).Str("ticker", ticker).Msg("Price error")
		s.writeError(w, http.StatusInternalServerError, "Failed to fetch price data")
		return
	}
	s.writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Ticker   string `json:"ticker"`
		Strategy string `json:"strategy"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Ticker == "" {
		s.writeError(w, http.StatusBadRequest, "ticker is required")
		return
	}

	s.writeJSON(w, http.StatusOK, s.advisor.Simulate(r.Context(), req.Ticker, req.Strategy))
}

func (s *Server) handleFundamentals(w http.ResponseWriter, r *http.Request) {
	ticker := r.URL.Query().Get("ticker")
	if ticker == "" {
		s.writeError(w, http.StatusBadRequest, "ticker is required")
		return
	}
	s.writeJSON(w, http.StatusOK, s.advisor.Fundamentals(ticker))
}

func (s *Server) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	risk := r.URL.Query().Get("risk")
	if risk == "" {
		risk = "moderate"
	}
	term := r.URL.Query().Get("term")
	if term == "" {
		term = "medium"
	}

	s.writeJSON(w, http.StatusOK, s.advisor.GenerateSuggestions(r.Context(), risk, term))
}

func (s *Server) handleScreener(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filters := model.ScreenerFilters{
		MarketCap: q.Get("marketCap"),
		Sector:    q.Get("sector"),
		PERatio:   q.Get("peRatio"),
	}
	s.writeJSON(w, http.StatusOK, s.advisor.Screen(filters))
}

func (s *Server) handleMarketOverview(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.advisor.MarketOverview(r.Context()))
}

func (s *Server) handleMarketMovers(w http.ResponseWriter, r *http.Request) {
	moverType := r.URL.Query().Get("type")
	if moverType == "" {
		moverType = "gainers"
	}
	s.writeJSON(w, http.StatusOK, s.advisor.Movers(moverType))
}

func (s *Server) handleCurrentPrice(w http.ResponseWriter, r *http.Request) {
	ticker := r.URL.Query().Get("ticker")
	if ticker == "" {
		s.writeError(w, http.StatusBadRequest, "ticker is required")
		return
	}
	s.writeJSON(w, http.StatusOK, s.advisor.CurrentPrice(ticker))
}

func (s *Server) handleSectorAnalysis(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.advisor.SectorAnalysis())
}

func (s *Server) handleInsights(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.advisor.Insights())
}

func (s *Server) handleMarketSentiment(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.advisor.MarketSentiment())
}

func (s *Server) handleEconomicIndicators(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.advisor.EconomicIndicators())
}

func (s *Server) handleEducationalContent(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if category == "" {
		category = "all"
	}
	s.writeJSON(w, http.StatusOK, s.advisor.EducationalContent(category))
}

func (s *Server) handleCompareStocks(w http.ResponseWriter, r *http.Request) {
	tickers := r.URL.Query().Get("tickers")
	if tickers == "" {
		s.writeError(w, http.StatusBadRequest, "tickers is required")
		return
	}
	s.writeJSON(w, http.StatusOK, s.advisor.CompareStocks(strings.Split(tickers, ",")))
}

func (s *Server) handlePortfolioAnalysis(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Holdings []string `json:"holdings"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	s.writeJSON(w, http.StatusOK, s.advisor.AnalyzePortfolio(req.Holdings))
}

func (s *Server) handleRiskAssessment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Holdings      []string `json:"holdings"`
		RiskTolerance string   `json:"riskTolerance"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	s.writeJSON(w, http.StatusOK, s.advisor.AssessHoldingsRisk(req.Holdings, req.RiskTolerance))
}

func (s *Server) handleGetWatchlist(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		userID = "default"
	}
	s.writeJSON(w, http.StatusOK, s.advisor.Watchlist(userID))
}

func (s *Server) handleUpdateWatchlist(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Symbols []string `json:"symbols"`
		UserID  string   `json:"userId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.UserID == "" {
		req.UserID = "default"
	}

	s.advisor.UpdateWatchlist(req.UserID, req.Symbols)
	s.writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Watchlist updated",
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}
