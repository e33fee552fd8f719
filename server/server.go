// Package server exposes the dashboard over HTTP: an HTML page, a JSON
// report endpoint, and PNG chart endpoints. Every request recomputes its
// report synchronously from the immutable in-memory table; there is no
// caching between requests.
package server

import (
	"embed"
	"encoding/json"
	"html/template"
	"net/http"
	"net/url"

	"tourism-dashboard/charts"
	"tourism-dashboard/models"
	"tourism-dashboard/services"
	"tourism-dashboard/utils"
)

//go:embed templates/index.html
var templateFS embed.FS

// Server serves the dashboard from a loaded review table.
type Server struct {
	logger   *utils.Logger
	reviews  []*models.Review
	insights *services.InsightService
	tmpl     *template.Template
}

// New creates a Server over the cleaned review table.
func New(logger *utils.Logger, reviews []*models.Review, insights *services.InsightService) (*Server, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/index.html")
	if err != nil {
		return nil, err
	}
	return &Server{
		logger:   logger,
		reviews:  reviews,
		insights: insights,
		tmpl:     tmpl,
	}, nil
}

// Handler returns the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/api/report", s.handleReport)
	mux.HandleFunc("/charts/", s.handleChart)
	return mux
}

// ListenAndServe blocks serving the dashboard on addr.
func (s *Server) ListenAndServe(addr string) error {
	s.logger.Info("[server] Dashboard listening on %s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

type option struct {
	Value    string
	Selected bool
}

type pageData struct {
	Report           *models.DashboardReport
	SentimentOptions []option
	AreaOptions      []option
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	f := s.parseFilter(r.URL.Query())
	report := s.insights.Generate(s.reviews, f)

	data := pageData{
		Report:           report,
		SentimentOptions: buildOptions(services.DistinctSentiments(s.reviews).Values(), f.Sentiments),
		AreaOptions:      buildOptions(services.DistinctAreaTypes(s.reviews).Values(), f.AreaTypes),
	}
	if err := s.tmpl.Execute(w, data); err != nil {
		s.logger.Error("[server] Template render failed: %v", err)
	}
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	f := s.parseFilter(r.URL.Query())
	report := s.insights.Generate(s.reviews, f)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(report); err != nil {
		s.logger.Error("[server] JSON encode failed: %v", err)
	}
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	report := s.insights.Generate(s.reviews, services.AllFilter(s.reviews))

	var png []byte
	var err error
	switch r.URL.Path {
	case "/charts/area.png":
		png, err = charts.CategoryBar("Review Distribution by Area Type", "Review Count", report.AreaCounts)
	case "/charts/sentiment.png":
		png, err = charts.CategoryBar("Sentiment Distribution in Reviews", "Review Count", report.SentimentCounts)
	case "/charts/destinations.png":
		png, err = charts.DestinationBar("Top Rural Destinations by Positive Reviews", report.TopDestinations)
	case "/charts/districts.png":
		png, err = charts.DistrictBar("Top Districts by Average Sentiment Score", report.TopDistricts)
	default:
		http.NotFound(w, r)
		return
	}
	if err != nil {
		s.logger.Error("[server] Chart render failed for %s: %v", r.URL.Path, err)
		http.Error(w, "chart rendering failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(png)
}

// parseFilter derives the filter from query parameters. An absent parameter
// selects every observed value (the page default-selects everything); a
// parameter that is present but carries no usable value selects nothing,
// preserving the strict empty-set semantics of the filter engine.
func (s *Server) parseFilter(q url.Values) services.Filter {
	f := services.Filter{
		Sentiments: querySet(q, "sentiment", func() *utils.Set { return services.DistinctSentiments(s.reviews) }),
		AreaTypes:  querySet(q, "area", func() *utils.Set { return services.DistinctAreaTypes(s.reviews) }),
	}
	return f
}

func querySet(q url.Values, key string, observed func() *utils.Set) *utils.Set {
	values, present := q[key]
	if !present {
		return observed()
	}
	set := utils.NewSet()
	for _, v := range values {
		if v == "" {
			continue
		}
		set.Add(services.TitleCase(v))
	}
	return set
}

func buildOptions(observed []string, selected *utils.Set) []option {
	opts := make([]option, 0, len(observed))
	for _, v := range observed {
		opts = append(opts, option{Value: v, Selected: selected.Contains(v)})
	}
	return opts
}
