package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/dealer-insights/internal/enrich"
	"github.com/sells-group/dealer-insights/internal/model"
	"github.com/sells-group/dealer-insights/internal/report"
	"github.com/sells-group/dealer-insights/internal/sentiment"
)

var (
	servePort     int
	serveNoEnrich bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the dashboard JSON API",
	Long:  "Loads the dataset, backfills missing coordinates once, then serves filterable aggregate views over HTTP. The dataset is read-only after startup.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		dealers, err := loadDealers()
		if err != nil {
			return err
		}

		// Enrichment runs to completion before the first request is served.
		if !serveNoEnrich {
			enrich.Backfill(ctx, dealers, newGeocoder())
		}

		classifier := sentiment.NewClassifier(nil)
		mux := buildMux(dealers, classifier)

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: requestLogger(mux),
		}

		// Graceful shutdown
		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			srv.Shutdown(ctx)
		}()

		zap.L().Info("starting server", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "server listen")
		}

		return nil
	},
}

// buildMux wires the dashboard API routes over the enriched dataset.
func buildMux(dealers []model.Dealer, classifier *sentiment.Classifier) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	mux.HandleFunc("GET /api/dealers", func(w http.ResponseWriter, r *http.Request) {
		criteria, err := criteriaFromQuery(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		writeJSON(w, http.StatusOK, report.Filter(dealers, criteria))
	})

	mux.HandleFunc("GET /api/overview", func(w http.ResponseWriter, r *http.Request) {
		criteria, err := criteriaFromQuery(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		filtered := report.Filter(dealers, criteria)

		resp := struct {
			TotalDealers       int                 `json:"total_dealers"`
			AverageRating      *float64            `json:"average_rating"`
			TotalReviews       int                 `json:"total_reviews"`
			RatingDistribution []model.RatingCount `json:"rating_distribution"`
		}{
			TotalDealers:       report.Count(filtered),
			TotalReviews:       report.SumReviews(filtered),
			RatingDistribution: report.RatingDistribution(filtered),
		}
		if avg, ok := report.AverageRating(filtered); ok {
			resp.AverageRating = &avg
		}
		writeJSON(w, http.StatusOK, resp)
	})

	mux.HandleFunc("GET /api/trend", func(w http.ResponseWriter, r *http.Request) {
		criteria, err := criteriaFromQuery(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		filtered := report.Filter(dealers, criteria)
		writeJSON(w, http.StatusOK, report.ReviewTrend(filtered))
	})

	mux.HandleFunc("GET /api/sentiment", func(w http.ResponseWriter, r *http.Request) {
		name := r.URL.Query().Get("dealer")
		if name == "" {
			writeError(w, http.StatusBadRequest, eris.New("dealer query parameter is required"))
			return
		}

		var texts []string
		for _, d := range dealers {
			if d.Name == name {
				texts = append(texts, d.ReviewTexts()...)
			}
		}

		resp := struct {
			Dealer string               `json:"dealer"`
			Tally  model.SentimentTally `json:"tally"`
		}{
			Dealer: name,
			Tally:  classifier.Tally(texts),
		}
		writeJSON(w, http.StatusOK, resp)
	})

	mux.HandleFunc("GET /api/map", func(w http.ResponseWriter, r *http.Request) {
		criteria, err := criteriaFromQuery(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}

		type marker struct {
			Dealer    string  `json:"dealer"`
			Rating    float64 `json:"rating"`
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
		}

		// Dealers without resolved coordinates are omitted from the map.
		markers := make([]marker, 0)
		for _, d := range report.Filter(dealers, criteria) {
			if !d.HasCoordinates() {
				continue
			}
			markers = append(markers, marker{
				Dealer:    d.Name,
				Rating:    d.Rating,
				Latitude:  *d.Latitude,
				Longitude: *d.Longitude,
			})
		}
		writeJSON(w, http.StatusOK, markers)
	})

	return mux
}

// criteriaFromQuery parses filter criteria from request query parameters.
func criteriaFromQuery(r *http.Request) (model.FilterCriteria, error) {
	q := r.URL.Query()
	criteria := model.DefaultCriteria()

	criteria.Provinces = q["province"]
	if dealer := q.Get("dealer"); dealer != "" {
		criteria.Dealer = dealer
	}

	if raw := q.Get("min_rating"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return criteria, eris.Wrapf(err, "parse min_rating %q", raw)
		}
		criteria.MinRating = v
	}
	if raw := q.Get("max_rating"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return criteria, eris.Wrapf(err, "parse max_rating %q", raw)
		}
		criteria.MaxRating = v
	}
	if raw := q.Get("start"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return criteria, eris.Wrapf(err, "parse start %q", raw)
		}
		criteria.StartDate = t
	}
	if raw := q.Get("end"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return criteria, eris.Wrapf(err, "parse end %q", raw)
		}
		criteria.EndDate = t
	}

	return criteria, nil
}

// requestLogger tags each request with an ID and logs its outcome.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		start := time.Now()

		rw := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rw, r)

		zap.L().Info("request",
			zap.String("request_id", requestID),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rw.status),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	serveCmd.Flags().BoolVar(&serveNoEnrich, "no-enrich", false, "skip coordinate backfill at startup")
	rootCmd.AddCommand(serveCmd)
}
