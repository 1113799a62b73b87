// Package server implements the demo shop API that larek talks to:
// GET /products, GET /products/{id} and POST /order.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Iron-Ham/larek/internal/errors"
	"github.com/Iron-Ham/larek/internal/logging"
	"github.com/Iron-Ham/larek/internal/model"
)

const (
	// DefaultBasePath is where the API is mounted.
	DefaultBasePath = "/api/weblarek"

	// maxBodyBytes bounds the POST /order body.
	maxBodyBytes = 1 << 20

	shutdownTimeout = 5 * time.Second
)

// Server serves a Catalog over HTTP.
type Server struct {
	catalog  *Catalog
	logger   *logging.Logger
	validate *validator.Validate
	basePath string
}

// Option configures a Server.
type Option func(*Server)

// WithBasePath mounts the API under path instead of DefaultBasePath.
func WithBasePath(path string) Option {
	return func(s *Server) {
		s.basePath = "/" + strings.Trim(path, "/")
	}
}

// WithLogger sets the logger.
func WithLogger(l *logging.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l.WithComponent("server")
		}
	}
}

// New creates a server for the catalog.
func New(catalog *Catalog, opts ...Option) *Server {
	v := validator.New()
	// Report JSON field names instead of Go field names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	// Orders must pass the same contact rules as the checkout forms.
	_ = v.RegisterValidation("shop_email", func(fl validator.FieldLevel) bool {
		return model.ValidEmail(fl.Field().String())
	})
	_ = v.RegisterValidation("shop_phone", func(fl validator.FieldLevel) bool {
		return model.ValidPhone(fl.Field().String())
	})

	s := &Server{
		catalog:  catalog,
		logger:   logging.NopLogger(),
		validate: v,
		basePath: DefaultBasePath,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the HTTP handler with all routes mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Route(s.basePath, func(r chi.Router) {
		r.Get("/products", s.handleListProducts)
		r.Get("/products/{id}", s.handleGetProduct)
		r.Post("/order", s.handleOrder)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	return r
}

// Run serves on addr until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr, "base_path", s.basePath, "products", s.catalog.Len())
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	s.logger.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "shutdown")
	}
	return nil
}

func (s *Server) handleListProducts(w http.ResponseWriter, r *http.Request) {
	items := s.catalog.List()
	writeJSON(w, http.StatusOK, model.ListResponse{Total: len(items), Items: items})
}

func (s *Server) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	p, err := s.catalog.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Product not found")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleOrder(w http.ResponseWriter, r *http.Request) {
	var req model.OrderRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := s.placeOrder(req)
	if err != nil {
		s.logger.Warn("order rejected", "error", err.Error(), "request_id", middleware.GetReqID(r.Context()))
		status := http.StatusBadRequest
		if errors.Is(err, errors.ErrProductNotFound) {
			status = http.StatusNotFound
		}
		writeError(w, status, errors.UserMessage(err))
		return
	}

	s.logger.WithOrder(result.ID).Info("order placed",
		"items", len(req.Items),
		"total", result.Total.String(),
		"payment", string(req.PaymentMethod))
	writeJSON(w, http.StatusOK, result)
}

// placeOrder checks an order against the catalog and accepts it.
func (s *Server) placeOrder(req model.OrderRequest) (model.OrderResult, error) {
	if err := s.validate.Struct(req); err != nil {
		return model.OrderResult{}, validationMessage(err)
	}

	total := decimal.Zero
	seen := make(map[string]bool, len(req.Items))
	for _, id := range req.Items {
		if seen[id] {
			return model.OrderResult{}, errors.NewValidationError("Duplicate item").WithField("items").WithValue(id)
		}
		seen[id] = true

		p, err := s.catalog.Get(id)
		if err != nil {
			return model.OrderResult{}, errors.NewValidationError(fmt.Sprintf("Product %s not found", id)).
				WithField("items").WithCause(err)
		}
		if !p.Purchasable() {
			return model.OrderResult{}, errors.NewValidationError(fmt.Sprintf("Product %s is not for sale", id)).
				WithField("items")
		}
		total = total.Add(p.Price.Amount())
	}

	if !total.Equal(req.Total.Decimal) {
		return model.OrderResult{}, errors.NewValidationError("Invalid order total").
			WithField("total").WithValue(req.Total.String())
	}

	return model.OrderResult{ID: uuid.NewString(), Total: model.NewAmount(total)}, nil
}

// validationMessage turns validator errors into a single readable message.
func validationMessage(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return errors.NewValidationError("Invalid order").WithCause(err)
	}

	fe := fieldErrs[0]
	field := fe.Field()
	var msg string
	switch fe.Tag() {
	case "required", "min":
		msg = fmt.Sprintf("Field %s is required", field)
	case "shop_email":
		msg = "Invalid email"
	case "shop_phone":
		msg = "Invalid phone"
	case "oneof":
		msg = fmt.Sprintf("Field %s must be one of: %s", field, fe.Param())
	default:
		msg = fmt.Sprintf("Field %s is invalid", field)
	}
	return errors.NewValidationError(msg).WithField(field).WithCause(err)
}

// requestLogger logs one line per request through the structured logger.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration_ms", time.Since(start).Milliseconds(),
			"request_id", middleware.GetReqID(r.Context()))
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, model.ErrorResponse{Error: msg})
}
