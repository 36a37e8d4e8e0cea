package api

import (
	"net/http"

	"github.com/aaravmahajanofficial/diet-tracker/internal/api/handlers"
	"github.com/aaravmahajanofficial/diet-tracker/internal/api/middleware"
	"github.com/aaravmahajanofficial/diet-tracker/internal/metrics"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type Handlers struct {
	Auth    *handlers.AuthHandler
	User    *handlers.UserHandler
	Product *handlers.ProductHandler
	Meal    *handlers.MealHandler
	Cart    *handlers.CartHandler
	Image   *handlers.ImageHandler
	Health  http.Handler
}

// NewRouter registers the routes. Logging wraps metrics so the metrics
// middleware sees the request the mux matched (r.Pattern).
func NewRouter(h *Handlers, auth *middleware.AuthMiddleware) http.Handler {

	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/v1/auth/facebook", h.Auth.FacebookLogin())

	mux.HandleFunc("GET /api/v1/users/me", auth.Authenticate(h.User.GetProfile()))
	mux.HandleFunc("PUT /api/v1/users/me", auth.Authenticate(h.User.UpdateProfile()))
	mux.HandleFunc("PUT /api/v1/users/me/biometrics", auth.Authenticate(h.User.UpdateBiometrics()))

	mux.HandleFunc("POST /api/v1/products", auth.Authenticate(h.Product.CreateProduct()))
	mux.HandleFunc("GET /api/v1/products", auth.Authenticate(h.Product.ListProducts()))
	mux.HandleFunc("GET /api/v1/products/{id}", auth.Authenticate(h.Product.GetProduct()))
	mux.HandleFunc("PUT /api/v1/products/{id}", auth.Authenticate(h.Product.UpdateProduct()))
	mux.HandleFunc("DELETE /api/v1/products/{id}", auth.Authenticate(h.Product.DeleteProduct()))

	mux.HandleFunc("POST /api/v1/meals", auth.Authenticate(h.Meal.CreateMeal()))
	mux.HandleFunc("GET /api/v1/meals", auth.Authenticate(h.Meal.ListMeals()))
	mux.HandleFunc("GET /api/v1/meals/{id}", auth.Authenticate(h.Meal.GetMeal()))
	mux.HandleFunc("PUT /api/v1/meals/{id}", auth.Authenticate(h.Meal.UpdateMeal()))
	mux.HandleFunc("DELETE /api/v1/meals/{id}", auth.Authenticate(h.Meal.DeleteMeal()))

	mux.HandleFunc("GET /api/v1/carts", auth.Authenticate(h.Cart.GetCartByDate()))
	mux.HandleFunc("DELETE /api/v1/carts", auth.Authenticate(h.Cart.ResetCarts()))
	mux.HandleFunc("GET /api/v1/carts/{id}", auth.Authenticate(h.Cart.GetCart()))
	mux.HandleFunc("PUT /api/v1/carts/meals/{mealId}", auth.Authenticate(h.Cart.AddMeal()))
	mux.HandleFunc("DELETE /api/v1/carts/{id}/meals/{mealId}", auth.Authenticate(h.Cart.RemoveMeal()))
	mux.HandleFunc("PUT /api/v1/carts/products/{productId}", auth.Authenticate(h.Cart.AddProduct()))
	mux.HandleFunc("DELETE /api/v1/carts/{id}/products/{productId}", auth.Authenticate(h.Cart.RemoveProduct()))

	mux.HandleFunc("POST /api/v1/images", auth.Authenticate(h.Image.CreateUpload()))

	mux.Handle("GET /metrics", metrics.Handler())
	if h.Health != nil {
		mux.Handle("GET /health", h.Health)
	}

	var handler http.Handler = mux
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(handler)
	handler = otelhttp.NewHandler(handler, "diet-tracker",
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return r.Method + " " + r.URL.Path
		}),
	)

	return handler
}
